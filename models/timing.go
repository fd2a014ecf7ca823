package models

// Profile selects how a stream's blanking is produced.
type Profile string

const (
	// ProfileManual means blanking is entered by hand.
	ProfileManual Profile = "manual"
	// ProfileCVT is standard CVT blanking.
	ProfileCVT Profile = "cvt"
	// ProfileCVTRB is CVT reduced blanking.
	ProfileCVTRB Profile = "cvt_rb"
	// ProfileCVTRB2 is CVT reduced blanking v2.
	ProfileCVTRB2 Profile = "cvt_rb2"
)

// Profiles lists every profile in display order.
var Profiles = []Profile{ProfileManual, ProfileCVT, ProfileCVTRB, ProfileCVTRB2}

// Valid returns if p is a known profile.
func (p Profile) Valid() bool {
	for _, v := range Profiles {
		if p == v {
			return true
		}
	}
	return false
}

// Generated returns if p is produced by the timing generator.
func (p Profile) Generated() bool {
	return p.Valid() && p != ProfileManual
}

// TimingSpec is one stream's timing. A zero H, V or Hz means unset.
type TimingSpec struct {
	H          int     `json:"h"`
	V          int     `json:"v"`
	Hz         float64 `json:"hz"`
	Profile    Profile `json:"profile"`
	HFront     int     `json:"h_front"`
	HSync      int     `json:"h_sync"`
	HBack      int     `json:"h_back"`
	VFront     int     `json:"v_front"`
	VSync      int     `json:"v_sync"`
	VBack      int     `json:"v_back"`
	PixelClock float64 `json:"pixel_clock"` // MHz
}

// HasActive returns if resolution and refresh are all set.
func (t TimingSpec) HasActive() bool {
	return t.H > 0 && t.V > 0 && t.Hz > 0
}

// HTotal is the total pixels per line.
func (t TimingSpec) HTotal() int {
	return t.H + t.HFront + t.HSync + t.HBack
}

// VTotal is the total lines per frame.
func (t TimingSpec) VTotal() int {
	return t.V + t.VFront + t.VSync + t.VBack
}

// TotalsPixelClock is the pixel clock in MHz implied by the totals and
// refresh rate.
func (t TimingSpec) TotalsPixelClock() float64 {
	return float64(t.HTotal()) * float64(t.VTotal()) * t.Hz / 1e6
}

// ManualTiming is a hand-entered timing.
type ManualTiming struct {
	H      int     `json:"h" validate:"min=1"`
	V      int     `json:"v" validate:"min=1"`
	Hz     float64 `json:"hz" validate:"is_positive"`
	HFront int     `json:"h_front" validate:"min=0"`
	HSync  int     `json:"h_sync" validate:"min=0"`
	HBack  int     `json:"h_back" validate:"min=0"`
	VFront int     `json:"v_front" validate:"min=0"`
	VSync  int     `json:"v_sync" validate:"min=0"`
	VBack  int     `json:"v_back" validate:"min=0"`
}

// Spec returns the manual timing as a TimingSpec with its pixel clock
// derived from the totals.
func (m ManualTiming) Spec() TimingSpec {
	t := TimingSpec{
		H:       m.H,
		V:       m.V,
		Hz:      m.Hz,
		Profile: ProfileManual,
		HFront:  m.HFront,
		HSync:   m.HSync,
		HBack:   m.HBack,
		VFront:  m.VFront,
		VSync:   m.VSync,
		VBack:   m.VBack,
	}
	t.PixelClock = t.TotalsPixelClock()
	return t
}
