// Package timing derives full video timings from an active resolution and
// refresh rate using the CVT family of formulas.
package timing

import (
	"errors"
	"math"

	"github.com/ReconfigureIO/linkbudget/models"
)

const (
	cellGran     = 8
	minVPorch    = 3
	marginPct    = 1.8
	cPrime       = 30.0
	mPrime       = 300.0
	minVSyncBP   = 550.0 // µs
	minVBPorch   = 6
	hSyncPct     = 8.0
	minDutyCycle = 20.0
)

var (
	// ErrInvalidActive is returned when resolution or refresh is not positive.
	ErrInvalidActive = errors.New("active resolution and refresh rate must be positive")
	// ErrRefreshTooHigh is returned when a field is shorter than the
	// profile's minimum vertical blanking interval.
	ErrRefreshTooHigh = errors.New("refresh rate leaves no time for vertical blanking")
	// ErrManualProfile is returned for profiles that have no generator.
	ErrManualProfile = errors.New("profile has no timing generator")
)

type profileParams struct {
	clockStepHz float64
	hBlank      int
	hSync       int
	hBack       int
	minVBlank   float64 // µs
	vFront      int
	vSync       int // 0 selects by aspect ratio
}

var profiles = map[models.Profile]profileParams{
	models.ProfileCVT: {
		clockStepHz: 250000,
		minVBlank:   minVSyncBP,
	},
	models.ProfileCVTRB: {
		clockStepHz: 250000,
		hBlank:      160,
		hSync:       32,
		hBack:       80,
		minVBlank:   460,
		vFront:      3,
	},
	models.ProfileCVTRB2: {
		clockStepHz: 1000,
		hBlank:      80,
		hSync:       32,
		hBack:       40,
		minVBlank:   460,
		vFront:      1,
		vSync:       8,
	},
}

// Params are the inputs of a timing generation.
type Params struct {
	H              int            `json:"h"`
	V              int            `json:"v"`
	Hz             float64        `json:"hz"`
	Profile        models.Profile `json:"profile"`
	Margins        bool           `json:"margins"`
	Interlaced     bool           `json:"interlaced"`
	VideoOptimized bool           `json:"video_optimized"`
}

// Descriptor is a fully derived timing. Vertical quantities are per field.
type Descriptor struct {
	Profile    models.Profile `json:"profile"`
	Aspect     string         `json:"aspect"`
	Interlaced bool           `json:"interlaced"`

	HActive int `json:"h_active"`
	HBorder int `json:"h_border"`
	HFront  int `json:"h_front"`
	HSync   int `json:"h_sync"`
	HBack   int `json:"h_back"`
	HTotal  int `json:"h_total"`

	VActive int `json:"v_active"`
	VBorder int `json:"v_border"`
	VFront  int `json:"v_front"`
	VSync   int `json:"v_sync"`
	VBack   int `json:"v_back"`
	VTotal  int `json:"v_total"`

	PixelClock float64 `json:"pixel_clock"` // MHz
	HFreq      float64 `json:"h_freq"`      // kHz
	FieldRate  float64 `json:"field_rate"`  // Hz
}

// Apply copies the derived blanking and clock onto spec. Borders are folded
// into the porches so that the timing's totals match the clock.
func (d Descriptor) Apply(spec *models.TimingSpec) {
	spec.Profile = d.Profile
	spec.HFront = d.HFront + d.HBorder
	spec.HSync = d.HSync
	spec.HBack = d.HBack + d.HBorder
	spec.VFront = d.VFront + d.VBorder
	spec.VSync = d.VSync
	spec.VBack = d.VBack + d.VBorder
	spec.PixelClock = d.PixelClock
}

// Generate computes the timing for p.
func Generate(p Params) (Descriptor, error) {
	if p.H <= 0 || p.V <= 0 || p.Hz <= 0 {
		return Descriptor{}, ErrInvalidActive
	}
	pp, ok := profiles[p.Profile]
	if !ok {
		return Descriptor{}, ErrManualProfile
	}

	g := newGeometry(p)
	// Below one character cell, or one line per field, there is no active
	// area to time.
	if g.hRnd == 0 || g.vLines == 0 {
		return Descriptor{}, ErrInvalidActive
	}
	if 1e6/g.fieldRate-pp.minVBlank <= 0 {
		return Descriptor{}, ErrRefreshTooHigh
	}
	if p.Profile == models.ProfileCVT {
		return g.standard(pp), nil
	}
	return g.reduced(p.Profile, pp, p.VideoOptimized), nil
}

// geometry holds the quantities shared by every profile.
type geometry struct {
	hRnd        int
	hMargin     int
	totalActive int
	vLines      int
	vMargin     int
	interlace   float64
	fieldRate   float64
	aspect      Aspect
	interlaced  bool
}

func newGeometry(p Params) geometry {
	g := geometry{
		hRnd:       p.H / cellGran * cellGran,
		vLines:     p.V,
		fieldRate:  p.Hz,
		interlaced: p.Interlaced,
	}
	if p.Interlaced {
		g.vLines = p.V / 2
		g.interlace = 0.5
		g.fieldRate = p.Hz * 2
	}
	if p.Margins {
		g.hMargin = int(float64(g.hRnd)*marginPct/100/cellGran) * cellGran
		g.vMargin = int(marginPct / 100 * float64(g.vLines))
	}
	g.totalActive = g.hRnd + 2*g.hMargin
	g.aspect = DetectAspect(g.hRnd, p.V)
	return g
}

func (g geometry) standard(pp profileParams) Descriptor {
	vSync := g.aspect.VSync

	// µs
	hPeriod := (1e6/g.fieldRate - pp.minVBlank) /
		(float64(g.vLines+2*g.vMargin+minVPorch) + g.interlace)

	vSyncBP := int(math.Floor(pp.minVBlank/hPeriod)) + 1
	if vSyncBP < vSync+minVBPorch {
		vSyncBP = vSync + minVBPorch
	}
	totalLines := float64(g.vLines+2*g.vMargin+vSyncBP+minVPorch) + g.interlace

	duty := cPrime - mPrime*hPeriod/1000
	if duty < minDutyCycle {
		duty = minDutyCycle
	}
	hBlank := int(float64(g.totalActive)*duty/(100-duty)/(2*cellGran)) * (2 * cellGran)
	totalPixels := g.totalActive + hBlank

	hSync := int(hSyncPct/100*float64(totalPixels)/cellGran) * cellGran
	hBack := hBlank / 2
	hFront := hBlank - hSync - hBack

	clockHz := quantize(float64(totalPixels)/hPeriod*1e6, pp.clockStepHz)

	return g.descriptor(models.ProfileCVT, clockHz, totalPixels, totalLines,
		hFront, hSync, hBack,
		minVPorch, vSync, vSyncBP-vSync)
}

func (g geometry) reduced(profile models.Profile, pp profileParams, videoOptimized bool) Descriptor {
	vSync := pp.vSync
	if vSync == 0 {
		vSync = g.aspect.VSync
	}

	// µs
	hPeriod := (1e6/g.fieldRate - pp.minVBlank) / float64(g.vLines+2*g.vMargin)

	vbi := int(math.Floor(pp.minVBlank/hPeriod)) + 1
	if minVBI := pp.vFront + vSync + minVBPorch; vbi < minVBI {
		vbi = minVBI
	}
	totalLines := float64(vbi+g.vLines+2*g.vMargin) + g.interlace
	totalPixels := g.totalActive + pp.hBlank

	clockHz := quantize(g.fieldRate*totalLines*float64(totalPixels), pp.clockStepHz)
	if profile == models.ProfileCVTRB2 && videoOptimized {
		clockHz = clockHz * 1000 / 1001
	}

	hFront := pp.hBlank - pp.hSync - pp.hBack
	var vFront, vBack int
	if profile == models.ProfileCVTRB2 {
		vBack = minVBPorch
		vFront = vbi - vSync - vBack
	} else {
		vFront = pp.vFront
		vBack = vbi - vFront - vSync
	}

	return g.descriptor(profile, clockHz, totalPixels, totalLines,
		hFront, pp.hSync, pp.hBack,
		vFront, vSync, vBack)
}

func (g geometry) descriptor(profile models.Profile, clockHz float64, totalPixels int, totalLines float64,
	hFront, hSync, hBack, vFront, vSync, vBack int) Descriptor {
	d := Descriptor{
		Profile:    profile,
		Aspect:     g.aspect.Name,
		Interlaced: g.interlaced,
		HActive:    g.hRnd,
		HBorder:    g.hMargin,
		HFront:     hFront,
		HSync:      hSync,
		HBack:      hBack,
		HTotal:     totalPixels,
		VActive:    g.vLines,
		VBorder:    g.vMargin,
		VFront:     vFront,
		VSync:      vSync,
		VBack:      vBack,
		VTotal:     int(math.Round(totalLines)),
		PixelClock: clockHz / 1e6,
	}
	d.HFreq = clockHz / float64(totalPixels) / 1000
	d.FieldRate = clockHz / (float64(totalPixels) * totalLines)
	return d
}

// quantize rounds hz down to a whole number of steps.
func quantize(hz, stepHz float64) float64 {
	return math.Floor(hz/stepHz) * stepHz
}
