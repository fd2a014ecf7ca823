package models

// Coding is a link's line coding scheme.
type Coding string

const (
	Coding8b10b    Coding = "8b10b"
	Coding128b132b Coding = "128b132b"
)

// Efficiency is the payload fraction of the raw bit rate under c.
func (c Coding) Efficiency() float64 {
	if c == Coding8b10b {
		return 0.8
	}
	return 128.0 / 132.0
}

// Valid returns if c is a known coding.
func (c Coding) Valid() bool {
	return c == Coding8b10b || c == Coding128b132b
}

// LaneCounts are the supported lane counts, ascending.
var LaneCounts = []int{1, 2, 4}

// ValidLanes returns if n is a supported lane count.
func ValidLanes(n int) bool {
	for _, l := range LaneCounts {
		if l == n {
			return true
		}
	}
	return false
}

// LinkConfig is the serial link the streams share.
type LinkConfig struct {
	Rate   float64 `json:"rate" validate:"is_positive"` // Gbps per lane
	Lanes  int     `json:"lanes" validate:"is_lanes"`
	Coding Coding  `json:"coding" validate:"is_coding"`
}

// Efficiency is the payload fraction of the link's coding.
func (l LinkConfig) Efficiency() float64 {
	return l.Coding.Efficiency()
}

// LinkPreset is a named link configuration.
type LinkPreset struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Rate   float64 `json:"rate"`
	Coding Coding  `json:"coding"`
	Lanes  int     `json:"lanes"`
}

// Config returns the preset's link configuration.
func (p LinkPreset) Config() LinkConfig {
	return LinkConfig{Rate: p.Rate, Lanes: p.Lanes, Coding: p.Coding}
}

// PresetCustom is the preset id for hand-entered links.
const PresetCustom = "custom"

// DefaultPresetID is the preset a new state starts from.
const DefaultPresetID = "hbr3"

// LinkPresets are the DisplayPort link generations.
var LinkPresets = []LinkPreset{
	{ID: "rbr", Label: "DP RBR (1.62 Gbps/lane)", Rate: 1.62, Coding: Coding8b10b, Lanes: 4},
	{ID: "hbr", Label: "DP HBR (2.7 Gbps/lane)", Rate: 2.7, Coding: Coding8b10b, Lanes: 4},
	{ID: "hbr2", Label: "DP HBR2 (5.4 Gbps/lane)", Rate: 5.4, Coding: Coding8b10b, Lanes: 4},
	{ID: "hbr3", Label: "DP HBR3 (8.1 Gbps/lane)", Rate: 8.1, Coding: Coding8b10b, Lanes: 4},
	{ID: "uhbr10", Label: "DP UHBR10 (10 Gbps/lane)", Rate: 10, Coding: Coding128b132b, Lanes: 4},
	{ID: "uhbr13_5", Label: "DP UHBR13.5 (13.5 Gbps/lane)", Rate: 13.5, Coding: Coding128b132b, Lanes: 4},
	{ID: "uhbr20", Label: "DP UHBR20 (20 Gbps/lane)", Rate: 20, Coding: Coding128b132b, Lanes: 4},
	{ID: PresetCustom, Label: "Custom"},
}

// PresetByID finds a preset by id.
func PresetByID(id string) (LinkPreset, bool) {
	for _, p := range LinkPresets {
		if p.ID == id {
			return p, true
		}
	}
	return LinkPreset{}, false
}
