package models

// VideoMode is a named active resolution and refresh rate. Reference, when
// set, is the mode's published full-blanking timing (CEA-861 / DMT).
type VideoMode struct {
	Label     string        `json:"label"`
	H         int           `json:"h"`
	V         int           `json:"v"`
	Hz        float64       `json:"hz"`
	Reference *ManualTiming `json:"reference,omitempty"`
}

// NoMode is the mode index of a slot that never had a mode selected.
const NoMode = -1

func reference(h, v int, hz float64, hf, hs, hb, vf, vs, vb int) *ManualTiming {
	return &ManualTiming{
		H: h, V: v, Hz: hz,
		HFront: hf, HSync: hs, HBack: hb,
		VFront: vf, VSync: vs, VBack: vb,
	}
}

// VideoModes are the selectable modes. Layouts refer to them by index, so
// entries are only ever appended.
var VideoModes = []VideoMode{
	{Label: "640x480 @ 60Hz", H: 640, V: 480, Hz: 60, Reference: reference(640, 480, 60, 16, 96, 48, 10, 2, 33)},
	{Label: "1280x720 @ 60Hz", H: 1280, V: 720, Hz: 60, Reference: reference(1280, 720, 60, 110, 40, 220, 5, 5, 20)},
	{Label: "1920x1080 @ 60Hz", H: 1920, V: 1080, Hz: 60, Reference: reference(1920, 1080, 60, 88, 44, 148, 4, 5, 36)},
	{Label: "1920x1080 @ 120Hz", H: 1920, V: 1080, Hz: 120, Reference: reference(1920, 1080, 120, 88, 44, 148, 4, 5, 36)},
	{Label: "1920x1080 @ 144Hz", H: 1920, V: 1080, Hz: 144},
	{Label: "1920x1200 @ 60Hz", H: 1920, V: 1200, Hz: 60},
	{Label: "2560x1440 @ 60Hz", H: 2560, V: 1440, Hz: 60},
	{Label: "2560x1440 @ 144Hz", H: 2560, V: 1440, Hz: 144},
	{Label: "2560x1600 @ 60Hz", H: 2560, V: 1600, Hz: 60},
	{Label: "3440x1440 @ 100Hz", H: 3440, V: 1440, Hz: 100},
	{Label: "3840x2160 @ 30Hz", H: 3840, V: 2160, Hz: 30, Reference: reference(3840, 2160, 30, 176, 88, 296, 8, 10, 72)},
	{Label: "3840x2160 @ 60Hz", H: 3840, V: 2160, Hz: 60, Reference: reference(3840, 2160, 60, 176, 88, 296, 8, 10, 72)},
	{Label: "3840x2160 @ 120Hz", H: 3840, V: 2160, Hz: 120, Reference: reference(3840, 2160, 120, 176, 88, 296, 8, 10, 72)},
	{Label: "3840x2160 @ 144Hz", H: 3840, V: 2160, Hz: 144},
	{Label: "5120x2880 @ 60Hz", H: 5120, V: 2880, Hz: 60},
	{Label: "7680x4320 @ 30Hz", H: 7680, V: 4320, Hz: 30},
	{Label: "7680x4320 @ 60Hz", H: 7680, V: 4320, Hz: 60},
}

// ModeByIndex returns the mode at index i.
func ModeByIndex(i int) (VideoMode, bool) {
	if i < 0 || i >= len(VideoModes) {
		return VideoMode{}, false
	}
	return VideoModes[i], true
}
