package timing

import "math"

// Aspect is a named aspect ratio bucket used for vertical sync selection.
type Aspect struct {
	Name  string
	Ratio float64
	VSync int
}

// AspectUnknown is reported when no candidate ratio matches the mode.
var AspectUnknown = Aspect{Name: "Unknown", VSync: defaultVSync}

const defaultVSync = 10

// aspects is scanned in order and the first match wins. The order is part
// of the vertical sync selection and must not change.
var aspects = []Aspect{
	{Name: "4:3", Ratio: 4.0 / 3.0, VSync: 4},
	{Name: "16:9", Ratio: 16.0 / 9.0, VSync: 5},
	{Name: "16:10", Ratio: 16.0 / 10.0, VSync: 6},
	{Name: "5:4", Ratio: 5.0 / 4.0, VSync: 7},
	{Name: "15:9", Ratio: 15.0 / 9.0, VSync: 7},
	{Name: "43:18", Ratio: 43.0 / 18.0, VSync: defaultVSync},
	{Name: "64:27", Ratio: 64.0 / 27.0, VSync: defaultVSync},
	{Name: "12:5", Ratio: 12.0 / 5.0, VSync: defaultVSync},
}

// DetectAspect returns the first aspect whose ratio applied to vLines lands
// on hPixels once quantized to the cell granularity.
func DetectAspect(hPixels, vLines int) Aspect {
	for _, a := range aspects {
		w := int(math.Round(float64(vLines)*a.Ratio/cellGran)) * cellGran
		if w == hPixels {
			return a
		}
	}
	return AspectUnknown
}
