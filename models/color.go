package models

// ColorFormat is the pixel encoding and chroma subsampling of a stream.
type ColorFormat string

const (
	ColorRGB    ColorFormat = "rgb"
	ColorYUV444 ColorFormat = "yuv444"
	ColorYUV422 ColorFormat = "yuv422"
	ColorYUV420 ColorFormat = "yuv420"
)

// colorFactors is the number of components carried per pixel.
var colorFactors = map[ColorFormat]float64{
	ColorRGB:    3,
	ColorYUV444: 3,
	ColorYUV422: 2,
	ColorYUV420: 1.5,
}

// ColorFormats lists every color format in display order.
var ColorFormats = []ColorFormat{ColorRGB, ColorYUV444, ColorYUV422, ColorYUV420}

// Factor returns the subsampling factor of f, or 0 if f is unknown.
func (f ColorFormat) Factor() float64 {
	return colorFactors[f]
}

// Valid returns if f is a known color format.
func (f ColorFormat) Valid() bool {
	_, ok := colorFactors[f]
	return ok
}

// BitDepths are the supported bits per component.
var BitDepths = []int{5, 6, 8, 10, 12, 16}

// ValidBPC returns if bpc is a supported bit depth.
func ValidBPC(bpc int) bool {
	for _, b := range BitDepths {
		if b == bpc {
			return true
		}
	}
	return false
}

// ColorMode is the color encoding of a stream.
type ColorMode struct {
	BPC    int         `json:"bpc" validate:"is_bpc"`
	Format ColorFormat `json:"color_format" validate:"is_color_format"`
}

// BitsPerPixel is bpc times the format's subsampling factor.
func (c ColorMode) BitsPerPixel() float64 {
	return float64(c.BPC) * c.Format.Factor()
}

// DSCRatios are the supported compression ratios.
var DSCRatios = []float64{3.0, 2.4}

// ValidDSCRatio returns if r is a supported compression ratio.
func ValidDSCRatio(r float64) bool {
	for _, v := range DSCRatios {
		if v == r {
			return true
		}
	}
	return false
}

// CompressionSetting is a stream's display stream compression choice.
type CompressionSetting struct {
	Ratio  float64 `json:"ratio" validate:"is_dsc_ratio"`
	Active bool    `json:"active"`
}
