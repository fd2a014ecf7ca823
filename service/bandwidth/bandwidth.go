// Package bandwidth converts stream timings into bit rates and links into
// payload capacities. Nothing here validates its inputs; a non-positive
// input yields a non-positive rate.
package bandwidth

import "github.com/ReconfigureIO/linkbudget/models"

// BitsPerPixel is bpc times the subsampling factor of format.
func BitsPerPixel(bpc int, format models.ColorFormat) float64 {
	return float64(bpc) * format.Factor()
}

// RawRateGbps is the uncompressed stream rate for a pixel clock in MHz.
func RawRateGbps(pixelClockMHz, bpp float64) float64 {
	return pixelClockMHz * 1e6 * bpp / 1e9
}

// CompressedRateGbps is raw divided by the compression ratio.
func CompressedRateGbps(raw, ratio float64) float64 {
	return raw / ratio
}

// StreamRate holds a stream's rates in Gbps.
type StreamRate struct {
	BitsPerPixel float64 `json:"bpp"`
	Raw          float64 `json:"raw"`
	Compressed   float64 `json:"compressed"`
	// Selected is Compressed when compression is active, else Raw.
	Selected float64 `json:"selected"`
}

// ForStream computes the rates of one stream.
func ForStream(t models.TimingSpec, c models.ColorMode, comp models.CompressionSetting) StreamRate {
	bpp := BitsPerPixel(c.BPC, c.Format)
	raw := RawRateGbps(t.PixelClock, bpp)
	r := StreamRate{
		BitsPerPixel: bpp,
		Raw:          raw,
		Compressed:   CompressedRateGbps(raw, comp.Ratio),
	}
	r.Selected = r.Raw
	if comp.Active {
		r.Selected = r.Compressed
	}
	return r
}
