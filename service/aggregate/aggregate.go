// Package aggregate checks a set of stream rates against a link's payload
// capacity.
package aggregate

import (
	"math"

	"github.com/ReconfigureIO/linkbudget/models"
)

// Status is the severity of a report.
type Status string

const (
	StatusOverCapacity Status = "over-capacity"
	StatusLowMargin    Status = "low-margin"
	StatusHealthy      Status = "healthy"
)

const (
	// DefaultFitEpsilon absorbs floating point error at the fit boundary.
	DefaultFitEpsilon = 1e-9
	// DefaultLowMarginPct is the margin below which a fit is flagged.
	DefaultLowMarginPct = 10.0

	minCapacity = 1e-6
)

// Thresholds tune the fit decision and status classification.
type Thresholds struct {
	FitEpsilon   float64 `env:"LINK_FIT_EPSILON" envDefault:"1e-9"`
	LowMarginPct float64 `env:"LINK_LOW_MARGIN_PCT" envDefault:"10"`
}

// DefaultThresholds returns the stock thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{FitEpsilon: DefaultFitEpsilon, LowMarginPct: DefaultLowMarginPct}
}

// Stream is one active stream's selected rate in Gbps.
type Stream struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// Share is a stream's contribution to the report.
type Share struct {
	Stream
	// Pct is the stream's rate as a percentage of payload capacity.
	Pct float64 `json:"pct"`
}

// Report is the fit decision for a set of streams on one link.
type Report struct {
	TotalRequired   float64 `json:"total_required"`
	PayloadCapacity float64 `json:"payload_capacity"`
	Margin          float64 `json:"margin"`
	MarginPct       float64 `json:"margin_pct"`
	UtilizationPct  float64 `json:"utilization_pct"`
	Fits            bool    `json:"fits"`
	Status          Status  `json:"status"`
	Streams         []Share `json:"streams"`
}

// Aggregate sums the first MaxStreams streams and compares them against
// payload.
func Aggregate(streams []Stream, payload float64, th Thresholds) Report {
	if len(streams) > models.MaxStreams {
		streams = streams[:models.MaxStreams]
	}

	r := Report{
		PayloadCapacity: payload,
		Streams:         make([]Share, 0, len(streams)),
	}
	denom := math.Max(payload, minCapacity)
	for _, s := range streams {
		r.TotalRequired += s.Rate
		r.Streams = append(r.Streams, Share{Stream: s, Pct: s.Rate / denom * 100})
	}

	r.Fits = r.TotalRequired <= payload+th.FitEpsilon
	r.Margin = payload - r.TotalRequired
	if payload > 0 {
		r.MarginPct = r.Margin / payload * 100
	}
	r.UtilizationPct = clamp(r.TotalRequired/denom*100, 0, 100)
	r.Status = Classify(r, th)
	return r
}

// Classify returns the severity of r.
func Classify(r Report, th Thresholds) Status {
	switch {
	case !r.Fits:
		return StatusOverCapacity
	case r.MarginPct < th.LowMarginPct:
		return StatusLowMargin
	default:
		return StatusHealthy
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
