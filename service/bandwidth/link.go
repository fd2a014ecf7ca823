package bandwidth

import "github.com/ReconfigureIO/linkbudget/models"

// Capacity is a link's capacity in Gbps.
type Capacity struct {
	Raw        float64 `json:"raw"`
	Efficiency float64 `json:"efficiency"`
	Payload    float64 `json:"payload"`
}

// RawCapacityGbps is the per-lane rate times the lane count.
func RawCapacityGbps(rate float64, lanes int) float64 {
	return rate * float64(lanes)
}

// PayloadCapacity computes the usable capacity of l after line coding.
func PayloadCapacity(l models.LinkConfig) Capacity {
	raw := RawCapacityGbps(l.Rate, l.Lanes)
	eff := l.Efficiency()
	return Capacity{
		Raw:        raw,
		Efficiency: eff,
		Payload:    raw * eff,
	}
}
