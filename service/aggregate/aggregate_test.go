package aggregate

import (
	"math"
	"testing"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func streams(rates ...float64) []Stream {
	s := make([]Stream, len(rates))
	for i, r := range rates {
		s[i] = Stream{ID: string(rune('a' + i)), Rate: r}
	}
	return s
}

func TestFitBoundary(t *testing.T) {
	th := DefaultThresholds()

	r := Aggregate(streams(12.96, 12.96), 25.92, th)
	if !r.Fits {
		t.Errorf("expected an exact fit, got %+v", r)
	}

	r = Aggregate(streams(25.92+5e-10), 25.92, th)
	if !r.Fits {
		t.Errorf("expected rounding noise to fit, got %+v", r)
	}

	r = Aggregate(streams(25.92+1e-6), 25.92, th)
	if r.Fits || r.Status != StatusOverCapacity {
		t.Errorf("expected over capacity, got %+v", r)
	}
}

func TestStatus(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		required float64
		status   Status
	}{
		{95, StatusLowMargin},
		{80, StatusHealthy},
		{90, StatusHealthy},
		{90.5, StatusLowMargin},
		{120, StatusOverCapacity},
	}
	for _, tc := range tests {
		r := Aggregate(streams(tc.required), 100, th)
		if r.Status != tc.status {
			t.Errorf("%v of 100: expected %s, got %s", tc.required, tc.status, r.Status)
		}
	}

	th.LowMarginPct = 25
	if r := Aggregate(streams(80), 100, th); r.Status != StatusLowMargin {
		t.Errorf("expected a raised threshold to flag 20%% margin, got %s", r.Status)
	}
}

func TestReportFields(t *testing.T) {
	r := Aggregate(streams(10, 5), 25, DefaultThresholds())
	if r.TotalRequired != 15 || r.Margin != 10 || !closeTo(r.MarginPct, 40) || !closeTo(r.UtilizationPct, 60) {
		t.Errorf("unexpected report %+v", r)
	}
	if len(r.Streams) != 2 || !closeTo(r.Streams[0].Pct, 40) || !closeTo(r.Streams[1].Pct, 20) {
		t.Errorf("unexpected shares %+v", r.Streams)
	}
}

func TestUtilizationClamped(t *testing.T) {
	r := Aggregate(streams(50), 25, DefaultThresholds())
	if r.UtilizationPct != 100 {
		t.Errorf("expected utilization clamped to 100, got %v", r.UtilizationPct)
	}
	if !closeTo(r.MarginPct, -100) {
		t.Errorf("expected margin -100%%, got %v", r.MarginPct)
	}
}

func TestZeroCapacity(t *testing.T) {
	r := Aggregate(streams(1), 0, DefaultThresholds())
	if r.Fits || r.Status != StatusOverCapacity {
		t.Errorf("expected over capacity, got %+v", r)
	}
	if math.IsInf(r.UtilizationPct, 0) || math.IsNaN(r.UtilizationPct) || r.MarginPct != 0 {
		t.Errorf("expected finite percentages, got %+v", r)
	}

	r = Aggregate(nil, 0, DefaultThresholds())
	if !r.Fits || r.TotalRequired != 0 || r.UtilizationPct != 0 {
		t.Errorf("expected an empty report to fit, got %+v", r)
	}
}

func TestTruncatesStreams(t *testing.T) {
	r := Aggregate(streams(1, 1, 1, 1, 1, 1), 100, DefaultThresholds())
	if len(r.Streams) != 4 || r.TotalRequired != 4 {
		t.Errorf("expected four streams summed, got %+v", r)
	}
}
