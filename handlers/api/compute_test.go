package api

import (
	"math"
	"testing"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/bandwidth"
	"github.com/ReconfigureIO/linkbudget/service/timing"
)

func TestReference(t *testing.T) {
	c, w := testContext("GET", "")
	Reference{}.Presets(c)
	var presets []models.LinkPreset
	decodeValue(t, w, &presets)
	if len(presets) != len(models.LinkPresets) {
		t.Errorf("expected %d presets, got %d", len(models.LinkPresets), len(presets))
	}

	c, w = testContext("GET", "")
	Reference{}.Modes(c)
	var modes []models.VideoMode
	decodeValue(t, w, &modes)
	if len(modes) != len(models.VideoModes) || modes[2].Reference == nil {
		t.Errorf("unexpected modes %+v", modes)
	}
}

func TestComputeTiming(t *testing.T) {
	c, w := testContext("POST", `{"h": 1920, "v": 1080, "hz": 60, "profile": "cvt_rb"}`)
	Compute{}.Timing(c)
	if c.Writer.Status() != 200 {
		t.Fatal("Expected 200 status, got: ", c.Writer.Status(), w.Body.String())
	}
	var d timing.Descriptor
	decodeValue(t, w, &d)
	if d.HTotal != 2080 || d.VTotal != 1111 || d.PixelClock != 138.5 {
		t.Errorf("unexpected descriptor %+v", d)
	}
}

func TestComputeTimingInvalid(t *testing.T) {
	for _, body := range []string{
		`{"h": 1920, "v": 1080, "hz": 60, "profile": "manual"}`,
		`{"h": 0, "v": 1080, "hz": 60, "profile": "cvt"}`,
		`{"h": 1920, "v": 1080, "profile": "cvt"}`,
		`{"h": 640, "v": 480, "hz": 5000, "profile": "cvt"}`,
		`{"h": "wide"}`,
	} {
		c, _ := testContext("POST", body)
		Compute{}.Timing(c)
		if c.Writer.Status() != 400 {
			t.Errorf("%s: Expected 400 status, got: %d", body, c.Writer.Status())
		}
	}
}

func TestComputeBandwidth(t *testing.T) {
	c, w := testContext("POST", `{"pixel_clock": 148.5}`)
	Compute{}.Bandwidth(c)
	if c.Writer.Status() != 200 {
		t.Fatal("Expected 200 status, got: ", c.Writer.Status(), w.Body.String())
	}
	var r bandwidth.StreamRate
	decodeValue(t, w, &r)
	if math.Abs(r.Raw-3.564) > 1e-9 || math.Abs(r.Compressed-1.188) > 1e-9 || r.Selected != r.Raw {
		t.Errorf("unexpected rate %+v", r)
	}

	c, _ = testContext("POST", `{"pixel_clock": 148.5, "bpc": 7}`)
	Compute{}.Bandwidth(c)
	if c.Writer.Status() != 400 {
		t.Error("Expected 400 status, got: ", c.Writer.Status())
	}
}

func TestComputeCapacity(t *testing.T) {
	c, w := testContext("POST", `{"rate": 8.1, "lanes": 4, "coding": "8b10b"}`)
	Compute{}.Capacity(c)
	var capacity bandwidth.Capacity
	decodeValue(t, w, &capacity)
	if math.Abs(capacity.Payload-25.92) > 1e-9 {
		t.Errorf("unexpected capacity %+v", capacity)
	}

	c, _ = testContext("POST", `{"rate": 8.1, "lanes": 3, "coding": "8b10b"}`)
	Compute{}.Capacity(c)
	if c.Writer.Status() != 400 {
		t.Error("Expected 400 status, got: ", c.Writer.Status())
	}
}

const overLayout = `{
	"timings": [
		{"id": "a", "h": 3840, "v": 2160, "hz": 60, "cvtKind": "cvt_rb", "bpc": 10},
		{"id": "b", "h": 3840, "v": 2160, "hz": 60, "cvtKind": "cvt_rb", "bpc": 10}
	],
	"transport": {"rate": 8.1, "lanes": 4, "coding": "8b10b"},
	"presetId": "hbr3"
}`

func TestComputeReport(t *testing.T) {
	c, w := testContext("POST", overLayout)
	Compute{Thresholds: aggregate.DefaultThresholds()}.Report(c)
	if c.Writer.Status() != 200 {
		t.Fatal("Expected 200 status, got: ", c.Writer.Status(), w.Body.String())
	}
	var lr struct {
		Layout models.Layout    `json:"layout"`
		Report aggregate.Report `json:"report"`
	}
	decodeValue(t, w, &lr)
	if lr.Report.Fits || lr.Report.Status != aggregate.StatusOverCapacity {
		t.Errorf("expected over capacity, got %+v", lr.Report)
	}
	if len(lr.Layout.Timings) != 2 || lr.Layout.Timings[0].PixelClock.Value != 533.25 {
		t.Errorf("expected a normalized layout, got %+v", lr.Layout)
	}
}

func TestComputeReportStructural(t *testing.T) {
	c, _ := testContext("POST", `{"timings": 4}`)
	Compute{}.Report(c)
	if c.Writer.Status() != 400 {
		t.Error("Expected 400 status, got: ", c.Writer.Status())
	}
}
