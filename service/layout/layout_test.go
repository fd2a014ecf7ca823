package layout

import (
	"bytes"
	"math"
	"testing"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/planner"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sampleState(t *testing.T) *planner.State {
	st := planner.New(aggregate.DefaultThresholds())
	a, _ := st.AddSlot("desk")
	b, _ := st.AddSlot("tv")
	if err := st.SelectMode(a.ID, 2); err != nil {
		t.Fatal(err)
	}
	if err := st.SetProfile(b.ID, models.ProfileCVTRB2); err != nil {
		t.Fatal(err)
	}
	if err := st.SelectMode(b.ID, 11); err != nil {
		t.Fatal(err)
	}
	st.SetColor(b.ID, models.ColorMode{BPC: 10, Format: models.ColorYUV444})
	st.SetCompression(b.ID, models.CompressionSetting{Ratio: 2.4, Active: true})
	st.AddSlot("spare")
	st.SelectPreset("uhbr10")
	return st
}

func TestRoundTrip(t *testing.T) {
	st := sampleState(t)
	before := st.Recompute()

	data, err := Export(st)
	if err != nil {
		t.Fatal(err)
	}
	imported, err := Import(data, aggregate.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	after := imported.Recompute()

	if imported.PresetID != st.PresetID || imported.Link != st.Link {
		t.Errorf("link changed: %s %+v", imported.PresetID, imported.Link)
	}
	if len(imported.Slots) != len(st.Slots) {
		t.Fatalf("expected %d slots, got %d", len(st.Slots), len(imported.Slots))
	}
	for i, s := range imported.Slots {
		want := st.Slots[i]
		if s.ID != want.ID || s.Label != want.Label || s.ModeIndex != want.ModeIndex {
			t.Errorf("slot %d identity changed: %+v", i, s)
		}
		if s.Timing != want.Timing || s.Color != want.Color || s.Compression != want.Compression {
			t.Errorf("slot %d:\nExpected: %+v\nGot:      %+v\n", i, *want, *s)
		}
	}
	if !closeTo(after.TotalRequired, before.TotalRequired) || after.Status != before.Status {
		t.Errorf("\nExpected: %+v\nGot:      %+v\n", before, after)
	}

	again, err := Export(imported)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("export not stable:\n%s\n%s", data, again)
	}
}

func TestExportFormat(t *testing.T) {
	st := sampleState(t)
	st.Recompute()
	l := ToLayout(st)

	desk := l.Timings[0]
	if desk.PeakBw.Value != st.Slots[0].Rate.Raw || desk.CvtKind != "manual" {
		t.Errorf("unexpected entry %+v", desk)
	}
	spare := l.Timings[2]
	if spare.H.Valid || spare.Hz.Valid || spare.PixelClock.Valid {
		t.Errorf("expected unset values to export as null, got %+v", spare)
	}
	if l.Transport.Coding != "128b132b" || !closeTo(l.Transport.Eff.Value, 128.0/132.0) {
		t.Errorf("unexpected transport %+v", l.Transport)
	}
}

func TestStructuralFailures(t *testing.T) {
	tests := []string{
		``,
		`not json`,
		`[]`,
		`"layout"`,
		`null`,
		`{}`,
		`{"timings": {}}`,
		`{"timings": null}`,
		`{"timings": [1]}`,
		`{"timings": [{}, "x"]}`,
		`{"timings": [], "transport": 5}`,
		`{"timings": [], "transport": []}`,
	}
	for _, in := range tests {
		st, err := Import([]byte(in), aggregate.DefaultThresholds())
		if _, ok := err.(*StructureError); !ok {
			t.Errorf("%q: expected a structure error, got %v", in, err)
		}
		if st != nil {
			t.Errorf("%q: expected no state", in)
		}
	}
}

func TestImportDefaults(t *testing.T) {
	in := `{
		"timings": [{
			"h": "1920", "v": 1080, "hz": 60,
			"hFront": 88, "hSync": 44, "hBack": 148,
			"vFront": 4, "vSync": 5, "vBack": 36,
			"bpc": "ten", "colorFormat": "cmyk", "dscRatio": 7,
			"modeIndex": "x", "cvtKind": "gtf"
		}],
		"transport": {"rate": "8.1", "lanes": 3, "coding": "bogus"},
		"presetId": "nope"
	}`
	st, err := Import([]byte(in), aggregate.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	s := st.Slots[0]
	if s.Color != (models.ColorMode{BPC: 8, Format: models.ColorRGB}) || s.Compression.Ratio != 3 {
		t.Errorf("unexpected color defaults %+v %+v", s.Color, s.Compression)
	}
	if s.Timing.Profile != models.ProfileManual || s.ModeIndex != models.NoMode || s.ID == "" {
		t.Errorf("unexpected slot defaults %+v", s)
	}
	if !closeTo(s.Timing.PixelClock, 148.5) {
		t.Errorf("expected the clock from the totals, got %v", s.Timing.PixelClock)
	}
	if st.Link != (models.LinkConfig{Rate: 8.1, Lanes: 2, Coding: models.Coding8b10b}) {
		t.Errorf("unexpected link %+v", st.Link)
	}
	if st.PresetID != models.PresetCustom {
		t.Errorf("expected custom preset, got %s", st.PresetID)
	}
}

func TestImportLenientScalars(t *testing.T) {
	in := `{
		"timings": [{"id": 7, "label": 5, "useDsc": "true", "calcOpen": 1, "cvtKind": 2, "colorFormat": ["rgb"]}],
		"transport": {"coding": 8},
		"presetId": 3
	}`
	st, err := Import([]byte(in), aggregate.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	s := st.Slots[0]
	if s.ID != "7" || s.Label != "5" || !s.Compression.Active || !s.CalcOpen {
		t.Errorf("unexpected slot %+v", s)
	}
	if s.Timing.Profile != models.ProfileManual || s.Color.Format != models.ColorRGB {
		t.Errorf("expected defaults, got %+v %+v", s.Timing, s.Color)
	}
	// An unknown preset id falls back to the preset matching the default link.
	if st.PresetID != "hbr3" || st.Link.Coding != models.Coding8b10b {
		t.Errorf("unexpected link %s %+v", st.PresetID, st.Link)
	}
}

func TestImportHighRefreshFallsBackToTotals(t *testing.T) {
	in := `{"timings": [{"h": 640, "v": 480, "hz": 5000, "cvtKind": "cvt",
		"hFront": 16, "hSync": 96, "hBack": 48, "vFront": 10, "vSync": 2, "vBack": 33}]}`
	st, err := Import([]byte(in), aggregate.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	// 800 x 525 x 5000 Hz
	if clock := st.Slots[0].Timing.PixelClock; !closeTo(clock, 2100) {
		t.Errorf("expected the clock from the totals, got %v", clock)
	}
	if r := st.Recompute(); r.TotalRequired <= 0 {
		t.Errorf("expected a positive rate, got %+v", r)
	}
}

func TestImportRegeneratesMissingClock(t *testing.T) {
	in := `{"timings": [{"h": 1920, "v": 1080, "hz": 60, "cvtKind": "cvt_rb"}], "presetId": "hbr3"}`
	st, err := Import([]byte(in), aggregate.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	if !closeTo(st.Slots[0].Timing.PixelClock, 138.5) {
		t.Errorf("expected a regenerated clock, got %+v", st.Slots[0].Timing)
	}
	if st.Link != (models.LinkConfig{Rate: 8.1, Lanes: 4, Coding: models.Coding8b10b}) {
		t.Errorf("unexpected link %+v", st.Link)
	}
}

func TestImportKeepsStoredClock(t *testing.T) {
	in := `{"timings": [{"h": 1920, "v": 1080, "hz": 60, "cvtKind": "cvt_rb", "pixelClock": 140}]}`
	st, err := Import([]byte(in), aggregate.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	if st.Slots[0].Timing.PixelClock != 140 {
		t.Errorf("expected the stored clock, got %v", st.Slots[0].Timing.PixelClock)
	}
}

func TestImportTruncates(t *testing.T) {
	in := `{"timings": [{}, {}, {}, {}, {}, {}], "transport": null}`
	st, err := Import([]byte(in), aggregate.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Slots) != models.MaxStreams {
		t.Errorf("expected %d slots, got %d", models.MaxStreams, len(st.Slots))
	}
	ids := map[string]bool{}
	for _, s := range st.Slots {
		ids[s.ID] = true
	}
	if len(ids) != models.MaxStreams {
		t.Errorf("expected distinct generated ids, got %v", ids)
	}
	if st.Link.Lanes != 4 {
		t.Errorf("expected default lanes, got %d", st.Link.Lanes)
	}
}
