// Package layout converts between planner state and the JSON layout
// document used for saving, importing and exporting plans.
package layout

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/planner"
	"github.com/dchest/uniuri"
)

// StructureError reports a payload that is not a layout document. Nothing
// is imported when it is returned.
type StructureError struct {
	Reason string
	Err    error
}

func (e *StructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid layout: %s: %v", e.Reason, e.Err)
	}
	return "invalid layout: " + e.Reason
}

func structureErr(reason string, err error) error {
	return &StructureError{Reason: reason, Err: err}
}

// Decode parses and shape-checks a layout document. Malformed scalar
// fields are not errors; they are resolved to defaults by FromLayout.
func Decode(data []byte) (models.Layout, error) {
	var l models.Layout
	if err := checkShape(data); err != nil {
		return l, err
	}
	if err := json.Unmarshal(data, &l); err != nil {
		return l, structureErr("unexpected field type", err)
	}
	return l, nil
}

func checkShape(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return structureErr("expected a JSON object", err)
	}

	raw, ok := top["timings"]
	if !ok {
		return structureErr("missing timings", nil)
	}
	var timings []json.RawMessage
	if err := json.Unmarshal(raw, &timings); err != nil || timings == nil {
		return structureErr("timings must be an array", err)
	}
	for i, t := range timings {
		if !isObject(t) {
			return structureErr(fmt.Sprintf("timings[%d] must be an object", i), nil)
		}
	}

	if t, ok := top["transport"]; ok && !isNull(t) && !isObject(t) {
		return structureErr("transport must be an object", nil)
	}
	return nil
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// Import decodes data into a new state. On error no state is returned, so
// the caller's current state is left as it was.
func Import(data []byte, th aggregate.Thresholds) (*planner.State, error) {
	l, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return FromLayout(l, th), nil
}

// FromLayout builds a state from a decoded layout, resolving every missing
// or malformed field to its default. Entries past models.MaxStreams are
// dropped.
func FromLayout(l models.Layout, th aggregate.Thresholds) *planner.State {
	entries := l.Timings
	if len(entries) > models.MaxStreams {
		entries = entries[:models.MaxStreams]
	}

	st := &planner.State{
		Slots:      make([]*planner.Slot, 0, len(entries)),
		Link:       models.ResolveLink(l.Transport, string(l.PresetID)),
		PresetID:   string(l.PresetID),
		Thresholds: th,
	}
	if _, ok := models.PresetByID(st.PresetID); !ok {
		st.PresetID = planner.MatchPreset(st.Link)
	}

	for _, e := range entries {
		st.Slots = append(st.Slots, slotFromEntry(e))
	}
	return st
}

func slotFromEntry(e models.TimingEntry) *planner.Slot {
	s := &planner.Slot{
		ID:        string(e.ID),
		Label:     string(e.Label),
		ModeIndex: models.ResolveModeIndex(e.ModeIndex),
		CalcOpen:  bool(e.CalcOpen),
		Timing: models.TimingSpec{
			H:          models.ResolveCount(e.H),
			V:          models.ResolveCount(e.V),
			Hz:         models.ResolvePositive(e.Hz),
			Profile:    models.ResolveProfile(string(e.CvtKind)),
			HFront:     models.ResolveCount(e.HFront),
			HSync:      models.ResolveCount(e.HSync),
			HBack:      models.ResolveCount(e.HBack),
			VFront:     models.ResolveCount(e.VFront),
			VSync:      models.ResolveCount(e.VSync),
			VBack:      models.ResolveCount(e.VBack),
			PixelClock: models.ResolvePositive(e.PixelClock),
		},
		Color: models.ColorMode{
			BPC:    models.ResolveBPC(e.Bpc),
			Format: models.ResolveColorFormat(string(e.ColorFormat)),
		},
		Compression: models.CompressionSetting{
			Ratio:  models.ResolveDSCRatio(e.DscRatio),
			Active: bool(e.UseDsc),
		},
	}
	if s.ID == "" {
		s.ID = uniuri.NewLen(12)
	}

	// A stored clock is kept as is. Without one, derive it the way the
	// slot's profile would have.
	if s.Timing.PixelClock == 0 && s.Timing.HasActive() {
		if !s.Timing.Profile.Generated() || s.Regenerate() != nil {
			s.Timing.PixelClock = s.Timing.TotalsPixelClock()
		}
	}
	s.Refresh()
	return s
}

// ToLayout exports st. Rates are taken from the slots as last refreshed.
func ToLayout(st *planner.State) models.Layout {
	l := models.Layout{
		Timings: make([]models.TimingEntry, 0, len(st.Slots)),
		Transport: models.TransportEntry{
			Rate:   models.Float(st.Link.Rate),
			Lanes:  models.Int(st.Link.Lanes),
			Coding: models.Text(st.Link.Coding),
			Eff:    models.Float(st.Link.Efficiency()),
		},
		PresetID: models.Text(st.PresetID),
	}
	for _, s := range st.Slots {
		l.Timings = append(l.Timings, entryFromSlot(s))
	}
	return l
}

func entryFromSlot(s *planner.Slot) models.TimingEntry {
	t := s.Timing
	return models.TimingEntry{
		ID:          models.Text(s.ID),
		Label:       models.Text(s.Label),
		PeakBw:      models.Dec(s.Rate.Raw),
		PeakBwDsc:   models.Dec(s.Rate.Compressed),
		UseDsc:      models.Flag(s.Compression.Active),
		CalcOpen:    models.Flag(s.CalcOpen),
		ModeIndex:   models.Int(s.ModeIndex),
		CvtKind:     models.Text(t.Profile),
		H:           optCount(t.H),
		V:           optCount(t.V),
		Hz:          optPositive(t.Hz),
		HFront:      models.Int(t.HFront),
		HSync:       models.Int(t.HSync),
		HBack:       models.Int(t.HBack),
		VFront:      models.Int(t.VFront),
		VSync:       models.Int(t.VSync),
		VBack:       models.Int(t.VBack),
		Bpp:         models.Float(s.Rate.BitsPerPixel),
		Bpc:         models.Int(s.Color.BPC),
		ColorFormat: models.Text(s.Color.Format),
		DscRatio:    models.Float(s.Compression.Ratio),
		PixelClock:  optPositive(t.PixelClock),
	}
}

func optCount(n int) models.OptFloat {
	if n <= 0 {
		return models.OptFloat{}
	}
	return models.Int(n)
}

func optPositive(v float64) models.OptFloat {
	if v <= 0 {
		return models.OptFloat{}
	}
	return models.Float(v)
}

// Export encodes st as a layout document.
func Export(st *planner.State) ([]byte, error) {
	return json.Marshal(ToLayout(st))
}
