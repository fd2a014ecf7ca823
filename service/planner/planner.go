// Package planner holds the editable state of a link plan: up to four stream
// slots and one link. Every mutation eagerly refreshes the rates it affects;
// Recompute produces the aggregate report for the current state.
//
// A State is owned by its caller and is not safe for concurrent use. There
// is no package level state, so independent sessions each build their own.
package planner

import (
	"errors"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/bandwidth"
	"github.com/ReconfigureIO/linkbudget/service/timing"
	"github.com/dchest/uniuri"
	validator "gopkg.in/validator.v2"
)

const slotIDLen = 12

var (
	// ErrTooManySlots is returned when adding past models.MaxStreams.
	ErrTooManySlots = errors.New("layout already holds the maximum number of streams")
	// ErrNoSlot is returned for an unknown slot id.
	ErrNoSlot = errors.New("no such stream slot")
	// ErrUnknownMode is returned for a mode index outside models.VideoModes.
	ErrUnknownMode = errors.New("unknown video mode")
	// ErrUnknownProfile is returned for a profile outside models.Profiles.
	ErrUnknownProfile = errors.New("unknown timing profile")
	// ErrUnknownPreset is returned for a preset id outside models.LinkPresets.
	ErrUnknownPreset = errors.New("unknown link preset")
)

// Slot is one stream of the plan.
type Slot struct {
	ID          string                    `json:"id"`
	Label       string                    `json:"label"`
	ModeIndex   int                       `json:"mode_index"`
	CalcOpen    bool                      `json:"calc_open"`
	Timing      models.TimingSpec         `json:"timing"`
	Color       models.ColorMode          `json:"color"`
	Compression models.CompressionSetting `json:"compression"`
	Rate        bandwidth.StreamRate      `json:"rate"`
}

// NewSlot returns an empty manual slot with default color and compression.
func NewSlot(label string) *Slot {
	s := &Slot{
		ID:          uniuri.NewLen(slotIDLen),
		Label:       label,
		ModeIndex:   models.NoMode,
		Timing:      models.TimingSpec{Profile: models.DefaultProfile},
		Color:       models.ColorMode{BPC: models.DefaultBPC, Format: models.DefaultColorFormat},
		Compression: models.CompressionSetting{Ratio: models.DefaultDSCRatio},
	}
	s.Refresh()
	return s
}

// Refresh recomputes the slot's rates from its timing, color and
// compression.
func (s *Slot) Refresh() {
	s.Rate = bandwidth.ForStream(s.Timing, s.Color, s.Compression)
}

// Regenerate replaces the blanking with the generator's output for the
// slot's current profile.
func (s *Slot) Regenerate() error {
	d, err := timing.Generate(timing.Params{
		H:       s.Timing.H,
		V:       s.Timing.V,
		Hz:      s.Timing.Hz,
		Profile: s.Timing.Profile,
	})
	if err != nil {
		return err
	}
	d.Apply(&s.Timing)
	return nil
}

// Stream returns the slot's contribution to the aggregate.
func (s *Slot) Stream() aggregate.Stream {
	return aggregate.Stream{ID: s.ID, Label: s.Label, Rate: s.Rate.Selected}
}

// State is a complete plan.
type State struct {
	Slots      []*Slot              `json:"slots"`
	Link       models.LinkConfig    `json:"link"`
	PresetID   string               `json:"preset_id"`
	Thresholds aggregate.Thresholds `json:"-"`
}

// New returns an empty plan on the default preset.
func New(th aggregate.Thresholds) *State {
	p, _ := models.PresetByID(models.DefaultPresetID)
	return &State{
		Link:       p.Config(),
		PresetID:   p.ID,
		Thresholds: th,
	}
}

// AddSlot appends a new empty slot.
func (st *State) AddSlot(label string) (*Slot, error) {
	if len(st.Slots) >= models.MaxStreams {
		return nil, ErrTooManySlots
	}
	s := NewSlot(label)
	st.Slots = append(st.Slots, s)
	return s, nil
}

// RemoveSlot discards the slot with id.
func (st *State) RemoveSlot(id string) error {
	for i, s := range st.Slots {
		if s.ID == id {
			st.Slots = append(st.Slots[:i], st.Slots[i+1:]...)
			return nil
		}
	}
	return ErrNoSlot
}

// Slot returns the slot with id.
func (st *State) Slot(id string) (*Slot, error) {
	for _, s := range st.Slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrNoSlot
}

// SelectMode sets the slot's active resolution and refresh from the mode
// table. Generated profiles regenerate; a manual slot gets the mode's
// reference blanking, or reduced blanking as a starting point when the
// mode has none.
func (st *State) SelectMode(id string, index int) error {
	s, err := st.Slot(id)
	if err != nil {
		return err
	}
	mode, ok := models.ModeByIndex(index)
	if !ok {
		return ErrUnknownMode
	}

	next := *s
	next.ModeIndex = index
	next.Timing.H, next.Timing.V, next.Timing.Hz = mode.H, mode.V, mode.Hz

	switch {
	case next.Timing.Profile.Generated():
		err = next.Regenerate()
	case mode.Reference != nil:
		next.Timing = mode.Reference.Spec()
	default:
		next.Timing.Profile = models.ProfileCVTRB
		err = next.Regenerate()
		next.Timing.Profile = models.ProfileManual
	}
	if err != nil {
		return err
	}
	next.Refresh()
	*s = next
	return nil
}

// SetProfile switches the slot's profile. Generated profiles regenerate
// from the slot's active resolution when it has one; manual keeps the
// current totals for hand editing.
func (st *State) SetProfile(id string, p models.Profile) error {
	s, err := st.Slot(id)
	if err != nil {
		return err
	}
	if !p.Valid() {
		return ErrUnknownProfile
	}

	next := *s
	next.Timing.Profile = p
	if p.Generated() && next.Timing.HasActive() {
		if err := next.Regenerate(); err != nil {
			return err
		}
	}
	next.Refresh()
	*s = next
	return nil
}

// EditTiming replaces the slot's timing with a hand-entered one and
// switches it to manual. The pixel clock is recomputed from the totals.
func (st *State) EditTiming(id string, m models.ManualTiming) error {
	s, err := st.Slot(id)
	if err != nil {
		return err
	}
	if err := validator.Validate(m); err != nil {
		return err
	}

	s.Timing = m.Spec()
	if mode, ok := models.ModeByIndex(s.ModeIndex); !ok || mode.H != m.H || mode.V != m.V || mode.Hz != m.Hz {
		s.ModeIndex = models.NoMode
	}
	s.Refresh()
	return nil
}

// SetColor changes the slot's color encoding.
func (st *State) SetColor(id string, c models.ColorMode) error {
	s, err := st.Slot(id)
	if err != nil {
		return err
	}
	if err := validator.Validate(c); err != nil {
		return err
	}
	s.Color = c
	s.Refresh()
	return nil
}

// SetCompression changes the slot's compression setting.
func (st *State) SetCompression(id string, c models.CompressionSetting) error {
	s, err := st.Slot(id)
	if err != nil {
		return err
	}
	if err := validator.Validate(c); err != nil {
		return err
	}
	s.Compression = c
	s.Refresh()
	return nil
}

// SelectPreset replaces the link with a preset. The custom preset keeps the
// current link values.
func (st *State) SelectPreset(id string) error {
	p, ok := models.PresetByID(id)
	if !ok {
		return ErrUnknownPreset
	}
	st.PresetID = p.ID
	if p.ID != models.PresetCustom {
		st.Link = p.Config()
	}
	return nil
}

// SetLink replaces the link with hand-entered values. The preset follows
// the link: it is the matching preset, or custom.
func (st *State) SetLink(l models.LinkConfig) error {
	if err := validator.Validate(l); err != nil {
		return err
	}
	st.Link = l
	st.PresetID = MatchPreset(l)
	return nil
}

// MatchPreset returns the id of the preset equal to l, or custom.
func MatchPreset(l models.LinkConfig) string {
	for _, p := range models.LinkPresets {
		if p.ID != models.PresetCustom && p.Config() == l {
			return p.ID
		}
	}
	return models.PresetCustom
}

// Capacity returns the link's capacity.
func (st *State) Capacity() bandwidth.Capacity {
	return bandwidth.PayloadCapacity(st.Link)
}

// Streams returns the selected rate of every slot, in slot order.
func (st *State) Streams() []aggregate.Stream {
	streams := make([]aggregate.Stream, 0, len(st.Slots))
	for _, s := range st.Slots {
		streams = append(streams, s.Stream())
	}
	return streams
}

// Recompute refreshes every slot's rates and returns the aggregate report.
func (st *State) Recompute() aggregate.Report {
	for _, s := range st.Slots {
		s.Refresh()
	}
	return aggregate.Aggregate(st.Streams(), st.Capacity().Payload, st.Thresholds)
}
