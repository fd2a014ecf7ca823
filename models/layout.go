package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Layout is the persisted and exported planner state.
type Layout struct {
	Timings   []TimingEntry  `json:"timings"`
	Transport TransportEntry `json:"transport"`
	PresetID  Text           `json:"presetId"`
}

// TimingEntry is one stream slot of a Layout.
type TimingEntry struct {
	ID          Text     `json:"id"`
	Label       Text     `json:"label"`
	PeakBw      Decimal  `json:"peakBw"`
	PeakBwDsc   Decimal  `json:"peakBwDsc"`
	UseDsc      Flag     `json:"useDsc"`
	CalcOpen    Flag     `json:"calcOpen"`
	ModeIndex   OptFloat `json:"modeIndex"`
	CvtKind     Text     `json:"cvtKind"`
	H           OptFloat `json:"h"`
	V           OptFloat `json:"v"`
	Hz          OptFloat `json:"hz"`
	HFront      OptFloat `json:"hFront"`
	HSync       OptFloat `json:"hSync"`
	HBack       OptFloat `json:"hBack"`
	VFront      OptFloat `json:"vFront"`
	VSync       OptFloat `json:"vSync"`
	VBack       OptFloat `json:"vBack"`
	Bpp         OptFloat `json:"bpp"`
	Bpc         OptFloat `json:"bpc"`
	ColorFormat Text     `json:"colorFormat"`
	DscRatio    OptFloat `json:"dscRatio"`
	PixelClock  OptFloat `json:"pixelClock"`
}

// TransportEntry is the link section of a Layout.
type TransportEntry struct {
	Rate   OptFloat `json:"rate"`
	Lanes  OptFloat `json:"lanes"`
	Coding Text     `json:"coding"`
	Eff    OptFloat `json:"eff"`
}

// OptFloat is a JSON number that may be missing or malformed. Numeric
// strings are accepted; anything else decodes as unset instead of failing.
type OptFloat struct {
	Value float64
	Valid bool
}

// Float returns a set OptFloat.
func Float(v float64) OptFloat {
	return OptFloat{Value: v, Valid: true}
}

// Int returns a set OptFloat holding n.
func Int(n int) OptFloat {
	return Float(float64(n))
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptFloat) UnmarshalJSON(b []byte) error {
	*o = parseOptFloat(b)
	return nil
}

// MarshalJSON implements json.Marshaler. Unset values encode as null.
func (o OptFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(o.Value, 'f', -1, 64)), nil
}

func parseOptFloat(b []byte) OptFloat {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return OptFloat{}
	}
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		return finite(v)
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return OptFloat{}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return OptFloat{}
	}
	return finite(v)
}

func finite(v float64) OptFloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return OptFloat{}
	}
	return Float(v)
}

// Text is a JSON string that tolerates other scalar types. Numbers and
// booleans keep their literal text; objects and arrays decode as empty.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var s string
	switch {
	case json.Unmarshal(b, &s) == nil:
		*t = Text(s)
	case len(b) > 0 && b[0] != '{' && b[0] != '[' && !bytes.Equal(b, []byte("null")):
		*t = Text(b)
	default:
		*t = ""
	}
	return nil
}

// Flag is a JSON boolean that tolerates "true"/"false" strings and numbers.
// Anything else decodes as false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = Flag(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, _ = strconv.ParseBool(strings.TrimSpace(s))
		*f = Flag(v)
		return nil
	}
	n := parseOptFloat(b)
	*f = Flag(n.Valid && n.Value != 0)
	return nil
}

// Decimal is an OptFloat that encodes as a fixed point string.
type Decimal struct {
	OptFloat
}

// decimalPlaces is the precision of exported rates.
const decimalPlaces = 3

// Dec returns a set Decimal.
func Dec(v float64) Decimal {
	return Decimal{Float(v)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	d.OptFloat = parseOptFloat(b)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Decimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte(`""`), nil
	}
	return json.Marshal(strconv.FormatFloat(d.Value, 'f', decimalPlaces, 64))
}
