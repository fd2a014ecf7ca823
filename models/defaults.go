package models

import "math"

// Defaults applied when a field is missing or cannot be parsed. These are
// the only fallbacks; import and manual entry both resolve through the
// functions below.
const (
	DefaultBPC         = 8
	DefaultColorFormat = ColorRGB
	DefaultDSCRatio    = 3.0
	DefaultProfile     = ProfileManual
	DefaultRate        = 8.1

	// codingSwitchRate is the per-lane rate from which 128b/132b is
	// assumed when a link's coding is missing.
	codingSwitchRate = 10.0
)

// ResolveBPC returns v if it is a supported bit depth, else DefaultBPC.
func ResolveBPC(v OptFloat) int {
	if v.Valid && v.Value == math.Trunc(v.Value) && ValidBPC(int(v.Value)) {
		return int(v.Value)
	}
	return DefaultBPC
}

// ResolveColorFormat returns f if known, else DefaultColorFormat.
func ResolveColorFormat(f string) ColorFormat {
	if cf := ColorFormat(f); cf.Valid() {
		return cf
	}
	return DefaultColorFormat
}

// ResolveDSCRatio returns v if it is a supported ratio, else DefaultDSCRatio.
func ResolveDSCRatio(v OptFloat) float64 {
	if v.Valid && ValidDSCRatio(v.Value) {
		return v.Value
	}
	return DefaultDSCRatio
}

// ResolveProfile returns p if known, else DefaultProfile.
func ResolveProfile(p string) Profile {
	if pr := Profile(p); pr.Valid() {
		return pr
	}
	return DefaultProfile
}

// ResolveLanes clamps v to the largest supported lane count not above it.
// A missing or malformed value resolves to the largest lane count.
func ResolveLanes(v OptFloat) int {
	largest := LaneCounts[len(LaneCounts)-1]
	if !v.Valid {
		return largest
	}
	lanes := LaneCounts[0]
	for _, l := range LaneCounts {
		if float64(l) <= v.Value {
			lanes = l
		}
	}
	return lanes
}

// ResolveCoding returns c if known, else a coding inferred from the
// per-lane rate.
func ResolveCoding(c string, rate float64) Coding {
	if cd := Coding(c); cd.Valid() {
		return cd
	}
	if rate >= codingSwitchRate {
		return Coding128b132b
	}
	return Coding8b10b
}

// ResolveRate returns v if positive, else the rate of presetID, else
// DefaultRate.
func ResolveRate(v OptFloat, presetID string) float64 {
	if v.Valid && v.Value > 0 {
		return v.Value
	}
	if p, ok := PresetByID(presetID); ok && p.Rate > 0 {
		return p.Rate
	}
	return DefaultRate
}

// ResolveModeIndex returns v if it indexes VideoModes, else NoMode.
func ResolveModeIndex(v OptFloat) int {
	if !v.Valid || v.Value != math.Trunc(v.Value) {
		return NoMode
	}
	if _, ok := ModeByIndex(int(v.Value)); !ok {
		return NoMode
	}
	return int(v.Value)
}

// ResolveCount returns v rounded to a non-negative integer, 0 when unset.
func ResolveCount(v OptFloat) int {
	if !v.Valid || v.Value < 0 {
		return 0
	}
	return int(math.Round(v.Value))
}

// ResolvePositive returns v when positive, 0 (unset) otherwise.
func ResolvePositive(v OptFloat) float64 {
	if !v.Valid || v.Value <= 0 {
		return 0
	}
	return v.Value
}

// ResolveLink builds a LinkConfig from a layout's transport section. Missing
// rate and coding fall back to the preset before the global defaults.
func ResolveLink(t TransportEntry, presetID string) LinkConfig {
	rate := ResolveRate(t.Rate, presetID)
	coding := string(t.Coding)
	if p, ok := PresetByID(presetID); ok && !Coding(coding).Valid() && p.Coding.Valid() {
		coding = string(p.Coding)
	}
	return LinkConfig{
		Rate:   rate,
		Lanes:  ResolveLanes(t.Lanes),
		Coding: ResolveCoding(coding, rate),
	}
}
