package models

import (
	"testing"

	validator "gopkg.in/validator.v2"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		valid bool
	}{
		{"good link", LinkConfig{Rate: 8.1, Lanes: 4, Coding: Coding8b10b}, true},
		{"three lanes", LinkConfig{Rate: 8.1, Lanes: 3, Coding: Coding8b10b}, false},
		{"zero rate", LinkConfig{Rate: 0, Lanes: 4, Coding: Coding8b10b}, false},
		{"unknown coding", LinkConfig{Rate: 8.1, Lanes: 4, Coding: "9b11b"}, false},
		{"good color", ColorMode{BPC: 10, Format: ColorYUV422}, true},
		{"odd bpc", ColorMode{BPC: 9, Format: ColorRGB}, false},
		{"unknown format", ColorMode{BPC: 8, Format: "cmyk"}, false},
		{"good compression", CompressionSetting{Ratio: 2.4}, true},
		{"odd ratio", CompressionSetting{Ratio: 2}, false},
		{"good manual", ManualTiming{H: 1920, V: 1080, Hz: 60, HFront: 88, HSync: 44, HBack: 148, VFront: 4, VSync: 5, VBack: 36}, true},
		{"negative porch", ManualTiming{H: 1920, V: 1080, Hz: 60, HFront: -1}, false},
		{"zero refresh", ManualTiming{H: 1920, V: 1080}, false},
	}
	for _, tc := range tests {
		err := validator.Validate(tc.value)
		if tc.valid && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func TestProfileValidators(t *testing.T) {
	if isProfile("manual", "") != nil || isProfile("gtf", "") == nil {
		t.Error("unexpected is_profile result")
	}
	if isGeneratedProfile("cvt_rb", "") != nil || isGeneratedProfile("manual", "") == nil {
		t.Error("unexpected is_generated_profile result")
	}
	if isPositive("1", "") == nil {
		t.Error("expected is_positive to reject strings")
	}
}
