package models

import (
	"errors"
	"fmt"
	"reflect"

	validator "gopkg.in/validator.v2"
)

func isPositive(v interface{}, param string) error {
	st := reflect.ValueOf(v)
	switch st.Kind() {
	case reflect.Float32, reflect.Float64:
		if st.Float() > 0 {
			return nil
		}
	case reflect.Int, reflect.Int32, reflect.Int64:
		if st.Int() > 0 {
			return nil
		}
	default:
		return errors.New("is_positive only validates numbers")
	}
	return errors.New("value must be positive")
}

func isProfile(v interface{}, param string) error {
	st := reflect.ValueOf(v)
	if st.Kind() != reflect.String {
		return errors.New("is_profile only validates strings")
	}
	if Profile(st.String()).Valid() {
		return nil
	}
	return fmt.Errorf("value must be one of %v", Profiles)
}

func isGeneratedProfile(v interface{}, param string) error {
	st := reflect.ValueOf(v)
	if st.Kind() != reflect.String {
		return errors.New("is_generated_profile only validates strings")
	}
	if Profile(st.String()).Generated() {
		return nil
	}
	return fmt.Errorf("value must be one of %v", Profiles[1:])
}

func isBPC(v interface{}, param string) error {
	st := reflect.ValueOf(v)
	if st.Kind() != reflect.Int {
		return errors.New("is_bpc only validates ints")
	}
	if ValidBPC(int(st.Int())) {
		return nil
	}
	return fmt.Errorf("value must be one of %v", BitDepths)
}

func isColorFormat(v interface{}, param string) error {
	st := reflect.ValueOf(v)
	if st.Kind() != reflect.String {
		return errors.New("is_color_format only validates strings")
	}
	if ColorFormat(st.String()).Valid() {
		return nil
	}
	return fmt.Errorf("value must be one of %v", ColorFormats)
}

func isDSCRatio(v interface{}, param string) error {
	st := reflect.ValueOf(v)
	if st.Kind() != reflect.Float64 {
		return errors.New("is_dsc_ratio only validates floats")
	}
	if ValidDSCRatio(st.Float()) {
		return nil
	}
	return fmt.Errorf("value must be one of %v", DSCRatios)
}

func isLanes(v interface{}, param string) error {
	st := reflect.ValueOf(v)
	if st.Kind() != reflect.Int {
		return errors.New("is_lanes only validates ints")
	}
	if ValidLanes(int(st.Int())) {
		return nil
	}
	return fmt.Errorf("value must be one of %v", LaneCounts)
}

func isCoding(v interface{}, param string) error {
	st := reflect.ValueOf(v)
	if st.Kind() != reflect.String {
		return errors.New("is_coding only validates strings")
	}
	if Coding(st.String()).Valid() {
		return nil
	}
	return fmt.Errorf("value must be one of %q or %q", Coding8b10b, Coding128b132b)
}

func init() {
	validator.SetValidationFunc("is_positive", isPositive)
	validator.SetValidationFunc("is_profile", isProfile)
	validator.SetValidationFunc("is_generated_profile", isGeneratedProfile)
	validator.SetValidationFunc("is_bpc", isBPC)
	validator.SetValidationFunc("is_color_format", isColorFormat)
	validator.SetValidationFunc("is_dsc_ratio", isDSCRatio)
	validator.SetValidationFunc("is_lanes", isLanes)
	validator.SetValidationFunc("is_coding", isCoding)
}
