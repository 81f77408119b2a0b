package main

import (
	"math"
	"testing"
)

func TestParsePercentOrDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"4%", 0.04},
		{"1.5%", 0.015},
		{"0.04", 0.04},
		{" 10% ", 0.10},
		{"0", 0},
	}

	for _, tc := range tests {
		got, err := parsePercentOrDecimal(tc.input)
		if err != nil {
			t.Errorf("parse(%q): unexpected error %v", tc.input, err)
			continue
		}
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("parse(%q): expected %v, got %v", tc.input, tc.expected, got)
		}
	}

	if _, err := parsePercentOrDecimal("abc%"); err == nil {
		t.Error("expected error for non-numeric percent")
	}
}

func TestValidateTermYears(t *testing.T) {
	if err := validateTermYears(25); err != nil {
		t.Errorf("25 years rejected: %v", err)
	}
	if err := validateTermYears(0); err == nil {
		t.Error("0 years accepted")
	}
	if err := validateTermYears(101); err == nil {
		t.Error("101 years accepted")
	}
}

func TestValidatePercent(t *testing.T) {
	if err := validatePercent(0.04, "rate"); err != nil {
		t.Errorf("4%% rejected: %v", err)
	}
	if err := validatePercent(1.5, "rate"); err == nil {
		t.Error("150% accepted")
	}
	if err := validatePercent(-0.01, "rate"); err == nil {
		t.Error("negative rate accepted")
	}
}
