package main

import (
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{1234567, "€1.23M"},
		{1000000, "€1.00M"},
		{45000, "€45k"},
		{1583.51, "€2k"},
		{999, "€999"},
		{0, "€0"},
		{-45000, "-€45k"},
		{-1500000, "-€1.50M"},
	}

	for _, tc := range tests {
		if got := FormatMoney(tc.amount); got != tc.expected {
			t.Errorf("FormatMoney(%.2f): expected %q, got %q", tc.amount, tc.expected, got)
		}
	}
}

func TestFormatMoneyFull(t *testing.T) {
	if got := FormatMoneyFull(1583.509); got != "€1583.51" {
		t.Errorf("expected €1583.51, got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{0.04, "4.00%"},
		{0.015, "1.50%"},
		{0.002, "0.20%"},
		{0, "0.00%"},
	}

	for _, tc := range tests {
		if got := FormatPercent(tc.rate); got != tc.expected {
			t.Errorf("FormatPercent(%v): expected %q, got %q", tc.rate, tc.expected, got)
		}
	}
}

func TestAmortizationSummaryStrings(t *testing.T) {
	result := AmortizationResult{
		MonthlyPayment:       1583.51,
		TotalInterestPaid:    175052.49,
		TotalMonths:          300,
		InitialRepaymentRate: 0.0233,
	}

	given := result.Summary(false)
	if !strings.Contains(given, "Loan Term=25 years") || !strings.Contains(given, "€1583.51") {
		t.Errorf("term-given summary wrong: %q", given)
	}

	derived := result.Summary(true)
	if !strings.Contains(derived, "Loan Term ≈ 25.00 years") {
		t.Errorf("payment-given summary wrong: %q", derived)
	}

	tilgung := result.TilgungSummary()
	if !strings.Contains(tilgung, "2.33%") {
		t.Errorf("tilgung summary wrong: %q", tilgung)
	}
}
