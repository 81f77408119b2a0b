package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// =============================================================================
// Percentage Preprocessing
// =============================================================================

func TestPreprocessPercentages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		name     string
	}{
		{"rate: 4%", "rate: 0.04", "whole percent"},
		{"rate: 1.5%", "rate: 0.015", "fractional percent"},
		{"rate: 0.2%", "rate: 0.002", "sub-percent"},
		{"rate: 0.04", "rate: 0.04", "decimal untouched"},
		{"rate: 100%", "rate: 1", "one hundred percent"},
		{"label: \"50% off\"", "label: \"50% off\"", "quoted text untouched"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := preprocessPercentages(tc.input)
			if got != tc.expected {
				t.Errorf("preprocess(%q): expected %q, got %q", tc.input, tc.expected, got)
			}
		})
	}
}

func TestPreprocessPercentages_MultiLine(t *testing.T) {
	input := "market:\n  loan_interest_rate: 4%\n  rent_inflation_rate: 0.2%\n"
	got := preprocessPercentages(input)
	if !strings.Contains(got, "loan_interest_rate: 0.04") {
		t.Errorf("4%% not converted: %q", got)
	}
	if !strings.Contains(got, "rent_inflation_rate: 0.002") {
		t.Errorf("0.2%% not converted: %q", got)
	}
}

// =============================================================================
// Embedded Defaults
// =============================================================================

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("failed to load embedded defaults: %v", err)
	}

	if config.Property.PurchasePrice != 400000 {
		t.Errorf("purchase price: expected 400000, got %.0f", config.Property.PurchasePrice)
	}
	if config.Property.DownPayment != 100000 {
		t.Errorf("down payment: expected 100000, got %.0f", config.Property.DownPayment)
	}
	if math.Abs(config.Market.LoanInterestRate-0.04) > 1e-9 {
		t.Errorf("loan rate: expected 0.04, got %v", config.Market.LoanInterestRate)
	}
	if math.Abs(config.Market.RentInflationRate-0.002) > 1e-9 {
		t.Errorf("rent inflation: expected 0.002, got %v", config.Market.RentInflationRate)
	}
	if config.Financing.SolveFor != "payment" {
		t.Errorf("solve_for: expected payment, got %q", config.Financing.SolveFor)
	}
	if config.Sweep.MinTermYears != 10 || config.Sweep.MaxTermYears != 40 {
		t.Errorf("sweep range: expected 10..40, got %d..%d",
			config.Sweep.MinTermYears, config.Sweep.MaxTermYears)
	}

	if issues := ValidateScenarioConfig(config); len(issues) > 0 {
		t.Errorf("embedded defaults fail validation: %v", issues)
	}
}

func TestApplyDefaults(t *testing.T) {
	var config Config
	config.ApplyDefaults()

	if config.Sweep.MinTermYears != 10 || config.Sweep.MaxTermYears != 40 {
		t.Errorf("sweep defaults: got %d..%d", config.Sweep.MinTermYears, config.Sweep.MaxTermYears)
	}
	if config.Limits.MaxScheduleMonths != DefaultMaxScheduleMonths {
		t.Errorf("schedule cap default: got %d", config.Limits.MaxScheduleMonths)
	}
	if config.Financing.SolveFor != "payment" {
		t.Errorf("solve_for default: got %q", config.Financing.SolveFor)
	}
	if config.Financing.LoanTermYears != 25 {
		t.Errorf("term default: got %d", config.Financing.LoanTermYears)
	}
	if config.Sensitivity.StepSize != 0.01 {
		t.Errorf("sensitivity step default: got %v", config.Sensitivity.StepSize)
	}
}

// =============================================================================
// Save / Load Round Trip
// =============================================================================

func TestSaveLoadRoundTrip(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	config.Property.PurchasePrice = 550000
	config.Market.LoanInterestRate = 0.037
	config.Financing.SolveFor = "term"
	config.Financing.MonthlyPayment = 2100

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Property.PurchasePrice != 550000 {
		t.Errorf("purchase price: expected 550000, got %.0f", loaded.Property.PurchasePrice)
	}
	if math.Abs(loaded.Market.LoanInterestRate-0.037) > 1e-9 {
		t.Errorf("loan rate: expected 0.037, got %v", loaded.Market.LoanInterestRate)
	}
	if !loaded.Financing.PaymentGiven() {
		t.Error("solve_for=term did not survive the round trip")
	}
	if loaded.Financing.MonthlyPayment != 2100 {
		t.Errorf("monthly payment: expected 2100, got %.0f", loaded.Financing.MonthlyPayment)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected IsNotExist error, got %v", err)
	}
}

func TestLoadConfig_PercentNotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
property:
  purchase_price: 400000
  down_payment: 100000
  transaction_cost_rate: 10%
  maintenance_rate: 1.5%
  initial_rent: 1000
market:
  loan_interest_rate: 4%
  investment_return_rate: 4%
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if math.Abs(config.Property.TransactionCostRate-0.10) > 1e-9 {
		t.Errorf("transaction cost: expected 0.10, got %v", config.Property.TransactionCostRate)
	}
	if math.Abs(config.Property.MaintenanceRate-0.015) > 1e-9 {
		t.Errorf("maintenance: expected 0.015, got %v", config.Property.MaintenanceRate)
	}
	if math.Abs(config.Market.LoanInterestRate-0.04) > 1e-9 {
		t.Errorf("loan rate: expected 0.04, got %v", config.Market.LoanInterestRate)
	}
}

// =============================================================================
// Scenario Validation
// =============================================================================

func TestValidateScenarioConfig(t *testing.T) {
	valid, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	if issues := ValidateScenarioConfig(valid); len(issues) > 0 {
		t.Fatalf("valid config rejected: %v", issues)
	}

	noPrice := *valid
	noPrice.Property.PurchasePrice = 0
	if issues := ValidateScenarioConfig(&noPrice); len(issues) == 0 {
		t.Error("zero purchase price accepted")
	}

	downTooBig := *valid
	downTooBig.Property.DownPayment = downTooBig.Property.PurchasePrice
	if issues := ValidateScenarioConfig(&downTooBig); len(issues) == 0 {
		t.Error("down payment equal to price accepted (loan would be zero)")
	}

	termNoPayment := *valid
	termNoPayment.Financing.SolveFor = "term"
	termNoPayment.Financing.MonthlyPayment = 0
	if issues := ValidateScenarioConfig(&termNoPayment); len(issues) == 0 {
		t.Error("solve_for=term without a payment accepted")
	}
}
