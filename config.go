package main

import (
	_ "embed"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// MarketConfig holds the external economic assumptions. The loan rate
// tracks the central-bank marginal lending rate plus a 1.5-3% margin
// (see the Bundesbank reference in the UI); appreciation and rent
// inflation are rates beyond general inflation.
type MarketConfig struct {
	LoanInterestRate         float64 `yaml:"loan_interest_rate" json:"loan_interest_rate"`
	PropertyAppreciationRate float64 `yaml:"property_appreciation_rate" json:"property_appreciation_rate"`
	RentInflationRate        float64 `yaml:"rent_inflation_rate" json:"rent_inflation_rate"`
	InvestmentReturnRate     float64 `yaml:"investment_return_rate" json:"investment_return_rate"`
}

// PropertyConfig holds the parameters of the specific property and the
// renter's alternative
type PropertyConfig struct {
	PurchasePrice       float64 `yaml:"purchase_price" json:"purchase_price"`
	DownPayment         float64 `yaml:"down_payment" json:"down_payment"`
	RefurbishCost       float64 `yaml:"refurbish_cost" json:"refurbish_cost"`
	TransactionCostRate float64 `yaml:"transaction_cost_rate" json:"transaction_cost_rate"` // Nebenkosten: Notar, Grunderwerbsteuer, agent
	MaintenanceRate     float64 `yaml:"maintenance_rate" json:"maintenance_rate"`           // 1-2% of price per year is typical
	PropertyTaxes       float64 `yaml:"property_taxes" json:"property_taxes"`               // Annual
	InitialRent         float64 `yaml:"initial_rent" json:"initial_rent"`                   // Monthly
}

// FinancingConfig selects the amortization scenario: either the term is
// fixed and the payment derived, or the other way around
type FinancingConfig struct {
	SolveFor       string  `yaml:"solve_for" json:"solve_for"` // "payment" (term given) or "term" (payment given)
	LoanTermYears  int     `yaml:"loan_term_years" json:"loan_term_years"`
	MonthlyPayment float64 `yaml:"monthly_payment" json:"monthly_payment"`
}

// PaymentGiven returns true when the monthly payment is the known input
func (fc *FinancingConfig) PaymentGiven() bool {
	return fc.SolveFor == "term"
}

// SweepConfig bounds the term-to-payment curve
type SweepConfig struct {
	MinTermYears int `yaml:"min_term_years" json:"min_term_years"`
	MaxTermYears int `yaml:"max_term_years" json:"max_term_years"`
}

// LimitsConfig holds numeric safety limits
type LimitsConfig struct {
	// MaxScheduleMonths caps the payment-given term iteration
	// (default 12000 = 1000 years)
	MaxScheduleMonths int `yaml:"max_schedule_months" json:"max_schedule_months"`
}

// SensitivityConfig holds the rate ranges for the sensitivity grid
type SensitivityConfig struct {
	ReturnMin       float64 `yaml:"return_min" json:"return_min"`
	ReturnMax       float64 `yaml:"return_max" json:"return_max"`
	AppreciationMin float64 `yaml:"appreciation_min" json:"appreciation_min"`
	AppreciationMax float64 `yaml:"appreciation_max" json:"appreciation_max"`
	StepSize        float64 `yaml:"step_size" json:"step_size"`
}

// Config holds the complete configuration
type Config struct {
	Market      MarketConfig      `yaml:"market" json:"market"`
	Property    PropertyConfig    `yaml:"property" json:"property"`
	Financing   FinancingConfig   `yaml:"financing" json:"financing"`
	Sweep       SweepConfig       `yaml:"sweep" json:"sweep"`
	Limits      LimitsConfig      `yaml:"limits" json:"limits"`
	Sensitivity SensitivityConfig `yaml:"sensitivity" json:"sensitivity"`
}

// ScenarioParameters assembles the simulation input from the config
func (c *Config) ScenarioParameters() ScenarioParameters {
	return ScenarioParameters{
		PurchasePrice:            c.Property.PurchasePrice,
		DownPayment:              c.Property.DownPayment,
		RefurbishCost:            c.Property.RefurbishCost,
		TransactionCostRate:      c.Property.TransactionCostRate,
		MaintenanceRate:          c.Property.MaintenanceRate,
		PropertyTaxes:            c.Property.PropertyTaxes,
		InitialRent:              c.Property.InitialRent,
		LoanInterestRate:         c.Market.LoanInterestRate,
		PropertyAppreciationRate: c.Market.PropertyAppreciationRate,
		RentInflationRate:        c.Market.RentInflationRate,
		InvestmentReturnRate:     c.Market.InvestmentReturnRate,
		LoanTermYears:            c.Financing.LoanTermYears,
	}
}

// SolveAmortization runs the configured amortization scenario against
// the configured loan
func (c *Config) SolveAmortization() (AmortizationResult, error) {
	loanAmount := c.Property.PurchasePrice - c.Property.DownPayment
	if c.Financing.PaymentGiven() {
		return CalculateAmortization(loanAmount, c.Market.LoanInterestRate,
			&c.Financing.MonthlyPayment, nil, c.Limits.MaxScheduleMonths)
	}
	return CalculateAmortization(loanAmount, c.Market.LoanInterestRate,
		nil, &c.Financing.LoanTermYears, c.Limits.MaxScheduleMonths)
}

// ApplyDefaults fills zero-valued structural settings from the embedded
// defaults so a sparse user config still runs
func (c *Config) ApplyDefaults() {
	if c.Sweep.MinTermYears == 0 {
		c.Sweep.MinTermYears = 10
	}
	if c.Sweep.MaxTermYears == 0 {
		c.Sweep.MaxTermYears = 40
	}
	if c.Limits.MaxScheduleMonths == 0 {
		c.Limits.MaxScheduleMonths = DefaultMaxScheduleMonths
	}
	if c.Financing.SolveFor == "" {
		c.Financing.SolveFor = "payment"
	}
	if c.Financing.LoanTermYears == 0 {
		c.Financing.LoanTermYears = 25
	}
	if c.Sensitivity.StepSize == 0 {
		c.Sensitivity.StepSize = 0.01
	}
	if c.Sensitivity.ReturnMax == 0 {
		c.Sensitivity.ReturnMin = 0.02
		c.Sensitivity.ReturnMax = 0.08
	}
	if c.Sensitivity.AppreciationMax == 0 {
		c.Sensitivity.AppreciationMin = 0.0
		c.Sensitivity.AppreciationMax = 0.03
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal([]byte(preprocessPercentages(string(data))), &config)
	if err != nil {
		return nil, err
	}

	config.ApplyDefaults()
	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	// Header comment with usage instructions
	header := []byte(`# Buy-vs-Rent Calculator Configuration
# Generated from the last run - feel free to edit manually
#
# VALUE FORMATS
#   Rates: decimal fractions (0.04 = 4%) or percentages ("4%")
#   Money: EUR (e.g. 400000)
#
# FINANCING SCENARIO
#   financing.solve_for: "payment" derives the monthly payment from
#   loan_term_years; "term" derives the term from monthly_payment.
#
# RUN COMMANDS
#   ./immobilien                 Interactive calculator (GUI window)
#   ./immobilien -console        Console comparison
#   ./immobilien -web            Web UI in external browser
#   ./immobilien -ui             Embedded browser window
#   ./immobilien -html           Self-contained HTML report
#   ./immobilien -pdf            PDF report
#   ./immobilien -help           All options

`)
	content := append(header, data...)
	return os.WriteFile(filename, content, 0644)
}

// LoadDefaultConfig loads the embedded default configuration. It
// accepts percentage notation (e.g. "4%" -> 0.04).
func LoadDefaultConfig() (*Config, error) {
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	err := yaml.Unmarshal([]byte(content), &config)
	if err != nil {
		return nil, err
	}

	config.ApplyDefaults()
	return &config, nil
}

// preprocessPercentages converts percentage values like "4%" to decimal "0.04"
func preprocessPercentages(content string) string {
	re := regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) >= 3 {
			num, err := strconv.ParseFloat(parts[2], 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num/100.0, 'f', -1, 64)
			}
		}
		return match
	})
}
