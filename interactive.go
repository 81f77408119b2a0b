package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// validatePercent checks if rate is a valid percentage (0-100% as decimal 0.0-1.0)
func validatePercent(rate float64, fieldName string) error {
	if rate < 0 || rate > 1.0 {
		return ValidationError{Field: fieldName, Message: fmt.Sprintf("Rate must be between 0%% and 100%% (got %.1f%%)", rate*100)}
	}
	return nil
}

// validateMoney checks if amount is non-negative and reasonable
func validateMoney(amount float64, fieldName string) error {
	if amount < 0 {
		return ValidationError{Field: fieldName, Message: "Amount cannot be negative"}
	}
	if amount > 100000000 { // 100 million
		return ValidationError{Field: fieldName, Message: "Amount seems too large. Please check the value"}
	}
	return nil
}

// validateTermYears checks the loan term is reasonable (1-100)
func validateTermYears(years int) error {
	if years < 1 || years > 100 {
		return ValidationError{Field: "loan_term_years", Message: fmt.Sprintf("Loan term must be between 1 and 100 years (got %d)", years)}
	}
	return nil
}

// parsePercentOrDecimal converts "5%" or "0.05" to 0.05
func parsePercentOrDecimal(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if strings.HasSuffix(input, "%") {
		numStr := strings.TrimSuffix(input, "%")
		num, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return 0, err
		}
		return num / 100.0, nil
	}
	return strconv.ParseFloat(input, 64)
}

// InteractiveConfigBuilder handles interactive configuration creation
type InteractiveConfigBuilder struct {
	reader        *bufio.Reader
	config        *Config
	defaultConfig *Config
}

// NewInteractiveConfigBuilder creates a new builder
func NewInteractiveConfigBuilder() *InteractiveConfigBuilder {
	builder := &InteractiveConfigBuilder{
		reader: bufio.NewReader(os.Stdin),
		config: &Config{},
	}

	// Try to load defaults from default-config.yaml
	defaultConfig, err := LoadDefaultConfig()
	if err == nil {
		builder.defaultConfig = defaultConfig
	}

	return builder
}

// promptString asks for a string with a default value
func (b *InteractiveConfigBuilder) promptString(prompt, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", prompt, defaultVal)
	} else {
		fmt.Printf("%s: ", prompt)
	}
	input, _ := b.reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}

// promptInt asks for an integer with a default value
func (b *InteractiveConfigBuilder) promptInt(prompt string, defaultVal int) int {
	fmt.Printf("%s [%d]: ", prompt, defaultVal)
	input, _ := b.reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil {
		fmt.Printf("  ✗ Invalid number, using default: %d\n", defaultVal)
		return defaultVal
	}
	return val
}

// promptTermYears asks for a loan term with validation (1-100)
func (b *InteractiveConfigBuilder) promptTermYears(prompt string, defaultVal int) int {
	for {
		fmt.Printf("%s [%d]: ", prompt, defaultVal)
		input, _ := b.reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return defaultVal
		}
		val, err := strconv.Atoi(input)
		if err != nil {
			fmt.Printf("  ✗ Invalid number. Please enter a whole number of years\n")
			continue
		}
		if err := validateTermYears(val); err != nil {
			fmt.Printf("  ✗ %s\n", err.Error())
			continue
		}
		return val
	}
}

// promptPercent asks for a rate (accepts "5%" or "0.05")
func (b *InteractiveConfigBuilder) promptPercent(prompt string, defaultVal float64) float64 {
	for {
		fmt.Printf("%s [%.1f%%]: ", prompt, defaultVal*100)
		input, _ := b.reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return defaultVal
		}
		val, err := parsePercentOrDecimal(input)
		if err != nil {
			fmt.Printf("  ✗ Invalid percentage. Enter as '4%%' or '0.04'\n")
			continue
		}
		if err := validatePercent(val, "rate"); err != nil {
			fmt.Printf("  ✗ %s\n", err.Error())
			continue
		}
		return val
	}
}

// promptMoney asks for a money amount with validation (accepts "100k" or "100000")
func (b *InteractiveConfigBuilder) promptMoney(prompt string, defaultVal float64) float64 {
	defaultStr := formatMoneyShort(defaultVal)
	for {
		fmt.Printf("%s [%s]: ", prompt, defaultStr)
		input, _ := b.reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "" {
			return defaultVal
		}
		// Handle k/m suffix
		multiplier := 1.0
		if strings.HasSuffix(input, "k") {
			multiplier = 1000
			input = strings.TrimSuffix(input, "k")
		} else if strings.HasSuffix(input, "m") {
			multiplier = 1000000
			input = strings.TrimSuffix(input, "m")
		}
		input = strings.TrimPrefix(input, "€")
		val, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Printf("  ✗ Invalid amount. Enter as '100k', '1.5m', or '100000'\n")
			continue
		}
		amount := val * multiplier
		if err := validateMoney(amount, "amount"); err != nil {
			fmt.Printf("  ✗ %s\n", err.Error())
			continue
		}
		return amount
	}
}

func formatMoneyShort(amount float64) string {
	if amount >= 1000000 {
		return fmt.Sprintf("€%.1fm", amount/1000000)
	} else if amount >= 1000 {
		return fmt.Sprintf("€%.0fk", amount/1000)
	}
	return fmt.Sprintf("€%.0f", amount)
}

// defaults returns the embedded default config, or a zero one
func (b *InteractiveConfigBuilder) defaults() *Config {
	if b.defaultConfig != nil {
		return b.defaultConfig
	}
	return &Config{}
}

// BuildScenarioConfig builds a full scenario config from prompts
func (b *InteractiveConfigBuilder) BuildScenarioConfig() *Config {
	d := b.defaults()

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║              BUY vs RENT - SCENARIO CONFIGURATION                            ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Press Enter to accept the default shown in brackets.")
	fmt.Println()

	fmt.Println("Property:")
	b.config.Property.PurchasePrice = b.promptMoney("  Purchase price", d.Property.PurchasePrice)
	b.config.Property.DownPayment = b.promptMoney("  Down payment", d.Property.DownPayment)
	b.config.Property.RefurbishCost = b.promptMoney("  Refurbishment cost", d.Property.RefurbishCost)
	b.config.Property.TransactionCostRate = b.promptPercent("  Nebenkosten (of price)", d.Property.TransactionCostRate)
	b.config.Property.MaintenanceRate = b.promptPercent("  Maintenance (of price, per year)", d.Property.MaintenanceRate)
	b.config.Property.PropertyTaxes = b.promptMoney("  Property taxes (per year)", d.Property.PropertyTaxes)
	b.config.Property.InitialRent = b.promptMoney("  Comparable rent (per month)", d.Property.InitialRent)

	fmt.Println()
	fmt.Println("Market rates (beyond general inflation):")
	b.config.Market.LoanInterestRate = b.promptPercent("  Loan interest rate", d.Market.LoanInterestRate)
	b.config.Market.PropertyAppreciationRate = b.promptPercent("  Property appreciation", d.Market.PropertyAppreciationRate)
	b.config.Market.RentInflationRate = b.promptPercent("  Rent inflation", d.Market.RentInflationRate)
	b.config.Market.InvestmentReturnRate = b.promptPercent("  Investment return", d.Market.InvestmentReturnRate)

	fmt.Println()
	fmt.Println("Financing scenario:")
	solveFor := b.promptString("  Solve for 'payment' (term given) or 'term' (payment given)", d.Financing.SolveFor)
	if solveFor != "term" {
		solveFor = "payment"
	}
	b.config.Financing.SolveFor = solveFor
	if solveFor == "term" {
		b.config.Financing.MonthlyPayment = b.promptMoney("  Monthly payment", d.Financing.MonthlyPayment)
	} else {
		b.config.Financing.LoanTermYears = b.promptTermYears("  Loan term (years)", d.Financing.LoanTermYears)
	}

	b.config.Sweep = d.Sweep
	b.config.Limits = d.Limits
	b.config.Sensitivity = d.Sensitivity
	b.config.ApplyDefaults()

	fmt.Println()
	return b.config
}

// SaveConfig saves the built configuration
func (b *InteractiveConfigBuilder) SaveConfig(filename string) error {
	return SaveConfig(b.config, filename)
}

// ValidateScenarioConfig checks if config has the fields a run needs
func ValidateScenarioConfig(config *Config) []string {
	var missing []string

	if config.Property.PurchasePrice <= 0 {
		missing = append(missing, "property.purchase_price")
	}
	if config.Property.DownPayment < 0 {
		missing = append(missing, "property.down_payment")
	}
	if config.Property.DownPayment >= config.Property.PurchasePrice && config.Property.PurchasePrice > 0 {
		missing = append(missing, "property.down_payment (must be below the purchase price)")
	}
	if config.Property.InitialRent <= 0 {
		missing = append(missing, "property.initial_rent")
	}
	if config.Market.LoanInterestRate < 0 {
		missing = append(missing, "market.loan_interest_rate")
	}

	switch config.Financing.SolveFor {
	case "term":
		if config.Financing.MonthlyPayment <= 0 {
			missing = append(missing, "financing.monthly_payment")
		}
	default:
		if config.Financing.LoanTermYears <= 0 {
			missing = append(missing, "financing.loan_term_years")
		}
	}

	return missing
}
