package main

import (
	"fmt"
	"strings"
)

// FormatMoney formats a float as a currency string
func FormatMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if amount >= 1000000 {
		return fmt.Sprintf("%s€%.2fM", sign, amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("%s€%.0fk", sign, amount/1000)
	}
	return fmt.Sprintf("%s€%.0f", sign, amount)
}

// FormatMoneyFull formats a float as full currency (no abbreviation)
func FormatMoneyFull(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}

// FormatPercent formats a decimal rate as a percentage string
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// PrintHeader prints the calculation header
func PrintHeader(config *Config) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                   BUY vs RENT - NET WORTH COMPARISON                         ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("──────────────")

	p := config.Property
	fmt.Printf("  Property: %s purchase, %s down, %s refurbishment\n",
		FormatMoney(p.PurchasePrice), FormatMoney(p.DownPayment), FormatMoney(p.RefurbishCost))
	fmt.Printf("            Nebenkosten %s, maintenance %s/year, taxes %s/year\n",
		FormatPercent(p.TransactionCostRate),
		FormatPercent(p.MaintenanceRate),
		FormatMoney(p.PropertyTaxes))
	fmt.Printf("  Loan:     %s at %s\n",
		FormatMoney(p.PurchasePrice-p.DownPayment),
		FormatPercent(config.Market.LoanInterestRate))
	if config.Financing.PaymentGiven() {
		fmt.Printf("  Scenario: monthly payment %s given, term derived\n",
			FormatMoneyFull(config.Financing.MonthlyPayment))
	} else {
		fmt.Printf("  Scenario: %d-year term given, payment derived\n",
			config.Financing.LoanTermYears)
	}
	fmt.Printf("  Rent:     %s/month, inflating %s/year\n",
		FormatMoneyFull(p.InitialRent), FormatPercent(config.Market.RentInflationRate))
	fmt.Printf("  Rates:    appreciation %s | investment return %s (beyond inflation)\n",
		FormatPercent(config.Market.PropertyAppreciationRate),
		FormatPercent(config.Market.InvestmentReturnRate))
	fmt.Println()
}

// PrintAmortizationSummary prints the solved amortization scenario
func PrintAmortizationSummary(result AmortizationResult, config *Config) {
	fmt.Println("Amortization:")
	fmt.Println("─────────────")
	fmt.Printf("  Monthly Payment:   %s\n", FormatMoneyFull(result.MonthlyPayment))
	fmt.Printf("  Loan Term:         %.1f years (%d months)\n", result.TermYears(), result.TotalMonths)
	fmt.Printf("  Total Interest:    %s\n", FormatMoneyFull(result.TotalInterestPaid))
	fmt.Printf("  Initial Tilgung:   %s\n", FormatPercent(result.InitialRepaymentRate))
	if result.Capped {
		fmt.Println("  ⚠️  WARNING: payment barely covers interest; term capped, figures approximate")
	}
	fmt.Println()
}

// PrintTermSweep prints the term-to-payment curve as a table
func PrintTermSweep(points []TermPoint, chosen AmortizationResult, config *Config) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                      MONTHLY PAYMENT BY LOAN TERM                            ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()

	fmt.Printf("%-12s │ %15s │ %15s │ %15s\n",
		"Term", "Monthly Payment", "Total Interest", "Initial Tilgung")
	fmt.Println(strings.Repeat("─", 68))

	chosenYears := chosen.TermYears()
	for _, pt := range points {
		marker := "  "
		if float64(pt.TermYears) == chosenYears {
			marker = "→ "
		}
		fmt.Printf("%s%-10s │ %15s │ %15s │ %15s\n",
			marker,
			fmt.Sprintf("%d years", pt.TermYears),
			FormatMoneyFull(pt.MonthlyPayment),
			FormatMoney(pt.TotalInterestPaid),
			FormatPercent(pt.InitialRepaymentRate))
	}

	fmt.Println(strings.Repeat("─", 68))
	if chosenYears != float64(int(chosenYears)) {
		fmt.Printf("  Derived term %.1f years → payment %s (interpolated on the curve above)\n",
			chosenYears, FormatMoneyFull(InterpolateSweepPayment(points, chosenYears)))
	}
	fmt.Println()
}

// PrintComparison prints all three allocation policies side by side
func PrintComparison(results []ComparisonResult, config *Config) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                     ALLOCATION POLICY COMPARISON                             ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()

	// Header
	fmt.Printf("%-28s", "Metric")
	for _, r := range results {
		fmt.Printf(" │ %-16s", r.Policy.ShortName())
	}
	fmt.Println()
	fmt.Println(strings.Repeat("─", 28+len(results)*19))

	fmt.Printf("%-28s", "Final Net Worth (Buy)")
	for _, r := range results {
		fmt.Printf(" │ %-16s", FormatMoney(r.FinalBuyNetWorth()))
	}
	fmt.Println()

	fmt.Printf("%-28s", "Final Net Worth (Rent)")
	for _, r := range results {
		fmt.Printf(" │ %-16s", FormatMoney(r.FinalRentNetWorth()))
	}
	fmt.Println()

	fmt.Printf("%-28s", "Advantage")
	for _, r := range results {
		diff := r.FinalBuyNetWorth() - r.FinalRentNetWorth()
		label := fmt.Sprintf("Buy +%s", FormatMoney(diff))
		if diff < 0 {
			label = fmt.Sprintf("Rent +%s", FormatMoney(-diff))
		}
		fmt.Printf(" │ %-16s", label)
	}
	fmt.Println()

	fmt.Printf("%-28s", "Buy Overtakes Rent")
	for _, r := range results {
		status := "never"
		if m := r.CrossoverMonth(); m >= 0 {
			status = fmt.Sprintf("year %.1f", float64(m)/12)
		}
		fmt.Printf(" │ %-16s", status)
	}
	fmt.Println()

	fmt.Println(strings.Repeat("─", 28+len(results)*19))
	if len(results) > 0 {
		fmt.Printf("  Last Monthly Savings: %s (rent side, final month)\n",
			FormatMoneyFull(results[0].FinalMonthlySavings))
	}
	fmt.Println()
	fmt.Println("  Policies differ only in how the renter allocates savings:")
	for _, r := range results {
		fmt.Printf("    %-14s %s\n", r.Policy.ShortName()+":", r.Policy.DescriptiveName())
	}
	fmt.Println()
}

// PrintTrajectoryDetail prints the year-by-year net worth table for one policy
func PrintTrajectoryDetail(result ComparisonResult, config *Config) {
	fmt.Println()
	fmt.Printf("╔══════════════════════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║ Trajectory: %-64s ║\n", result.Policy.DescriptiveName())
	fmt.Printf("╚══════════════════════════════════════════════════════════════════════════════╝\n")
	fmt.Println()

	fmt.Printf("%-8s │ %14s │ %14s │ %14s\n", "Year", "Buy", "Rent", "Difference")
	fmt.Println(strings.Repeat("─", 58))

	crossover := result.CrossoverMonth()
	for i, pt := range result.Points {
		isKeyMonth := pt.Month%12 == 0 || i == len(result.Points)-1 ||
			pt.Month == crossover
		if !isKeyMonth {
			continue
		}
		marker := "  "
		if pt.Month == crossover {
			marker = "→ "
		}
		fmt.Printf("%s%-6.1f │ %14s │ %14s │ %14s\n",
			marker,
			float64(pt.Month)/12,
			FormatMoney(pt.BuyNetWorth),
			FormatMoney(pt.RentNetWorth),
			FormatMoney(pt.BuyNetWorth-pt.RentNetWorth))
	}
	fmt.Println(strings.Repeat("─", 58))
	fmt.Println()
}

// PrintSensitivity prints the sensitivity grid for one policy. Each cell
// shows which side wins and by how much.
func PrintSensitivity(analysis SensitivityAnalysis) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Printf("║ SENSITIVITY: %-63s ║\n", analysis.PolicyName)
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("  Rows: investment return | Columns: property appreciation")
	fmt.Println("  Cell: final advantage (positive = buying wins)")
	fmt.Println()

	fmt.Printf("%-10s", "")
	for _, app := range analysis.AppreciationRates {
		fmt.Printf(" │ %9s", FormatPercent(app))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("─", 10+len(analysis.AppreciationRates)*12))

	for i, ret := range analysis.InvestmentReturns {
		fmt.Printf("%-10s", FormatPercent(ret))
		for _, cell := range analysis.Cells[i] {
			fmt.Printf(" │ %9s", FormatMoney(-cell.Delta))
		}
		fmt.Println()
	}
	fmt.Println(strings.Repeat("─", 10+len(analysis.AppreciationRates)*12))
	fmt.Println()
}
