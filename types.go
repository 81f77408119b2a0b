package main

import "fmt"

// AllocationPolicy describes how the renter's capital is split across
// return-bearing pools in the buy-vs-rent comparison
type AllocationPolicy int

const (
	PolicyOptimistic   AllocationPolicy = iota // Entire down payment invested at the market return
	PolicyBalanced                             // 1/4 invested, 3/4 in bank savings near the loan rate
	PolicyConservative                         // 1/8 invested, 7/8 in bank savings capped at 1%
)

// AllPolicies lists the three comparison models in display order
var AllPolicies = []AllocationPolicy{PolicyOptimistic, PolicyBalanced, PolicyConservative}

func (p AllocationPolicy) String() string {
	switch p {
	case PolicyOptimistic:
		return "Optimistic"
	case PolicyBalanced:
		return "Balanced"
	case PolicyConservative:
		return "Conservative"
	default:
		return "Unknown"
	}
}

func (p AllocationPolicy) ShortName() string {
	switch p {
	case PolicyOptimistic:
		return "AllETF"
	case PolicyBalanced:
		return "Quarter"
	case PolicyConservative:
		return "Eighth"
	default:
		return "Unknown"
	}
}

// DescriptiveName returns the long chart title used in reports
func (p AllocationPolicy) DescriptiveName() string {
	switch p {
	case PolicyOptimistic:
		return "Optimistic: entire down payment invested (e.g. ETFs) at the investment return rate"
	case PolicyBalanced:
		return "Balanced: 3/4 of down payment in bank savings (loan rate minus 2%), 1/4 invested"
	case PolicyConservative:
		return "Conservative: 7/8 of down payment in bank savings (1% or less), 1/8 invested"
	default:
		return "Unknown"
	}
}

// GrowthShare returns the fraction of the down payment placed in the
// growth (invested) pool; the remainder sits in the reserve pool
func (p AllocationPolicy) GrowthShare() float64 {
	switch p {
	case PolicyBalanced:
		return 1.0 / 4.0
	case PolicyConservative:
		return 1.0 / 8.0
	default:
		return 1.0
	}
}

// ReserveRate returns the annual return of the reserve pool given the
// loan interest rate. The reserve models bank savings, which track the
// lending rate minus a ~2% margin; the conservative model additionally
// caps the rate at 1%.
func (p AllocationPolicy) ReserveRate(loanRate float64) float64 {
	switch p {
	case PolicyBalanced:
		return max(loanRate-0.02, 0)
	case PolicyConservative:
		return max(min(loanRate-0.02, 0.01), 0)
	default:
		return 0
	}
}

// ScenarioParameters holds every economic assumption for one
// buy-vs-rent comparison run. All rates are annual decimal fractions,
// all amounts EUR. The caller (UI layer) validates; the engine assumes
// finite, well-formed values.
type ScenarioParameters struct {
	PurchasePrice            float64 // Property price
	DownPayment              float64 // Equity paid up front; loan = price - down payment
	RefurbishCost            float64 // One-off refurbishment spend at purchase
	TransactionCostRate      float64 // Nebenkosten: notary, transfer tax, agent (fraction of price)
	MaintenanceRate          float64 // Annual upkeep as fraction of price
	PropertyTaxes            float64 // Annual property tax (EUR)
	InitialRent              float64 // Monthly rent at month 0
	LoanInterestRate         float64 // Annual mortgage rate
	PropertyAppreciationRate float64 // Annual property value growth beyond inflation
	RentInflationRate        float64 // Annual rent growth beyond inflation
	InvestmentReturnRate     float64 // Annual return of the growth pool
	LoanTermYears            int     // Fixed term of the mortgage
}

// LoanAmount returns the financed principal
func (sp ScenarioParameters) LoanAmount() float64 {
	return sp.PurchasePrice - sp.DownPayment
}

// UpfrontCost returns the sunk purchase cost that never becomes equity
func (sp ScenarioParameters) UpfrontCost() float64 {
	return sp.PurchasePrice*sp.TransactionCostRate + sp.RefurbishCost
}

// AmortizationResult holds the outcome of one amortization solve
type AmortizationResult struct {
	MonthlyPayment    float64 `json:"monthly_payment"`
	TotalInterestPaid float64 `json:"total_interest_paid"`
	TotalMonths       int     `json:"total_months"`
	// InitialRepaymentRate is the "anfängliche Tilgung": the fraction of
	// the original principal repaid in the first year
	InitialRepaymentRate float64 `json:"initial_repayment_rate"`
	// Capped is true when the iterative term solve hit the schedule
	// safety cap, making TotalMonths an approximation
	Capped bool `json:"capped,omitempty"`
}

// TermYears returns the (possibly fractional) term in years
func (r AmortizationResult) TermYears() float64 {
	return float64(r.TotalMonths) / 12.0
}

// Summary returns the one-line result string shown by the UI
func (r AmortizationResult) Summary(paymentGiven bool) string {
	if paymentGiven {
		return fmt.Sprintf("For Monthly Payment=%s, Loan Term ≈ %.2f years. Total Interest Paid=%s",
			FormatMoneyFull(r.MonthlyPayment), r.TermYears(), FormatMoneyFull(r.TotalInterestPaid))
	}
	return fmt.Sprintf("For Loan Term=%.0f years, Monthly Payment ≈ %s. Total Interest Paid=%s",
		r.TermYears(), FormatMoneyFull(r.MonthlyPayment), FormatMoneyFull(r.TotalInterestPaid))
}

// TilgungSummary returns the repayment-rate line shown under the result
func (r AmortizationResult) TilgungSummary() string {
	return fmt.Sprintf("Initial Tilgung Rate: %.2f%% per year of original principal",
		r.InitialRepaymentRate*100)
}

// TermPoint is one sample of the term-to-payment sensitivity curve
type TermPoint struct {
	TermYears            int     `json:"term_years"`
	MonthlyPayment       float64 `json:"monthly_payment"`
	TotalInterestPaid    float64 `json:"total_interest_paid"`
	InitialRepaymentRate float64 `json:"initial_repayment_rate"`
}

// TrajectoryPoint is one month of a buy-vs-rent comparison
type TrajectoryPoint struct {
	Month        int     `json:"month"`
	BuyNetWorth  float64 `json:"buy_net_worth"`
	RentNetWorth float64 `json:"rent_net_worth"`
}

// ComparisonResult holds one full buy-vs-rent trajectory for a policy
type ComparisonResult struct {
	Policy         AllocationPolicy
	Points         []TrajectoryPoint
	MonthlyPayment float64 // Fixed mortgage payment used on the buy side
	// FinalMonthlySavings is the last month's buying-minus-renting cash
	// delta (the amount the renter invested that month)
	FinalMonthlySavings float64
}

// FinalBuyNetWorth returns the buy-side net worth at the end of the term
func (cr ComparisonResult) FinalBuyNetWorth() float64 {
	if len(cr.Points) == 0 {
		return 0
	}
	return cr.Points[len(cr.Points)-1].BuyNetWorth
}

// FinalRentNetWorth returns the rent-side net worth at the end of the term
func (cr ComparisonResult) FinalRentNetWorth() float64 {
	if len(cr.Points) == 0 {
		return 0
	}
	return cr.Points[len(cr.Points)-1].RentNetWorth
}

// CrossoverMonth returns the first month from which the buy side stays
// ahead of the rent side until the end of the term, or -1 if buying
// never ends up ahead
func (cr ComparisonResult) CrossoverMonth() int {
	crossover := -1
	for _, pt := range cr.Points {
		if pt.BuyNetWorth >= pt.RentNetWorth {
			if crossover < 0 {
				crossover = pt.Month
			}
		} else {
			crossover = -1
		}
	}
	return crossover
}
