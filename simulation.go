package main

import (
	"math"
)

// RunComparison simulates buying versus renting month by month over the
// loan term for one allocation policy and returns the full trajectory.
//
// Buy side: the buyer's net worth is property value (compounding at the
// appreciation rate) minus the outstanding mortgage balance minus the
// sunk upfront cost (Nebenkosten + refurbishment). The buyer's equity
// earns no separate investment return; the model treats buying as
// locking capital into the property.
//
// Rent side: the renter starts with the down payment split across a
// growth pool and a reserve pool per the policy, pays rent, and invests
// the monthly cash-flow difference between owning and renting into the
// growth pool. The contribution lands before the month's return is
// applied; the reserve pool compounds at its own rate and never
// receives contributions. A negative difference shrinks the growth
// pool.
func RunComparison(params ScenarioParameters, policy AllocationPolicy) ComparisonResult {
	loanAmount := params.LoanAmount()
	upfrontCost := params.UpfrontCost()
	monthlyLoanRate := params.LoanInterestRate / 12.0
	months := params.LoanTermYears * 12

	payment := AnnuityPayment(loanAmount, monthlyLoanRate, months)

	growthPool := params.DownPayment * policy.GrowthShare()
	reservePool := params.DownPayment * (1 - policy.GrowthShare())
	monthlyGrowthRate := params.InvestmentReturnRate / 12.0
	monthlyReserveRate := policy.ReserveRate(params.LoanInterestRate) / 12.0

	monthlyMaintenance := params.PurchasePrice * params.MaintenanceRate / 12.0
	monthlyTaxes := params.PropertyTaxes / 12.0

	result := ComparisonResult{
		Policy:         policy,
		Points:         make([]TrajectoryPoint, 0, months),
		MonthlyPayment: payment,
	}

	for month := 0; month < months; month++ {
		propertyValue := params.PurchasePrice * math.Pow(1+params.PropertyAppreciationRate/12.0, float64(month))
		buyingCost := payment + monthlyMaintenance + monthlyTaxes

		rent := params.InitialRent * math.Pow(1+params.RentInflationRate/12.0, float64(month))
		monthlySavings := buyingCost - rent
		result.FinalMonthlySavings = monthlySavings

		growthPool += monthlySavings
		growthReturn := growthPool * monthlyGrowthRate
		reserveReturn := reservePool * monthlyReserveRate
		growthPool += growthReturn
		reservePool += reserveReturn

		outstanding := OutstandingBalance(loanAmount, monthlyLoanRate, payment, month+1)
		equity := propertyValue - outstanding

		result.Points = append(result.Points, TrajectoryPoint{
			Month:        month,
			BuyNetWorth:  equity - upfrontCost,
			RentNetWorth: growthPool + reservePool,
		})
	}

	return result
}

// RunAllComparisons runs the three allocation policies against the same
// parameters. Each run is independent and pure, so the order carries no
// meaning beyond display.
func RunAllComparisons(params ScenarioParameters) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(AllPolicies))
	for _, policy := range AllPolicies {
		results = append(results, RunComparison(params, policy))
	}
	return results
}
