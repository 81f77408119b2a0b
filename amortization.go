package main

import (
	"errors"
	"math"
)

// Errors returned by CalculateAmortization for invalid input. Both are
// caller mistakes; the solver itself has no failure modes beyond them.
var (
	ErrAmbiguousInput = errors.New("must provide exactly one of monthly_payment or loan_term")
	ErrPaymentTooLow  = errors.New("monthly payment too low to cover interest")
)

// DefaultMaxScheduleMonths bounds the iterative term solve. 1000 years
// is far beyond any amortizing loan; hitting the cap means the payment
// barely exceeds the accruing interest and the returned month count is
// an approximation rather than an exact root.
const DefaultMaxScheduleMonths = 12000

// AnnuityPayment returns the fixed monthly payment that fully amortizes
// principal over totalMonths at the given monthly rate. Zero-rate loans
// fall back to straight-line repayment.
func AnnuityPayment(principal, monthlyRate float64, totalMonths int) float64 {
	if totalMonths <= 0 || principal == 0 {
		return 0
	}
	if monthlyRate > 0 {
		return monthlyRate * principal / (1 - math.Pow(1+monthlyRate, -float64(totalMonths)))
	}
	return principal / float64(totalMonths)
}

// OutstandingBalance returns the principal still owed after
// monthsElapsed payments of the given fixed payment, via the
// future-value-of-annuity formula. The final months of a schedule can
// come out marginally negative from floating-point drift; callers that
// care clamp at zero.
func OutstandingBalance(principal, monthlyRate, payment float64, monthsElapsed int) float64 {
	n := float64(monthsElapsed)
	if monthlyRate > 0 {
		factor := math.Pow(1+monthlyRate, n)
		return principal*factor - payment*(factor-1)/monthlyRate
	}
	return principal - payment*n
}

// CalculateAmortization solves a fixed-rate mortgage for whichever of
// {monthly payment, term} the caller left nil, and derives the total
// interest over the schedule plus the initial repayment (Tilgung) rate.
//
// Exactly one of monthlyPayment and termYears must be non-nil.
// maxScheduleMonths caps the payment-given iteration; pass 0 for the
// default. The repayment-rate division assumes loanAmount is well away
// from zero; the UI guarantees price minus down payment is positive.
func CalculateAmortization(loanAmount, annualRate float64, monthlyPayment *float64, termYears *int, maxScheduleMonths int) (AmortizationResult, error) {
	if (monthlyPayment == nil) == (termYears == nil) {
		return AmortizationResult{}, ErrAmbiguousInput
	}
	if maxScheduleMonths <= 0 {
		maxScheduleMonths = DefaultMaxScheduleMonths
	}

	monthlyRate := annualRate / 12.0

	var payment float64
	var totalMonths int
	capped := false

	if termYears != nil {
		// Term known: closed-form annuity payment
		totalMonths = *termYears * 12
		payment = AnnuityPayment(loanAmount, monthlyRate, totalMonths)
	} else {
		// Payment known: walk the balance down month by month
		payment = *monthlyPayment
		balance := loanAmount
		for balance > 0 {
			totalMonths++
			interest := balance * monthlyRate
			principal := payment - interest
			if principal <= 0 {
				return AmortizationResult{}, ErrPaymentTooLow
			}
			balance -= principal
			if totalMonths > maxScheduleMonths {
				capped = true
				break
			}
		}
	}

	// Re-walk the full schedule to accumulate interest. The clamp keeps
	// the last month's drift from producing a negative residual.
	balance := loanAmount
	totalInterest := 0.0
	for m := 1; m <= totalMonths; m++ {
		interest := balance * monthlyRate
		totalInterest += interest
		balance -= payment - interest
		if balance < 0 {
			balance = 0
		}
	}

	firstMonthPrincipal := payment - loanAmount*monthlyRate

	return AmortizationResult{
		MonthlyPayment:       payment,
		TotalInterestPaid:    totalInterest,
		TotalMonths:          totalMonths,
		InitialRepaymentRate: firstMonthPrincipal * 12 / loanAmount,
		Capped:               capped,
	}, nil
}

// SolvePaymentForTerm is the term-known convenience wrapper
func SolvePaymentForTerm(loanAmount, annualRate float64, termYears int) (AmortizationResult, error) {
	return CalculateAmortization(loanAmount, annualRate, nil, &termYears, 0)
}

// SolveTermForPayment is the payment-known convenience wrapper
func SolveTermForPayment(loanAmount, annualRate, monthlyPayment float64) (AmortizationResult, error) {
	return CalculateAmortization(loanAmount, annualRate, &monthlyPayment, nil, 0)
}

// TermSweep computes the full amortization result for every whole-year
// term in [minYears, maxYears]. This feeds the payment-vs-term chart.
func TermSweep(loanAmount, annualRate float64, minYears, maxYears int) []TermPoint {
	if minYears < 1 {
		minYears = 1
	}
	if maxYears < minYears {
		maxYears = minYears
	}
	points := make([]TermPoint, 0, maxYears-minYears+1)
	for years := minYears; years <= maxYears; years++ {
		result, err := SolvePaymentForTerm(loanAmount, annualRate, years)
		if err != nil {
			continue
		}
		points = append(points, TermPoint{
			TermYears:            years,
			MonthlyPayment:       result.MonthlyPayment,
			TotalInterestPaid:    result.TotalInterestPaid,
			InitialRepaymentRate: result.InitialRepaymentRate,
		})
	}
	return points
}

// InterpolateSweepPayment linearly interpolates the sweep curve at a
// fractional term, used to place the derived-term marker when the user
// supplied a payment instead of a term. Terms outside the sweep range
// clamp to the nearest endpoint.
func InterpolateSweepPayment(points []TermPoint, termYears float64) float64 {
	if len(points) == 0 {
		return 0
	}
	if termYears <= float64(points[0].TermYears) {
		return points[0].MonthlyPayment
	}
	last := points[len(points)-1]
	if termYears >= float64(last.TermYears) {
		return last.MonthlyPayment
	}
	for i := 1; i < len(points); i++ {
		lo, hi := points[i-1], points[i]
		if termYears <= float64(hi.TermYears) {
			span := float64(hi.TermYears - lo.TermYears)
			frac := (termYears - float64(lo.TermYears)) / span
			return lo.MonthlyPayment + frac*(hi.MonthlyPayment-lo.MonthlyPayment)
		}
	}
	return last.MonthlyPayment
}
