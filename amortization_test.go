package main

import (
	"math"
	"testing"
)

// Amortization Solver Validation Tests
//
// These tests validate the annuity calculations against the standard
// closed-form formulas.
//
// Monthly Payment:
//   M = P × r / (1 - (1+r)^-n)
//   Where:
//     M = Monthly payment
//     P = Principal (loan amount)
//     r = Monthly interest rate (annual rate / 12)
//     n = Total number of payments (years × 12)
//
// Outstanding Balance after p payments:
//   B = P(1+r)^p - M × [(1+r)^p - 1] / r

const paymentTolerance = 0.50 // €0.50 tolerance for rounding

func assertMoneyEquals(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > paymentTolerance {
		t.Errorf("%s: expected €%.2f, got €%.2f (diff: €%.2f)",
			description, expected, actual, actual-expected)
	}
}

// =============================================================================
// Payment From Term (closed form)
// =============================================================================

func TestAmortization_PaymentFromTerm(t *testing.T) {
	tests := []struct {
		principal       float64
		interestRate    float64
		termYears       int
		expectedMonthly float64
		description     string
	}{
		{
			principal:       300000,
			interestRate:    0.04,
			termYears:       30,
			expectedMonthly: 1432.25,
			description:     "€300k @ 4% for 30 years",
			// M = 300000 × 0.0033333 / (1 - 1.0033333^-360)
			// M = 1000 / 0.698205 = 1432.25
		},
		{
			principal:       200000,
			interestRate:    0.04,
			termYears:       25,
			expectedMonthly: 1055.67,
			description:     "€200k @ 4% for 25 years",
		},
		{
			principal:       300000,
			interestRate:    0.05,
			termYears:       30,
			expectedMonthly: 1610.46,
			description:     "€300k @ 5% for 30 years",
		},
		{
			principal:       100000,
			interestRate:    0.00,
			termYears:       10,
			expectedMonthly: 833.33,
			description:     "€100k @ 0% for 10 years (interest-free)",
			// Straight line: 100000 / 120 = 833.33
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			result, err := SolvePaymentForTerm(tc.principal, tc.interestRate, tc.termYears)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertMoneyEquals(t, tc.expectedMonthly, result.MonthlyPayment, tc.description)
			if result.TotalMonths != tc.termYears*12 {
				t.Errorf("%s: expected %d months, got %d",
					tc.description, tc.termYears*12, result.TotalMonths)
			}
			if result.Capped {
				t.Errorf("%s: term-given solve must never cap", tc.description)
			}
		})
	}
}

func TestAmortization_TotalInterest(t *testing.T) {
	// Total interest = payment × months - principal
	result, err := SolvePaymentForTerm(300000, 0.04, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := result.MonthlyPayment*360 - 300000
	if math.Abs(result.TotalInterestPaid-expected) > 5.0 {
		t.Errorf("total interest: expected €%.2f, got €%.2f", expected, result.TotalInterestPaid)
	}
	// Sanity against the published figure for this loan
	if math.Abs(result.TotalInterestPaid-215609) > 50 {
		t.Errorf("total interest: expected ≈€215,609, got €%.2f", result.TotalInterestPaid)
	}
}

func TestAmortization_ZeroRateNoInterest(t *testing.T) {
	result, err := SolvePaymentForTerm(120000, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalInterestPaid != 0 {
		t.Errorf("0%% loan accrued interest: €%.2f", result.TotalInterestPaid)
	}
	assertMoneyEquals(t, 1000, result.MonthlyPayment, "€120k @ 0% for 10 years")
}

func TestAmortization_InitialRepaymentRate(t *testing.T) {
	// First month principal = payment - loan × monthly rate, annualized
	// against the loan. €300k @ 4% / 30y: (1432.25 - 1000) × 12 / 300000 = 1.73%
	result, err := SolvePaymentForTerm(300000, 0.04, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(result.InitialRepaymentRate-0.0173) > 0.0002 {
		t.Errorf("initial repayment rate: expected ≈1.73%%, got %.4f", result.InitialRepaymentRate)
	}
}

// =============================================================================
// Term From Payment (iterative)
// =============================================================================

func TestAmortization_TermFromPayment(t *testing.T) {
	// Feed the closed-form payment back in; the walk must land on the
	// same term within a month of rounding.
	forward, err := SolvePaymentForTerm(300000, 0.04, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backward, err := SolveTermForPayment(300000, 0.04, forward.MonthlyPayment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := backward.TotalMonths - 300; diff < -1 || diff > 1 {
		t.Errorf("round trip: expected ≈300 months, got %d", backward.TotalMonths)
	}
	if backward.Capped {
		t.Error("round trip must not hit the schedule cap")
	}
}

func TestAmortization_TermFromPaymentZeroRate(t *testing.T) {
	result, err := SolveTermForPayment(120000, 0, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalMonths != 120 {
		t.Errorf("expected 120 months, got %d", result.TotalMonths)
	}
}

func TestAmortization_PaymentTooLow(t *testing.T) {
	// €300k @ 4% accrues €1000 interest in month one; €900 never amortizes
	_, err := SolveTermForPayment(300000, 0.04, 900)
	if err != ErrPaymentTooLow {
		t.Errorf("expected ErrPaymentTooLow, got %v", err)
	}

	// Interest-only is the boundary: nothing is ever repaid, so a
	// payment exactly equal to the first month's interest is too low
	_, err = SolveTermForPayment(300000, 0.04, 1000)
	if err != ErrPaymentTooLow {
		t.Errorf("interest-only payment: expected ErrPaymentTooLow, got %v", err)
	}

	// One cent above interest amortizes, if glacially:
	//   n = -ln(1 - r·P/M) / ln(1+r) ≈ 3460 months
	result, err := SolveTermForPayment(300000, 0.04, 1000.01)
	if err != nil {
		t.Errorf("payment above interest: unexpected error %v", err)
	} else if result.TotalMonths < 3450 || result.TotalMonths > 3470 {
		t.Errorf("near-interest payment: expected ≈3460 months, got %d", result.TotalMonths)
	}
}

func TestAmortization_ScheduleCap(t *testing.T) {
	// A payment barely above the accruing interest takes tens of
	// thousands of months; the solver reports the cap instead of erroring.
	payment := 25.01 // interest on €300k @ 0.1% is €25.00/month
	result, err := CalculateAmortization(300000, 0.001, &payment, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Capped {
		t.Error("expected capped result")
	}
	if result.TotalMonths < DefaultMaxScheduleMonths {
		t.Errorf("capped schedule reported %d months, cap is %d",
			result.TotalMonths, DefaultMaxScheduleMonths)
	}
}

func TestAmortization_CustomCap(t *testing.T) {
	payment := 1500.0 // €300k @ 4% with €1500/month needs ≈330 months
	result, err := CalculateAmortization(300000, 0.04, &payment, nil, 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Capped {
		t.Error("expected capped result at 120 month cap")
	}
}

func TestAmortization_AmbiguousInput(t *testing.T) {
	payment := 1500.0
	term := 25

	if _, err := CalculateAmortization(300000, 0.04, nil, nil, 0); err != ErrAmbiguousInput {
		t.Errorf("neither input: expected ErrAmbiguousInput, got %v", err)
	}
	if _, err := CalculateAmortization(300000, 0.04, &payment, &term, 0); err != ErrAmbiguousInput {
		t.Errorf("both inputs: expected ErrAmbiguousInput, got %v", err)
	}
}

// =============================================================================
// Outstanding Balance
// =============================================================================

func TestOutstandingBalance(t *testing.T) {
	principal := 300000.0
	monthlyRate := 0.04 / 12
	payment := AnnuityPayment(principal, monthlyRate, 300)

	if got := OutstandingBalance(principal, monthlyRate, payment, 0); got != principal {
		t.Errorf("month 0: expected full principal, got €%.2f", got)
	}

	// After the full term the balance must be zero up to drift
	final := OutstandingBalance(principal, monthlyRate, payment, 300)
	if math.Abs(final) > 0.01 {
		t.Errorf("final balance: expected ≈0, got €%.6f", final)
	}

	// One payment in: balance = P(1+r) - M
	expected := principal*(1+monthlyRate) - payment
	assertMoneyEquals(t, expected, OutstandingBalance(principal, monthlyRate, payment, 1), "balance after 1 payment")
}

func TestOutstandingBalance_ZeroRate(t *testing.T) {
	got := OutstandingBalance(120000, 0, 1000, 60)
	if got != 60000 {
		t.Errorf("0%% balance after 60 payments: expected €60000, got €%.2f", got)
	}
}

// =============================================================================
// Term Sweep and Interpolation
// =============================================================================

func TestTermSweep_Range(t *testing.T) {
	points := TermSweep(300000, 0.04, 10, 40)
	if len(points) != 31 {
		t.Fatalf("expected 31 sweep points, got %d", len(points))
	}
	if points[0].TermYears != 10 || points[30].TermYears != 40 {
		t.Errorf("sweep endpoints: got %d..%d", points[0].TermYears, points[30].TermYears)
	}
}

func TestTermSweep_Monotonic(t *testing.T) {
	points := TermSweep(300000, 0.04, 10, 40)
	for i := 1; i < len(points); i++ {
		if points[i].MonthlyPayment >= points[i-1].MonthlyPayment {
			t.Errorf("payment not strictly decreasing at %d years: %.2f -> %.2f",
				points[i].TermYears, points[i-1].MonthlyPayment, points[i].MonthlyPayment)
		}
		if points[i].TotalInterestPaid <= points[i-1].TotalInterestPaid {
			t.Errorf("total interest not increasing at %d years", points[i].TermYears)
		}
	}
}

func TestInterpolateSweepPayment(t *testing.T) {
	points := []TermPoint{
		{TermYears: 10, MonthlyPayment: 3000},
		{TermYears: 20, MonthlyPayment: 2000},
		{TermYears: 30, MonthlyPayment: 1500},
	}

	tests := []struct {
		term     float64
		expected float64
		name     string
	}{
		{10, 3000, "lower endpoint"},
		{30, 1500, "upper endpoint"},
		{15, 2500, "midpoint of first segment"},
		{25, 1750, "midpoint of second segment"},
		{5, 3000, "clamp below range"},
		{45, 1500, "clamp above range"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := InterpolateSweepPayment(points, tc.term)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("interpolate at %.1f years: expected %.2f, got %.2f",
					tc.term, tc.expected, got)
			}
		})
	}
}

func TestInterpolateSweepPayment_Empty(t *testing.T) {
	if got := InterpolateSweepPayment(nil, 25); got != 0 {
		t.Errorf("empty sweep: expected 0, got %.2f", got)
	}
}
