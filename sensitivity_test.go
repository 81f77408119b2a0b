package main

import "testing"

func testSensitivityConfig() SensitivityConfig {
	return SensitivityConfig{
		ReturnMin:       0.02,
		ReturnMax:       0.08,
		AppreciationMin: 0.0,
		AppreciationMax: 0.03,
		StepSize:        0.01,
	}
}

func TestSensitivity_GridDimensions(t *testing.T) {
	analysis := RunSensitivityAnalysis(testScenario(), PolicyOptimistic, testSensitivityConfig())

	if len(analysis.InvestmentReturns) != 7 {
		t.Errorf("expected 7 return samples (2%%..8%%), got %d", len(analysis.InvestmentReturns))
	}
	if len(analysis.AppreciationRates) != 4 {
		t.Errorf("expected 4 appreciation samples (0%%..3%%), got %d", len(analysis.AppreciationRates))
	}
	if len(analysis.Cells) != len(analysis.InvestmentReturns) {
		t.Fatalf("row count %d does not match return samples %d",
			len(analysis.Cells), len(analysis.InvestmentReturns))
	}
	for i, row := range analysis.Cells {
		if len(row) != len(analysis.AppreciationRates) {
			t.Fatalf("row %d has %d cells, expected %d", i, len(row), len(analysis.AppreciationRates))
		}
	}
	if analysis.PolicyName != "Optimistic" {
		t.Errorf("policy name: got %q", analysis.PolicyName)
	}
}

func TestSensitivity_DeltaMonotonicInReturn(t *testing.T) {
	// The buy side does not depend on the investment return, so within a
	// column the rent advantage must rise with the return.
	analysis := RunSensitivityAnalysis(testScenario(), PolicyOptimistic, testSensitivityConfig())

	for col := range analysis.AppreciationRates {
		for row := 1; row < len(analysis.Cells); row++ {
			prev := analysis.Cells[row-1][col]
			cur := analysis.Cells[row][col]
			if cur.Delta <= prev.Delta {
				t.Errorf("delta not increasing at return %.2f, appreciation %.2f: %.0f -> %.0f",
					cur.InvestmentReturn, cur.AppreciationRate, prev.Delta, cur.Delta)
			}
			if cur.FinalBuyNetWorth != prev.FinalBuyNetWorth {
				t.Errorf("buy net worth changed with the investment return at appreciation %.2f",
					cur.AppreciationRate)
			}
		}
	}
}

func TestSensitivity_DeltaMonotonicInAppreciation(t *testing.T) {
	// Within a row only the property value moves, so appreciation eats
	// into the rent advantage.
	analysis := RunSensitivityAnalysis(testScenario(), PolicyBalanced, testSensitivityConfig())

	for _, row := range analysis.Cells {
		for col := 1; col < len(row); col++ {
			if row[col].Delta >= row[col-1].Delta {
				t.Errorf("delta not decreasing at return %.2f, appreciation %.2f",
					row[col].InvestmentReturn, row[col].AppreciationRate)
			}
		}
	}
}
