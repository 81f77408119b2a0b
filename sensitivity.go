package main

// SensitivityCell holds the end-of-term outcome for one combination of
// investment return and property appreciation rates
type SensitivityCell struct {
	InvestmentReturn  float64 `json:"investment_return"`
	AppreciationRate  float64 `json:"appreciation_rate"`
	FinalBuyNetWorth  float64 `json:"final_buy_net_worth"`
	FinalRentNetWorth float64 `json:"final_rent_net_worth"`
	// Delta is rent minus buy: positive means renting-and-investing
	// ends the term ahead
	Delta float64 `json:"delta"`
}

// SensitivityAnalysis is a grid of comparison outcomes across market
// assumptions, for one allocation policy
type SensitivityAnalysis struct {
	Policy            AllocationPolicy  `json:"-"`
	PolicyName        string            `json:"policy"`
	InvestmentReturns []float64         `json:"investment_returns"`
	AppreciationRates []float64         `json:"appreciation_rates"`
	// Rows indexed by investment return, columns by appreciation rate
	Cells [][]SensitivityCell `json:"cells"`
}

// RunSensitivityAnalysis sweeps the comparison across the configured
// investment-return and appreciation ranges, holding everything else in
// params fixed. Each cell is an independent full simulation.
func RunSensitivityAnalysis(params ScenarioParameters, policy AllocationPolicy, cfg SensitivityConfig) SensitivityAnalysis {
	analysis := SensitivityAnalysis{
		Policy:     policy,
		PolicyName: policy.String(),
	}

	for rate := cfg.ReturnMin; rate <= cfg.ReturnMax+cfg.StepSize/2; rate += cfg.StepSize {
		analysis.InvestmentReturns = append(analysis.InvestmentReturns, rate)
	}
	for rate := cfg.AppreciationMin; rate <= cfg.AppreciationMax+cfg.StepSize/2; rate += cfg.StepSize {
		analysis.AppreciationRates = append(analysis.AppreciationRates, rate)
	}

	for _, ret := range analysis.InvestmentReturns {
		row := make([]SensitivityCell, 0, len(analysis.AppreciationRates))
		for _, app := range analysis.AppreciationRates {
			cellParams := params
			cellParams.InvestmentReturnRate = ret
			cellParams.PropertyAppreciationRate = app

			result := RunComparison(cellParams, policy)
			buy := result.FinalBuyNetWorth()
			rent := result.FinalRentNetWorth()
			row = append(row, SensitivityCell{
				InvestmentReturn:  ret,
				AppreciationRate:  app,
				FinalBuyNetWorth:  buy,
				FinalRentNetWorth: rent,
				Delta:             rent - buy,
			})
		}
		analysis.Cells = append(analysis.Cells, row)
	}

	return analysis
}
