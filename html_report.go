package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// GenerateHTMLReportFile writes a timestamped standalone report and
// returns its path
func GenerateHTMLReportFile(config *Config, amort AmortizationResult, results []ComparisonResult) (string, error) {
	filename := fmt.Sprintf("buy-vs-rent-report_%s.html", time.Now().Format("2006-01-02_1504"))
	if err := GenerateHTMLReport(config, amort, results, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateHTMLReport generates a self-contained HTML report for the
// solved scenario and all policy comparisons
func GenerateHTMLReport(config *Config, amort AmortizationResult, results []ComparisonResult, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Buy vs Rent Report</title>
    <style>
        :root {
            --primary: #2563eb;
            --success: #16a34a;
            --warning: #ea580c;
            --danger: #dc2626;
            --bg: #f8fafc;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
            padding: 2rem;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 {
            font-size: 1.75rem;
            margin-bottom: 0.5rem;
            color: var(--primary);
        }
        h2 {
            font-size: 1.25rem;
            margin: 1.5rem 0 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid var(--primary);
        }
        h3 { font-size: 1rem; margin-bottom: 0.5rem; }
        .subtitle { color: var(--text-muted); margin-bottom: 1.5rem; }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .grid { display: grid; gap: 1rem; }
        .grid-2 { grid-template-columns: repeat(2, 1fr); }
        .grid-4 { grid-template-columns: repeat(4, 1fr); }
        @media (max-width: 768px) {
            .grid-2, .grid-4 { grid-template-columns: 1fr; }
        }
        .metric {
            text-align: center;
            padding: 1rem;
            border-radius: 8px;
            background: var(--bg);
        }
        .metric-value {
            font-size: 1.5rem;
            font-weight: 700;
            color: var(--primary);
        }
        .metric-label {
            font-size: 0.875rem;
            color: var(--text-muted);
        }
        .metric.success .metric-value { color: var(--success); }
        .metric.warning .metric-value { color: var(--warning); }
        .metric.danger .metric-value { color: var(--danger); }
        table {
            width: 100%%;
            border-collapse: collapse;
            font-size: 0.875rem;
        }
        th, td {
            padding: 0.6rem 0.5rem;
            text-align: right;
            border-bottom: 1px solid var(--border);
        }
        th { background: var(--bg); font-weight: 600; }
        th:first-child, td:first-child { text-align: left; }
        tr:hover { background: #f1f5f9; }
        .highlight { background: #fef3c7 !important; }
        .negative { color: var(--danger); }
        .positive { color: var(--success); }
        .badge {
            display: inline-block;
            padding: 0.25rem 0.75rem;
            border-radius: 9999px;
            font-size: 0.75rem;
            font-weight: 600;
        }
        .badge-success { background: #dcfce7; color: var(--success); }
        .badge-danger { background: #fee2e2; color: var(--danger); }
        .chart-note { font-size: 0.75rem; color: var(--text-muted); margin-top: 0.25rem; }
        .footer {
            text-align: center;
            color: var(--text-muted);
            font-size: 0.75rem;
            margin-top: 2rem;
            padding-top: 1rem;
            border-top: 1px solid var(--border);
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Buy vs Rent: Net Worth Comparison</h1>
        <p class="subtitle">%s</p>
`, scenarioSubtitle(config, amort))

	writeSummaryMetricsHTML(f, amort)
	writeScenarioTablesHTML(f, config)
	writePolicyComparisonHTML(f, results)

	for _, result := range results {
		writeTrajectorySectionHTML(f, result)
	}

	fmt.Fprintf(f, `
        <div class="footer">
            Generated on %s | Buy vs Rent Calculator | All rates are beyond general inflation
        </div>
    </div>
</body>
</html>
`, time.Now().Format("2 January 2006 at 15:04"))

	return nil
}

func scenarioSubtitle(config *Config, amort AmortizationResult) string {
	if config.Financing.PaymentGiven() {
		return fmt.Sprintf("%s loan at %s, payment %s given, term %.1f years derived",
			FormatMoney(config.Property.PurchasePrice-config.Property.DownPayment),
			FormatPercent(config.Market.LoanInterestRate),
			FormatMoneyFull(amort.MonthlyPayment),
			amort.TermYears())
	}
	return fmt.Sprintf("%s loan at %s, %d-year term given, payment %s derived",
		FormatMoney(config.Property.PurchasePrice-config.Property.DownPayment),
		FormatPercent(config.Market.LoanInterestRate),
		config.Financing.LoanTermYears,
		FormatMoneyFull(amort.MonthlyPayment))
}

func writeSummaryMetricsHTML(f *os.File, amort AmortizationResult) {
	capBadge := ""
	if amort.Capped {
		capBadge = `<p class="chart-note"><span class="badge badge-danger">Term capped</span> Payment barely covers interest; figures are approximate.</p>`
	}

	fmt.Fprintf(f, `
        <div class="card">
            <h2>Amortization</h2>
            <div class="grid grid-4">
                <div class="metric">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Monthly Payment</div>
                </div>
                <div class="metric">
                    <div class="metric-value">%.1f yr</div>
                    <div class="metric-label">Loan Term</div>
                </div>
                <div class="metric warning">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Total Interest</div>
                </div>
                <div class="metric">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Initial Tilgung</div>
                </div>
            </div>
            %s
        </div>
`, FormatMoneyFull(amort.MonthlyPayment), amort.TermYears(),
		FormatMoney(amort.TotalInterestPaid), FormatPercent(amort.InitialRepaymentRate), capBadge)
}

func writeScenarioTablesHTML(f *os.File, config *Config) {
	p := config.Property
	m := config.Market

	fmt.Fprintf(f, `
        <div class="card">
            <h2>Scenario</h2>
            <div class="grid grid-2">
                <div>
                    <h3>Property</h3>
                    <table>
                        <tr><td>Purchase Price</td><td>%s</td></tr>
                        <tr><td>Down Payment</td><td>%s</td></tr>
                        <tr><td>Refurbishment</td><td>%s</td></tr>
                        <tr><td>Nebenkosten</td><td>%s</td></tr>
                        <tr><td>Maintenance</td><td>%s / year</td></tr>
                        <tr><td>Property Taxes</td><td>%s / year</td></tr>
                        <tr><td>Comparable Rent</td><td>%s / month</td></tr>
                    </table>
                </div>
                <div>
                    <h3>Market Rates</h3>
                    <table>
                        <tr><td>Loan Interest</td><td>%s</td></tr>
                        <tr><td>Property Appreciation</td><td>%s</td></tr>
                        <tr><td>Rent Inflation</td><td>%s</td></tr>
                        <tr><td>Investment Return</td><td>%s</td></tr>
                    </table>
                </div>
            </div>
        </div>
`, FormatMoney(p.PurchasePrice), FormatMoney(p.DownPayment), FormatMoney(p.RefurbishCost),
		FormatPercent(p.TransactionCostRate), FormatPercent(p.MaintenanceRate),
		FormatMoney(p.PropertyTaxes), FormatMoneyFull(p.InitialRent),
		FormatPercent(m.LoanInterestRate), FormatPercent(m.PropertyAppreciationRate),
		FormatPercent(m.RentInflationRate), FormatPercent(m.InvestmentReturnRate))
}

func writePolicyComparisonHTML(f *os.File, results []ComparisonResult) {
	fmt.Fprintf(f, `
        <div class="card">
            <h2>Policy Comparison</h2>
            <table>
                <tr>
                    <th>Allocation Policy</th>
                    <th>Final Net Worth (Buy)</th>
                    <th>Final Net Worth (Rent)</th>
                    <th>Advantage</th>
                    <th>Buy Overtakes Rent</th>
                </tr>
`)

	for _, r := range results {
		diff := r.FinalBuyNetWorth() - r.FinalRentNetWorth()
		advantage := fmt.Sprintf(`<span class="positive">Buy +%s</span>`, FormatMoney(diff))
		if diff < 0 {
			advantage = fmt.Sprintf(`<span class="negative">Rent +%s</span>`, FormatMoney(-diff))
		}
		crossover := `<span class="badge badge-danger">never</span>`
		if m := r.CrossoverMonth(); m >= 0 {
			crossover = fmt.Sprintf(`<span class="badge badge-success">year %.1f</span>`, float64(m)/12)
		}
		fmt.Fprintf(f, `
                <tr>
                    <td>%s</td>
                    <td>%s</td>
                    <td>%s</td>
                    <td>%s</td>
                    <td>%s</td>
                </tr>
`, r.Policy.DescriptiveName(), FormatMoney(r.FinalBuyNetWorth()),
			FormatMoney(r.FinalRentNetWorth()), advantage, crossover)
	}

	finalSavings := 0.0
	if len(results) > 0 {
		finalSavings = results[0].FinalMonthlySavings
	}
	fmt.Fprintf(f, `
            </table>
            <p class="chart-note">Last monthly savings on the rent side: %s (buying cost minus rent in the final month)</p>
        </div>
`, FormatMoneyFull(finalSavings))
}

// writeTrajectorySectionHTML writes one policy's chart and key-year table
func writeTrajectorySectionHTML(f *os.File, result ComparisonResult) {
	fmt.Fprintf(f, `
        <div class="card">
            <h2>%s</h2>
`, result.Policy.DescriptiveName())

	writeTrajectorySVG(f, result)

	fmt.Fprintf(f, `
            <table>
                <tr><th>Year</th><th>Buy</th><th>Rent</th><th>Difference</th></tr>
`)
	crossover := result.CrossoverMonth()
	for i, pt := range result.Points {
		if pt.Month%12 != 0 && i != len(result.Points)-1 && pt.Month != crossover {
			continue
		}
		rowClass := ""
		if pt.Month == crossover {
			rowClass = ` class="highlight"`
		}
		diff := pt.BuyNetWorth - pt.RentNetWorth
		diffClass := "positive"
		if diff < 0 {
			diffClass = "negative"
		}
		fmt.Fprintf(f, `                <tr%s><td>%.1f</td><td>%s</td><td>%s</td><td class="%s">%s</td></tr>
`, rowClass, float64(pt.Month)/12, FormatMoney(pt.BuyNetWorth),
			FormatMoney(pt.RentNetWorth), diffClass, FormatMoney(diff))
	}
	fmt.Fprintf(f, `            </table>
        </div>
`)
}

// writeTrajectorySVG renders the two net worth lines as a static inline
// SVG so the report needs no scripts
func writeTrajectorySVG(f *os.File, result ComparisonResult) {
	pts := result.Points
	if len(pts) == 0 {
		return
	}

	const (
		width  = 1000.0
		height = 320.0
		padL   = 85.0
		padR   = 20.0
		padT   = 15.0
		padB   = 40.0
	)

	minY, maxY := pts[0].BuyNetWorth, pts[0].BuyNetWorth
	for _, pt := range pts {
		for _, v := range []float64{pt.BuyNetWorth, pt.RentNetWorth} {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	span := maxY - minY
	if span == 0 {
		span = 1
	}
	minY -= span * 0.05
	maxY += span * 0.05
	maxMonth := float64(pts[len(pts)-1].Month)
	if maxMonth == 0 {
		maxMonth = 1
	}

	sx := func(month int) float64 {
		return padL + float64(month)/maxMonth*(width-padL-padR)
	}
	sy := func(v float64) float64 {
		return height - padB - (v-minY)/(maxY-minY)*(height-padT-padB)
	}

	fmt.Fprintf(f, `            <svg viewBox="0 0 %.0f %.0f" width="100%%" xmlns="http://www.w3.org/2000/svg">
`, width, height)

	// Horizontal gridlines with labels
	for i := 0; i <= 4; i++ {
		v := minY + (maxY-minY)*float64(i)/4
		y := sy(v)
		fmt.Fprintf(f, `                <line x1="%.0f" y1="%.1f" x2="%.0f" y2="%.1f" stroke="#e2e8f0"/>
                <text x="%.0f" y="%.1f" text-anchor="end" font-size="12" fill="#64748b">%s</text>
`, padL, y, width-padR, y, padL-6, y+4, FormatMoney(v))
	}

	// Year ticks
	years := int(maxMonth) / 12
	step := 1
	if years > 8 {
		step = (years + 7) / 8
	}
	for yr := 0; yr <= years; yr += step {
		fmt.Fprintf(f, `                <text x="%.1f" y="%.0f" text-anchor="middle" font-size="12" fill="#64748b">%d</text>
`, sx(yr*12), height-padB+18, yr)
	}
	fmt.Fprintf(f, `                <text x="%.0f" y="%.0f" text-anchor="middle" font-size="12" fill="#64748b">Years</text>
`, (padL+width-padR)/2, height-6)

	// Zero line
	if minY < 0 && maxY > 0 {
		fmt.Fprintf(f, `                <line x1="%.0f" y1="%.1f" x2="%.0f" y2="%.1f" stroke="#94a3b8" stroke-dasharray="4 3"/>
`, padL, sy(0), width-padR, sy(0))
	}

	var buyPath, rentPath strings.Builder
	for i, pt := range pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&buyPath, "%s%.1f,%.1f", cmd, sx(pt.Month), sy(pt.BuyNetWorth))
		fmt.Fprintf(&rentPath, "%s%.1f,%.1f", cmd, sx(pt.Month), sy(pt.RentNetWorth))
	}
	fmt.Fprintf(f, `                <path d="%s" fill="none" stroke="#94a3b8" stroke-width="2"/>
                <path d="%s" fill="none" stroke="#2563eb" stroke-width="2"/>
            </svg>
            <p class="chart-note">Blue: buy. Grey: rent and invest.</p>
`, rentPath.String(), buyPath.String())
}
