package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// pdfText converts UTF-8 text to PDF-safe encoding
// The euro sign is U+20AC in UTF-8, but the PDF standard fonts use
// cp1252 where it sits at 0x80
func pdfText(s string) string {
	return strings.ReplaceAll(s, "€", "\x80")
}

// FormatMoneyPDF formats money for PDF output (handles euro encoding)
func FormatMoneyPDF(amount float64) string {
	return pdfText(FormatMoney(amount))
}

// FormatMoneyFullPDF formats unabbreviated money for PDF output
func FormatMoneyFullPDF(amount float64) string {
	return pdfText(FormatMoneyFull(amount))
}

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFReport generates the printable comparison report
type PDFReport struct {
	pdf     *fpdf.Fpdf
	config  *Config
	amort   AmortizationResult
	results []ComparisonResult
}

// GeneratePDFReport creates the full PDF report for a solved scenario
func GeneratePDFReport(config *Config, amort AmortizationResult, results []ComparisonResult) ([]byte, error) {
	report := &PDFReport{
		pdf:     fpdf.New("P", "mm", "A4", ""),
		config:  config,
		amort:   amort,
		results: results,
	}

	report.pdf.SetMargins(marginLeft, marginTop, marginRight)
	report.pdf.SetAutoPageBreak(true, marginBottom)

	report.addTitlePage()
	report.addAmortizationPage()
	for _, result := range results {
		report.addPolicyPage(result)
	}

	var buf bytes.Buffer
	err := report.pdf.Output(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (r *PDFReport) addTitlePage() {
	r.pdf.AddPage()

	// Title
	r.pdf.SetFont("Arial", "B", 28)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(50)
	r.pdf.CellFormat(contentWidth, 15, "Buy vs Rent Report", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 14)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(10)
	r.pdf.CellFormat(contentWidth, 10, pdfText(scenarioSubtitle(r.config, r.amort)), "", 1, "C", false, 0, "")

	// Generation date
	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.Ln(15)
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")

	// Property box
	r.pdf.Ln(20)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, "Property", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	p := r.config.Property
	propertyRows := []string{
		fmt.Sprintf("Purchase %s with %s down and %s refurbishment",
			FormatMoneyPDF(p.PurchasePrice), FormatMoneyPDF(p.DownPayment), FormatMoneyPDF(p.RefurbishCost)),
		fmt.Sprintf("Nebenkosten %s, maintenance %s/year, taxes %s/year",
			FormatPercent(p.TransactionCostRate), FormatPercent(p.MaintenanceRate), FormatMoneyPDF(p.PropertyTaxes)),
		fmt.Sprintf("Comparable rent %s/month", FormatMoneyFullPDF(p.InitialRent)),
	}
	for _, row := range propertyRows {
		r.pdf.CellFormat(contentWidth, 7, row, "LR", 1, "C", true, 0, "")
	}
	r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", true, 0, "")

	// Market assumptions box
	r.pdf.Ln(10)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, "Market Assumptions (beyond general inflation)", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	m := r.config.Market
	marketRows := []string{
		fmt.Sprintf("Loan interest %s | Property appreciation %s",
			FormatPercent(m.LoanInterestRate), FormatPercent(m.PropertyAppreciationRate)),
		fmt.Sprintf("Rent inflation %s | Investment return %s",
			FormatPercent(m.RentInflationRate), FormatPercent(m.InvestmentReturnRate)),
	}
	for _, row := range marketRows {
		r.pdf.CellFormat(contentWidth, 7, row, "LR", 1, "C", true, 0, "")
	}
	r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", true, 0, "")

	// Disclaimer
	r.pdf.Ln(15)
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(contentWidth, 4.5,
		"This document is for informational purposes only and does not constitute financial advice. "+
			"Please consult a qualified financial advisor before making any financial decisions. "+
			"Market rates and tax rules are subject to change.", "", "C", false)
}

func (r *PDFReport) addAmortizationPage() {
	r.pdf.AddPage()
	r.drawSectionHeader("Amortization")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)

	labelWidth := 45.0
	rows := [][2]string{
		{"Loan Amount:", FormatMoneyPDF(r.config.Property.PurchasePrice - r.config.Property.DownPayment)},
		{"Monthly Payment:", FormatMoneyFullPDF(r.amort.MonthlyPayment)},
		{"Loan Term:", fmt.Sprintf("%.1f years (%d months)", r.amort.TermYears(), r.amort.TotalMonths)},
		{"Total Interest:", FormatMoneyFullPDF(r.amort.TotalInterestPaid)},
		{"Initial Tilgung:", FormatPercent(r.amort.InitialRepaymentRate)},
	}
	for _, row := range rows {
		r.pdf.CellFormat(labelWidth, 6, row[0], "", 0, "L", false, 0, "")
		r.pdf.CellFormat(contentWidth-labelWidth, 6, row[1], "", 1, "L", false, 0, "")
	}

	if r.amort.Capped {
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.SetTextColor(180, 0, 0)
		r.pdf.Ln(2)
		r.pdf.MultiCell(contentWidth, 5,
			"Warning: the payment barely covers interest. The term was capped and the figures are approximate.",
			"", "L", false)
	}

	// Term sweep table
	r.pdf.Ln(8)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 7, "Monthly Payment by Loan Term", "", 1, "L", false, 0, "")
	r.pdf.Ln(1)

	sweep := TermSweep(
		r.config.Property.PurchasePrice-r.config.Property.DownPayment,
		r.config.Market.LoanInterestRate,
		r.config.Sweep.MinTermYears, r.config.Sweep.MaxTermYears)

	widths := []float64{40, 47, 47, 46}
	r.drawTableHeader([]string{"Term", "Monthly Payment", "Total Interest", "Initial Tilgung"}, widths)

	chosenYears := int(r.amort.TermYears())
	for _, pt := range sweep {
		r.drawTableRow([]string{
			fmt.Sprintf("%d years", pt.TermYears),
			FormatMoneyFullPDF(pt.MonthlyPayment),
			FormatMoneyPDF(pt.TotalInterestPaid),
			FormatPercent(pt.InitialRepaymentRate),
		}, widths, pt.TermYears == chosenYears && !r.config.Financing.PaymentGiven())
	}

	if r.config.Financing.PaymentGiven() {
		r.pdf.Ln(3)
		r.pdf.SetFont("Arial", "I", 9)
		r.pdf.SetTextColor(80, 80, 80)
		r.pdf.CellFormat(contentWidth, 5, pdfText(fmt.Sprintf(
			"Derived term %.1f years for the given payment of %s",
			r.amort.TermYears(), FormatMoneyFull(r.amort.MonthlyPayment))), "", 1, "L", false, 0, "")
	}
}

func (r *PDFReport) addPolicyPage(result ComparisonResult) {
	r.pdf.AddPage()
	r.drawSectionHeader(result.Policy.DescriptiveName())

	// Outcome summary
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)

	diff := result.FinalBuyNetWorth() - result.FinalRentNetWorth()
	verdict := fmt.Sprintf("Buying ends the term %s ahead", FormatMoneyPDF(diff))
	if diff < 0 {
		verdict = fmt.Sprintf("Renting and investing ends the term %s ahead", FormatMoneyPDF(-diff))
	}
	crossText := "Buying never ends up ahead of renting"
	if m := result.CrossoverMonth(); m >= 0 {
		crossText = fmt.Sprintf("Buying stays ahead from year %.1f onwards", float64(m)/12)
	}

	labelWidth := 50.0
	rows := [][2]string{
		{"Final Net Worth (Buy):", FormatMoneyPDF(result.FinalBuyNetWorth())},
		{"Final Net Worth (Rent):", FormatMoneyPDF(result.FinalRentNetWorth())},
		{"Outcome:", verdict},
		{"Crossover:", crossText},
		{"Last Monthly Savings:", FormatMoneyFullPDF(result.FinalMonthlySavings)},
	}
	for _, row := range rows {
		r.pdf.CellFormat(labelWidth, 6, row[0], "", 0, "L", false, 0, "")
		r.pdf.CellFormat(contentWidth-labelWidth, 6, row[1], "", 1, "L", false, 0, "")
	}

	// Year-by-year table
	r.pdf.Ln(6)
	widths := []float64{30, 50, 50, 50}
	r.drawTableHeader([]string{"Year", "Buy", "Rent", "Difference"}, widths)

	crossover := result.CrossoverMonth()
	for i, pt := range result.Points {
		if pt.Month%12 != 0 && i != len(result.Points)-1 && pt.Month != crossover {
			continue
		}
		r.drawTableRow([]string{
			fmt.Sprintf("%.1f", float64(pt.Month)/12),
			FormatMoneyPDF(pt.BuyNetWorth),
			FormatMoneyPDF(pt.RentNetWorth),
			FormatMoneyPDF(pt.BuyNetWorth - pt.RentNetWorth),
		}, widths, pt.Month == crossover)
	}
}

func (r *PDFReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *PDFReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *PDFReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
