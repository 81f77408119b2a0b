package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Buy vs Rent Calculator

Compares buying a property on an annuity mortgage against renting the same
home and investing the difference. Solves the mortgage amortization (payment
from term, or term from payment), sweeps the payment across a range of terms,
and simulates net worth month by month under three renter allocation models:
Optimistic (all savings in the market), Balanced (3/4 in reserve) and
Conservative (7/8 in reserve).

MODES:
  CONSOLE MODE (-console or any output flag)
    Prints the amortization summary, the term sweep table and the
    buy-vs-rent comparison for all three allocation models.
    - -details adds a year-by-year trajectory table per model
    - -sensitivity adds grids across return/appreciation assumptions
    - -html / -pdf / -csv write report files and open or save them

  WEB MODE (-web)
    Serves the interactive calculator in your external browser: edit the
    scenario, re-run instantly, view charts, export CSV and PDF.

  EMBEDDED UI MODE (-ui)
    Same calculator in a native webview window (no browser needed).

SOLVING DIRECTION:
  Set financing.solve_for in config.yaml:
    payment  - you give the term, the payment is computed (default)
    term     - you give the monthly payment, the payoff time is computed

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                         Interactive mode selector
  %s -config my.yaml         Use custom configuration file
  %s -ui                     Embedded browser mode (webview window)
  %s -web                    Web server mode (opens external browser)
  %s -web -addr :8080        Web server on specific port

  Console output:
  %s -console                Amortization + comparison summary
  %s -details                Add year-by-year net worth tables
  %s -sensitivity            Grids across return/appreciation rates

  Reports:
  %s -html                   Generate an HTML report and open it
  %s -pdf                    Write a PDF report
  %s -csv                    Write net worth trajectories as CSV

Configuration:
  Edit config.yaml to customize the property, market assumptions and
  financing. Percentages accept both '4%%' and 0.04.

  Key settings:
    property.purchase_price / down_payment / initial_rent
    market.loan_interest_rate / investment_return_rate
    financing.solve_for: "payment" or "term"
    financing.loan_term_years or financing.monthly_payment
    sensitivity.return_min/max, appreciation_min/max, step_size
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0],
			os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	// Command line flags
	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	showDetails := flag.Bool("details", false, "Show year-by-year net worth breakdown per allocation model")
	runSensitivity := flag.Bool("sensitivity", false, "Run sensitivity grids across return/appreciation rates")
	generateHTML := flag.Bool("html", false, "Generate an HTML report and open it in the browser")
	generatePDF := flag.Bool("pdf", false, "Write a PDF report")
	generateCSV := flag.Bool("csv", false, "Write net worth trajectories as CSV")
	consoleMode := flag.Bool("console", false, "Use console interface instead of GUI (default is GUI)")
	webMode := flag.Bool("web", false, "Start web server mode (opens external browser)")
	uiMode := flag.Bool("ui", false, "Start embedded browser mode (webview window)")
	webAddr := flag.String("addr", "localhost:0", "Web server address (for -web mode, use :0 for auto port)")
	flag.Parse()

	// Embedded browser mode
	if *uiMode {
		err := runEmbeddedUI(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Embedded UI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Web server mode (external browser)
	if *webMode {
		config, err := LoadConfig(*configFile)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		server := NewWebServer(config, *webAddr)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Determine if we should run in console mode:
	// - Explicit -console flag, OR
	// - Any output flags set (for automation/scripting)
	useConsole := *consoleMode || *showDetails || *runSensitivity ||
		*generateHTML || *generatePDF || *generateCSV

	if useConsole {
		runConsoleMode(*configFile, *showDetails, *runSensitivity,
			*generateHTML, *generatePDF, *generateCSV)
		return
	}

	// Default: GUI mode
	err := runGUI(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "GUI error: %v\n", err)
		// Fall back to console mode if GUI fails
		fmt.Println("Falling back to console mode...")
		runConsoleMode(*configFile, *showDetails, *runSensitivity,
			*generateHTML, *generatePDF, *generateCSV)
	}
}

// runConsoleMode runs the calculator in console/terminal mode
func runConsoleMode(configFile string, showDetails, runSensitivity,
	generateHTML, generatePDF, generateCSV bool) {

	// Load configuration
	config, err := LoadConfig(configFile)
	configMissing := os.IsNotExist(err)

	if err != nil && !configMissing {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// If no specific output flags set, ask user which mode they want
	if !showDetails && !runSensitivity && !generateHTML && !generatePDF && !generateCSV {
		mode := promptForModeInitial(config, configMissing)
		switch mode {
		case "summary":
			// Default mode, continue
		case "details":
			showDetails = true
		case "sensitivity":
			runSensitivity = true
		case "html":
			generateHTML = true
		case "pdf":
			generatePDF = true
		case "csv":
			generateCSV = true
		case "quit":
			fmt.Println("Goodbye!")
			return
		}
	}

	// If config is missing, build it interactively
	if configMissing {
		builder := NewInteractiveConfigBuilder()
		config = builder.BuildScenarioConfig()
		err = builder.SaveConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nConfiguration saved to %s\n", configFile)
		fmt.Println("You can edit this file to adjust settings for future runs.")
		fmt.Println()
	}

	// A loaded config can still be incomplete; rebuild interactively
	if issues := ValidateScenarioConfig(config); len(issues) > 0 {
		fmt.Println("The configuration is incomplete or inconsistent:")
		for _, issue := range issues {
			fmt.Printf("  ✗ %s\n", issue)
		}
		fmt.Println()
		builder := NewInteractiveConfigBuilder()
		config = builder.BuildScenarioConfig()
		err = builder.SaveConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not save config: %v\n", err)
		} else {
			fmt.Printf("\nConfiguration updated and saved to %s\n", configFile)
		}
		fmt.Println()
	}

	// Print header with scenario summary
	PrintHeader(config)

	// Solve the amortization in the configured direction
	amort, err := config.SolveAmortization()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Amortization error: %v\n", err)
		os.Exit(1)
	}
	PrintAmortizationSummary(amort, config)

	// Payment across the term range
	params := config.ScenarioParameters()
	sweep := TermSweep(params.LoanAmount(), params.LoanInterestRate,
		config.Sweep.MinTermYears, config.Sweep.MaxTermYears)
	PrintTermSweep(sweep, amort, config)

	// When the payment was given, the comparison horizon is the solved term
	if config.Financing.PaymentGiven() {
		params.LoanTermYears = (amort.TotalMonths + 11) / 12
	}

	fmt.Println("Running buy-vs-rent comparison for 3 allocation models...")
	fmt.Println()
	results := RunAllComparisons(params)
	PrintComparison(results, config)

	// Show per-model trajectories if requested
	if showDetails {
		for _, result := range results {
			PrintTrajectoryDetail(result, config)
		}
	}

	// Generate HTML report if requested
	if generateHTML {
		reportPath, err := GenerateHTMLReportFile(config, amort, results)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating HTML report: %v\n", err)
		} else {
			fmt.Printf("\nGenerated report: %s\n", reportPath)
			openBrowser(reportPath)
		}
	}

	// Generate PDF report if requested
	if generatePDF {
		data, err := GeneratePDFReport(config, amort, results)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating PDF report: %v\n", err)
		} else {
			filename := fmt.Sprintf("buy-vs-rent-report_%s.pdf", time.Now().Format("2006-01-02_1504"))
			if err := os.WriteFile(filename, data, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing PDF report: %v\n", err)
			} else {
				fmt.Printf("\nGenerated report: %s\n", filename)
			}
		}
	}

	// Write trajectory CSV if requested
	if generateCSV {
		filename, err := writeTrajectoriesCSV(results)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		} else {
			fmt.Printf("\nWrote trajectories to %s\n", filename)
		}
	}

	// Run sensitivity analysis if requested
	if runSensitivity {
		fmt.Printf("\nRunning sensitivity analysis (return %.0f%%-%.0f%%, appreciation %.0f%%-%.0f%%)...\n",
			config.Sensitivity.ReturnMin*100, config.Sensitivity.ReturnMax*100,
			config.Sensitivity.AppreciationMin*100, config.Sensitivity.AppreciationMax*100)
		for _, policy := range AllPolicies {
			analysis := RunSensitivityAnalysis(params, policy, config.Sensitivity)
			PrintSensitivity(analysis)
		}
	}
}

// writeTrajectoriesCSV writes all three trajectories into one CSV file
// under exports/
func writeTrajectoriesCSV(results []ComparisonResult) (string, error) {
	if err := os.MkdirAll("exports", 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("exports/buy-vs-rent-%s.csv", time.Now().Format("2006-01-02_150405"))
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "policy,month,buy_net_worth,rent_net_worth")
	for _, result := range results {
		for _, p := range result.Points {
			fmt.Fprintf(f, "%s,%d,%.2f,%.2f\n",
				result.Policy.ShortName(), p.Month, p.BuyNetWorth, p.RentNetWorth)
		}
	}
	return filename, nil
}

// openBrowser opens a file in the default browser
func openBrowser(filename string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", filename)
	case "darwin":
		cmd = exec.Command("open", filename)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", filename)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	err := cmd.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}

// promptForModeInitial asks the user which output they want.
// Handles both cases: config exists and config is missing.
func promptForModeInitial(config *Config, configMissing bool) string {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                        BUY vs RENT CALCULATOR                                ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()

	if configMissing {
		fmt.Println("No configuration file found. Select an output to set up interactively:")
	} else {
		fmt.Printf("Scenario: %s property, %s down, %s/month rent\n",
			FormatMoney(config.Property.PurchasePrice),
			FormatMoney(config.Property.DownPayment),
			FormatMoneyFull(config.Property.InitialRent))
		fmt.Println()
		fmt.Println("Select output:")
	}
	fmt.Println()
	fmt.Println("    1) Summary             - Amortization + comparison in the console")
	fmt.Println("    2) Details             - Add year-by-year net worth tables")
	fmt.Println("    3) Sensitivity         - Grids across return/appreciation rates")
	fmt.Println("    4) HTML report         - Generate a browser report")
	fmt.Println("    5) PDF report          - Write a printable report")
	fmt.Println("    6) CSV export          - Write net worth trajectories")
	fmt.Println()
	fmt.Println("    q) Quit")
	fmt.Println()
	fmt.Print("Enter choice (1-6 or q): ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "summary"
	}

	input = strings.TrimSpace(strings.ToLower(input))
	switch input {
	case "1":
		return "summary"
	case "2":
		return "details"
	case "3":
		return "sensitivity"
	case "4":
		return "html"
	case "5":
		return "pdf"
	case "6":
		return "csv"
	case "q", "quit", "exit":
		return "quit"
	default:
		fmt.Println("Invalid choice, printing summary.")
		return "summary"
	}
}
