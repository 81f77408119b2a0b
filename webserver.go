package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// WebServer holds the HTTP server configuration
type WebServer struct {
	config *Config
	addr   string
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, addr string) *WebServer {
	return &WebServer{
		config: config,
		addr:   addr,
	}
}

// APIScenarioRequest carries the full scenario from the browser form
type APIScenarioRequest struct {
	Market    MarketConfig    `json:"market"`
	Property  PropertyConfig  `json:"property"`
	Financing FinancingConfig `json:"financing"`
	Sweep     SweepConfig     `json:"sweep"`
}

// APIAmortizeResponse carries the amortization result and the
// term-to-payment curve for the chart
type APIAmortizeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Result        *AmortizationResult `json:"result,omitempty"`
	Sweep         []TermPoint         `json:"sweep,omitempty"`
	ChosenTerm    float64             `json:"chosen_term,omitempty"`
	ChosenPayment float64             `json:"chosen_payment,omitempty"`
	// TermDerived is true when the payment was given and the term was
	// solved, so the chart marks the derived term instead of a chosen one
	TermDerived bool `json:"term_derived"`
}

// APIPolicyResult is one policy's trajectory for the comparison chart
type APIPolicyResult struct {
	Policy          string            `json:"policy"`
	ShortName       string            `json:"short_name"`
	DescriptiveName string            `json:"descriptive_name"`
	Points          []TrajectoryPoint `json:"points"`
	FinalBuy        float64           `json:"final_buy"`
	FinalRent       float64           `json:"final_rent"`
	CrossoverMonth  int               `json:"crossover_month"` // -1 when buying never ends up ahead
}

// APICompareResponse carries the three-policy comparison
type APICompareResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Amortization        *AmortizationResult `json:"amortization,omitempty"`
	Policies            []APIPolicyResult   `json:"policies,omitempty"`
	FinalMonthlySavings float64             `json:"final_monthly_savings"`
}

// APISensitivityRequest extends the scenario with grid ranges
type APISensitivityRequest struct {
	APIScenarioRequest
	Sensitivity SensitivityConfig `json:"sensitivity"`
}

// APISensitivityResponse carries one grid per policy
type APISensitivityResponse struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error,omitempty"`
	Grids   []SensitivityAnalysis `json:"grids,omitempty"`
}

// Start starts the web server
func (ws *WebServer) Start() error {
	listener, url, err := ws.listen()
	if err != nil {
		return err
	}

	log.Printf("Starting web server on %s", listener.Addr().String())
	log.Printf("Opening %s in your browser...", url)

	// Open browser
	go openBrowser(url)

	return http.Serve(listener, ws.mux())
}

// StartForEmbedded starts the server and returns the URL and a cleanup function.
// Unlike Start(), this does NOT open the browser and does NOT block.
// The caller is responsible for stopping the server via the cleanup function.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, url, err := ws.listen()
	if err != nil {
		return "", nil, err
	}

	log.Printf("Starting embedded web server on %s", listener.Addr().String())

	server := &http.Server{Handler: ws.mux()}
	go func() {
		if err := server.Serve(listener); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}

	return url, cleanup, nil
}

func (ws *WebServer) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/amortize", ws.handleAmortize)
	mux.HandleFunc("/api/compare", ws.handleCompare)
	mux.HandleFunc("/api/sensitivity", ws.handleSensitivity)
	mux.HandleFunc("/api/export-csv", ws.handleExportCSV)
	mux.HandleFunc("/api/export-pdf", ws.handleExportPDF)
	mux.HandleFunc("/api/download-pdf", ws.handleDownloadPDF)
	mux.HandleFunc("/api/open-folder", ws.handleOpenFolder)
	return mux
}

// listen binds ws.addr (use :0 for auto-assign) and derives a
// browser-friendly URL from the assigned address
func (ws *WebServer) listen() (net.Listener, string, error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return nil, "", err
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)

	// If listening on all interfaces, use localhost for the URL
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") ||
		strings.HasPrefix(actualAddr, "[::]:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}

	return listener, url, nil
}

// handleIndex serves the main web UI
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// The page carries URL-encoded data URIs, so it must bypass any
	// formatting-directive interpretation
	io.WriteString(w, webUIHTML)
}

// handleGetConfig returns the current configuration
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if ws.config == nil {
		defaultConfig, err := LoadDefaultConfig()
		if err != nil {
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(defaultConfig)
		return
	}

	json.NewEncoder(w).Encode(ws.config)
}

// buildConfig creates a Config from the API request, falling back to
// the loaded config for anything the form left at zero
func (ws *WebServer) buildConfig(req *APIScenarioRequest) *Config {
	config := &Config{
		Market:    req.Market,
		Property:  req.Property,
		Financing: req.Financing,
		Sweep:     req.Sweep,
	}

	if config.Property.PurchasePrice == 0 && ws.config != nil {
		config.Property = ws.config.Property
	}
	if config.Market.LoanInterestRate == 0 && ws.config != nil {
		config.Market = ws.config.Market
	}
	if ws.config != nil {
		config.Limits = ws.config.Limits
		config.Sensitivity = ws.config.Sensitivity
	}
	config.ApplyDefaults()

	return config
}

// persistConfig saves the web run's config for the next session
func persistConfig(config *Config) {
	if err := SaveConfig(config, "config.yaml"); err != nil {
		// Log but don't fail the calculation
		log.Printf("Warning: failed to save config: %v", err)
	}
}

// handleAmortize solves the financing scenario and returns the
// term-to-payment curve
func (ws *WebServer) handleAmortize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APIScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}

	config := ws.buildConfig(&req)

	result, err := config.SolveAmortization()
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	// Only successful runs become the next session's defaults
	persistConfig(config)

	loanAmount := config.Property.PurchasePrice - config.Property.DownPayment
	sweep := TermSweep(loanAmount, config.Market.LoanInterestRate,
		config.Sweep.MinTermYears, config.Sweep.MaxTermYears)

	chosenTerm := result.TermYears()
	chosenPayment := result.MonthlyPayment
	if config.Financing.PaymentGiven() {
		// Place the derived-term marker on the curve itself
		chosenPayment = InterpolateSweepPayment(sweep, chosenTerm)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APIAmortizeResponse{
		Success:       true,
		Result:        &result,
		Sweep:         sweep,
		ChosenTerm:    chosenTerm,
		ChosenPayment: chosenPayment,
		TermDerived:   config.Financing.PaymentGiven(),
	})
}

// handleCompare runs the buy-vs-rent comparison for all three policies
func (ws *WebServer) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APIScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}

	config := ws.buildConfig(&req)

	response := runComparisonResponse(config)
	if response.Success {
		persistConfig(config)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// runComparisonResponse solves the scenario, runs all policies and
// packages the result for the UI
func runComparisonResponse(config *Config) APICompareResponse {
	amort, err := config.SolveAmortization()
	if err != nil {
		return APICompareResponse{Success: false, Error: err.Error()}
	}

	params := config.ScenarioParameters()
	if config.Financing.PaymentGiven() {
		// The derived term drives the comparison horizon
		params.LoanTermYears = amort.TotalMonths / 12
		if amort.TotalMonths%12 != 0 {
			params.LoanTermYears++
		}
	}

	results := RunAllComparisons(params)

	response := APICompareResponse{
		Success:      true,
		Amortization: &amort,
	}
	for _, r := range results {
		response.Policies = append(response.Policies, APIPolicyResult{
			Policy:          r.Policy.String(),
			ShortName:       r.Policy.ShortName(),
			DescriptiveName: r.Policy.DescriptiveName(),
			Points:          r.Points,
			FinalBuy:        r.FinalBuyNetWorth(),
			FinalRent:       r.FinalRentNetWorth(),
			CrossoverMonth:  r.CrossoverMonth(),
		})
		response.FinalMonthlySavings = r.FinalMonthlySavings
	}

	return response
}

// handleSensitivity runs the sensitivity grid for all three policies
func (ws *WebServer) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APISensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(APISensitivityResponse{Success: false, Error: "Invalid request body: " + err.Error()})
		return
	}

	config := ws.buildConfig(&req.APIScenarioRequest)
	if req.Sensitivity.StepSize > 0 {
		config.Sensitivity = req.Sensitivity
	}
	persistConfig(config)

	params := config.ScenarioParameters()
	var grids []SensitivityAnalysis
	for _, policy := range AllPolicies {
		grids = append(grids, RunSensitivityAnalysis(params, policy, config.Sensitivity))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISensitivityResponse{
		Success: true,
		Grids:   grids,
	})
}

// CSVExportRequest represents a request to export CSV
type CSVExportRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

// CSVExportResponse represents the response from CSV export
type CSVExportResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path"`
	Message  string `json:"message"`
}

// handleExportCSV saves CSV content to a file and returns the path
func (ws *WebServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CSVExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CSVExportResponse{
			Success: false,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	exportDir := "exports"
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CSVExportResponse{
			Success: false,
			Message: "Failed to create exports directory: " + err.Error(),
		})
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = fmt.Sprintf("buy-vs-rent-%s.csv", time.Now().Format("2006-01-02-150405"))
	}

	filePath := filepath.Join(exportDir, filename)
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}

	if err := os.WriteFile(filePath, []byte(req.Content), 0644); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CSVExportResponse{
			Success: false,
			Message: "Failed to write file: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CSVExportResponse{
		Success:  true,
		FilePath: absPath,
		Message:  fmt.Sprintf("CSV saved to %s", absPath),
	})
}

// PDFExportResponse represents the response from PDF export
type PDFExportResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path,omitempty"`
	Message  string `json:"message"`
}

// handleExportPDF generates the full PDF report and saves it to a file
func (ws *WebServer) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(PDFExportResponse{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var req APIScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PDFExportResponse{
			Success: false,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	config := ws.buildConfig(&req)

	pdfBytes, err := buildPDFReport(config)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PDFExportResponse{
			Success: false,
			Message: "Failed to generate PDF: " + err.Error(),
		})
		return
	}

	exportDir := "exports"
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PDFExportResponse{
			Success: false,
			Message: "Failed to create exports directory: " + err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("buy-vs-rent-%s.pdf", time.Now().Format("2006-01-02-150405"))
	filePath := filepath.Join(exportDir, filename)

	if err := os.WriteFile(filePath, pdfBytes, 0644); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PDFExportResponse{
			Success: false,
			Message: "Failed to write PDF: " + err.Error(),
		})
		return
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PDFExportResponse{
		Success:  true,
		FilePath: absPath,
		Message:  fmt.Sprintf("PDF report saved to %s", absPath),
	})
}

// handleDownloadPDF returns PDF content directly for browser download
func (ws *WebServer) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APIScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	config := ws.buildConfig(&req)

	pdfBytes, err := buildPDFReport(config)
	if err != nil {
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("buy-vs-rent-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.Write(pdfBytes)
}

// buildPDFReport solves the scenario and renders the PDF
func buildPDFReport(config *Config) ([]byte, error) {
	amort, err := config.SolveAmortization()
	if err != nil {
		return nil, err
	}

	params := config.ScenarioParameters()
	if config.Financing.PaymentGiven() {
		params.LoanTermYears = (amort.TotalMonths + 11) / 12
	}
	results := RunAllComparisons(params)

	return GeneratePDFReport(config, amort, results)
}

// OpenFolderRequest represents a request to open a folder
type OpenFolderRequest struct {
	FilePath string `json:"file_path"`
}

// handleOpenFolder opens the folder containing the specified file in the system file browser
func (ws *WebServer) handleOpenFolder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req OpenFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Invalid request: " + err.Error(),
		})
		return
	}

	dir := filepath.Dir(req.FilePath)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", dir)
	case "windows":
		cmd = exec.Command("explorer", dir)
	default: // Linux and others
		cmd = exec.Command("xdg-open", dir)
	}

	if err := cmd.Start(); err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Failed to open folder: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Folder opened",
	})
}

// sendJSONError sends a JSON error response
func sendJSONError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(APICompareResponse{
		Success: false,
		Error:   message,
	})
}
