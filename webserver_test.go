package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

// Web API Tests
//
// These exercise the JSON handlers through the mux, the same way the
// browser UI calls them.

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	// The handlers persist the last-run config to the working directory
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatal(err)
		}
	})

	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	return NewWebServer(config, "localhost:0")
}

func postJSON(t *testing.T, ws *WebServer, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	ws.mux().ServeHTTP(rec, req)
	return rec
}

func scenarioRequest(config *Config) APIScenarioRequest {
	return APIScenarioRequest{
		Market:    config.Market,
		Property:  config.Property,
		Financing: config.Financing,
		Sweep:     config.Sweep,
	}
}

func TestHandleIndex(t *testing.T) {
	ws := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ws.mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Buy vs Rent") {
		t.Error("index page missing title")
	}
	// The page embeds URL-encoded data URIs (%3C, %3E); it must arrive
	// byte for byte, with nothing treated as a formatting directive
	if rec.Body.String() != webUIHTML {
		t.Error("served page differs from the embedded UI source")
	}
}

func TestHandleGetConfig(t *testing.T) {
	ws := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	ws.mux().ServeHTTP(rec, req)

	var config Config
	if err := json.Unmarshal(rec.Body.Bytes(), &config); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if config.Property.PurchasePrice != 400000 {
		t.Errorf("expected default purchase price 400000, got %.0f", config.Property.PurchasePrice)
	}
}

func TestHandleAmortize(t *testing.T) {
	ws := newTestServer(t)
	rec := postJSON(t, ws, "/api/amortize", scenarioRequest(ws.config))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp APIAmortizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got error: %s", resp.Error)
	}
	if resp.Result == nil {
		t.Fatal("missing amortization result")
	}

	// €300k @ 4% over 25 years
	assertMoneyEquals(t, 1583.51, resp.Result.MonthlyPayment, "default scenario payment")
	if resp.Result.TotalMonths != 300 {
		t.Errorf("expected 300 months, got %d", resp.Result.TotalMonths)
	}
	if resp.TermDerived {
		t.Error("term-given scenario must not report a derived term")
	}
	if len(resp.Sweep) != 31 {
		t.Errorf("expected 31 sweep points (10..40 years), got %d", len(resp.Sweep))
	}

	// Successful runs persist the submitted scenario
	if _, err := os.Stat("config.yaml"); err != nil {
		t.Errorf("successful run did not persist config.yaml: %v", err)
	}
}

func TestHandleAmortize_PaymentGiven(t *testing.T) {
	ws := newTestServer(t)
	req := scenarioRequest(ws.config)
	req.Financing.SolveFor = "term"
	req.Financing.MonthlyPayment = 1800

	rec := postJSON(t, ws, "/api/amortize", req)
	var resp APIAmortizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got error: %s", resp.Error)
	}
	if !resp.TermDerived {
		t.Error("payment-given scenario must report a derived term")
	}
	if resp.Result.TotalMonths <= 0 {
		t.Errorf("expected a positive solved term, got %d months", resp.Result.TotalMonths)
	}
	// The marker sits on the sweep curve, not at the exact payment
	if resp.ChosenPayment <= 0 {
		t.Error("missing interpolated marker payment")
	}
}

func TestHandleAmortize_PaymentTooLow(t *testing.T) {
	ws := newTestServer(t)
	req := scenarioRequest(ws.config)
	req.Financing.SolveFor = "term"
	req.Financing.MonthlyPayment = 500 // below €1000/month interest

	rec := postJSON(t, ws, "/api/amortize", req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var resp APIAmortizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Error("expected an error response")
	}

	// A failed run must not become the next session's defaults
	if _, err := os.Stat("config.yaml"); !os.IsNotExist(err) {
		t.Error("failed run persisted config.yaml")
	}
}

func TestHandleAmortize_InvalidBody(t *testing.T) {
	ws := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/amortize", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	ws.mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleAmortize_MethodNotAllowed(t *testing.T) {
	ws := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/amortize", nil)
	rec := httptest.NewRecorder()
	ws.mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleCompare(t *testing.T) {
	ws := newTestServer(t)
	rec := postJSON(t, ws, "/api/compare", scenarioRequest(ws.config))

	var resp APICompareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got error: %s", resp.Error)
	}
	if resp.Amortization == nil {
		t.Fatal("missing amortization block")
	}
	if len(resp.Policies) != 3 {
		t.Fatalf("expected 3 policies, got %d", len(resp.Policies))
	}
	if resp.Policies[0].Policy != "Optimistic" || resp.Policies[2].Policy != "Conservative" {
		t.Errorf("policies out of order: %s / %s / %s",
			resp.Policies[0].Policy, resp.Policies[1].Policy, resp.Policies[2].Policy)
	}
	for _, p := range resp.Policies {
		if len(p.Points) != 300 {
			t.Errorf("%s: expected 300 trajectory points, got %d", p.Policy, len(p.Points))
		}
	}
}

func TestHandleSensitivity(t *testing.T) {
	ws := newTestServer(t)
	req := APISensitivityRequest{
		APIScenarioRequest: scenarioRequest(ws.config),
		Sensitivity:        ws.config.Sensitivity,
	}
	rec := postJSON(t, ws, "/api/sensitivity", req)

	var resp APISensitivityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got error: %s", resp.Error)
	}
	if len(resp.Grids) != 3 {
		t.Fatalf("expected one grid per policy, got %d", len(resp.Grids))
	}

	// Default ranges: return 2%..8% step 1% and appreciation 0%..3% step 1%
	grid := resp.Grids[0]
	if len(grid.InvestmentReturns) != 7 {
		t.Errorf("expected 7 return samples, got %d", len(grid.InvestmentReturns))
	}
	if len(grid.AppreciationRates) != 4 {
		t.Errorf("expected 4 appreciation samples, got %d", len(grid.AppreciationRates))
	}
	if len(grid.Cells) != len(grid.InvestmentReturns) {
		t.Errorf("cell rows (%d) must match return samples (%d)",
			len(grid.Cells), len(grid.InvestmentReturns))
	}
}

func TestHandleExportCSV(t *testing.T) {
	ws := newTestServer(t)
	rec := postJSON(t, ws, "/api/export-csv", CSVExportRequest{
		Content:  "policy,month,buy_net_worth,rent_net_worth\nAllETF,0,100,200\n",
		Filename: "test.csv",
	})

	var resp CSVExportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success {
		t.Fatalf("export failed: %s", resp.Message)
	}
	if !strings.HasSuffix(resp.FilePath, "test.csv") {
		t.Errorf("unexpected file path: %s", resp.FilePath)
	}
}
