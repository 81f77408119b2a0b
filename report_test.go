package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func reportFixtures(t *testing.T) (*Config, AmortizationResult, []ComparisonResult) {
	t.Helper()
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	amort, err := config.SolveAmortization()
	if err != nil {
		t.Fatalf("amortization failed: %v", err)
	}
	results := RunAllComparisons(config.ScenarioParameters())
	return config, amort, results
}

func TestGenerateHTMLReport(t *testing.T) {
	config, amort, results := reportFixtures(t)

	path := filepath.Join(t.TempDir(), "report.html")
	if err := GenerateHTMLReport(config, amort, results, path); err != nil {
		t.Fatalf("report generation failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)

	for _, want := range []string{"Optimistic", "Balanced", "Conservative", "<svg"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
	// One trajectory chart per policy
	if got := strings.Count(html, "<svg"); got < 3 {
		t.Errorf("expected at least 3 charts, got %d", got)
	}
}

func TestGeneratePDFReport(t *testing.T) {
	config, amort, results := reportFixtures(t)

	data, err := GeneratePDFReport(config, amort, results)
	if err != nil {
		t.Fatalf("pdf generation failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if len(data) < 5000 {
		t.Errorf("pdf suspiciously small: %d bytes", len(data))
	}
}

func TestPDFTextCurrency(t *testing.T) {
	// The core fonts are cp1252; the euro sign maps to 0x80
	got := pdfText("€1583.51")
	if got != "\x801583.51" {
		t.Errorf("euro not mapped to cp1252: %q", got)
	}
}
