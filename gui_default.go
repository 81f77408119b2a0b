//go:build !console

package main

import (
	"fmt"
	"os"

	webview "github.com/webview/webview_go"
)

// runEmbeddedUI serves the calculator on a loopback port and shows it
// in a native webview window. A missing config file is fine; the UI
// falls back to the embedded defaults.
func runEmbeddedUI(configFile string) error {
	config, err := LoadConfig(configFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading config: %w", err)
	}

	ws := NewWebServer(config, "localhost:0")
	url, cleanup, err := ws.StartForEmbedded()
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer cleanup()

	w := webview.New(false)
	defer w.Destroy()

	w.SetTitle("Buy vs Rent Calculator")
	// Wide enough for the two-column scenario panel plus charts
	w.SetSize(1200, 800, webview.HintNone)
	w.Navigate(url)

	// Blocks until the window is closed
	w.Run()

	return nil
}

// runGUI is the default entry point; the GUI is the embedded browser
func runGUI(configFile string) error {
	return runEmbeddedUI(configFile)
}
