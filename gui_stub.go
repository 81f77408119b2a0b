//go:build console

package main

import "errors"

// Console-only builds carry no webview dependency; both GUI entry
// points report the available alternatives instead.

func runEmbeddedUI(configFile string) error {
	return errors.New("this build has no embedded browser; use -web to open the calculator in your own browser")
}

func runGUI(configFile string) error {
	return errors.New("this build has no GUI; use -web for the browser UI or -console for terminal output")
}
