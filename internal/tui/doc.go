// Package tui provides terminal user interface components for wstest-env.
//
// This package uses the Bubble Tea framework for the capture interface
// picker and lipgloss for the probe report.
//
// # Interface Picker
//
// The picker lists the interfaces reported by "dumpcap -D":
//
//	ifaces, _ := env.ListInterfaces(ctx)
//	result, err := tui.RunPicker(ifaces, env.Capture.Interface)
//	switch result.Action {
//	case tui.ActionSelect:
//	    // Use result.Interface.Index
//	case tui.ActionQuit, tui.ActionNone:
//	    // Keep the current setting
//	}
//
// SimpleList renders the same listing without a terminal.
//
// # Probe Report
//
//	fmt.Print(tui.RenderReport(health.Check(env)))
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
