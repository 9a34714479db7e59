// Package tui provides terminal user interface components for vlsm-ctl.
//
// This package uses the Bubble Tea framework for the interactive plan wizard
// and the saved-plan picker.
//
// # Plan Wizard
//
// The wizard collects a parent network and a line of name=hosts demands,
// previews the allocation and returns the request:
//
//	req, err := tui.RunWizard(nil)
//	if req == nil {
//	    // cancelled
//	}
//
// Steps are network, demands (shell quoting, e.g. "Sales floor"=40 lab=12)
// and confirm. Esc goes back a step, Ctrl+C cancels. A request that does
// not fit its network cannot be confirmed.
//
// # Plan Picker
//
//	result, err := tui.RunPicker(plans)
//	switch result.Action {
//	case tui.ActionRender:
//	    // Allocate result.Plan
//	case tui.ActionEdit:
//	    // Open result.Plan in the wizard
//	case tui.ActionNew:
//	    // Start an empty wizard
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
