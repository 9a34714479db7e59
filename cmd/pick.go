package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/audit"
	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/tui"
)

var pickFormat string

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive plan picker",
	Long: `Opens an interactive TUI for choosing a saved plan.

Use arrow keys or j/k to navigate, / to filter, Enter to plan.

Actions:
  Enter  - Allocate the selected plan and print the report
  e      - Edit the selected plan in the wizard and save it
  n      - Enter a new plan in the wizard
  q/Esc  - Quit`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVarP(&pickFormat, "format", "o", "", "Output format: text, table, or json (default from config)")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	logging.Debug("picker mode started")

	plans, err := config.ListPlans(plansDir())
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	result, err := tui.RunPicker(plans)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionRender:
		if result.Plan != nil {
			return planAndRender(result.Plan.Request(), result.Plan.Name, pickFormat, "")
		}

	case tui.ActionEdit:
		if result.Plan != nil {
			return editPlan(result.Plan)
		}

	case tui.ActionNew:
		if len(plans) == 0 {
			logInfo("No saved plans, starting the wizard")
		}
		req, err := interactiveRequest(nil)
		if err != nil || req == nil {
			return err
		}
		return planAndRender(req, "", pickFormat, "")

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}

// editPlan opens plan in the wizard and saves the result under the same name.
func editPlan(plan *config.Plan) error {
	req, err := interactiveRequest(plan.Request())
	if err != nil || req == nil {
		return err
	}

	edited := config.NewPlan(plan.Name, req)
	edited.Description = plan.Description
	if err := savePlan(edited, true, audit.EventEdit); err != nil {
		logWarning("Plan %s was not saved", plan.Name)
		return err
	}

	return planAndRender(req, plan.Name, pickFormat, "")
}
