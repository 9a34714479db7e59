package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/audit"
	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/request"
	"github.com/firefly-engineering/vlsm-ctl/internal/tui"
)

var (
	wizardSave   string
	wizardForce  bool
	wizardFormat string
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Enter a plan interactively",
	Long: `Opens an interactive wizard that asks for the parent network and the LANs,
previews the allocation and prints the final report.

Keys:
  Enter  - Next step / accept
  Esc    - Previous step (cancels on the first step)
  n      - Restart from the confirm step
  Ctrl+C - Cancel`,
	RunE: runWizard,
}

func init() {
	wizardCmd.Flags().StringVar(&wizardSave, "save", "", "Save the entered plan under this name")
	wizardCmd.Flags().BoolVar(&wizardForce, "force", false, "Overwrite an existing plan given by --save")
	wizardCmd.Flags().StringVarP(&wizardFormat, "format", "o", "", "Output format: text, table, or json (default from config)")
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	if wizardSave != "" {
		if err := config.ValidatePlanName(wizardSave); err != nil {
			return errors.ValidationError("invalid --save name: " + err.Error())
		}
		if !wizardForce && planExists(wizardSave) {
			return errors.ValidationError("plan " + wizardSave + " already exists (use --force to overwrite)")
		}
	}

	req, err := interactiveRequest(nil)
	if err != nil || req == nil {
		return err
	}

	if wizardSave != "" {
		if err := savePlan(config.NewPlan(wizardSave, req), wizardForce, audit.EventSave); err != nil {
			return err
		}
	}

	return planAndRender(req, wizardSave, wizardFormat, "")
}

// interactiveRequest runs the wizard. A nil request with a nil error means
// the user cancelled.
func interactiveRequest(seed *request.Request) (*request.Request, error) {
	logging.Debug("wizard started", "seeded", seed != nil)

	req, err := tui.RunWizard(seed)
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	if req == nil {
		logInfo("Cancelled")
		return nil, nil
	}
	return req, nil
}
