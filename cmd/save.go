package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/audit"
	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/request"
)

var (
	saveDescription string
	saveNames       string
	saveHosts       string
	saveForce       bool
)

var saveCmd = &cobra.Command{
	Use:   "save <name> <network> [name=hosts...]",
	Short: "Save a plan for later use",
	Long: `Saves a network and its LANs as a plan file in the plans directory.

  vlsm-ctl save campus 192.168.0.0/24 A=100 B=50 C=25
  vlsm-ctl save campus 192.168.0.0/24 --names A,B,C --hosts 100,50,25

Saved plans are used with 'vlsm-ctl plan --plan <name>' and 'vlsm-ctl pick'.
The plan must allocate before it is saved.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVarP(&saveDescription, "description", "d", "", "Plan description")
	saveCmd.Flags().StringVar(&saveNames, "names", "", "Comma-separated LAN names")
	saveCmd.Flags().StringVar(&saveHosts, "hosts", "", "Comma-separated host counts, one per name")
	saveCmd.Flags().BoolVar(&saveForce, "force", false, "Overwrite an existing plan")
	saveCmd.MarkFlagsRequiredTogether("names", "hosts")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	name, network := args[0], args[1]

	req := &request.Request{Network: network}
	var err error
	if saveNames != "" {
		if len(args) > 2 {
			return errors.ValidationError("name=hosts arguments cannot be combined with --names/--hosts")
		}
		req.Demands, err = request.ParseLists(saveNames, saveHosts)
	} else {
		req.Demands, err = request.ParseTokens(args[2:])
	}
	if err != nil {
		return errors.FromAllocation(err)
	}

	// Plans that cannot be allocated are not worth keeping
	if _, err := req.Allocate(); err != nil {
		return errors.FromAllocation(err)
	}

	plan := config.NewPlan(name, req)
	plan.Description = saveDescription
	return savePlan(plan, saveForce, audit.EventSave)
}
