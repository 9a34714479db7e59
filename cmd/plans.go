package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/app"
	"github.com/firefly-engineering/vlsm-ctl/internal/config"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List saved plans",
	RunE:  runPlans,
}

func init() {
	rootCmd.AddCommand(plansCmd)
}

func runPlans(cmd *cobra.Command, args []string) error {
	plans, err := config.ListPlans(plansDir())
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	if len(plans) == 0 {
		logInfo("No plans found. Create one with: vlsm-ctl save <name> <network> name=hosts...")
		return nil
	}

	w := tabwriter.NewWriter(app.Default.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNETWORK\tLANS\tHOSTS\tDESCRIPTION")
	fmt.Fprintln(w, "----\t-------\t----\t-----\t-----------")

	for _, p := range plans {
		hosts := 0
		for _, d := range p.Demands {
			hosts += d.Hosts
		}
		description := p.Description
		if description == "" {
			description = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", p.Name, p.Network, len(p.Demands), hosts, description)
	}

	return w.Flush()
}
