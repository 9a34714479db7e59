package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/request"
)

// defaultExportName names exported reports that do not come from a saved plan.
const defaultExportName = "vlsm-report"

var (
	planNames     string
	planHosts     string
	planFile      string
	planName      string
	planFormat    string
	planOutputDir string
)

var planCmd = &cobra.Command{
	Use:   "plan [network] [name=hosts...]",
	Short: "Allocate subnets for a set of LANs",
	Long: `Allocates one subnet per LAN inside the parent network and prints the result.

The parent network is written as address/prefix. LANs are given as
name=hosts arguments, or as two comma-separated lists:

  vlsm-ctl plan 192.168.0.0/24 A=100 B=50 C=25
  vlsm-ctl plan 192.168.0.0/24 --names A,B,C --hosts 100,50,25
  vlsm-ctl plan --plan campus
  vlsm-ctl plan --file ./branch.json --format json

Exit codes: 2 for invalid input, 3 when the LANs do not fit.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planNames, "names", "", "Comma-separated LAN names")
	planCmd.Flags().StringVar(&planHosts, "hosts", "", "Comma-separated host counts, one per name")
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "Read the request from a plan file (TOML or JSON)")
	planCmd.Flags().StringVarP(&planName, "plan", "p", "", "Use a saved plan")
	planCmd.Flags().StringVarP(&planFormat, "format", "o", "", "Output format: text, table, or json (default from config)")
	planCmd.Flags().StringVar(&planOutputDir, "output-dir", "", "Also write the report to this directory")
	planCmd.MarkFlagsMutuallyExclusive("file", "plan")
	planCmd.MarkFlagsRequiredTogether("names", "hosts")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	req, plan, err := planRequest(args)
	if err != nil {
		return err
	}
	return planAndRender(req, plan, planFormat, planOutputDir)
}

// planRequest builds the request from exactly one source: a saved plan,
// a plan file, or the command line. The returned name is set for saved
// plans and plan files.
func planRequest(args []string) (*request.Request, string, error) {
	switch {
	case planName != "" || planFile != "":
		if len(args) > 0 || planNames != "" {
			return nil, "", errors.ValidationError("network arguments cannot be combined with --plan or --file")
		}
		if planName != "" {
			plan, err := loadPlan(planName)
			if err != nil {
				return nil, "", err
			}
			return plan.Request(), plan.Name, nil
		}
		plan, err := loadPlanFile(planFile)
		if err != nil {
			return nil, "", err
		}
		return plan.Request(), plan.Name, nil
	}

	if len(args) == 0 {
		return nil, "", errors.ValidationError("a network is required (e.g. 192.168.0.0/24)")
	}

	req := &request.Request{Network: args[0]}
	var err error
	if planNames != "" {
		if len(args) > 1 {
			return nil, "", errors.ValidationError("name=hosts arguments cannot be combined with --names/--hosts")
		}
		req.Demands, err = request.ParseLists(planNames, planHosts)
	} else {
		req.Demands, err = request.ParseTokens(args[1:])
	}
	if err != nil {
		return nil, "", errors.FromAllocation(err)
	}
	return req, "", nil
}
