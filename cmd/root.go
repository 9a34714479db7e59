package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "vlsm-ctl",
	Short: "VLSM subnet planning CLI",
	Long: `vlsm-ctl divides an IPv4 network into variable-length subnets.

Given a parent network and the number of hosts each LAN needs, it:
  - Sizes every LAN to the smallest block that fits
  - Places the blocks largest first, back to back
  - Splits the remaining space into power-of-two leftover blocks
  - Prints every block with its usable range, broadcast and mask`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		return loadConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
