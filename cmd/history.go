package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/app"
	"github.com/firefly-engineering/vlsm-ctl/internal/audit"
	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
)

var (
	historyJSONL bool
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history <plan>",
	Short: "Display the history of a saved plan",
	Long: `Shows when a saved plan was saved, edited, allocated and exported,
and any allocation errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSONL, "jsonl", false, "Output events as JSON lines")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the history")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := config.ValidatePlanName(name); err != nil {
		return errors.ValidationError(err.Error())
	}

	logger := audit.NewLogger(paths().HistoryDir)

	if historyClear {
		if err := logger.Remove(name); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		logSuccess("Cleared history for %s", name)
		return nil
	}

	events, err := logger.Events(name)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(events) == 0 {
		logInfo("No events found for plan %s", name)
		return nil
	}

	out := app.Default.Out
	for _, e := range events {
		if historyJSONL {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Fprintln(out, string(data))
		} else {
			ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
			if e.Details != "" {
				fmt.Fprintf(out, "[%s] %-8s %s (%s)\n", ts, e.Type, e.Plan, e.Details)
			} else {
				fmt.Fprintf(out, "[%s] %-8s %s\n", ts, e.Type, e.Plan)
			}
		}
	}

	return nil
}
