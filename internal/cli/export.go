package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <run id>",
	Short: "Write CSV and JSON artifacts for a stored run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := client.ExportRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Exported run %s to %s\n", summary.RunID, summary.Directory)
		return nil
	},
}

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List exported runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := client.Runs(runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No exported runs")
			return nil
		}
		fmt.Printf("%-38s %-6s %s\n", "RUN", "IONS", "CREATED")
		for _, run := range runs {
			fmt.Printf("%-38s %-6d %s\n", run.RunID, run.IonCount, run.CreatedAtUTC)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "max runs to list")
}
