package cli

import (
	"fmt"
	"strconv"

	"cpu-scheduler/internal/report"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List saved runs, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				run, err := st.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("run %q not found", args[0])
				}
				return report.Render(out, run.Response)
			}

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No saved runs.")
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"ID", "Algorithm", "Quantum", "Processes", "Avg TaT", "Avg WT", "Created"})
			for _, run := range runs {
				quantum := "-"
				if run.Response.TimeQuantum > 0 {
					quantum = strconv.Itoa(run.Response.TimeQuantum)
				}
				table.Append([]string{
					run.ID,
					run.Response.Algorithm,
					quantum,
					strconv.Itoa(len(run.Response.Details)),
					fmt.Sprintf("%.2f", run.Response.AverageTurnAroundTime),
					fmt.Sprintf("%.2f", run.Response.AverageWaitingTime),
					run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")

	return cmd
}
