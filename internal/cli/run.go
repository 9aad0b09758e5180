package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/store"

	"github.com/spf13/cobra"
)

type outputOptions struct {
	export    bool
	exportDir string
	save      bool
	asJSON    bool
}

func newRunCmd() *cobra.Command {
	var algorithmName string
	var input string
	var quantum int
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule processes from a file",
		Long: `Schedule the processes in a comma-delimited (pid,arrival,burst) or YAML file.
Use "-" to read comma-delimited records from stdin.`,
		Example: `  cpusched run -a fcfs -i processes.csv
  cpusched run -a rr -q 4 -i processes.yaml --export
  cpusched run -a all -i processes.csv --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := schedulers.ParseAlgorithm(algorithmName)
			if err != nil {
				return err
			}

			var processes []core.Process
			if input == "-" {
				processes, err = loader.LoadCSV(cmd.InOrStdin())
			} else {
				processes, err = loader.LoadFile(input)
			}
			if err != nil {
				return fmt.Errorf("load processes: %w", err)
			}

			if !cmd.Flags().Changed("quantum") {
				quantum = cfg.RoundRobinTimeQuantum
			}
			if !cmd.Flags().Changed("export-dir") {
				opts.exportDir = cfg.ExportDir
			}
			return execute(cmd, algorithm, processes, quantum, opts)
		},
	}

	cmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "fcfs", "Algorithm: fcfs, sjf, rr or all")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Process file (.csv, .txt, .yaml) or - for stdin")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().BoolVar(&opts.export, "export", false, "Write the report to a timestamped file")
	cmd.Flags().StringVar(&opts.exportDir, "export-dir", ".", "Directory for exported reports (default from config)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Record the run in the history database")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the result as JSON instead of a table")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// execute schedules processes with algorithm, prints the result and applies
// the export and save options.
func execute(cmd *cobra.Command, algorithm schedulers.Algorithm, processes []core.Process, quantum int, opts outputOptions) error {
	request := requests.ScheduleRequests{
		Algorithm: string(algorithm),
		Jobs:      requests.FromProcesses(processes),
	}.WithQuantum(quantum)
	engine := schedulers.NewEngine(logger)

	var all []responses.ScheduleResponse
	if algorithm == schedulers.AlgorithmAll {
		var err error
		all, err = engine.ScheduleAll(request)
		if err != nil {
			return err
		}
	} else {
		response, err := engine.Schedule(algorithm, request)
		if err != nil {
			return err
		}
		all = []responses.ScheduleResponse{response}
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.asJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		var v any = all
		if len(all) == 1 {
			v = all[0]
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	case len(all) > 1:
		if err := report.RenderComparison(out, all); err != nil {
			return err
		}
	default:
		if err := report.Render(out, all[0]); err != nil {
			return err
		}
	}

	if opts.export {
		now := time.Now()
		for _, response := range all {
			path, err := report.Export(opts.exportDir, response, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s\n", path)
		}
	}

	if opts.save {
		if err := saveRuns(cmd.Context(), request, all); err != nil {
			return err
		}
	}
	return nil
}

func openStore(ctx context.Context) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(cfg.StorePath, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func saveRuns(ctx context.Context, request requests.ScheduleRequests, all []responses.ScheduleResponse) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer st.Close()

	for _, response := range all {
		run := &store.Run{Jobs: request.Jobs, Response: response}
		if err := st.SaveRun(ctx, run); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.Info("run saved", "id", run.ID, "algorithm", response.Algorithm)
	}
	return nil
}
