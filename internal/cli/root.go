package cli

import (
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "Simulate FCFS, SJF and Round Robin CPU scheduling",
		Long: `cpusched runs First Come First Served, non-preemptive Shortest Job First
and Round Robin over a set of processes and reports completion, turnaround
and wait time per process together with the averages.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded

			level, format := cfg.LogLevel, cfg.LogFormat
			if cmd.Flags().Changed("log-level") {
				level = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				format = flagLogFormat
			}
			if flagDebug {
				level = "debug"
			}
			logger, err = logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, Format: format})
			return err
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newInteractiveCmd(),
		newServeCmd(),
		newHistoryCmd(),
	)

	return root
}
