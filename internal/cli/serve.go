package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cpu-scheduler/api"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/store"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling engines over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = cfg.Port
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var st store.Store
			if !noHistory {
				sqlite, err := openStore(ctx)
				if err != nil {
					return fmt.Errorf("open history: %w", err)
				}
				defer sqlite.Close()
				st = sqlite
			}

			handler := api.NewSchedulerHandlerImpl(cfg, schedulers.NewEngine(logger), st, logger)
			app := api.NewApp(handler)

			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					logger.Error("shutdown", "error", err)
				}
			}()

			addr := fmt.Sprintf(":%d", port)
			logger.Info("listening", "addr", addr, "history", !noHistory)
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (default from config)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record runs")

	return cmd
}
