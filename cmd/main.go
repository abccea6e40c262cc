package main

import (
	"context"
	"fmt"
	"github.com/rycus86/tram-stop-hours/pkg/config"
	"github.com/rycus86/tram-stop-hours/pkg/server"
	"github.com/rycus86/tram-stop-hours/pkg/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"strings"
	"time"
)

var (
	configFile  string
	verbose     bool
	metricsAddr string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tram-stop-hours",
		Short: "Manage hourly passenger records for tram stops",
		Long: `Interactive console for tram stop hour records.

Records live in memory only and start from a fixed seed set. Use the numbered
menu to add, edit, delete, list and summarize them; an empty line exits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().StringVar(&configFile, "config", "", "YAML config file (optional)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "",
		"serve Prometheus metrics on this address (alternatively set TRAMSTOP_METRICS_ADDR)")

	return cmd
}

// resolveOptions applies command line flags on top of the loaded config.
func resolveOptions(cfg *config.Config, verbose bool, metricsAddr string) (zapcore.Level, string, error) {
	level, err := cfg.Level()
	if err != nil {
		return level, "", err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	addr := cfg.MetricsAddr
	if flagAddr := strings.TrimSpace(metricsAddr); flagAddr != "" {
		addr = flagAddr
	}

	return level, addr, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	level, addr, err := resolveOptions(cfg, verbose, metricsAddr)
	if err != nil {
		return err
	}

	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if addr != "" {
		metrics := server.Start(addr, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := metrics.Shutdown(ctx); err != nil {
				logger.Warn("metrics server shutdown", zap.Error(err))
			}
		}()
	}

	store := cfg.NewStore()
	logger.Debug("store ready", zap.Int("records", store.Len()))

	return shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
