package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlgraph/internal/config"
	"github.com/katalvlaran/lvlgraph/internal/logging"
	"github.com/katalvlaran/lvlgraph/internal/metrics"
	"github.com/katalvlaran/lvlgraph/internal/runner"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		cfgPath  string
		workers  int
		timeout  time.Duration
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "run --config <file>",
		Short: "Run every job in a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(config.WithFile(cfgPath)).Load()
			if err != nil {
				return err
			}
			// Flags take precedence over file and env.
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, closeLog, err := logging.New(logging.Config{
				Level:      cfg.Log.Level,
				Format:     cfg.Log.Format,
				File:       cfg.Log.File,
				MaxSize:    cfg.Log.MaxSize,
				MaxBackups: cfg.Log.MaxBackups,
			})
			if err != nil {
				return err
			}
			defer closeLog()

			rec := metrics.New()
			r := runner.New(log,
				runner.WithWorkers(cfg.Workers),
				runner.WithTimeout(cfg.Timeout),
				runner.WithObserver(rec),
			)
			results, runErr := r.Run(cmd.Context(), cfg.Jobs)

			enc := json.NewEncoder(cmd.OutOrStdout())
			failed := 0
			for _, res := range results {
				if res.Status != runner.StatusOK {
					failed++
				}
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("write result %q: %w", res.Job, err)
				}
			}

			if cfg.Metrics.File != "" {
				if err := rec.WriteFile(cfg.Metrics.File); err != nil {
					log.WithError(err).Error("write metrics")
				}
			}
			if runErr != nil {
				return runErr
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML file with settings and jobs")
	cmd.Flags().IntVar(&workers, "workers", 0, "Jobs run at once (env: LVLGRAPH_WORKERS)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-job timeout, 0 disables (env: LVLGRAPH_TIMEOUT)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (env: LVLGRAPH_LOG_LEVEL)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
