package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/logger"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "queuedemo",
		Short:         "Walk through the bounded queue API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLogger(cmd, opts, func(cfg settings.Config, log *zap.Logger) error {
				log.Debug("running primes walkthrough")
				return runPrimes(cmd.OutOrStdout())
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")
	flags.StringVar(&opts.logFile, "log-file", "", "rotated log file (overrides config)")

	cmd.AddCommand(newRunCmd(opts))
	return cmd
}

// loadConfig reads the config file, if any, and applies flag overrides.
func (o *rootOptions) loadConfig() (settings.Config, error) {
	cfg := settings.Default()
	if o.configPath != "" {
		loaded, err := settings.Load(o.configPath)
		if err != nil {
			return settings.Config{}, err
		}
		cfg = loaded
	}
	if o.logLevel != "" {
		cfg.Logger.LogLevel = o.logLevel
	}
	if o.logFile != "" {
		cfg.Logger.FileLogName = o.logFile
	}
	return cfg, nil
}

// withLogger loads configuration, builds the logger and runs fn.
// A failure from fn is logged and printed with its stack trace.
func withLogger(cmd *cobra.Command, opts *rootOptions, fn func(settings.Config, *zap.Logger) error) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", err)
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", err)
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := fn(cfg, log); err != nil {
		log.Error("queue demo failed", zap.String("command", cmd.Name()), zap.Error(err))
		fmt.Fprintf(cmd.ErrOrStderr(), "%+v\n", err)
		return err
	}
	return nil
}
