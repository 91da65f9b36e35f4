// Package main provides the entry point for the wordacy dataset CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordacy/cmd/wordacy/commands"
	"wordacy/internal/config"
	"wordacy/internal/observability"
	contextutils "wordacy/internal/utils"
	"wordacy/internal/version"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if cfg.OpenTelemetry.ServiceVersion == "" {
		cfg.OpenTelemetry.ServiceVersion = version.Version
	}

	providers, err := observability.SetupObservability(&cfg.OpenTelemetry, config.ServiceName, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize observability: %v\n", err)
		return 1
	}
	logger := providers.Logger
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		providers.Shutdown(shutdownCtx)
	}()

	metrics, err := observability.NewDatasetMetrics()
	if err != nil {
		logger.Warn(ctx, "Dataset metrics unavailable", map[string]interface{}{"error": err.Error()})
	}

	rootCmd := &cobra.Command{
		Use:   "wordacy",
		Short: "English verb-form dataset tooling",
		Long: `English verb-form dataset tooling

Resolves the five forms of every verb in a closed vocabulary (base, past
tense, past participle, third-person singular, present participle) and
expands them against a fixed template catalog into JSONL records for
supervised fine-tuning.

Configuration is read from $` + config.ConfigFileEnv + ` or ./` + config.DefaultConfigFile + `
when present; every setting can be overridden by environment variables.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				fmt.Printf("Error showing help: %v\n", err)
			}
		},
	}

	rootCmd.AddCommand(commands.GenerateCommand(cfg, logger, metrics))
	rootCmd.AddCommand(commands.FormsCommand(cfg, logger))
	rootCmd.AddCommand(commands.ValidateCommand(cfg, logger))
	rootCmd.AddCommand(commands.TokensCommand(cfg, logger))
	rootCmd.AddCommand(commands.CatalogCommand())
	rootCmd.AddCommand(commands.VersionCommand())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if contextutils.IsFatal(err) {
			return 2
		}
		return 1
	}
	return 0
}
