// Package main provides the CLI entry point for sheetseed.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dealerworks/sheetseed/pkg/sheetseed"
	"github.com/dealerworks/sheetseed/pkg/sheetseed/config"
)

var (
	configPath string
	envFile    string
	chunkSize  int
	dryRun     bool
	relax      bool
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetseed [workbook.xlsx]",
		Short: "Seed the sale-event backend from a dealership workbook",
		Long: `sheetseed reads a sale-event workbook (roster, lenders, inventory,
deal log, mail tracking) and writes normalized records to the backend's
REST API, all tied to a single resolved event.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: $SHEETSEED_CONFIG)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Env file with credentials (default: .env if present)")
	rootCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Records per insert call (default: 20)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Extract and report counts without writing")
	rootCmd.Flags().BoolVar(&relax, "relax-constraints", false,
		"Allow the privileged fallback that drops events.created_by NOT NULL when event creation is rejected")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	workbook := args[0]
	if _, err := os.Stat(workbook); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", workbook)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	} else {
		// Best effort: a .env alongside the invocation is optional.
		_ = godotenv.Load()
	}

	if configPath == "" {
		configPath = os.Getenv("SHEETSEED_CONFIG")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if chunkSize > 0 {
		cfg.ChunkSize = chunkSize
	}
	if relax {
		cfg.AllowSchemaRelax = true
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if !dryRun {
		if cfg.SupabaseURL == "" || cfg.ServiceKey == "" {
			return fmt.Errorf("supabase_url and service_key are required (set SHEETSEED_SUPABASE_URL / SHEETSEED_SERVICE_KEY)")
		}
		if cfg.AllowSchemaRelax && (cfg.MgmtToken == "" || cfg.ProjectRef == "") {
			return fmt.Errorf("--relax-constraints needs mgmt_token and project_ref")
		}
	}

	seeder := sheetseed.New(cfg, logger)
	rep, err := seeder.Run(cmd.Context(), workbook, sheetseed.Options{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if rep.Resolution.UsedFallback {
		logger.Warn().Msg("event was created through the management channel; events.created_by NOT NULL was dropped")
	}
	for _, st := range rep.Stages {
		fmt.Printf("%-14s %4d extracted, %4d written, %d failed chunks\n",
			st.Stage, st.Extracted, st.Written, st.FailedChunks)
	}
	return nil
}
