package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Running it without a subcommand serves the API.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog-api",
		Short: "blog-api - REST backend for authors and posts",
		RunE:  runServe,
	}
	cmd.SilenceUsage = true
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newPingCmd())
	return cmd
}

// bootstrap loads the environment, the configuration and the logger.
func bootstrap() (*config.Config, error) {
	// .env is optional; production uses the real environment
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.App.Environment, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	if envErr != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Str("environment", cfg.App.Environment).Msg("Configuration loaded")
	return cfg, nil
}
