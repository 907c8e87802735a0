package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blog-backend/internal/infrastructure/database"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the document store is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}

			db := database.NewMongoDB(cfg.DatabaseConfig())
			if err := db.Connect(cmd.Context()); err != nil {
				return err
			}
			defer db.Close(context.Background())

			if err := db.HealthCheck(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: connected to %s\n", cfg.Mongo.Database)
			return nil
		},
	}
}
