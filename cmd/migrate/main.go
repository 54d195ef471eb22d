package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/db"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/seed"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/uow"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "SwasthaLink database tooling",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(applyCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyCmd() *cobra.Command {
	var dir, atlasBin string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply pending schema migrations with atlas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
			return applyMigrations(cmd.Context(), logger, cfg.DB, dir, atlasBin)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "migrations", "migration directory")
	cmd.Flags().StringVar(&atlasBin, "atlas", "atlas", "atlas binary")
	return cmd
}

func seedCmd() *cobra.Command {
	var plainPassword string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo accounts, doctors and pharmacies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

			pool, cleanup, err := db.Connect(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			seeder := seed.NewSeeder(uow.NewPostgresUoW(pool, sqlc.New()), clock.NewRealClock(), logger)
			res, err := seeder.Run(cmd.Context(), seed.Default, plainPassword)
			if err != nil {
				return err
			}
			logger.Info("シードデータを投入しました",
				"accounts", res.Accounts,
				"doctors", res.Doctors,
				"pharmacies", res.Pharmacies,
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&plainPassword, "password", "password123", "password for every seeded account")
	return cmd
}

func applyMigrations(ctx context.Context, logger *slog.Logger, cfg config.DBConfig, dir, atlasBin string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve migration dir: %w", err)
	}

	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + abs,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("マイグレーションを適用しました",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
