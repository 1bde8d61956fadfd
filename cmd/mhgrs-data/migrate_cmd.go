package main

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/configuration"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Apply or inspect schema migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args[0])
		},
	}
	return cmd
}

func runMigrate(cmd *cobra.Command, direction string) error {
	conf := configuration.Use()

	db, err := sql.Open("pgx", conf.Database.Opts)
	if err != nil {
		return withCode(exitDB, fmt.Errorf("open database: %w", err))
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return withCode(exitDB, err)
	}

	ctx := cmd.Context()
	switch direction {
	case "up":
		err = goose.UpContext(ctx, db, conf.MigrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, conf.MigrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, conf.MigrationsDir)
	default:
		return withCode(exitUsage, fmt.Errorf("unknown migrate direction %q", direction))
	}
	if err != nil {
		return withCode(exitDBWrite, fmt.Errorf("migrate %s: %w", direction, err))
	}
	return nil
}
