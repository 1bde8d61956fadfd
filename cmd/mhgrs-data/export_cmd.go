package main

import (
	"github.com/spf13/cobra"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/infrastructure/persistence"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/seed"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/composables"
	"github.com/vinit-solanki/BhashniHackathon-MHGRS/pkg/configuration"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export-users",
		Short: "Export all user names to a CSV name pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := connectDB(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			ctx = composables.WithPool(ctx, pool)

			users := persistence.NewUserRepository()
			if err := seed.ExportUserNames(ctx, users, outPath, configuration.Use().Logger()); err != nil {
				return withCode(exitDB, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "users.csv", "output CSV path")
	return cmd
}
