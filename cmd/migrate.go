package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/migrations"
)

func migrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить схему базы данных",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openDB(cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migrations.Apply(context.Background(), db, log); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			log.Info("Migrations applied")
			return nil
		},
	}

	// migrate list
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Показать файлы схемы в порядке применения",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := migrations.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	return cmd
}
