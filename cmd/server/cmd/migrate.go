package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"junebug/internal/infrastructure/migration"
)

// migrateCmd - родительская команда для управления схемой БД
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Управление схемой PostgreSQL",
	Long:  `Миграции берутся из MIGRATIONS_PATH, если он задан, иначе из бинарника.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Применить все миграции",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migration.NewMigration(cfg, migration.DefaultEngine).Up(); err != nil {
			return err
		}
		fmt.Println("✓ Схема актуальна")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Откатить все миграции",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migration.NewMigration(cfg, migration.DefaultEngine).Down(); err != nil {
			return err
		}
		fmt.Println("✓ Миграции откачены")
		return nil
	},
}
