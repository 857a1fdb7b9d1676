package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"junebug/internal/app/server"
	"junebug/internal/domain/catalog"
	"junebug/internal/infrastructure/storage"
	"junebug/internal/utils/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Перезалить справочник семян и советов",
	Long:  `Очищает семена и советы и загружает данные, вшитые в бинарник. То же, что RESET_DB при старте.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := storage.Open(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("ошибка открытия хранилища: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Error("close storage", logger.Err(err))
			}
		}()

		if err := server.ResetCatalog(cmd.Context(), catalog.NewService(store.Catalog(), log)); err != nil {
			return err
		}

		fmt.Println("✓ Справочники обновлены")
		return nil
	},
}
