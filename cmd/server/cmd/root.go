// cmd/server/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/config"
	"junebug/internal/utils/logger"
)

var (
	cfg *config.Config
	log *slog.Logger

	runAddress  string
	storageKind string
)

var rootCmd = &cobra.Command{
	Use:   "junebug",
	Short: "Junebug Journal - API садового дневника",
	Long: `Junebug Journal хранит пользователей, их растения, задачи и заметки,
общий журнал и справочник семян с советами.

Без подкоманды запускает HTTP-сервер, как и "junebug serve".`,
	PersistentPreRunE: setup,
	RunE:              runServe,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// флаги важнее окружения
	if runAddress != "" {
		cfg.Server.RunAddress = runAddress
	}
	if storageKind != "" {
		cfg.Storage = storageKind
	}

	log = logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&runAddress, "address", "a", "", "адрес сервера (по умолчанию RUN_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&storageKind, "storage", "", "хранилище: postgres или memory")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
