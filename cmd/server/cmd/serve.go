package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"junebug/internal/app/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP-сервер",
	Long: `Открывает хранилище (при postgres применяет миграции), при RESET_DB
перезаливает справочники и обслуживает API до SIGINT/SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := server.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации сервера: %w", err)
	}
	return app.Run(cmd.Context())
}
