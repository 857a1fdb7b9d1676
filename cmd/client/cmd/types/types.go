// Package types holds the values shared between client subcommands.
package types

import (
	"fmt"

	"github.com/spf13/cobra"

	"junebug/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ приложения в контексте команды
const ClientAppKey contextKey = "app"

// App достает приложение, положенное в контекст корневой командой.
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
