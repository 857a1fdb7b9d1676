// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"junebug/cmd/client/cmd/auth"
	"junebug/cmd/client/cmd/tasks"
	"junebug/cmd/client/cmd/types"
	"junebug/internal/app/client"
	"junebug/internal/app/client/config"
	"junebug/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "junebug-client",
	Short: "Junebug - клиент садового дневника",
	Long: `Junebug-client работает с API Junebug Journal: регистрация и вход,
задачи, каталог семян (с офлайн-кэшем) и случайные советы.

Токен доступа сохраняется в TOKEN_PATH после signup или signin.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.NewWithLevel(cfg.Env, level)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера Junebug (host:port)")

	rootCmd.AddCommand(auth.SignUpCmd)
	rootCmd.AddCommand(auth.SignInCmd)
	rootCmd.AddCommand(auth.SignOutCmd)
	rootCmd.AddCommand(auth.MeCmd)

	rootCmd.AddCommand(tasks.TasksCmd)
	tasks.TasksCmd.AddCommand(tasks.ListCmd)
	tasks.TasksCmd.AddCommand(tasks.AddCmd)
	tasks.TasksCmd.AddCommand(tasks.DoneCmd)
	tasks.TasksCmd.AddCommand(tasks.RemoveCmd)

	rootCmd.AddCommand(seedsCmd)
	rootCmd.AddCommand(tipCmd)
	rootCmd.AddCommand(pingCmd)
}
