// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"junebug/cmd/client/cmd/types"
	"junebug/internal/domain/user"
)

var SignInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Войти в Junebug",
	Long: `Аутентификация на сервере Junebug.

После входа токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		fmt.Print("Username: ")
		var username string
		_, _ = fmt.Scanln(&username)

		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Println("Аутентификация...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if _, err := app.SignIn(ctx, user.SignInRequest{
			Username: username,
			Password: string(password),
		}); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Вход выполнен успешно!")
		return nil
	},
}

var SignOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Забыть сохраненный токен",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.ClearToken(); err != nil {
			return err
		}
		fmt.Println("✓ Токен удален")
		return nil
	},
}
