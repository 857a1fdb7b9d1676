// cmd/client/cmd/auth/register.go
package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"junebug/cmd/client/cmd/types"
	"junebug/internal/domain/user"
)

var displayName string

var SignUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя на сервере Junebug.

Выданный токен сохраняется локально, отдельный вход не нужен.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Регистрация нового пользователя ===")
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

		fmt.Print("Повторите пароль: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("пароли не совпадают")
		}

		// длину пароля проверяет сервер
		fmt.Println("Регистрация...")
		acc, err := app.SignUp(cmd.Context(), user.SignUpRequest{
			Name:     displayName,
			Username: username,
			Password: string(password),
		})
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Регистрация успешно завершена, %s!\n", acc.Username)
		fmt.Println("Создайте первую задачу: junebug-client tasks add \"water ferns\"")

		return nil
	},
}

func init() {
	SignUpCmd.Flags().StringVarP(&displayName, "name", "n", "", "отображаемое имя")
}
