package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"junebug/cmd/client/cmd/types"
)

var MeCmd = &cobra.Command{
	Use:   "me",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		me, err := app.Me(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("ID:          %s\n", me.UserID)
		fmt.Printf("Username:    %s\n", me.Username)
		if me.Name != "" {
			fmt.Printf("Имя:         %s\n", me.Name)
		}
		if me.Location != "" {
			fmt.Printf("Место:       %s\n", me.Location)
		}
		fmt.Printf("Регистрация: %s\n", me.Created.Local().Format("2006-01-02 15:04"))
		return nil
	},
}
