package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"junebug/cmd/client/cmd/types"
	"junebug/internal/app/client"
)

var offline bool

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "Каталог семян",
	Long: `Показывает каталог семян с сервера и сохраняет его в локальный кэш.

С флагом --offline каталог читается только из кэша.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		seeds, err := app.Seeds(cmd.Context(), offline)
		if errors.Is(err, client.ErrCacheEmpty) {
			return err
		}
		if err != nil {
			return fmt.Errorf("ошибка получения каталога: %w", err)
		}

		if offline {
			cachedAt, err := app.SeedsCachedAt(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("📦 Кэш от %s\n", cachedAt.Local().Format("2006-01-02 15:04"))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tТИП\tПОСЕВ\tУРОЖАЙ")
		for _, s := range seeds {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s-%s\t%s-%s\n",
				s.ID, s.Name, s.Type, s.SowingStart, s.SowingEnd, s.HarvestStart, s.HarvestEnd)
		}
		return w.Flush()
	},
}

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Случайный совет",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		tip, err := app.Tip(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения совета: %w", err)
		}

		fmt.Printf("💡 [%s] %s\n", tip.Category, tip.Text)
		return nil
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить доступность сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}

		fmt.Println("✅ Сервер доступен")
		return nil
	},
}

func init() {
	seedsCmd.Flags().BoolVar(&offline, "offline", false, "читать только локальный кэш")
}
