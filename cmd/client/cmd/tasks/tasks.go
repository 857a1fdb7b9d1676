// cmd/client/cmd/tasks/tasks.go
package tasks

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"junebug/cmd/client/cmd/types"
	"junebug/internal/domain/task"
)

var (
	dueDate string
	undo    bool
)

// TasksCmd - родительская команда для работы с задачами
var TasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Задачи пользователя",
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список задач",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		tasks, err := app.Tasks(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения задач: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("Задачи не найдены")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tСРОК\t\tТЕКСТ")
		for _, t := range tasks {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.DueDate, status(t), t.Text)
		}
		return w.Flush()
	},
}

var AddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Добавить задачу",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		t, err := app.AddTask(cmd.Context(), strings.Join(args, " "), dueDate)
		if err != nil {
			return fmt.Errorf("ошибка создания задачи: %w", err)
		}

		fmt.Printf("✓ Задача создана: %s (срок %s)\n", t.ID, t.DueDate)
		return nil
	},
}

var DoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Отметить задачу выполненной",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("неверный id задачи: %w", err)
		}

		t, err := app.CompleteTask(cmd.Context(), id, !undo)
		if err != nil {
			return fmt.Errorf("ошибка обновления задачи: %w", err)
		}

		fmt.Printf("%s %s\n", status(t), t.Text)
		return nil
	},
}

var RemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Удалить задачу",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("неверный id задачи: %w", err)
		}

		t, err := app.DeleteTask(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка удаления задачи: %w", err)
		}

		fmt.Printf("✓ Задача удалена: %s\n", t.Text)
		return nil
	},
}

func status(t task.Task) string {
	if t.IsCompleted {
		return "✓"
	}
	return "·"
}

func init() {
	AddCmd.Flags().StringVarP(&dueDate, "due", "d", "", "срок в формате YYYY-MM-DD (по умолчанию сегодня)")
	DoneCmd.Flags().BoolVar(&undo, "undo", false, "снять отметку о выполнении")
}
