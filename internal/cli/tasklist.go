package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

type TaskListCmd struct {
	Category string `short:"c" help:"Show only tasks in this category."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Name", "Category", "Duration", "Deadline", "Energy"})
	shown := 0
	for _, t := range tasks {
		if c.Category != "" && string(t.Category) != c.Category {
			continue
		}
		tw.AppendRow(table.Row{
			shortID(t.ID),
			t.Name,
			t.Category,
			formatDuration(t.EstimatedDuration()),
			t.Deadline,
			t.Energy,
		})
		shown++
	}
	if shown == 0 {
		fmt.Println("No tasks found")
		return nil
	}
	tw.Render()
	return nil
}
