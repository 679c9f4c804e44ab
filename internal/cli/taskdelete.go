package cli

import "fmt"

type TaskDeleteCmd struct {
	ID string `arg:"" help:"ID of the task to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task: %s (restore with 'weekwise task restore %s')\n", task.Name, c.ID)
	return nil
}

type TaskRestoreCmd struct {
	ID string `arg:"" help:"ID of the task to restore."`
}

func (c *TaskRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.RestoreTask(c.ID); err != nil {
		return err
	}
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Restored task: %s\n", task.Name)
	return nil
}
