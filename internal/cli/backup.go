package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"weekwise/internal/backup"
)

func backupManager(ctx *Context) (*backup.Manager, error) {
	path := ctx.Store.GetConfigPath()
	if path == "postgres" {
		return nil, fmt.Errorf("backups only apply to file-backed stores, use pg_dump for PostgreSQL")
	}
	return backup.NewManager(path), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Created", "Size", "Path"})
	for _, b := range backups {
		tw.AppendRow(table.Row{
			b.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d B", b.Size),
			b.Path,
		})
	}
	tw.Render()
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore." type:"path"`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}
	fmt.Println("Store restored from backup")
	return nil
}
