package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"weekwise/internal/cli"
	"weekwise/internal/errors"
	"weekwise/internal/keyring"
	"weekwise/internal/logger"
	"weekwise/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	ConfigPath string `name:"config" help:"Storage path (.db for SQLite, .json for a flat file, or 'postgres')." type:"path" default:"~/.config/weekwise/weekwise.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init cli.InitCmd `cmd:"" help:"Initialize weekwise storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Plan cli.PlanCmd `cmd:"" help:"Generate a weekly schedule."`
	Week cli.WeekCmd `cmd:"" help:"Show a saved weekly schedule."`
	Task struct {
		Add     cli.TaskAddCmd     `cmd:"" help:"Add a new task."`
		List    cli.TaskListCmd    `cmd:"" help:"List all tasks."`
		Delete  cli.TaskDeleteCmd  `cmd:"" help:"Delete a task."`
		Restore cli.TaskRestoreCmd `cmd:"" help:"Restore a deleted task."`
	} `cmd:"" help:"Manage tasks."`
	Commitment struct {
		Add    cli.CommitmentAddCmd    `cmd:"" help:"Add a fixed commitment."`
		List   cli.CommitmentListCmd   `cmd:"" help:"List all commitments."`
		Delete cli.CommitmentDeleteCmd `cmd:"" help:"Delete a commitment."`
	} `cmd:"" help:"Manage fixed weekly commitments."`
	Config struct {
		Show   cli.ConfigShowCmd   `cmd:"" help:"Print the current configuration."`
		Export cli.ConfigExportCmd `cmd:"" help:"Export configuration to a YAML file."`
		Import cli.ConfigImportCmd `cmd:"" help:"Import configuration from a YAML file."`
	} `cmd:"" help:"Manage planning configuration."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the store file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Keyring struct {
		Set   cli.KeyringSetCmd   `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Clear cli.KeyringClearCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage database credentials."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("weekwise"),
		kong.Description("Weekly schedule planner for fixed commitments, work and household tasks"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.ConfigPath),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	store, err := openStore(CLI.ConfigPath)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	if err := ctx.Run(&cli.Context{Store: store}); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

// openStore picks the storage backend from the config value: "postgres"
// pulls the connection string from the OS keyring, a .json path selects
// the flat-file store, anything else is treated as a SQLite path.
func openStore(config string) (storage.Provider, error) {
	if config == "postgres" {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("no database credentials, store one with 'weekwise keyring set': %w", err)
		}
		return storage.NewPostgresStore(connStr), nil
	}
	if strings.HasSuffix(config, ".json") {
		return storage.NewJSONStore(config), nil
	}
	return storage.NewSQLiteStore(config), nil
}
