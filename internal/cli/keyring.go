package cli

import (
	"errors"
	"fmt"
	"strings"

	"weekwise/internal/keyring"
)

// KeyringSetCmd stores the PostgreSQL connection string in the OS keyring.
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	if !strings.HasPrefix(cmd.ConnectionString, "postgres://") &&
		!strings.HasPrefix(cmd.ConnectionString, "postgresql://") &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("✓ Connection string stored in OS keyring")
	fmt.Println("  Use '--config postgres' to plan against the database")
	return nil
}

// KeyringClearCmd removes the stored connection string.
type KeyringClearCmd struct{}

func (cmd *KeyringClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No connection string stored")
			return nil
		}
		return fmt.Errorf("failed to remove connection string from keyring: %w", err)
	}
	fmt.Println("✓ Connection string removed from OS keyring")
	return nil
}
