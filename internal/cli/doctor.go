package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"weekwise/internal/backup"
	"weekwise/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	if storeReachable {
		if err := checkData(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, err := ctx.Store.GetConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func checkData(ctx *Context) error {
	cfg, err := ctx.Store.GetConfig()
	if err != nil {
		return err
	}
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	commitments, err := ctx.Store.GetAllCommitments()
	if err != nil {
		return fmt.Errorf("failed to get commitments: %w", err)
	}

	taskIDs := make(map[string]bool)
	for _, task := range tasks {
		if taskIDs[task.ID] {
			return fmt.Errorf("duplicate task ID found: %s", task.ID)
		}
		taskIDs[task.ID] = true
	}

	v := validation.New()
	for _, res := range []validation.ValidationResult{
		v.ValidateConfig(cfg),
		v.ValidateCommitments(commitments, cfg),
		v.ValidateTasks(tasks, cfg),
	} {
		if res.HasConflicts() {
			return fmt.Errorf("validation conflicts found:\n%s", res.FormatReport())
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	if ctx.Store.GetConfigPath() == "postgres" {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider creating one with 'weekwise backup create'")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}

// checkDuplicateProcess warns when another weekwise process is running,
// since two writers can race on the same store file.
func checkDuplicateProcess() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), "weekwise") {
			return fmt.Errorf("another weekwise process is running (pid %d)", p.Pid())
		}
	}
	return nil
}
