package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"

	"weekwise/internal/engine"
	"weekwise/internal/logger"
	"weekwise/internal/models"
	"weekwise/internal/validation"
)

type PlanCmd struct {
	WeekOf string `help:"Week to plan (YYYY-MM-DD of the first working day)." default:""`
	JSON   bool   `help:"Emit the result as JSON instead of tables."`
	Yes    bool   `short:"y" help:"Accept and save the plan without confirmation."`
}

type planEnvelope struct {
	Success  bool                 `json:"success"`
	Error    string               `json:"error,omitempty"`
	WeekOf   string               `json:"week_of,omitempty"`
	Schedule *models.WeekSchedule `json:"schedule,omitempty"`
	Summary  *models.Summary      `json:"summary,omitempty"`
	Warnings []models.Warning     `json:"warnings,omitempty"`
}

func (c *PlanCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return c.fail(err)
	}

	cfg, err := ctx.Store.GetConfig()
	if err != nil {
		return c.fail(fmt.Errorf("failed to get config: %w", err))
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return c.fail(fmt.Errorf("failed to get tasks: %w", err))
	}
	commitments, err := ctx.Store.GetAllCommitments()
	if err != nil {
		return c.fail(fmt.Errorf("failed to get commitments: %w", err))
	}

	v := validation.New()
	for _, res := range []validation.ValidationResult{
		v.ValidateConfig(cfg),
		v.ValidateCommitments(commitments, cfg),
		v.ValidateTasks(tasks, cfg),
	} {
		if res.HasConflicts() && !c.JSON {
			fmt.Print(res.FormatReport())
		}
	}

	result, err := engine.New(cfg).Plan(engine.PlanInput{
		Commitments: commitments,
		Tasks:       tasks,
	})
	if err != nil {
		return c.fail(err)
	}
	logger.Debug("generated weekly plan",
		"tasks", result.Summary.TotalTasks,
		"unscheduled", result.Summary.UnscheduledCount,
		"warnings", len(result.Warnings))

	week := c.WeekOf
	if week == "" {
		week = cfg.WeekOf(time.Now())
	} else if _, err := time.Parse("2006-01-02", week); err != nil {
		return c.fail(fmt.Errorf("invalid week date, use YYYY-MM-DD: %w", err))
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(planEnvelope{
			Success:  true,
			WeekOf:   week,
			Schedule: &result.Schedule,
			Summary:  &result.Summary,
			Warnings: result.Warnings,
		}); err != nil {
			return err
		}
		return c.save(ctx, week, result)
	}

	fmt.Printf("Proposed plan for week of %s:\n", week)
	renderSchedule(result.Schedule)
	renderSummary(result.Summary)
	renderWarnings(result.Warnings)

	if !c.Yes {
		accept := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Accept this plan?").
				Value(&accept),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !accept {
			fmt.Println("Plan discarded. You can adjust tasks and regenerate.")
			return nil
		}
	}

	if err := c.save(ctx, week, result); err != nil {
		return err
	}
	fmt.Println("Plan accepted and saved!")
	return nil
}

func (c *PlanCmd) save(ctx *Context, week string, result engine.PlanResult) error {
	logger.Info("saving weekly plan", "week_of", week)
	return ctx.Store.SaveSchedule(models.SavedSchedule{
		WeekOf:    week,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Schedule:  result.Schedule,
		Summary:   result.Summary,
		Warnings:  result.Warnings,
	})
}

// fail reports the error as a JSON envelope when --json was given, so
// callers scripting the command always get a parseable response.
func (c *PlanCmd) fail(err error) error {
	if !c.JSON {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(planEnvelope{Success: false, Error: err.Error()})
	return err
}
