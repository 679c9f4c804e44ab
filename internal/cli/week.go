package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"weekwise/internal/models"
)

type WeekCmd struct {
	WeekOf string `arg:"" optional:"" help:"Week to show (YYYY-MM-DD), defaults to the latest saved plan."`
	JSON   bool   `help:"Emit the saved schedule as JSON."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var saved models.SavedSchedule
	var err error
	if c.WeekOf == "" {
		saved, err = ctx.Store.GetLatestSchedule()
	} else {
		saved, err = ctx.Store.GetSchedule(c.WeekOf)
	}
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(saved)
	}

	fmt.Printf("Week of %s (saved %s):\n", saved.WeekOf, saved.CreatedAt)
	renderSchedule(saved.Schedule)
	renderSummary(saved.Summary)
	renderWarnings(saved.Warnings)
	return nil
}
