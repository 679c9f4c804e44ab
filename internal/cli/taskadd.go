package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"weekwise/internal/models"
)

type TaskAddCmd struct {
	Name        string `arg:"" help:"Task name."`
	Category    string `short:"c" help:"Category (salary|vat|reconciliation|reporting|client_work|household|personal)." required:""`
	Duration    int    `short:"d" help:"Duration in minutes." default:"30"`
	Deadline    string `help:"Deadline (YYYY-MM-DD)."`
	Buffer      int    `help:"Days before the deadline when urgency spikes." default:"0"`
	Energy      string `short:"e" help:"Required energy level (low|medium|high)."`
	Flexibility string `short:"f" help:"Location flexibility (anywhere|remote_possible|office_only)."`
	Preferred   string `short:"p" help:"Preferred time of day (morning|afternoon|evening)."`
	Context     string `help:"Context (work|home)."`
	SuitableFor string `short:"s" help:"Comma-separated family roles, in preference order."`
}

func (c *TaskAddCmd) Validate() error {
	switch models.Category(c.Category) {
	case models.CategorySalary, models.CategoryVAT, models.CategoryReconciliation,
		models.CategoryReporting, models.CategoryClientWork,
		models.CategoryHousehold, models.CategoryPersonal:
	default:
		return fmt.Errorf("invalid category: %s", c.Category)
	}
	if c.Deadline != "" {
		if _, err := time.Parse("2006-01-02", c.Deadline); err != nil {
			return fmt.Errorf("invalid deadline, use YYYY-MM-DD: %w", err)
		}
	}
	switch models.EnergyLevel(c.Energy) {
	case "", models.EnergyLow, models.EnergyMedium, models.EnergyHigh:
	default:
		return fmt.Errorf("invalid energy level: %s", c.Energy)
	}
	switch models.LocationFlexibility(c.Flexibility) {
	case "", models.LocationAnywhere, models.LocationRemotePossible, models.LocationOfficeOnly:
	default:
		return fmt.Errorf("invalid flexibility: %s", c.Flexibility)
	}
	switch models.DayPeriod(c.Preferred) {
	case "", models.PeriodMorning, models.PeriodAfternoon, models.PeriodEvening:
	default:
		return fmt.Errorf("invalid preferred time: %s", c.Preferred)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var suitable []string
	if c.SuitableFor != "" {
		for _, part := range strings.Split(c.SuitableFor, ",") {
			suitable = append(suitable, strings.TrimSpace(part))
		}
	}

	task := models.Task{
		ID:            uuid.New().String(),
		Name:          c.Name,
		Category:      models.Category(c.Category),
		Deadline:      c.Deadline,
		BufferDays:    c.Buffer,
		DurationMin:   c.Duration,
		Energy:        models.EnergyLevel(c.Energy),
		Flexibility:   models.LocationFlexibility(c.Flexibility),
		PreferredTime: models.DayPeriod(c.Preferred),
		Context:       models.TaskContext(c.Context),
		SuitableFor:   suitable,
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", c.Name, task.ID)
	return nil
}
