package engine

import (
	"fmt"
	"time"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

// Engine produces a weekly schedule from commitments and tasks. It is a pure
// computation: no I/O, no persistence, no shared mutable state. One instance
// may serve concurrent Plan calls because every invocation deep-copies the
// working slot state it mutates.
type Engine struct {
	cfg models.PlanConfig

	// Now is injectable for deterministic tests.
	Now func() time.Time
}

func New(cfg models.PlanConfig) *Engine {
	return &Engine{cfg: cfg, Now: time.Now}
}

// PlanInput carries one planning request. The engine never mutates it.
type PlanInput struct {
	Commitments []models.Commitment
	Tasks       []models.Task
}

// PlanResult is a successful planning outcome.
type PlanResult struct {
	Schedule models.WeekSchedule `json:"schedule"`
	Summary  models.Summary      `json:"summary"`
	Warnings []models.Warning    `json:"warnings"`
}

// window is the parsed working-hours configuration, in minutes from
// midnight.
type window struct {
	dayStart   int
	dayEnd     int
	lunchStart int
	lunchEnd   int
}

func (e *Engine) window() (window, error) {
	var w window
	var err error
	if w.dayStart, err = timeutil.ParseClock(e.cfg.Hours.DayStart); err != nil {
		return w, fmt.Errorf("day start: %w", err)
	}
	if w.dayEnd, err = timeutil.ParseClock(e.cfg.Hours.DayEnd); err != nil {
		return w, fmt.Errorf("day end: %w", err)
	}
	if w.lunchStart, err = timeutil.ParseClock(e.cfg.Hours.LunchStart); err != nil {
		return w, fmt.Errorf("lunch start: %w", err)
	}
	if w.lunchEnd, err = timeutil.ParseClock(e.cfg.Hours.LunchEnd); err != nil {
		return w, fmt.Errorf("lunch end: %w", err)
	}
	if w.dayEnd <= w.dayStart {
		return w, fmt.Errorf("day end %s is not after day start %s", e.cfg.Hours.DayEnd, e.cfg.Hours.DayStart)
	}
	return w, nil
}

// Plan runs the full pipeline: blocked-time extraction, prioritization, slot
// discovery, matching, household distribution, and reporting. It either
// returns a complete result or an error; no partial schedule is ever
// produced. Any unexpected fault inside a stage surfaces here as an error,
// never as a panic in the caller.
func (e *Engine) Plan(input PlanInput) (result PlanResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("planning failed: %v", r)
		}
	}()

	w, err := e.window()
	if err != nil {
		return PlanResult{}, fmt.Errorf("working hours: %w", err)
	}
	if len(e.cfg.WorkingDays) == 0 {
		return PlanResult{}, fmt.Errorf("no working days configured")
	}

	now := e.Now()

	blocked, err := extractBlockedTimes(input.Commitments)
	if err != nil {
		return PlanResult{}, err
	}

	ordered, err := e.prioritizeTasks(input.Tasks, now)
	if err != nil {
		return PlanResult{}, err
	}

	slots := e.findFreeSlots(blocked, w)

	scheduled, unscheduled := e.matchTasks(ordered, slots)

	schedule := bucketize(scheduled, unscheduled)
	schedule.FamilyTasks = e.distributeHousehold(schedule.Household)
	schedule.Metadata = e.aggregate(schedule)

	return PlanResult{
		Schedule: schedule,
		Summary:  e.summarize(schedule),
		Warnings: e.warnings(schedule, now),
	}, nil
}

// bucketize splits scheduled tasks into the work/household/personal buckets
// by category. Every task ends up in exactly one bucket or in Unscheduled.
func bucketize(scheduled []models.ScheduledTask, unscheduled []models.Task) models.WeekSchedule {
	ws := models.WeekSchedule{
		Work:        []models.ScheduledTask{},
		Household:   []models.ScheduledTask{},
		Personal:    []models.ScheduledTask{},
		Unscheduled: unscheduled,
		FamilyTasks: map[string][]models.ScheduledTask{},
	}
	if ws.Unscheduled == nil {
		ws.Unscheduled = []models.Task{}
	}
	for _, st := range scheduled {
		switch st.Category {
		case models.CategoryHousehold:
			ws.Household = append(ws.Household, st)
		case models.CategoryPersonal:
			ws.Personal = append(ws.Personal, st)
		default:
			ws.Work = append(ws.Work, st)
		}
	}
	return ws
}
