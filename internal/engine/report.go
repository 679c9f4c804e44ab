package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

const (
	overloadHours = 10
	busyDayHours  = 8
	riskHorizon   = 2 // days
)

// aggregate computes the schedule metadata: totals across all buckets and a
// per-day workload map in hours.
func (e *Engine) aggregate(ws models.WeekSchedule) models.ScheduleMetadata {
	daily := make(map[string]float64, len(e.cfg.WorkingDays))
	dayMinutes := make(map[time.Weekday]int, len(e.cfg.WorkingDays))
	for _, day := range e.cfg.WorkingDays {
		daily[day.String()] = 0
	}

	totalMinutes := 0
	all := ws.AllScheduled()
	for _, st := range all {
		dur := st.EstimatedDuration()
		totalMinutes += dur
		dayMinutes[st.Day] += dur
	}
	for day, min := range dayMinutes {
		daily[day.String()] = round1(float64(min) / 60)
	}

	return models.ScheduleMetadata{
		TotalTasks:    len(all),
		TotalHours:    round1(float64(totalMinutes) / 60),
		DailyWorkload: daily,
	}
}

// summarize projects the metadata into the compact summary returned to
// callers alongside the schedule.
func (e *Engine) summarize(ws models.WeekSchedule) models.Summary {
	load := make(map[string]int, len(ws.FamilyTasks))
	for role, tasks := range ws.FamilyTasks {
		load[role] = len(tasks)
	}

	busy := []string{}
	for _, day := range e.cfg.WorkingDays {
		if ws.Metadata.DailyWorkload[day.String()] > busyDayHours {
			busy = append(busy, day.String())
		}
	}

	return models.Summary{
		TotalTasks:       ws.Metadata.TotalTasks,
		TotalHours:       ws.Metadata.TotalHours,
		UnscheduledCount: len(ws.Unscheduled),
		FamilyLoad:       load,
		BusyDays:         busy,
	}
}

// warnings derives overload, unscheduled, and deadline-risk warnings from
// the finished schedule. Warnings are informational; they never change the
// schedule.
func (e *Engine) warnings(ws models.WeekSchedule, now time.Time) []models.Warning {
	warnings := []models.Warning{}

	for _, day := range e.cfg.WorkingDays {
		name := day.String()
		if hours := ws.Metadata.DailyWorkload[name]; hours > overloadHours {
			warnings = append(warnings, models.Warning{
				Kind:    models.WarningOverload,
				Day:     name,
				Message: fmt.Sprintf("%s is overloaded with %.1f scheduled hours", name, hours),
			})
		}
	}

	if len(ws.Unscheduled) > 0 {
		names := make([]string, 0, len(ws.Unscheduled))
		for _, t := range ws.Unscheduled {
			names = append(names, t.Name)
		}
		warnings = append(warnings, models.Warning{
			Kind:    models.WarningUnscheduled,
			Message: fmt.Sprintf("%d task(s) could not be scheduled: %s", len(names), strings.Join(names, ", ")),
		})
	}

	for _, t := range ws.Unscheduled {
		if t.Deadline == "" {
			continue
		}
		deadline, err := timeutil.ParseDate(t.Deadline)
		if err != nil {
			// Deadlines were already validated during prioritization.
			continue
		}
		if daysLeft := timeutil.DaysUntil(now, deadline); daysLeft <= riskHorizon {
			warnings = append(warnings, models.Warning{
				Kind:    models.WarningDeadlineRisk,
				TaskID:  t.ID,
				Message: fmt.Sprintf("unscheduled task %q has a deadline in %d day(s)", t.Name, daysLeft),
			})
		}
	}

	return warnings
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
