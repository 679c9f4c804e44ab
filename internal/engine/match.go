package engine

import (
	"time"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

// matchTasks greedily assigns prioritized tasks to the best-scoring free
// slot. It works on a private deep copy of the slot map; caller-owned slot
// state is never touched. Each task is considered exactly once and either
// consumes (part of) a slot or lands in the unscheduled list.
func (e *Engine) matchTasks(ordered []scoredTask, slots map[time.Weekday][]models.TimeSlot) ([]models.ScheduledTask, []models.Task) {
	arena := copySlots(slots, e.cfg.WorkingDays)

	scheduled := []models.ScheduledTask{}
	unscheduled := []models.Task{}

	for _, st := range ordered {
		dur := st.EstimatedDuration()

		bestScore := -1
		bestDay := time.Weekday(-1)
		bestIdx := -1

		for dayIdx, day := range e.cfg.WorkingDays {
			for i, slot := range arena[day] {
				if slot.DurationMin() < dur {
					continue
				}
				// Strictly greater: the first slot encountered wins ties.
				if score := e.scoreSlot(st, slot, dayIdx); score > bestScore {
					bestScore = score
					bestDay = day
					bestIdx = i
				}
			}
		}

		if bestIdx < 0 {
			unscheduled = append(unscheduled, st.Task)
			continue
		}

		slot := arena[bestDay][bestIdx]
		scheduled = append(scheduled, models.ScheduledTask{
			Task:     st.Task,
			Day:      bestDay,
			Start:    timeutil.FormatClock(slot.StartMin),
			End:      timeutil.FormatClock(slot.StartMin + dur),
			Location: slot.Location,
			Score:    bestScore,
		})

		// Consume from the front of the slot; drop it once exhausted.
		slot.StartMin += dur
		if slot.StartMin < slot.EndMin {
			arena[bestDay][bestIdx] = slot
		} else {
			arena[bestDay] = append(arena[bestDay][:bestIdx], arena[bestDay][bestIdx+1:]...)
		}
	}

	return scheduled, unscheduled
}

// scoreSlot rates how well a slot suits a task. The terms and thresholds
// encode the product's real tuning and are kept verbatim.
func (e *Engine) scoreSlot(st scoredTask, slot models.TimeSlot, dayIdx int) int {
	score := 0

	switch {
	case slot.Energy == st.Energy:
		score += 30
	case st.Energy == models.EnergyHigh && slot.Energy == models.EnergyMedium:
		score += 20
	case st.Energy == models.EnergyLow && slot.Energy != models.EnergyLow:
		score += 10
	}

	switch st.Flexibility {
	case models.LocationAnywhere:
		score += 20
	case models.LocationRemotePossible:
		if slot.Location != models.LocationOffice {
			score += 25
		}
	case models.LocationOfficeOnly:
		if slot.Location == models.LocationOffice {
			score += 30
		}
	}

	if st.PreferredTime != "" && st.PreferredTime == periodOf(slot.StartMin) {
		score += 20
	}

	// Earlier days in the week score higher for tasks whose deadline is
	// still further out than the day's index.
	if st.hasDeadline && dayIdx < st.daysLeft {
		score += 10
	}

	if e.cfg.Preferences[st.Category][slot.Day.String()] {
		score += 15
	}

	return score
}

func periodOf(startMin int) models.DayPeriod {
	switch hour := startMin / 60; {
	case hour < 12:
		return models.PeriodMorning
	case hour < 17:
		return models.PeriodAfternoon
	default:
		return models.PeriodEvening
	}
}

// copySlots clones the per-day slot lists so matching never aliases the
// finder's (or a caller's) data.
func copySlots(slots map[time.Weekday][]models.TimeSlot, days []time.Weekday) map[time.Weekday][]models.TimeSlot {
	arena := make(map[time.Weekday][]models.TimeSlot, len(days))
	for _, day := range days {
		arena[day] = append([]models.TimeSlot(nil), slots[day]...)
	}
	return arena
}
