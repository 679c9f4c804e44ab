package engine

import (
	"time"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

// slotStepMin is the scan granularity of the slot finder.
const slotStepMin = 30

// findFreeSlots walks every working day from day start in 30-minute steps
// and records the maximal free intervals between blocked time and the lunch
// break. Extension of a slot stops at the first blocked step and also the
// moment it reaches the lunch-break start, so no slot ever straddles lunch.
func (e *Engine) findFreeSlots(blocked map[time.Weekday][]models.FixedBlock, w window) map[time.Weekday][]models.TimeSlot {
	slots := make(map[time.Weekday][]models.TimeSlot, len(e.cfg.WorkingDays))

	for _, day := range e.cfg.WorkingDays {
		dayBlocks := blocked[day]
		daySlots := []models.TimeSlot{}

		t := w.dayStart
		for t+slotStepMin <= w.dayEnd {
			if !stepUsable(t, dayBlocks, w) {
				t += slotStepMin
				continue
			}

			start := t
			end := t + slotStepMin
			for end+slotStepMin <= w.dayEnd && end != w.lunchStart && stepUsable(end, dayBlocks, w) {
				end += slotStepMin
			}

			daySlots = append(daySlots, models.TimeSlot{
				Day:      day,
				StartMin: start,
				EndMin:   end,
				Energy:   energyAt(start),
				Location: locationAt(start, dayBlocks),
			})
			t = end
		}

		slots[day] = daySlots
	}

	return slots
}

// stepUsable reports whether the 30-minute step starting at t is free of
// blocked time and the lunch break.
func stepUsable(t int, blocks []models.FixedBlock, w window) bool {
	if timeutil.Overlaps(t, t+slotStepMin, w.lunchStart, w.lunchEnd) {
		return false
	}
	for _, b := range blocks {
		if timeutil.Overlaps(t, t+slotStepMin, b.StartMin, b.EndMin) {
			return false
		}
	}
	return true
}

// energyAt maps a slot's start time to its energy label. The label is taken
// from the start only, even for slots spanning several periods.
func energyAt(startMin int) models.EnergyLevel {
	switch {
	case startMin >= 8*60 && startMin < 10*60:
		return models.EnergyHigh
	case startMin >= 10*60 && startMin < 12*60:
		return models.EnergyMedium
	case startMin >= 13*60 && startMin < 15*60:
		return models.EnergyLow
	case startMin >= 15*60 && startMin < 17*60:
		return models.EnergyMedium
	default:
		return models.EnergyLow
	}
}

// locationAt labels a slot "office" when a commute block ends within an hour
// before its start. The intent is to position office-bound work next to
// hospital-adjacent travel windows.
func locationAt(startMin int, blocks []models.FixedBlock) models.LocationLabel {
	for _, b := range blocks {
		if b.Kind != models.BlockCommute {
			continue
		}
		if diff := startMin - b.EndMin; diff >= 0 && diff <= commuteBufferMin {
			return models.LocationOffice
		}
	}
	return models.LocationHome
}
