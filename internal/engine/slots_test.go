package engine

import (
	"testing"
	"time"

	"weekwise/internal/models"
)

func TestFindFreeSlots_SplitsDayAroundLunch(t *testing.T) {
	e := testEngine(models.DefaultConfig())
	w, err := e.window()
	if err != nil {
		t.Fatalf("window failed: %v", err)
	}

	slots := e.findFreeSlots(map[time.Weekday][]models.FixedBlock{}, w)

	monday := slots[time.Monday]
	if len(monday) != 2 {
		t.Fatalf("expected 2 slots on an empty day, got %d", len(monday))
	}

	morning, afternoon := monday[0], monday[1]
	if morning.StartMin != 8*60 || morning.EndMin != 12*60+30 {
		t.Errorf("morning slot: got [%d,%d), want [480,750)", morning.StartMin, morning.EndMin)
	}
	if afternoon.StartMin != 13*60+30 || afternoon.EndMin != 17*60 {
		t.Errorf("afternoon slot: got [%d,%d), want [810,1020)", afternoon.StartMin, afternoon.EndMin)
	}
}

func TestFindFreeSlots_EnergyLabelFromStartOnly(t *testing.T) {
	e := testEngine(models.DefaultConfig())
	w, err := e.window()
	if err != nil {
		t.Fatalf("window failed: %v", err)
	}

	slots := e.findFreeSlots(map[time.Weekday][]models.FixedBlock{}, w)

	morning := slots[time.Sunday][0]
	if morning.Energy != models.EnergyHigh {
		t.Errorf("slot starting 08:00 should be high energy, got %s", morning.Energy)
	}
	afternoon := slots[time.Sunday][1]
	if afternoon.Energy != models.EnergyLow {
		t.Errorf("slot starting 13:30 should be low energy, got %s", afternoon.Energy)
	}
}

func TestFindFreeSlots_ExcludesBlockedTime(t *testing.T) {
	e := testEngine(models.DefaultConfig())
	w, err := e.window()
	if err != nil {
		t.Fatalf("window failed: %v", err)
	}

	blocked, err := extractBlockedTimes([]models.Commitment{
		{Name: "Dialysis", Day: time.Thursday, Start: "09:00", End: "11:00"},
	})
	if err != nil {
		t.Fatalf("extractBlockedTimes failed: %v", err)
	}

	slots := e.findFreeSlots(blocked, w)

	thursday := slots[time.Thursday]
	if len(thursday) != 2 {
		t.Fatalf("expected 2 slots on Thursday, got %d: %+v", len(thursday), thursday)
	}

	// With blocked time 08:00–12:00 the first free slot is the half hour
	// before lunch.
	first := thursday[0]
	if first.StartMin != 12*60 || first.EndMin != 12*60+30 {
		t.Errorf("first slot: got [%d,%d), want [720,750)", first.StartMin, first.EndMin)
	}
}

func TestFindFreeSlots_OfficeNearCommute(t *testing.T) {
	e := testEngine(models.DefaultConfig())
	w, err := e.window()
	if err != nil {
		t.Fatalf("window failed: %v", err)
	}

	blocked, err := extractBlockedTimes([]models.Commitment{
		{Name: "Dialysis", Day: time.Thursday, Start: "09:00", End: "11:00"},
	})
	if err != nil {
		t.Fatalf("extractBlockedTimes failed: %v", err)
	}

	slots := e.findFreeSlots(blocked, w)
	thursday := slots[time.Thursday]

	// 12:00 starts right after the trailing commute (ends 12:00).
	if thursday[0].Location != models.LocationOffice {
		t.Errorf("slot at 12:00 should be office, got %s", thursday[0].Location)
	}
	// 13:30 is 90 minutes past the commute end.
	if thursday[1].Location != models.LocationHome {
		t.Errorf("slot at 13:30 should be home, got %s", thursday[1].Location)
	}
}

func TestFindFreeSlots_EmptyListForFullyBlockedDay(t *testing.T) {
	e := testEngine(models.DefaultConfig())
	w, err := e.window()
	if err != nil {
		t.Fatalf("window failed: %v", err)
	}

	blocked := map[time.Weekday][]models.FixedBlock{
		time.Tuesday: {{Day: time.Tuesday, StartMin: 0, EndMin: 24 * 60, Kind: models.BlockTreatment}},
	}

	slots := e.findFreeSlots(blocked, w)
	if len(slots[time.Tuesday]) != 0 {
		t.Errorf("expected no slots on a fully blocked day, got %d", len(slots[time.Tuesday]))
	}
}

func TestFindFreeSlots_TouchingBlockDoesNotConsumeStep(t *testing.T) {
	e := testEngine(models.DefaultConfig())
	w, err := e.window()
	if err != nil {
		t.Fatalf("window failed: %v", err)
	}

	// Block ends exactly at 09:00; the step [09:00,09:30) touches but does
	// not overlap it.
	blocked := map[time.Weekday][]models.FixedBlock{
		time.Monday: {{Day: time.Monday, StartMin: 8 * 60, EndMin: 9 * 60, Kind: models.BlockTreatment}},
	}

	slots := e.findFreeSlots(blocked, w)
	first := slots[time.Monday][0]
	if first.StartMin != 9*60 {
		t.Errorf("expected first slot to start at 09:00, got %d", first.StartMin)
	}
}
