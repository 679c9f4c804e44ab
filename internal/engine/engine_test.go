package engine

import (
	"encoding/json"
	"testing"
	"time"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

func TestPlan_TreatmentDayScenario(t *testing.T) {
	// A Thursday treatment 09:00–11:00 blocks 08:00–12:00 once commute
	// buffers are added. A one-hour task must land after 12:00 and must
	// not straddle the 12:30–13:30 lunch.
	cfg := models.DefaultConfig()
	cfg.Hours = models.WorkingHours{DayStart: "08:00", DayEnd: "20:00", LunchStart: "12:30", LunchEnd: "13:30"}
	cfg.WorkingDays = []time.Weekday{time.Thursday}
	e := testEngine(cfg)

	result, err := e.Plan(PlanInput{
		Commitments: []models.Commitment{
			{ID: "c1", Name: "Dialysis", Day: time.Thursday, Start: "09:00", End: "11:00"},
		},
		Tasks: []models.Task{
			{ID: "t1", Name: "Report draft", Category: models.CategoryReporting, DurationMin: 60, Energy: models.EnergyHigh},
		},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(result.Schedule.Work) != 1 {
		t.Fatalf("expected 1 scheduled work task, got %d", len(result.Schedule.Work))
	}

	st := result.Schedule.Work[0]
	start, _ := timeutil.ParseClock(st.Start)
	end, _ := timeutil.ParseClock(st.End)

	if start < 12*60 {
		t.Errorf("task scheduled at %s, before 12:00", st.Start)
	}
	if timeutil.Overlaps(start, end, 12*60+30, 13*60+30) {
		t.Errorf("task %s–%s overlaps lunch", st.Start, st.End)
	}
	if end-start != 60 {
		t.Errorf("duration not respected: %s–%s", st.Start, st.End)
	}
}

func TestPlan_DeadlineContentionScenario(t *testing.T) {
	// One 90-minute slot, two deadline-critical 90-minute tasks: the
	// higher-priority task wins, the other becomes unscheduled and
	// triggers a deadline risk warning.
	cfg := models.DefaultConfig()
	cfg.Hours = models.WorkingHours{DayStart: "08:00", DayEnd: "09:30", LunchStart: "18:00", LunchEnd: "18:30"}
	cfg.WorkingDays = []time.Weekday{time.Sunday}
	e := testEngine(cfg)

	today := testNow.Format(timeutil.DateFormat)
	result, err := e.Plan(PlanInput{
		Tasks: []models.Task{
			{ID: "report", Name: "Board report", Category: models.CategoryReporting, DurationMin: 90, Deadline: today},
			{ID: "payroll", Name: "Payroll run", Category: models.CategorySalary, DurationMin: 90, Deadline: today},
		},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(result.Schedule.Work) != 1 || result.Schedule.Work[0].ID != "payroll" {
		t.Fatalf("expected payroll (higher category weight) to win the slot, got %+v", result.Schedule.Work)
	}
	if len(result.Schedule.Unscheduled) != 1 || result.Schedule.Unscheduled[0].ID != "report" {
		t.Fatalf("expected report unscheduled, got %+v", result.Schedule.Unscheduled)
	}

	foundRisk := false
	for _, w := range result.Warnings {
		if w.Kind == models.WarningDeadlineRisk && w.TaskID == "report" {
			foundRisk = true
		}
	}
	if !foundRisk {
		t.Error("expected a deadline risk warning for the losing task")
	}
}

func TestPlan_PartitionInvariant(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	input := PlanInput{
		Commitments: []models.Commitment{
			{ID: "c1", Name: "Dialysis", Day: time.Tuesday, Start: "10:00", End: "12:00"},
		},
		Tasks: []models.Task{
			{ID: "1", Name: "Payroll", Category: models.CategorySalary, DurationMin: 120},
			{ID: "2", Name: "Laundry", Category: models.CategoryHousehold, DurationMin: 45},
			{ID: "3", Name: "Haircut", Category: models.CategoryPersonal},
			{ID: "4", Name: "Marathon audit", Category: models.CategoryReconciliation, DurationMin: 600},
			{ID: "5", Name: "Client calls", Category: models.CategoryClientWork, DurationMin: 90},
		},
	}

	result, err := e.Plan(input)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	seen := map[string]int{}
	for _, st := range result.Schedule.AllScheduled() {
		seen[st.ID]++
	}
	for _, task := range result.Schedule.Unscheduled {
		seen[task.ID]++
	}

	if len(seen) != len(input.Tasks) {
		t.Errorf("expected %d distinct task ids, got %d", len(input.Tasks), len(seen))
	}
	for _, task := range input.Tasks {
		if seen[task.ID] != 1 {
			t.Errorf("task %s appears %d times, want exactly 1", task.ID, seen[task.ID])
		}
	}
}

func TestPlan_NoDoubleBooking(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	result, err := e.Plan(PlanInput{
		Commitments: []models.Commitment{
			{ID: "c1", Name: "Dialysis", Day: time.Sunday, Start: "09:00", End: "11:00"},
			{ID: "c2", Name: "Physio", Day: time.Wednesday, Start: "14:00", End: "15:00"},
		},
		Tasks: []models.Task{
			{ID: "1", Name: "Payroll", Category: models.CategorySalary, DurationMin: 120, Energy: models.EnergyHigh},
			{ID: "2", Name: "VAT", Category: models.CategoryVAT, DurationMin: 90},
			{ID: "3", Name: "Reconcile", Category: models.CategoryReconciliation, DurationMin: 60},
			{ID: "4", Name: "Laundry", Category: models.CategoryHousehold, DurationMin: 45},
			{ID: "5", Name: "Reports", Category: models.CategoryReporting, DurationMin: 150},
		},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	blocked, err := extractBlockedTimes([]models.Commitment{
		{Name: "Dialysis", Day: time.Sunday, Start: "09:00", End: "11:00"},
		{Name: "Physio", Day: time.Wednesday, Start: "14:00", End: "15:00"},
	})
	if err != nil {
		t.Fatal(err)
	}

	byDay := map[time.Weekday][][2]int{}
	for _, st := range result.Schedule.AllScheduled() {
		start, _ := timeutil.ParseClock(st.Start)
		end, _ := timeutil.ParseClock(st.End)

		if timeutil.Overlaps(start, end, 12*60+30, 13*60+30) {
			t.Errorf("task %s overlaps lunch on %s", st.ID, st.Day)
		}
		for _, b := range blocked[st.Day] {
			if timeutil.Overlaps(start, end, b.StartMin, b.EndMin) {
				t.Errorf("task %s overlaps %s block on %s", st.ID, b.Kind, st.Day)
			}
		}
		byDay[st.Day] = append(byDay[st.Day], [2]int{start, end})
	}

	for day, intervals := range byDay {
		for i := 0; i < len(intervals); i++ {
			for j := i + 1; j < len(intervals); j++ {
				if timeutil.Overlaps(intervals[i][0], intervals[i][1], intervals[j][0], intervals[j][1]) {
					t.Errorf("double booking on %s: %v and %v", day, intervals[i], intervals[j])
				}
			}
		}
	}
}

func TestPlan_DeterministicOutput(t *testing.T) {
	input := PlanInput{
		Commitments: []models.Commitment{
			{ID: "c1", Name: "Dialysis", Day: time.Monday, Start: "09:00", End: "11:00"},
		},
		Tasks: []models.Task{
			{ID: "1", Name: "Payroll", Category: models.CategorySalary, DurationMin: 90, Deadline: "2026-03-03"},
			{ID: "2", Name: "VAT", Category: models.CategoryVAT, DurationMin: 90, Deadline: "2026-03-03"},
			{ID: "3", Name: "Laundry", Category: models.CategoryHousehold, SuitableFor: []string{"teen"}},
		},
	}

	run := func() []byte {
		e := testEngine(models.DefaultConfig())
		result, err := e.Plan(input)
		if err != nil {
			t.Fatalf("Plan failed: %v", err)
		}
		data, err := json.Marshal(result)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		return data
	}

	first, second := run(), run()
	if string(first) != string(second) {
		t.Error("two runs over identical input produced different output")
	}
}

func TestPlan_HouseholdTasksReachFamilyBuckets(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	result, err := e.Plan(PlanInput{
		Tasks: []models.Task{
			{ID: "1", Name: "Laundry", Category: models.CategoryHousehold, SuitableFor: []string{"teen"}},
			{ID: "2", Name: "Dishes", Category: models.CategoryHousehold},
		},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(result.Schedule.FamilyTasks["teen"]) != 1 {
		t.Errorf("expected teen to take the laundry, got %+v", result.Schedule.FamilyTasks)
	}
	if len(result.Schedule.FamilyTasks["parent"]) != 1 {
		t.Errorf("expected the dishes to fall back to parent, got %+v", result.Schedule.FamilyTasks)
	}
	if result.Summary.FamilyLoad["teen"] != 1 {
		t.Errorf("summary family load wrong: %+v", result.Summary.FamilyLoad)
	}
}

func TestPlan_FailureReturnsNoPartialSchedule(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	result, err := e.Plan(PlanInput{
		Commitments: []models.Commitment{
			{ID: "c1", Name: "Broken", Day: time.Monday, Start: "nine", End: "11:00"},
		},
		Tasks: []models.Task{
			{ID: "1", Name: "Payroll", Category: models.CategorySalary},
		},
	})

	if err == nil {
		t.Fatal("expected error for malformed commitment time")
	}
	if len(result.Schedule.Work) != 0 || len(result.Schedule.Unscheduled) != 0 {
		t.Errorf("failure must not carry a partial schedule: %+v", result.Schedule)
	}
}

func TestPlan_RejectsBadWorkingHours(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Hours.DayEnd = "07:00" // before day start
	e := testEngine(cfg)

	if _, err := e.Plan(PlanInput{}); err == nil {
		t.Error("expected error for inverted working hours")
	}

	cfg = models.DefaultConfig()
	cfg.WorkingDays = nil
	e = testEngine(cfg)
	if _, err := e.Plan(PlanInput{}); err == nil {
		t.Error("expected error for empty working day set")
	}
}
