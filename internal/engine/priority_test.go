package engine

import (
	"testing"
	"time"

	"weekwise/internal/models"
)

// testNow is a fixed Sunday morning used across engine tests.
var testNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func testEngine(cfg models.PlanConfig) *Engine {
	e := New(cfg)
	e.Now = func() time.Time { return testNow }
	return e
}

func TestPrioritizeTasks_CategoryWeightIsBase(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	tasks := []models.Task{
		{ID: "1", Name: "Chores", Category: models.CategoryHousehold},
		{ID: "2", Name: "Payroll", Category: models.CategorySalary},
		{ID: "3", Name: "Mystery", Category: "unknown_category"},
	}

	scored, err := e.prioritizeTasks(tasks, testNow)
	if err != nil {
		t.Fatalf("prioritizeTasks failed: %v", err)
	}

	if scored[0].ID != "2" {
		t.Errorf("expected salary task first, got %s", scored[0].ID)
	}
	for _, st := range scored {
		if st.ID == "3" && st.score != 0 {
			t.Errorf("unknown category should score 0, got %d", st.score)
		}
	}
}

func TestPrioritizeTasks_DeadlineBonusesAreAdditive(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	// Deadline tomorrow: D=1, so +200 for urgency and a further +150 for
	// being inside the default 2-day buffer.
	tasks := []models.Task{
		{ID: "1", Name: "VAT return", Category: models.CategoryVAT, Deadline: "2026-03-02"},
	}

	scored, err := e.prioritizeTasks(tasks, testNow)
	if err != nil {
		t.Fatalf("prioritizeTasks failed: %v", err)
	}

	want := 90 + 200 + 150
	if scored[0].score != want {
		t.Errorf("expected score %d, got %d", want, scored[0].score)
	}
}

func TestPrioritizeTasks_DeadlineTiers(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	cases := []struct {
		deadline string
		bonus    int // urgency tier only; buffer bonus added where D <= 2
	}{
		{"2026-03-02", 200 + 150}, // D=1
		{"2026-03-04", 100},       // D=3
		{"2026-03-07", 50},        // D=6
		{"2026-03-20", 0},         // D=19
	}

	for _, c := range cases {
		tasks := []models.Task{{ID: "1", Name: "t", Category: models.CategoryReporting, Deadline: c.deadline}}
		scored, err := e.prioritizeTasks(tasks, testNow)
		if err != nil {
			t.Fatalf("prioritizeTasks failed: %v", err)
		}
		want := 70 + c.bonus
		if scored[0].score != want {
			t.Errorf("deadline %s: expected score %d, got %d", c.deadline, want, scored[0].score)
		}
	}
}

func TestPrioritizeTasks_BufferDaysOverride(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	// D=5: outside the urgency<=3 tier (+50 for <=7), but inside a 6-day
	// buffer, so the +150 still applies.
	tasks := []models.Task{
		{ID: "1", Name: "t", Category: models.CategoryReporting, Deadline: "2026-03-06", BufferDays: 6},
	}

	scored, err := e.prioritizeTasks(tasks, testNow)
	if err != nil {
		t.Fatalf("prioritizeTasks failed: %v", err)
	}

	want := 70 + 50 + 150
	if scored[0].score != want {
		t.Errorf("expected score %d, got %d", want, scored[0].score)
	}
}

func TestPrioritizeTasks_DurationAndEnergyBonuses(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	tasks := []models.Task{
		{ID: "1", Name: "Long", Category: models.CategoryClientWork, DurationMin: 180},
		{ID: "2", Name: "Sharp", Category: models.CategoryClientWork, Energy: models.EnergyHigh},
		{ID: "3", Name: "Plain", Category: models.CategoryClientWork, DurationMin: 120},
	}

	scored, err := e.prioritizeTasks(tasks, testNow)
	if err != nil {
		t.Fatalf("prioritizeTasks failed: %v", err)
	}

	byID := map[string]int{}
	for _, st := range scored {
		byID[st.ID] = st.score
	}

	if byID["1"] != 60+30 {
		t.Errorf("long task: expected %d, got %d", 90, byID["1"])
	}
	if byID["2"] != 60+20 {
		t.Errorf("high-energy task: expected %d, got %d", 80, byID["2"])
	}
	if byID["3"] != 60 {
		t.Errorf("120-minute task should get no duration bonus, got %d", byID["3"])
	}
}

func TestPrioritizeTasks_StableOrderOnTies(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	tasks := []models.Task{
		{ID: "a", Name: "A", Category: models.CategoryPersonal},
		{ID: "b", Name: "B", Category: models.CategoryPersonal},
		{ID: "c", Name: "C", Category: models.CategoryPersonal},
	}

	scored, err := e.prioritizeTasks(tasks, testNow)
	if err != nil {
		t.Fatalf("prioritizeTasks failed: %v", err)
	}

	for i, want := range []string{"a", "b", "c"} {
		if scored[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, scored[i].ID)
		}
	}
}

func TestPrioritizeTasks_RejectsInvalidDeadline(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	tasks := []models.Task{
		{ID: "1", Name: "Bad", Category: models.CategoryVAT, Deadline: "03/02/2026"},
	}

	if _, err := e.prioritizeTasks(tasks, testNow); err == nil {
		t.Error("expected error for malformed deadline")
	}
}
