package engine

import (
	"fmt"
	"testing"
	"time"

	"weekwise/internal/models"
)

func householdTask(id string, suitableFor ...string) models.ScheduledTask {
	return models.ScheduledTask{
		Task: models.Task{
			ID:          id,
			Name:        "Chore " + id,
			Category:    models.CategoryHousehold,
			SuitableFor: suitableFor,
		},
		Day:   time.Sunday,
		Start: "15:00",
		End:   "15:30",
	}
}

func TestDistributeHousehold_FirstSuitableRoleWins(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	family := e.distributeHousehold([]models.ScheduledTask{
		householdTask("1", "teen", "partner"),
	})

	if len(family["teen"]) != 1 {
		t.Errorf("expected teen to take the task, got %+v", family)
	}
}

func TestDistributeHousehold_CapacitySpillsToNextRole(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Roles = []models.FamilyRole{
		{Name: "parent", MaxTasks: 6},
		{Name: "teen", MaxTasks: 1, Capabilities: []models.Category{models.CategoryHousehold}},
		{Name: "partner", MaxTasks: 2, Capabilities: []models.Category{models.CategoryHousehold}},
	}
	e := testEngine(cfg)

	family := e.distributeHousehold([]models.ScheduledTask{
		householdTask("1", "teen", "partner"),
		householdTask("2", "teen", "partner"),
	})

	if len(family["teen"]) != 1 {
		t.Errorf("teen should stop at its cap of 1, got %d", len(family["teen"]))
	}
	if len(family["partner"]) != 1 {
		t.Errorf("second task should spill to partner, got %d", len(family["partner"]))
	}
}

func TestDistributeHousehold_CapabilityGating(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Roles = []models.FamilyRole{
		{Name: "parent", MaxTasks: 6},
		{Name: "teen", MaxTasks: 5, Capabilities: []models.Category{models.CategoryPersonal}},
	}
	e := testEngine(cfg)

	// The teen is listed first but cannot take household tasks.
	family := e.distributeHousehold([]models.ScheduledTask{
		householdTask("1", "teen", "parent"),
	})

	if len(family["teen"]) != 0 {
		t.Errorf("teen lacks the household capability, got %+v", family["teen"])
	}
	if len(family["parent"]) != 1 {
		t.Errorf("parent should take the task, got %d", len(family["parent"]))
	}
}

func TestDistributeHousehold_FallbackIgnoresParentCap(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Roles = []models.FamilyRole{
		{Name: "parent", MaxTasks: 1},
	}
	e := testEngine(cfg)

	// No suitableFor list on any task: everything falls back to parent,
	// and the fallback path does not enforce the cap.
	var tasks []models.ScheduledTask
	for i := 0; i < 3; i++ {
		tasks = append(tasks, householdTask(fmt.Sprintf("%d", i)))
	}

	family := e.distributeHousehold(tasks)
	if len(family["parent"]) != 3 {
		t.Errorf("fallback assignment should be uncapped, got %d", len(family["parent"]))
	}
}

func TestDistributeHousehold_EachTaskAssignedOnce(t *testing.T) {
	e := testEngine(models.DefaultConfig())

	family := e.distributeHousehold([]models.ScheduledTask{
		householdTask("1", "teen", "partner", "parent"),
		householdTask("2"),
	})

	total := 0
	for _, tasks := range family {
		total += len(tasks)
	}
	if total != 2 {
		t.Errorf("expected 2 assignments in total, got %d", total)
	}
}
