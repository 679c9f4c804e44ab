package validation

import (
	"testing"
	"time"

	"weekwise/internal/models"
)

func TestValidateCommitments_InvalidTimes(t *testing.T) {
	validator := New()
	cfg := models.DefaultConfig()

	commitments := []models.Commitment{
		{ID: "1", Name: "Bad start", Day: time.Monday, Start: "25:00", End: "11:00"},
		{ID: "2", Name: "Bad end", Day: time.Monday, Start: "09:00", End: "12:70"},
	}

	result := validator.ValidateCommitments(commitments, cfg)

	if !result.HasConflicts() {
		t.Fatal("expected invalid time conflicts")
	}

	count := 0
	for _, c := range result.Conflicts {
		if c.Type == ConflictInvalidTime {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 invalid time conflicts, got %d", count)
	}
}

func TestValidateCommitments_OverlapSameDay(t *testing.T) {
	validator := New()
	cfg := models.DefaultConfig()

	commitments := []models.Commitment{
		{ID: "1", Name: "Dialysis", Day: time.Tuesday, Start: "09:00", End: "11:00"},
		{ID: "2", Name: "Physio", Day: time.Tuesday, Start: "10:30", End: "11:30"},
		{ID: "3", Name: "Elsewhere", Day: time.Wednesday, Start: "10:30", End: "11:30"},
	}

	result := validator.ValidateCommitments(commitments, cfg)

	found := false
	for _, c := range result.Conflicts {
		if c.Type == ConflictOverlappingCommitments {
			found = true
		}
	}
	if !found {
		t.Error("expected overlap conflict for same-day commitments")
	}
}

func TestValidateCommitments_NonWorkingDay(t *testing.T) {
	validator := New()
	cfg := models.DefaultConfig() // Sunday–Thursday

	commitments := []models.Commitment{
		{ID: "1", Name: "Weekend checkup", Day: time.Saturday, Start: "09:00", End: "10:00"},
	}

	result := validator.ValidateCommitments(commitments, cfg)

	found := false
	for _, c := range result.Conflicts {
		if c.Type == ConflictNonWorkingDay {
			found = true
		}
	}
	if !found {
		t.Error("expected non-working-day conflict for Saturday commitment")
	}
}

func TestValidateTasks_DuplicateNamesAndBadDeadline(t *testing.T) {
	validator := New()
	cfg := models.DefaultConfig()

	tasks := []models.Task{
		{ID: "1", Name: "Payroll", Category: models.CategorySalary},
		{ID: "2", Name: "Payroll", Category: models.CategorySalary},
		{ID: "3", Name: "VAT", Category: models.CategoryVAT, Deadline: "YYYY-03-01"},
	}

	result := validator.ValidateTasks(tasks, cfg)

	foundDup, foundDate := false, false
	for _, c := range result.Conflicts {
		switch c.Type {
		case ConflictDuplicateTaskName:
			foundDup = true
		case ConflictInvalidDate:
			foundDate = true
		}
	}
	if !foundDup {
		t.Error("expected duplicate name conflict")
	}
	if !foundDate {
		t.Error("expected invalid date conflict")
	}
}

func TestValidateTasks_UnknownCategoryAndRole(t *testing.T) {
	validator := New()
	cfg := models.DefaultConfig()

	tasks := []models.Task{
		{ID: "1", Name: "Mystery", Category: "gardening"},
		{ID: "2", Name: "Chore", Category: models.CategoryHousehold, SuitableFor: []string{"butler"}},
	}

	result := validator.ValidateTasks(tasks, cfg)

	foundCat, foundRole := false, false
	for _, c := range result.Conflicts {
		switch c.Type {
		case ConflictUnknownCategory:
			foundCat = true
		case ConflictUnknownRole:
			foundRole = true
		}
	}
	if !foundCat {
		t.Error("expected unknown category conflict")
	}
	if !foundRole {
		t.Error("expected unknown role conflict")
	}
}

func TestValidateTasks_SkipsDeleted(t *testing.T) {
	validator := New()
	cfg := models.DefaultConfig()
	deleted := "2026-01-01T00:00:00Z"

	tasks := []models.Task{
		{ID: "1", Name: "Payroll", Category: models.CategorySalary},
		{ID: "2", Name: "Payroll", Category: models.CategorySalary, DeletedAt: &deleted},
	}

	result := validator.ValidateTasks(tasks, cfg)
	if result.HasConflicts() {
		t.Errorf("deleted tasks should be ignored, got %+v", result.Conflicts)
	}
}

func TestValidateConfig_LunchOutsideWorkingHours(t *testing.T) {
	validator := New()
	cfg := models.DefaultConfig()
	cfg.Hours.LunchStart = "06:00"
	cfg.Hours.LunchEnd = "07:00"

	result := validator.ValidateConfig(cfg)
	if !result.HasConflicts() {
		t.Error("expected conflict for lunch outside working hours")
	}
}

func TestValidateConfig_RoleCaps(t *testing.T) {
	validator := New()
	cfg := models.DefaultConfig()
	cfg.Roles = append(cfg.Roles, models.FamilyRole{Name: "ghost", MaxTasks: 0})

	result := validator.ValidateConfig(cfg)

	found := false
	for _, c := range result.Conflicts {
		if c.Type == ConflictBadConfig {
			found = true
		}
	}
	if !found {
		t.Error("expected bad config conflict for non-positive role cap")
	}
}

func TestValidateConfig_DefaultIsClean(t *testing.T) {
	validator := New()

	result := validator.ValidateConfig(models.DefaultConfig())
	if result.HasConflicts() {
		t.Errorf("default config should validate cleanly, got: %s", result.FormatReport())
	}
}
