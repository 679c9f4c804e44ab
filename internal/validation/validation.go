package validation

import (
	"fmt"
	"time"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidTime            ConflictType = "invalid_time"
	ConflictInvalidDate            ConflictType = "invalid_date"
	ConflictInvertedInterval       ConflictType = "inverted_interval"
	ConflictOverlappingCommitments ConflictType = "overlapping_commitments"
	ConflictNonWorkingDay          ConflictType = "non_working_day"
	ConflictDuplicateTaskName      ConflictType = "duplicate_task_name"
	ConflictUnknownCategory        ConflictType = "unknown_category"
	ConflictUnknownRole            ConflictType = "unknown_role"
	ConflictBadConfig              ConflictType = "bad_config"
)

// Conflict represents a detected problem in the planning inputs
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // names of the tasks/commitments involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks planning inputs before they reach the engine. The engine
// enforces its own boundary; this produces friendlier, itemized findings.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateCommitments checks the weekly commitment list against the
// configured working days.
func (v *Validator) ValidateCommitments(commitments []models.Commitment, cfg models.PlanConfig) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	working := make(map[time.Weekday]bool, len(cfg.WorkingDays))
	for _, d := range cfg.WorkingDays {
		working[d] = true
	}

	type window struct {
		name       string
		start, end int
	}
	byDay := map[time.Weekday][]window{}

	for _, c := range commitments {
		if c.DeletedAt != nil {
			continue
		}

		ok := true
		start, err := timeutil.ParseClock(c.Start)
		if err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("Commitment %q has invalid start time: %s", c.Name, c.Start),
				Items:       []string{c.Name},
			})
			ok = false
		}
		end, err := timeutil.ParseClock(c.End)
		if err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("Commitment %q has invalid end time: %s", c.Name, c.End),
				Items:       []string{c.Name},
			})
			ok = false
		}
		if !ok {
			continue
		}

		if end <= start {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvertedInterval,
				Description: fmt.Sprintf("Commitment %q ends at or before it starts (%s–%s)", c.Name, c.Start, c.End),
				Items:       []string{c.Name},
			})
			continue
		}

		if !working[c.Day] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNonWorkingDay,
				Description: fmt.Sprintf("Commitment %q falls on %s, which is not a working day", c.Name, c.Day),
				Items:       []string{c.Name},
			})
		}

		for _, other := range byDay[c.Day] {
			if timeutil.Overlaps(start, end, other.start, other.end) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictOverlappingCommitments,
					Description: fmt.Sprintf("Commitments %q and %q overlap on %s", other.name, c.Name, c.Day),
					Items:       []string{other.name, c.Name},
				})
			}
		}
		byDay[c.Day] = append(byDay[c.Day], window{name: c.Name, start: start, end: end})
	}

	return result
}

// ValidateTasks checks the task pool for problems the engine would otherwise
// reject wholesale.
func (v *Validator) ValidateTasks(tasks []models.Task, cfg models.PlanConfig) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	nameCount := make(map[string][]string)
	for _, task := range tasks {
		if task.DeletedAt != nil || task.Name == "" {
			continue
		}
		nameCount[task.Name] = append(nameCount[task.Name], task.ID)
	}
	for name, ids := range nameCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTaskName,
				Description: fmt.Sprintf("Duplicate task name: %q (IDs: %v)", name, ids),
				Items:       []string{name},
			})
		}
	}

	roles := map[string]bool{}
	for _, r := range cfg.Roles {
		roles[r.Name] = true
	}

	for _, task := range tasks {
		if task.DeletedAt != nil {
			continue
		}

		if task.Deadline != "" {
			if _, err := timeutil.ParseDate(task.Deadline); err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDate,
					Description: fmt.Sprintf("Task %q has invalid deadline: %s", task.Name, task.Deadline),
					Items:       []string{task.Name},
				})
			}
		}

		if _, known := cfg.CategoryWeights[task.Category]; !known && task.Category != "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownCategory,
				Description: fmt.Sprintf("Task %q has category %q with no configured weight; it will score 0", task.Name, task.Category),
				Items:       []string{task.Name},
			})
		}

		for _, role := range task.SuitableFor {
			if !roles[role] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictUnknownRole,
					Description: fmt.Sprintf("Task %q names unknown family role %q", task.Name, role),
					Items:       []string{task.Name},
				})
			}
		}
	}

	return result
}

// ValidateConfig checks the planning configuration itself.
func (v *Validator) ValidateConfig(cfg models.PlanConfig) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	clock := func(label, value string) (int, bool) {
		min, err := timeutil.ParseClock(value)
		if err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("Config %s is not a valid HH:MM time: %s", label, value),
			})
			return 0, false
		}
		return min, true
	}

	dayStart, ok1 := clock("day_start", cfg.Hours.DayStart)
	dayEnd, ok2 := clock("day_end", cfg.Hours.DayEnd)
	lunchStart, ok3 := clock("lunch_start", cfg.Hours.LunchStart)
	lunchEnd, ok4 := clock("lunch_end", cfg.Hours.LunchEnd)

	if ok1 && ok2 && dayEnd <= dayStart {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictBadConfig,
			Description: fmt.Sprintf("Day end %s is not after day start %s", cfg.Hours.DayEnd, cfg.Hours.DayStart),
		})
	}
	if ok3 && ok4 && lunchEnd <= lunchStart {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictBadConfig,
			Description: fmt.Sprintf("Lunch end %s is not after lunch start %s", cfg.Hours.LunchEnd, cfg.Hours.LunchStart),
		})
	}
	if ok1 && ok2 && ok3 && ok4 && (lunchStart < dayStart || lunchEnd > dayEnd) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictBadConfig,
			Description: "Lunch break falls outside working hours",
		})
	}

	if len(cfg.WorkingDays) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictBadConfig,
			Description: "No working days configured",
		})
	}

	for _, role := range cfg.Roles {
		if role.MaxTasks <= 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBadConfig,
				Description: fmt.Sprintf("Family role %q has non-positive max_tasks %d", role.Name, role.MaxTasks),
				Items:       []string{role.Name},
			})
		}
	}

	return result
}
