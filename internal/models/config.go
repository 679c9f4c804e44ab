package models

import "time"

// WorkingHours bounds a working day. All values are HH:MM strings; the
// engine converts to minutes from midnight before doing any arithmetic.
type WorkingHours struct {
	DayStart   string `json:"day_start" yaml:"day_start"`
	DayEnd     string `json:"day_end" yaml:"day_end"`
	LunchStart string `json:"lunch_start" yaml:"lunch_start"`
	LunchEnd   string `json:"lunch_end" yaml:"lunch_end"`
}

// FamilyRole is a household member who can take on chores. An empty
// capability list means the role accepts any task.
type FamilyRole struct {
	Name         string     `json:"name" yaml:"name"`
	MaxTasks     int        `json:"max_tasks" yaml:"max_tasks"`
	Capabilities []Category `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// PlanConfig holds everything the engine needs besides commitments and
// tasks. It is immutable for the duration of a planning run.
type PlanConfig struct {
	Hours           WorkingHours                  `json:"hours" yaml:"hours"`
	WorkingDays     []time.Weekday                `json:"working_days" yaml:"working_days"`
	CategoryWeights map[Category]int              `json:"category_weights" yaml:"category_weights"`
	Roles           []FamilyRole                  `json:"roles" yaml:"roles"`
	FallbackRole    string                        `json:"fallback_role" yaml:"fallback_role"`
	Preferences     map[Category]map[string]bool  `json:"preferences,omitempty" yaml:"preferences,omitempty"` // category -> day name -> preferred
}

// DefaultConfig returns the stock planning configuration: a Sunday–Thursday
// working week, office hours with a midday lunch, and the household roles
// the distributor falls back on.
func DefaultConfig() PlanConfig {
	return PlanConfig{
		Hours: WorkingHours{
			DayStart:   "08:00",
			DayEnd:     "17:00",
			LunchStart: "12:30",
			LunchEnd:   "13:30",
		},
		WorkingDays: []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		},
		CategoryWeights: map[Category]int{
			CategorySalary:         100,
			CategoryVAT:            90,
			CategoryReconciliation: 80,
			CategoryReporting:      70,
			CategoryClientWork:     60,
			CategoryHousehold:      40,
			CategoryPersonal:       30,
		},
		Roles: []FamilyRole{
			{Name: "parent", MaxTasks: 6},
			{Name: "partner", MaxTasks: 4, Capabilities: []Category{CategoryHousehold, CategoryPersonal}},
			{Name: "teen", MaxTasks: 3, Capabilities: []Category{CategoryHousehold}},
		},
		FallbackRole: "parent",
	}
}

// WeekOf returns the YYYY-MM-DD date of the week's first working day: the
// given day itself if it matches, otherwise the next occurrence.
func (c PlanConfig) WeekOf(now time.Time) string {
	first := time.Sunday
	if len(c.WorkingDays) > 0 {
		first = c.WorkingDays[0]
	}
	d := now
	for d.Weekday() != first {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}
