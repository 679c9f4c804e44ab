package models

import "time"

type BlockKind string

const (
	BlockTreatment BlockKind = "treatment"
	BlockCommute   BlockKind = "commute"
)

type LocationLabel string

const (
	LocationOffice LocationLabel = "office"
	LocationHome   LocationLabel = "home"
)

// FixedBlock is an occupied interval on a single day, in minutes from
// midnight. Commute blocks may run past the working day; later stages treat
// blocked time as a predicate, so out-of-window blocks are harmless.
type FixedBlock struct {
	Day      time.Weekday `json:"day"`
	StartMin int          `json:"start_min"`
	EndMin   int          `json:"end_min"`
	Kind     BlockKind    `json:"kind"`
	Location string       `json:"location,omitempty"`
}

// TimeSlot is a maximal free interval on a day. Slots are working state: the
// matcher advances StartMin as tasks consume them.
type TimeSlot struct {
	Day      time.Weekday  `json:"day"`
	StartMin int           `json:"start_min"`
	EndMin   int           `json:"end_min"`
	Energy   EnergyLevel   `json:"energy"`
	Location LocationLabel `json:"location"`
}

// DurationMin returns the remaining length of the slot.
func (s TimeSlot) DurationMin() int {
	return s.EndMin - s.StartMin
}

// ScheduledTask is a task that won a slot. Start/End are HH:MM strings for
// the caller's benefit; once created it is never re-assigned.
type ScheduledTask struct {
	Task
	Day      time.Weekday  `json:"day"`
	Start    string        `json:"start"` // HH:MM format
	End      string        `json:"end"`   // HH:MM format
	Location LocationLabel `json:"location"`
	Score    int           `json:"score"`
}

// ScheduleMetadata summarizes a generated week.
type ScheduleMetadata struct {
	TotalTasks    int                `json:"total_tasks"`
	TotalHours    float64            `json:"total_hours"`
	DailyWorkload map[string]float64 `json:"daily_workload"` // day name -> hours, 1 decimal
}

// WeekSchedule is the engine's root output. Every input task lands in exactly
// one of the three buckets or in Unscheduled.
type WeekSchedule struct {
	Work        []ScheduledTask            `json:"work"`
	Household   []ScheduledTask            `json:"household"`
	Personal    []ScheduledTask            `json:"personal"`
	Unscheduled []Task                     `json:"unscheduled"`
	FamilyTasks map[string][]ScheduledTask `json:"family_tasks"`
	Metadata    ScheduleMetadata           `json:"metadata"`
}

// AllScheduled returns the three bucket lists concatenated, work first.
func (ws WeekSchedule) AllScheduled() []ScheduledTask {
	out := make([]ScheduledTask, 0, len(ws.Work)+len(ws.Household)+len(ws.Personal))
	out = append(out, ws.Work...)
	out = append(out, ws.Household...)
	out = append(out, ws.Personal...)
	return out
}

type WarningKind string

const (
	WarningOverload     WarningKind = "overload"
	WarningUnscheduled  WarningKind = "unscheduled"
	WarningDeadlineRisk WarningKind = "deadline_risk"
)

// Warning is an informational finding about a generated schedule. Warnings
// never alter the schedule itself.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Day     string      `json:"day,omitempty"`
	TaskID  string      `json:"task_id,omitempty"`
	Message string      `json:"message"`
}

// Summary is a compact projection of the schedule metadata.
type Summary struct {
	TotalTasks       int            `json:"total_tasks"`
	TotalHours       float64        `json:"total_hours"`
	UnscheduledCount int            `json:"unscheduled_count"`
	FamilyLoad       map[string]int `json:"family_load"`
	BusyDays         []string       `json:"busy_days"` // days above 8 scheduled hours
}

// SavedSchedule is an accepted weekly plan persisted by the store.
type SavedSchedule struct {
	WeekOf    string       `json:"week_of"` // YYYY-MM-DD of the week's first working day
	CreatedAt string       `json:"created_at"`
	Schedule  WeekSchedule `json:"schedule"`
	Summary   Summary      `json:"summary"`
	Warnings  []Warning    `json:"warnings"`
}
