package models

type Category string

const (
	CategorySalary         Category = "salary"
	CategoryVAT            Category = "vat"
	CategoryReconciliation Category = "reconciliation"
	CategoryReporting      Category = "reporting"
	CategoryClientWork     Category = "client_work"
	CategoryHousehold      Category = "household"
	CategoryPersonal       Category = "personal"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

type LocationFlexibility string

const (
	LocationAnywhere       LocationFlexibility = "anywhere"
	LocationRemotePossible LocationFlexibility = "remote_possible"
	LocationOfficeOnly     LocationFlexibility = "office_only"
)

type TaskContext string

const (
	ContextWork TaskContext = "work"
	ContextHome TaskContext = "home"
)

type DayPeriod string

const (
	PeriodMorning   DayPeriod = "morning"
	PeriodAfternoon DayPeriod = "afternoon"
	PeriodEvening   DayPeriod = "evening"
)

// DefaultDurationMin is used when a task does not specify an estimate.
const DefaultDurationMin = 30

// DefaultBufferDays is the slack period before a deadline during which
// urgency sharply increases, when a task does not set its own.
const DefaultBufferDays = 2

type Task struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Category      Category            `json:"category"`
	Deadline      string              `json:"deadline,omitempty"` // YYYY-MM-DD format
	BufferDays    int                 `json:"buffer_days,omitempty"`
	DurationMin   int                 `json:"duration_min,omitempty"`
	Energy        EnergyLevel         `json:"energy,omitempty"`
	Flexibility   LocationFlexibility `json:"flexibility,omitempty"`
	PreferredTime DayPeriod           `json:"preferred_time,omitempty"`
	Context       TaskContext         `json:"context,omitempty"`
	SuitableFor   []string            `json:"suitable_for,omitempty"` // family role names, in preference order
	DeletedAt     *string             `json:"deleted_at,omitempty"`   // RFC3339 timestamp
}

// EstimatedDuration returns the task's duration in minutes, falling back to
// the default when no estimate was given.
func (t Task) EstimatedDuration() int {
	if t.DurationMin <= 0 {
		return DefaultDurationMin
	}
	return t.DurationMin
}

// EffectiveBufferDays returns the configured buffer days or the default.
func (t Task) EffectiveBufferDays() int {
	if t.BufferDays <= 0 {
		return DefaultBufferDays
	}
	return t.BufferDays
}
