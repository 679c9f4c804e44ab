package storage

import "weekwise/internal/models"

// Provider persists the planning inputs (config, tasks, commitments) and the
// accepted weekly schedules. The engine itself never touches a Provider.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Planning configuration
	GetConfig() (models.PlanConfig, error)
	SaveConfig(models.PlanConfig) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	RestoreTask(id string) error

	// Commitments
	AddCommitment(models.Commitment) error
	GetAllCommitments() ([]models.Commitment, error)
	DeleteCommitment(id string) error

	// Accepted schedules, keyed by the week's first working date
	SaveSchedule(models.SavedSchedule) error
	GetSchedule(weekOf string) (models.SavedSchedule, error)
	GetLatestSchedule() (models.SavedSchedule, error)

	// Utils
	GetConfigPath() string
}
