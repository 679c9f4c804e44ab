package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"weekwise/internal/models"
)

type Store struct {
	Version     int                             `json:"version"`
	Config      models.PlanConfig               `json:"config"`
	Tasks       map[string]models.Task          `json:"tasks"`
	Commitments map[string]models.Commitment    `json:"commitments"`
	Schedules   map[string]models.SavedSchedule `json:"schedules"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:     1,
		Config:      models.DefaultConfig(),
		Tasks:       make(map[string]models.Task),
		Commitments: make(map[string]models.Commitment),
		Schedules:   make(map[string]models.SavedSchedule),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'weekwise init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Tasks == nil {
		s.store.Tasks = make(map[string]models.Task)
	}
	if s.store.Commitments == nil {
		s.store.Commitments = make(map[string]models.Commitment)
	}
	if s.store.Schedules == nil {
		s.store.Schedules = make(map[string]models.SavedSchedule)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfig() (models.PlanConfig, error) {
	if len(s.store.Config.WorkingDays) == 0 {
		return models.PlanConfig{}, fmt.Errorf("plan config not found")
	}
	return s.store.Config, nil
}

func (s *JSONStore) SaveConfig(cfg models.PlanConfig) error {
	s.store.Config = cfg
	return s.save()
}

func (s *JSONStore) AddTask(task models.Task) error {
	s.store.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	task, ok := s.store.Tasks[id]
	if !ok || task.DeletedAt != nil {
		return models.Task{}, fmt.Errorf("task with id %s not found", id)
	}
	return task, nil
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	tasks := make([]models.Task, 0, len(s.store.Tasks))
	for _, t := range s.store.Tasks {
		if t.DeletedAt == nil {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Name < tasks[j].Name })
	return tasks, nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if _, ok := s.store.Tasks[task.ID]; !ok {
		return fmt.Errorf("task with id %s not found", task.ID)
	}
	s.store.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) DeleteTask(id string) error {
	task, ok := s.store.Tasks[id]
	if !ok {
		return fmt.Errorf("task with id %s not found", id)
	}
	if task.DeletedAt != nil {
		return fmt.Errorf("task with id %s is already deleted", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	task.DeletedAt = &now
	s.store.Tasks[id] = task
	return s.save()
}

func (s *JSONStore) RestoreTask(id string) error {
	task, ok := s.store.Tasks[id]
	if !ok {
		return fmt.Errorf("task with id %s not found", id)
	}
	if task.DeletedAt == nil {
		return fmt.Errorf("cannot restore a task that is not deleted: %s", id)
	}

	task.DeletedAt = nil
	s.store.Tasks[id] = task
	return s.save()
}

func (s *JSONStore) AddCommitment(c models.Commitment) error {
	s.store.Commitments[c.ID] = c
	return s.save()
}

func (s *JSONStore) GetAllCommitments() ([]models.Commitment, error) {
	commitments := make([]models.Commitment, 0, len(s.store.Commitments))
	for _, c := range s.store.Commitments {
		if c.DeletedAt == nil {
			commitments = append(commitments, c)
		}
	}
	sort.Slice(commitments, func(i, j int) bool {
		if commitments[i].Day != commitments[j].Day {
			return commitments[i].Day < commitments[j].Day
		}
		return commitments[i].Start < commitments[j].Start
	})
	return commitments, nil
}

func (s *JSONStore) DeleteCommitment(id string) error {
	c, ok := s.store.Commitments[id]
	if !ok || c.DeletedAt != nil {
		return fmt.Errorf("commitment with id %s not found", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	c.DeletedAt = &now
	s.store.Commitments[id] = c
	return s.save()
}

func (s *JSONStore) SaveSchedule(sched models.SavedSchedule) error {
	s.store.Schedules[sched.WeekOf] = sched
	return s.save()
}

func (s *JSONStore) GetSchedule(weekOf string) (models.SavedSchedule, error) {
	sched, ok := s.store.Schedules[weekOf]
	if !ok {
		return models.SavedSchedule{}, fmt.Errorf("no schedule found for week of %s", weekOf)
	}
	return sched, nil
}

func (s *JSONStore) GetLatestSchedule() (models.SavedSchedule, error) {
	if len(s.store.Schedules) == 0 {
		return models.SavedSchedule{}, fmt.Errorf("no saved schedules")
	}

	weeks := make([]string, 0, len(s.store.Schedules))
	for week := range s.store.Schedules {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)
	return s.store.Schedules[weeks[len(weeks)-1]], nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
