package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"weekwise/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	category       TEXT NOT NULL,
	deadline       TEXT NOT NULL DEFAULT '',
	buffer_days    INTEGER NOT NULL DEFAULT 0,
	duration_min   INTEGER NOT NULL DEFAULT 0,
	energy         TEXT NOT NULL DEFAULT '',
	flexibility    TEXT NOT NULL DEFAULT '',
	preferred_time TEXT NOT NULL DEFAULT '',
	context        TEXT NOT NULL DEFAULT '',
	suitable_for   TEXT NOT NULL DEFAULT '[]',
	deleted_at     TEXT
);
CREATE TABLE IF NOT EXISTS commitments (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	day        INTEGER NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	deleted_at TEXT
);
CREATE TABLE IF NOT EXISTS schedules (
	week_of    TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	payload    TEXT NOT NULL
);
`

const configKey = "plan_config"

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed the default plan config if none is present.
	if _, err := s.GetConfig(); err != nil {
		if err := s.SaveConfig(models.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'weekwise init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfig() (models.PlanConfig, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", configKey).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.PlanConfig{}, fmt.Errorf("plan config not found")
		}
		return models.PlanConfig{}, err
	}

	var cfg models.PlanConfig
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		return models.PlanConfig{}, fmt.Errorf("failed to parse plan config: %w", err)
	}
	return cfg, nil
}

func (s *SQLiteStore) SaveConfig(cfg models.PlanConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize plan config: %w", err)
	}
	_, err = s.db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", configKey, string(data))
	return err
}

func (s *SQLiteStore) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *SQLiteStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, name, category, deadline, buffer_days, duration_min, energy,
		       flexibility, preferred_time, context, suitable_for, deleted_at
		FROM tasks WHERE id = ? AND deleted_at IS NULL`, id)
	return scanTask(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var suitableFor string
	var deletedAt sql.NullString

	err := row.Scan(
		&t.ID, &t.Name, &t.Category, &t.Deadline, &t.BufferDays, &t.DurationMin,
		&t.Energy, &t.Flexibility, &t.PreferredTime, &t.Context, &suitableFor, &deletedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	if deletedAt.Valid {
		t.DeletedAt = &deletedAt.String
	}
	if suitableFor != "" {
		if err := json.Unmarshal([]byte(suitableFor), &t.SuitableFor); err != nil {
			return models.Task{}, fmt.Errorf("failed to parse suitable_for for task %s: %w", t.ID, err)
		}
	}

	return t, nil
}

func (s *SQLiteStore) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, name, category, deadline, buffer_days, duration_min, energy,
		       flexibility, preferred_time, context, suitable_for, deleted_at
		FROM tasks WHERE deleted_at IS NULL ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) UpdateTask(task models.Task) error {
	suitableFor, err := json.Marshal(task.SuitableFor)
	if err != nil {
		return fmt.Errorf("failed to marshal suitable_for: %w", err)
	}

	var deletedAt sql.NullString
	if task.DeletedAt != nil {
		deletedAt = sql.NullString{String: *task.DeletedAt, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO tasks (
			id, name, category, deadline, buffer_days, duration_min, energy,
			flexibility, preferred_time, context, suitable_for, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Name, task.Category, task.Deadline, task.BufferDays, task.DurationMin,
		task.Energy, task.Flexibility, task.PreferredTime, task.Context, string(suitableFor), deletedAt,
	)
	return err
}

func (s *SQLiteStore) DeleteTask(id string) error {
	// Soft delete: set deleted_at instead of removing the record.
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM tasks WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("task with id %s not found", id)
		}
		return fmt.Errorf("failed to check task existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("task with id %s is already deleted", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec("UPDATE tasks SET deleted_at = ? WHERE id = ?", now, id)
	return err
}

func (s *SQLiteStore) RestoreTask(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM tasks WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("task with id %s not found", id)
		}
		return fmt.Errorf("failed to check task existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a task that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE tasks SET deleted_at = NULL WHERE id = ?", id)
	return err
}

func (s *SQLiteStore) AddCommitment(c models.Commitment) error {
	var deletedAt sql.NullString
	if c.DeletedAt != nil {
		deletedAt = sql.NullString{String: *c.DeletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO commitments (id, name, day, start_time, end_time, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, int(c.Day), c.Start, c.End, deletedAt,
	)
	return err
}

func (s *SQLiteStore) GetAllCommitments() ([]models.Commitment, error) {
	rows, err := s.db.Query(`
		SELECT id, name, day, start_time, end_time
		FROM commitments WHERE deleted_at IS NULL ORDER BY day, start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commitments []models.Commitment
	for rows.Next() {
		var c models.Commitment
		var day int
		if err := rows.Scan(&c.ID, &c.Name, &day, &c.Start, &c.End); err != nil {
			return nil, err
		}
		c.Day = time.Weekday(day)
		commitments = append(commitments, c)
	}
	return commitments, rows.Err()
}

func (s *SQLiteStore) DeleteCommitment(id string) error {
	res, err := s.db.Exec(
		"UPDATE commitments SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("commitment with id %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) SaveSchedule(sched models.SavedSchedule) error {
	payload, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("failed to serialize schedule: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO schedules (week_of, created_at, payload) VALUES (?, ?, ?)",
		sched.WeekOf, sched.CreatedAt, string(payload),
	)
	return err
}

func (s *SQLiteStore) GetSchedule(weekOf string) (models.SavedSchedule, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM schedules WHERE week_of = ?", weekOf).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.SavedSchedule{}, fmt.Errorf("no schedule found for week of %s", weekOf)
		}
		return models.SavedSchedule{}, err
	}
	return decodeSchedule(payload)
}

func (s *SQLiteStore) GetLatestSchedule() (models.SavedSchedule, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM schedules ORDER BY week_of DESC LIMIT 1").Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.SavedSchedule{}, fmt.Errorf("no saved schedules")
		}
		return models.SavedSchedule{}, err
	}
	return decodeSchedule(payload)
}

func decodeSchedule(payload string) (models.SavedSchedule, error) {
	var sched models.SavedSchedule
	if err := json.Unmarshal([]byte(payload), &sched); err != nil {
		return models.SavedSchedule{}, fmt.Errorf("failed to parse schedule: %w", err)
	}
	return sched, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
