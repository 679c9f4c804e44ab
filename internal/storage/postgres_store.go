package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"weekwise/internal/models"
)

const pgSchema = `
CREATE SCHEMA IF NOT EXISTS weekwise;
CREATE TABLE IF NOT EXISTS weekwise.settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS weekwise.tasks (
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
CREATE TABLE IF NOT EXISTS weekwise.commitments (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	day        INTEGER NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	deleted_at TEXT
);
CREATE TABLE IF NOT EXISTS weekwise.schedules (
	week_of    TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	payload    TEXT NOT NULL
);
`

// PostgresStore is a Provider backed by PostgreSQL, for households sharing
// one planner across machines. The connection string is expected to come
// from the OS keyring, never from the command line.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to reach database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(pgSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := s.GetConfig(); err != nil {
		if err := s.SaveConfig(models.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return nil
}

func (s *PostgresStore) Load() error {
	return s.open()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetConfig() (models.PlanConfig, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM weekwise.settings WHERE key = $1", configKey).Scan(&value)
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

func (s *PostgresStore) SaveConfig(cfg models.PlanConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize plan config: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO weekwise.settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		configKey, string(data))
	return err
}

func (s *PostgresStore) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *PostgresStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, name, category, deadline, buffer_days, duration_min, energy,
		       flexibility, preferred_time, context, suitable_for, deleted_at
		FROM weekwise.tasks WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanTask(row)
}

func (s *PostgresStore) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, name, category, deadline, buffer_days, duration_min, energy,
		       flexibility, preferred_time, context, suitable_for, deleted_at
		FROM weekwise.tasks WHERE deleted_at IS NULL ORDER BY name`)
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

func (s *PostgresStore) UpdateTask(task models.Task) error {
	suitableFor, err := json.Marshal(task.SuitableFor)
	if err != nil {
		return fmt.Errorf("failed to marshal suitable_for: %w", err)
	}

	var deletedAt sql.NullString
	if task.DeletedAt != nil {
		deletedAt = sql.NullString{String: *task.DeletedAt, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO weekwise.tasks (
			id, name, category, deadline, buffer_days, duration_min, energy,
			flexibility, preferred_time, context, suitable_for, deleted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, category = EXCLUDED.category,
			deadline = EXCLUDED.deadline, buffer_days = EXCLUDED.buffer_days,
			duration_min = EXCLUDED.duration_min, energy = EXCLUDED.energy,
			flexibility = EXCLUDED.flexibility, preferred_time = EXCLUDED.preferred_time,
			context = EXCLUDED.context, suitable_for = EXCLUDED.suitable_for,
			deleted_at = EXCLUDED.deleted_at`,
		task.ID, task.Name, task.Category, task.Deadline, task.BufferDays, task.DurationMin,
		task.Energy, task.Flexibility, task.PreferredTime, task.Context, string(suitableFor), deletedAt,
	)
	return err
}

func (s *PostgresStore) DeleteTask(id string) error {
	res, err := s.db.Exec(
		"UPDATE weekwise.tasks SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL",
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, fmt.Sprintf("task with id %s not found", id))
}

func (s *PostgresStore) RestoreTask(id string) error {
	res, err := s.db.Exec(
		"UPDATE weekwise.tasks SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL", id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, fmt.Sprintf("no deleted task with id %s", id))
}

func (s *PostgresStore) AddCommitment(c models.Commitment) error {
	var deletedAt sql.NullString
	if c.DeletedAt != nil {
		deletedAt = sql.NullString{String: *c.DeletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO weekwise.commitments (id, name, day, start_time, end_time, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, day = EXCLUDED.day,
			start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time,
			deleted_at = EXCLUDED.deleted_at`,
		c.ID, c.Name, int(c.Day), c.Start, c.End, deletedAt,
	)
	return err
}

func (s *PostgresStore) GetAllCommitments() ([]models.Commitment, error) {
	rows, err := s.db.Query(`
		SELECT id, name, day, start_time, end_time
		FROM weekwise.commitments WHERE deleted_at IS NULL ORDER BY day, start_time`)
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

func (s *PostgresStore) DeleteCommitment(id string) error {
	res, err := s.db.Exec(
		"UPDATE weekwise.commitments SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL",
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, fmt.Sprintf("commitment with id %s not found", id))
}

func (s *PostgresStore) SaveSchedule(sched models.SavedSchedule) error {
	payload, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("failed to serialize schedule: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO weekwise.schedules (week_of, created_at, payload) VALUES ($1, $2, $3)
		ON CONFLICT (week_of) DO UPDATE SET
			created_at = EXCLUDED.created_at, payload = EXCLUDED.payload`,
		sched.WeekOf, sched.CreatedAt, string(payload),
	)
	return err
}

func (s *PostgresStore) GetSchedule(weekOf string) (models.SavedSchedule, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM weekwise.schedules WHERE week_of = $1", weekOf).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.SavedSchedule{}, fmt.Errorf("no schedule found for week of %s", weekOf)
		}
		return models.SavedSchedule{}, err
	}
	return decodeSchedule(payload)
}

func (s *PostgresStore) GetLatestSchedule() (models.SavedSchedule, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM weekwise.schedules ORDER BY week_of DESC LIMIT 1").Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.SavedSchedule{}, fmt.Errorf("no saved schedules")
		}
		return models.SavedSchedule{}, err
	}
	return decodeSchedule(payload)
}

func (s *PostgresStore) GetConfigPath() string {
	return "postgres"
}

func requireAffected(res sql.Result, msg string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
