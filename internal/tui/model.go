package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"weekwise/internal/engine"
	"weekwise/internal/models"
	"weekwise/internal/storage"
)

type SessionState int

const (
	StateWeek SessionState = iota
	StateTasks
	StateCommitments
	StateConfirmOverwrite
)

const tabCount = 3

type Model struct {
	store storage.Provider
	cfg   models.PlanConfig
	keys  KeyMap
	help  help.Model

	state  SessionState
	dayIdx int

	// saved is the last accepted plan; preview is a freshly generated one
	// that has not been saved yet. The week view prefers the preview.
	saved   *models.SavedSchedule
	preview *engine.PlanResult

	tasks       []models.Task
	commitments []models.Commitment

	status   string
	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	cfg, err := store.GetConfig()
	if err != nil {
		cfg = models.DefaultConfig()
	}

	m := Model{
		store: store,
		cfg:   cfg,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		state: StateWeek,
	}

	if saved, err := store.GetLatestSchedule(); err == nil {
		m.saved = &saved
	}
	m.tasks, _ = store.GetAllTasks()
	m.commitments, _ = store.GetAllCommitments()

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// schedule returns the week currently on display.
func (m Model) schedule() *models.WeekSchedule {
	if m.preview != nil {
		return &m.preview.Schedule
	}
	if m.saved != nil {
		return &m.saved.Schedule
	}
	return nil
}

func (m Model) warnings() []models.Warning {
	if m.preview != nil {
		return m.preview.Warnings
	}
	if m.saved != nil {
		return m.saved.Warnings
	}
	return nil
}

// currentDay is the working day selected in the week view.
func (m Model) currentDay() time.Weekday {
	if len(m.cfg.WorkingDays) == 0 {
		return time.Sunday
	}
	return m.cfg.WorkingDays[m.dayIdx%len(m.cfg.WorkingDays)]
}

// dayTasks returns every scheduled task on the given day, earliest first.
func dayTasks(sched *models.WeekSchedule, day time.Weekday) []models.ScheduledTask {
	var out []models.ScheduledTask
	for _, st := range sched.AllScheduled() {
		if st.Day == day {
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
