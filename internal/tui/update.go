package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"weekwise/internal/engine"
	"weekwise/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.state == StateConfirmOverwrite {
			switch msg.String() {
			case "y", "Y", "enter":
				m.state = StateWeek
				m.savePlan()
			case "n", "N", "esc", "q":
				m.state = StateWeek
				m.status = "Kept the saved plan."
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Left):
			if m.state == StateWeek && len(m.cfg.WorkingDays) > 0 {
				m.dayIdx = (m.dayIdx - 1 + len(m.cfg.WorkingDays)) % len(m.cfg.WorkingDays)
			}
		case key.Matches(msg, m.keys.Right):
			if m.state == StateWeek && len(m.cfg.WorkingDays) > 0 {
				m.dayIdx = (m.dayIdx + 1) % len(m.cfg.WorkingDays)
			}
		case key.Matches(msg, m.keys.Generate):
			m.generatePlan()
		case key.Matches(msg, m.keys.Enter):
			m.acceptPlan()
		}
	}

	return m, nil
}

func (m *Model) generatePlan() {
	m.status, m.errMsg = "", ""

	result, err := engine.New(m.cfg).Plan(engine.PlanInput{
		Commitments: m.commitments,
		Tasks:       m.tasks,
	})
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.preview = &result
	m.state = StateWeek
	m.status = "Plan generated. Press enter to accept and save."
}

func (m *Model) acceptPlan() {
	if m.preview == nil {
		return
	}
	if m.saved != nil {
		m.state = StateConfirmOverwrite
		return
	}
	m.savePlan()
}

func (m *Model) savePlan() {
	if m.preview == nil {
		return
	}
	m.status, m.errMsg = "", ""

	saved := models.SavedSchedule{
		WeekOf:    m.cfg.WeekOf(time.Now()),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Schedule:  m.preview.Schedule,
		Summary:   m.preview.Summary,
		Warnings:  m.preview.Warnings,
	}
	if err := m.store.SaveSchedule(saved); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.saved = &saved
	m.preview = nil
	m.status = "Plan saved for week of " + saved.WeekOf
}
