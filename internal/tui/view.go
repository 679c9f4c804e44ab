package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateWeek:
		content = m.viewWeek()
	case StateTasks:
		content = m.viewTasks()
	case StateCommitments:
		content = m.viewCommitments()
	case StateConfirmOverwrite:
		content = m.viewConfirmOverwrite()
	}

	sections := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		sections = append(sections, warnStyle.Render("Error: "+m.errMsg))
	} else if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Week", "Tasks", "Commitments"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewWeek() string {
	sched := m.schedule()
	if sched == nil {
		return docStyle.Render(dimStyle.Render("No plan yet. Press g to generate one."))
	}

	var b strings.Builder

	var days []string
	for i, wd := range m.cfg.WorkingDays {
		label := wd.String()[:3]
		if i == m.dayIdx%len(m.cfg.WorkingDays) {
			days = append(days, activeTabStyle.Render(label))
		} else {
			days = append(days, inactiveTabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, days...))
	b.WriteString("\n\n")

	day := m.currentDay()
	entries := dayTasks(sched, day)
	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("Nothing scheduled for " + day.String()))
	} else {
		for _, st := range entries {
			b.WriteString(fmt.Sprintf("%s-%s  %s", st.Start, st.End, st.Name))
			b.WriteString(dimStyle.Render(fmt.Sprintf("  (%s, %s)", st.Category, st.Location)))
			b.WriteString("\n")
		}
	}

	if len(sched.Unscheduled) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d task(s) could not be scheduled", len(sched.Unscheduled))))
	}
	for _, w := range m.warnings() {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("⚠ " + w.Message))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmOverwrite() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render("A saved plan already exists. Overwrite it?"),
		"",
		"[y] Yes",
		"[n] No",
	))
}

func (m Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return docStyle.Render(dimStyle.Render("No tasks yet. Add one with 'weekwise task add'."))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n\n")
	for _, t := range m.tasks {
		b.WriteString(fmt.Sprintf("%s  %dm  %s", t.Name, t.EstimatedDuration(), t.Category))
		if t.Deadline != "" {
			b.WriteString(dimStyle.Render("  due " + t.Deadline))
		}
		b.WriteString("\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewCommitments() string {
	if len(m.commitments) == 0 {
		return docStyle.Render(dimStyle.Render("No fixed commitments."))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Commitments"))
	b.WriteString("\n\n")
	for _, c := range m.commitments {
		b.WriteString(fmt.Sprintf("%s  %s-%s  %s\n", c.Day.String()[:3], c.Start, c.End, c.Name))
	}
	return docStyle.Render(b.String())
}
