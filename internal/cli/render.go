package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"weekwise/internal/models"
)

func renderSchedule(sched models.WeekSchedule) {
	renderBucket("Work", sched.Work)
	renderBucket("Household", sched.Household)
	renderBucket("Personal", sched.Personal)

	if len(sched.FamilyTasks) > 0 {
		names := make([]string, 0, len(sched.FamilyTasks))
		for name := range sched.FamilyTasks {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("\nHousehold assignments:")
		for _, name := range names {
			var titles []string
			for _, st := range sched.FamilyTasks[name] {
				titles = append(titles, st.Name)
			}
			fmt.Printf("  %s: %s\n", name, strings.Join(titles, ", "))
		}
	}

	if len(sched.Unscheduled) > 0 {
		fmt.Println("\nUnscheduled:")
		for _, t := range sched.Unscheduled {
			line := fmt.Sprintf("  %s (%s, %s)", t.Name, t.Category, formatDuration(t.EstimatedDuration()))
			if t.Deadline != "" {
				line += " due " + t.Deadline
			}
			fmt.Println(line)
		}
	}
}

func renderBucket(title string, tasks []models.ScheduledTask) {
	if len(tasks) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Day", "Time", "Task", "Location", "Score"})
	for _, st := range tasks {
		tw.AppendRow(table.Row{
			st.Day.String()[:3],
			fmt.Sprintf("%s-%s", st.Start, st.End),
			st.Name,
			st.Location,
			st.Score,
		})
	}
	tw.Render()
}

func renderSummary(summary models.Summary) {
	fmt.Printf("\n%d tasks scheduled, %.1f hours total", summary.TotalTasks, summary.TotalHours)
	if summary.UnscheduledCount > 0 {
		fmt.Printf(", %d unscheduled", summary.UnscheduledCount)
	}
	fmt.Println()
	if len(summary.BusyDays) > 0 {
		fmt.Printf("Busy days: %s\n", strings.Join(summary.BusyDays, ", "))
	}
}

func renderWarnings(warnings []models.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("\nWarnings:")
	for _, w := range warnings {
		fmt.Printf("  [%s] %s\n", w.Kind, w.Message)
	}
}
