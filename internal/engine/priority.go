package engine

import (
	"fmt"
	"sort"
	"time"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

// scoredTask is a task annotated with its priority score and parsed deadline
// distance, carried through matching so the deadline is only parsed once.
type scoredTask struct {
	models.Task
	score       int
	hasDeadline bool
	daysLeft    int
}

// prioritizeTasks computes the additive priority score for every task and
// returns them in descending score order. The sort is stable: ties keep the
// caller's input order, which makes the greedy assignment sequence fully
// deterministic.
//
// Score terms: the category's base weight; 200/100/50 as the deadline closes
// to 1/3/7 days out, plus an independent 150 once inside the buffer period;
// 30 for long tasks (over two hours); 20 for high-energy tasks.
func (e *Engine) prioritizeTasks(tasks []models.Task, now time.Time) ([]scoredTask, error) {
	scored := make([]scoredTask, 0, len(tasks))

	for _, t := range tasks {
		st := scoredTask{Task: t}
		st.score = e.cfg.CategoryWeights[t.Category]

		if t.Deadline != "" {
			deadline, err := timeutil.ParseDate(t.Deadline)
			if err != nil {
				return nil, fmt.Errorf("task %q: %w", t.Name, err)
			}
			st.hasDeadline = true
			st.daysLeft = timeutil.DaysUntil(now, deadline)

			switch {
			case st.daysLeft <= 1:
				st.score += 200
			case st.daysLeft <= 3:
				st.score += 100
			case st.daysLeft <= 7:
				st.score += 50
			}
			if st.daysLeft <= t.EffectiveBufferDays() {
				st.score += 150
			}
		}

		if t.EstimatedDuration() > 120 {
			st.score += 30
		}
		if t.Energy == models.EnergyHigh {
			st.score += 20
		}

		scored = append(scored, st)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return scored, nil
}
