package engine

import "weekwise/internal/models"

// distributeHousehold allocates the scheduled household tasks among family
// roles. A task's suitableFor list is walked in order; the first role that
// both accepts the task's category and still has capacity takes it. Tasks no
// role can take fall back to the default parent bucket, which is not capped
// on this path.
//
// TODO: the uncapped fallback can push the parent past its configured
// maximum; confirm whether that is intended before tightening it.
func (e *Engine) distributeHousehold(household []models.ScheduledTask) map[string][]models.ScheduledTask {
	family := map[string][]models.ScheduledTask{}

	roles := make(map[string]models.FamilyRole, len(e.cfg.Roles))
	for _, r := range e.cfg.Roles {
		roles[r.Name] = r
	}

	fallback := e.cfg.FallbackRole
	if fallback == "" {
		fallback = "parent"
	}

	for _, task := range household {
		assigned := false
		for _, name := range task.SuitableFor {
			role, ok := roles[name]
			if !ok || !roleAccepts(role, task.Category) {
				continue
			}
			if len(family[role.Name]) >= role.MaxTasks {
				continue
			}
			family[role.Name] = append(family[role.Name], task)
			assigned = true
			break
		}
		if !assigned {
			family[fallback] = append(family[fallback], task)
		}
	}

	return family
}

// roleAccepts reports whether the role may take a task of the given
// category. An empty capability set accepts anything.
func roleAccepts(role models.FamilyRole, cat models.Category) bool {
	if len(role.Capabilities) == 0 {
		return true
	}
	for _, c := range role.Capabilities {
		if c == cat {
			return true
		}
	}
	return false
}
