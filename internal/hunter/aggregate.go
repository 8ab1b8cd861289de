package hunter

import (
	"time"

	"hunter/pkg/domain"

	"github.com/google/uuid"
)

// groupByBase arranges completion-ordered results into per-base groups. Group
// order follows the first appearance of each base in the task list and result
// order within a group follows the task list's TLD order, so the output is
// deterministic regardless of worker scheduling.
func groupByBase(tasks []domain.CheckTask, results []domain.CheckResult) []domain.Group {
	byDomain := make(map[string]domain.CheckResult, len(results))
	for _, result := range results {
		byDomain[result.Domain] = result
	}

	index := make(map[string]int)
	groups := make([]domain.Group, 0)
	for _, task := range tasks {
		result, ok := byDomain[task.Domain]
		if !ok {
			// The run was cut short before this task was checked.
			continue
		}

		i, seen := index[task.Base]
		if !seen {
			i = len(groups)
			index[task.Base] = i
			groups = append(groups, domain.Group{Base: task.Base})
		}
		groups[i].Results = append(groups[i].Results, result)
	}

	return groups
}

// filterInteresting keeps only the groups with at least one non-registered
// member, preserving order.
func filterInteresting(groups []domain.Group) []domain.Group {
	interesting := make([]domain.Group, 0)
	for _, group := range groups {
		if group.Interesting() {
			interesting = append(interesting, group)
		}
	}

	return interesting
}

// summarize tallies a run's results into a Summary.
func summarize(runID uuid.UUID, startedAt time.Time, duration time.Duration, results []domain.CheckResult, interesting []domain.Group) domain.Summary {
	summary := domain.Summary{
		RunID:            runID,
		StartedAt:        startedAt,
		Duration:         duration,
		Checked:          len(results),
		InterestingBases: len(interesting),
	}
	for _, result := range results {
		switch result.Status {
		case domain.StatusAvailable:
			summary.Available++
		case domain.StatusPossibleAvailable:
			summary.Possible++
		case domain.StatusRegistered:
			summary.Registered++
		}
	}

	return summary
}
