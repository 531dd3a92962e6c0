package scheduler

import (
	"sort"

	"github.com/avilev/boardwalk/internal/domain"
)

// sortReady orders a batch of ready tasks by priority ascending (nil sorts
// last), then creation time ascending, then ID. The same rule is applied to
// the initial ready set and to every batch of newly unblocked tasks, so
// priority ordering holds across graph layers, not just within the seed.
func sortReady(tasks []*domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if (a.Priority == nil) != (b.Priority == nil) {
			return a.Priority != nil
		}
		if a.Priority != nil && b.Priority != nil && *a.Priority != *b.Priority {
			return *a.Priority < *b.Priority
		}

		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}

		return a.ID < b.ID
	})
}

// TopologicalOrder runs a priority-aware Kahn's algorithm over the task set.
// In-degrees count only dependencies that resolve within the set; dangling
// references (already reported by BuildGraph) do not block a task.
//
// The second return value lists tasks whose in-degree never reached zero and
// which were therefore left out of the order. With an acyclic graph this only
// happens on inconsistent input, and callers must surface it as a warning.
func TopologicalOrder(tasks []*domain.Task, graph DependencyGraph) (ordered []*domain.Task, dropped []*domain.Task) {
	byID := make(map[string]*domain.Task, len(tasks))
	inDegree := make(map[string]int, len(tasks))
	dependents := make(map[string][]string, len(tasks))

	for _, t := range tasks {
		byID[t.ID] = t
		inDegree[t.ID] = len(graph[t.ID])
		for _, dep := range graph[t.ID] {
			dependents[dep] = append(dependents[dep], t.ID)
		}
	}

	var queue []*domain.Task
	for _, t := range tasks {
		if inDegree[t.ID] == 0 {
			queue = append(queue, t)
		}
	}
	sortReady(queue)

	ordered = make([]*domain.Task, 0, len(tasks))
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		ordered = append(ordered, next)

		var unblocked []*domain.Task
		for _, depID := range dependents[next.ID] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				unblocked = append(unblocked, byID[depID])
			}
		}
		sortReady(unblocked)
		queue = append(queue, unblocked...)
	}

	if len(ordered) < len(tasks) {
		emitted := make(map[string]bool, len(ordered))
		for _, t := range ordered {
			emitted[t.ID] = true
		}
		for _, t := range tasks {
			if !emitted[t.ID] {
				dropped = append(dropped, t)
			}
		}
	}

	return ordered, dropped
}
