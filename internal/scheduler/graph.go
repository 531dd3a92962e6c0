package scheduler

import (
	"sort"

	"github.com/avilev/boardwalk/internal/domain"
)

// DependencyGraph maps a task ID to the IDs it depends on. Only edges whose
// target exists in the building task set are kept; dangling references are
// surfaced separately so the caller can warn about them.
type DependencyGraph map[string][]string

// BuildGraph constructs the dependency graph for a task set. The second
// return value lists (taskID, missingDepID) pairs for references that point
// outside the set.
func BuildGraph(tasks []*domain.Task) (DependencyGraph, []DanglingRef) {
	inSet := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		inSet[t.ID] = true
	}

	graph := make(DependencyGraph, len(tasks))
	var dangling []DanglingRef
	for _, t := range tasks {
		deps := make([]string, 0, len(t.Dependencies))
		seen := make(map[string]bool, len(t.Dependencies))
		for _, dep := range t.Dependencies {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			if !inSet[dep] {
				dangling = append(dangling, DanglingRef{TaskID: t.ID, DependsOn: dep})
				continue
			}
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		graph[t.ID] = deps
	}
	return graph, dangling
}

// DanglingRef is a dependency edge pointing at a task outside the set being
// scheduled.
type DanglingRef struct {
	TaskID    string
	DependsOn string
}

// DetectCycle runs a depth-first search over the graph and returns the first
// cycle found as an ordered ID path whose last element repeats the first
// (e.g. [A, B, A]). Returns nil for an acyclic graph. Node order is
// deterministic: roots and neighbors are visited in sorted ID order.
func DetectCycle(graph DependencyGraph) []string {
	ids := make([]string, 0, len(graph))
	for id := range graph {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	visited := make(map[string]bool, len(graph))
	onStack := make(map[string]bool, len(graph))
	var path []string

	var visit func(id string) []string
	visit = func(id string) []string {
		visited[id] = true
		onStack[id] = true
		path = append(path, id)

		for _, dep := range graph[id] {
			if onStack[dep] {
				// Slice the current path from the first occurrence of
				// dep through the current node, then close the loop.
				start := 0
				for i, p := range path {
					if p == dep {
						start = i
						break
					}
				}
				cycle := append([]string{}, path[start:]...)
				return append(cycle, dep)
			}
			if visited[dep] {
				continue
			}
			if cycle := visit(dep); cycle != nil {
				return cycle
			}
		}

		onStack[id] = false
		path = path[:len(path)-1]
		return nil
	}

	for _, id := range ids {
		if visited[id] {
			continue
		}
		if cycle := visit(id); cycle != nil {
			return cycle
		}
	}
	return nil
}
