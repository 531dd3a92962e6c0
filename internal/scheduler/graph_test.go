package scheduler

import (
	"testing"

	"github.com/avilev/boardwalk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depTask(id string, deps ...string) *domain.Task {
	return &domain.Task{ID: id, Dependencies: deps, StoryPoints: 1}
}

func TestBuildGraph_DropsDanglingRefs(t *testing.T) {
	tasks := []*domain.Task{
		depTask("a"),
		depTask("b", "a", "ghost"),
	}

	graph, dangling := BuildGraph(tasks)

	assert.Equal(t, []string{"a"}, graph["b"])
	require.Len(t, dangling, 1)
	assert.Equal(t, "b", dangling[0].TaskID)
	assert.Equal(t, "ghost", dangling[0].DependsOn)
}

func TestBuildGraph_DeduplicatesEdges(t *testing.T) {
	tasks := []*domain.Task{
		depTask("a"),
		depTask("b", "a", "a", "a"),
	}

	graph, dangling := BuildGraph(tasks)
	assert.Empty(t, dangling)
	assert.Equal(t, []string{"a"}, graph["b"])
}

func TestDetectCycle_Acyclic(t *testing.T) {
	graph, _ := BuildGraph([]*domain.Task{
		depTask("a"),
		depTask("b", "a"),
		depTask("c", "a", "b"),
	})

	assert.Nil(t, DetectCycle(graph))
}

func TestDetectCycle_TwoNodeCycle(t *testing.T) {
	graph, _ := BuildGraph([]*domain.Task{
		depTask("a", "b"),
		depTask("b", "a"),
	})

	cycle := DetectCycle(graph)
	require.Len(t, cycle, 3)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1], "cycle path should close on its first node")
	assert.ElementsMatch(t, []string{"a", "b"}, cycle[:2])
}

func TestDetectCycle_SelfDependency(t *testing.T) {
	graph, _ := BuildGraph([]*domain.Task{depTask("a", "a")})

	cycle := DetectCycle(graph)
	assert.Equal(t, []string{"a", "a"}, cycle)
}

func TestDetectCycle_LongerCycleMembers(t *testing.T) {
	graph, _ := BuildGraph([]*domain.Task{
		depTask("a", "c"),
		depTask("b", "a"),
		depTask("c", "b"),
		depTask("d", "a"), // outside the cycle
	})

	cycle := DetectCycle(graph)
	require.NotNil(t, cycle)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
	assert.ElementsMatch(t, []string{"a", "b", "c"}, cycle[:len(cycle)-1])
	assert.NotContains(t, cycle, "d")
}

func TestDetectCycle_Deterministic(t *testing.T) {
	tasks := []*domain.Task{
		depTask("x", "y"),
		depTask("y", "x"),
		depTask("m", "n"),
		depTask("n", "m"),
	}

	first := DetectCycle(mustGraph(tasks))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectCycle(mustGraph(tasks)))
	}
}

func mustGraph(tasks []*domain.Task) DependencyGraph {
	g, _ := BuildGraph(tasks)
	return g
}
