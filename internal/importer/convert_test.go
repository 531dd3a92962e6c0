package importer

import (
	"testing"
	"time"

	"github.com/avilev/boardwalk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_ResolvesRefs(t *testing.T) {
	s := validSchema()
	ada := "ada"
	s.Tasks = append(s.Tasks, TaskImport{
		Ref: "t2", Project: "web", Title: "Deploy",
		StoryPoints: 1, DependsOn: []string{"t1"}, AssignedTo: &ada,
	})

	snap, err := Convert(s)
	require.NoError(t, err)
	require.Len(t, snap.Projects, 1)
	require.Len(t, snap.Workers, 1)
	require.Len(t, snap.Tasks, 2)

	project := snap.Projects[0]
	worker := snap.Workers[0]
	login, deploy := snap.Tasks[0], snap.Tasks[1]

	assert.Equal(t, project.ID, login.ProjectID)
	assert.Equal(t, []string{worker.ID}, project.AssignedWorkers)
	require.NotNil(t, deploy.AssignedTo)
	assert.Equal(t, worker.ID, *deploy.AssignedTo)
	assert.Equal(t, []string{login.ID}, deploy.Dependencies, "dependency refs resolve to generated IDs")
	assert.NotEqual(t, "t1", login.ID, "refs are replaced by UUIDs")
}

func TestConvert_KeepsDanglingDependencyVerbatim(t *testing.T) {
	s := validSchema()
	s.Tasks[0].DependsOn = []string{"gone"}

	snap, err := Convert(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"gone"}, snap.Tasks[0].Dependencies)
}

func TestConvert_Dates(t *testing.T) {
	end := "2026-06-01"
	s := validSchema()
	s.Projects[0].EndDate = &end

	snap, err := Convert(s)
	require.NoError(t, err)
	p := snap.Projects[0]
	require.NotNil(t, p.StartDate)
	assert.True(t, p.StartDate.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, p.EndDate)
	assert.True(t, p.EndDate.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestConvert_DefaultsAndMovements(t *testing.T) {
	createdAt := "2026-01-10T08:00:00Z"
	s := validSchema()
	s.Tasks[0].Status = "done"
	s.Tasks[0].CreatedAt = &createdAt
	s.Tasks[0].Movements = []MovementImport{
		{From: "not_started", To: "active", At: "2026-02-02T09:00:00Z"},
		{From: "active", To: "in_review", At: "2026-02-05T17:00:00Z"},
	}
	s.Tasks = append(s.Tasks, TaskImport{Ref: "bare", Project: "web"})

	snap, err := Convert(s)
	require.NoError(t, err)

	done := snap.Tasks[0]
	assert.Equal(t, domain.TaskDone, done.Status)
	assert.True(t, done.CreatedAt.Equal(time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)))
	require.Len(t, done.Movements, 2)
	assert.Equal(t, domain.TaskActive, done.Movements[0].To)

	bare := snap.Tasks[1]
	assert.Equal(t, domain.TaskNotStarted, bare.Status, "missing status defaults to not_started")
	assert.Equal(t, "bare", bare.Title, "missing title falls back to the ref")
}
