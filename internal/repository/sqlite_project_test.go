package repository

import (
	"context"
	"testing"
	"time"

	"github.com/avilev/boardwalk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	end := testutil.FixtureTime.AddDate(0, 2, 0)
	p := testutil.NewTestProject("Website Relaunch", testutil.WithEndDate(end))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website Relaunch", got.Name)
	require.NotNil(t, got.StartDate)
	assert.True(t, got.StartDate.Equal(testutil.FixtureTime))
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(end))
}

func TestProjectRepo_NullStartDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProject("No Dates", testutil.WithoutStartDate())
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
}

func TestProjectRepo_AssignWorkers(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	workers := NewSQLiteWorkerRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProject("Staffed")
	require.NoError(t, projects.Create(ctx, p))
	w1 := testutil.NewTestWorker("Ada", 2)
	w2 := testutil.NewTestWorker("Grace", 1)
	require.NoError(t, workers.Create(ctx, w1))
	require.NoError(t, workers.Create(ctx, w2))

	require.NoError(t, projects.AssignWorker(ctx, p.ID, w2.ID))
	require.NoError(t, projects.AssignWorker(ctx, p.ID, w1.ID))
	// Idempotent re-assign.
	require.NoError(t, projects.AssignWorker(ctx, p.ID, w1.ID))

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{w1.ID, w2.ID}, got.AssignedWorkers)

	require.NoError(t, projects.UnassignWorker(ctx, p.ID, w1.ID))
	got, err = projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{w2.ID}, got.AssignedWorkers)
}

func TestProjectRepo_ListOrderedByStartDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	later := testutil.NewTestProject("Later")
	start := testutil.FixtureTime.AddDate(0, 1, 0)
	later.StartDate = &start
	earlier := testutil.NewTestProject("Earlier")
	dateless := testutil.NewTestProject("Dateless", testutil.WithoutStartDate())

	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))
	require.NoError(t, repo.Create(ctx, dateless))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Earlier", list[0].Name)
	assert.Equal(t, "Later", list[1].Name)
	assert.Equal(t, "Dateless", list[2].Name, "projects without a start date sort last")
}

func TestProjectRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProject("Before")
	require.NoError(t, repo.Create(ctx, p))

	p.Name = "After"
	newStart := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	p.StartDate = &newStart
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.True(t, got.StartDate.Equal(newStart))

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	assert.Error(t, err)

	assert.Error(t, repo.Delete(ctx, p.ID), "deleting a missing project reports not found")
}
