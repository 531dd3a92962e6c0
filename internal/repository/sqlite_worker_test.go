package repository

import (
	"context"
	"testing"

	"github.com/avilev/boardwalk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkerRepo(db)
	ctx := context.Background()

	w := testutil.NewTestWorker("Ada", 2.5)
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, 2.5, got.DailyCapacity)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.WorkingDays)
}

func TestWorkerRepo_EmptyWorkingDays(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkerRepo(db)
	ctx := context.Background()

	w := testutil.NewTestWorker("No Calendar", 2)
	w.WorkingDays = nil
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, got.WorkingDays)
	assert.False(t, got.Schedulable())
}

func TestWorkerRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkerRepo(db)
	ctx := context.Background()

	w := testutil.NewTestWorker("Ada", 2)
	require.NoError(t, repo.Create(ctx, w))

	w.DailyCapacity = 3
	w.WorkingDays = []int{2, 4, 6}
	require.NoError(t, repo.Update(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.DailyCapacity)
	assert.Equal(t, []int{2, 4, 6}, got.WorkingDays)
}

func TestWorkerRepo_ListSortedByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkerRepo(db)
	ctx := context.Background()

	w1 := testutil.NewTestWorker("One", 1)
	w2 := testutil.NewTestWorker("Two", 1)
	require.NoError(t, repo.Create(ctx, w2))
	require.NoError(t, repo.Create(ctx, w1))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)
}

func TestDecodeDays_SkipsJunk(t *testing.T) {
	assert.Equal(t, []int{1, 7}, decodeDays("1, 7"))
	assert.Equal(t, []int{3}, decodeDays("3,abc,0,8"))
	assert.Nil(t, decodeDays(""))
}
