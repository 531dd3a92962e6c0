package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastEnteredStatus_PicksLatestTransition(t *testing.T) {
	t1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)

	task := &Task{
		Movements: []StatusChange{
			{From: TaskNotStarted, To: TaskActive, At: t1},
			{From: TaskActive, To: TaskBlocked, At: t2},
			{From: TaskBlocked, To: TaskActive, At: t3},
		},
	}

	got := task.LastEnteredStatus(TaskActive)
	require.NotNil(t, got)
	assert.True(t, got.Equal(t3), "should pick the latest move into active")
}

func TestLastEnteredStatus_NoTransition(t *testing.T) {
	task := &Task{Status: TaskInReview}
	assert.Nil(t, task.LastEnteredStatus(TaskInReview))
}

func TestTaskSchedulable(t *testing.T) {
	assert.False(t, (&Task{}).Schedulable())
	assert.False(t, (&Task{StoryPoints: -1}).Schedulable())
	assert.True(t, (&Task{StoryPoints: 0.5}).Schedulable())
}

func TestWorkerSchedulable(t *testing.T) {
	var nilWorker *Worker
	assert.False(t, nilWorker.Schedulable())
	assert.False(t, (&Worker{DailyCapacity: 2}).Schedulable())
	assert.False(t, (&Worker{WorkingDays: []int{1, 2, 3}}).Schedulable())
	assert.True(t, (&Worker{DailyCapacity: 2, WorkingDays: []int{1}}).Schedulable())
}

func TestWorkerWorksOn(t *testing.T) {
	w := &Worker{WorkingDays: []int{1, 2, 3, 4, 5}}
	assert.True(t, w.WorksOn(1))
	assert.True(t, w.WorksOn(5))
	assert.False(t, w.WorksOn(6))
	assert.False(t, w.WorksOn(7))
}

func TestStatusStarted(t *testing.T) {
	assert.False(t, TaskNotStarted.Started())
	assert.False(t, TaskBlocked.Started())
	assert.False(t, TaskCancelled.Started())
	assert.True(t, TaskActive.Started())
	assert.True(t, TaskInReview.Started())
	assert.True(t, TaskDone.Started())
}
