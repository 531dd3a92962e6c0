package scheduler

import (
	"testing"

	"github.com/avilev/boardwalk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fullTimeWorker(id string, capacity float64) *domain.Worker {
	return &domain.Worker{
		ID:            id,
		DailyCapacity: capacity,
		WorkingDays:   []int{1, 2, 3, 4, 5},
	}
}

func TestLedgerAllocate_ClampsToHeadroom(t *testing.T) {
	led := NewLedger()
	day := monday()

	assert.Equal(t, 2.0, led.Allocate("w1", day, 2, 5), "first allocation fills the day")
	assert.Equal(t, 0.0, led.Allocate("w1", day, 2, 1), "full day absorbs nothing more")
	assert.Equal(t, 2.0, led.Committed("w1", day))
}

func TestLedgerAllocate_PartialHeadroom(t *testing.T) {
	led := NewLedger()
	day := monday()

	led.Allocate("w1", day, 3, 1.5)
	assert.Equal(t, 1.5, led.Allocate("w1", day, 3, 5))
	assert.Equal(t, 3.0, led.Committed("w1", day))
}

func TestLedgerAllocate_RejectsNonPositive(t *testing.T) {
	led := NewLedger()
	day := monday()

	assert.Equal(t, 0.0, led.Allocate("w1", day, 2, 0))
	assert.Equal(t, 0.0, led.Allocate("w1", day, 2, -3))
	assert.Equal(t, 0.0, led.Allocate("w1", day, 0, 1))
	assert.Equal(t, 0.0, led.Committed("w1", day))
}

func TestLedgerAllocate_IgnoresTimeOfDay(t *testing.T) {
	led := NewLedger()
	morning := monday().Add(8 * 60 * 60 * 1e9)

	led.Allocate("w1", morning, 2, 1)
	assert.Equal(t, 1.0, led.Committed("w1", monday()))
}

func TestLedgerClone_Independent(t *testing.T) {
	led := NewLedger()
	led.Allocate("w1", monday(), 2, 1)

	clone := led.Clone()
	clone.Allocate("w1", monday(), 2, 1)

	assert.Equal(t, 1.0, led.Committed("w1", monday()), "clone writes must not leak back")
	assert.Equal(t, 2.0, clone.Committed("w1", monday()))
}

func TestDebitInterval_SpreadsAcrossWorkingDays(t *testing.T) {
	led := NewLedger()
	w := fullTimeWorker("w1", 2)

	// Monday through Wednesday, 3 working days, 6 points => 2/day.
	led.DebitInterval(w, monday(), monday().AddDate(0, 0, 2), 6)

	assert.Equal(t, 2.0, led.Committed("w1", monday()))
	assert.Equal(t, 2.0, led.Committed("w1", monday().AddDate(0, 0, 1)))
	assert.Equal(t, 2.0, led.Committed("w1", monday().AddDate(0, 0, 2)))
}

func TestDebitInterval_SkipsNonWorkingDays(t *testing.T) {
	led := NewLedger()
	w := fullTimeWorker("w1", 4)

	// Friday through Monday: only Friday and Monday are working days.
	friday := monday().AddDate(0, 0, 4)
	led.DebitInterval(w, friday, friday.AddDate(0, 0, 3), 4)

	assert.Equal(t, 2.0, led.Committed("w1", friday))
	assert.Equal(t, 0.0, led.Committed("w1", friday.AddDate(0, 0, 1)))
	assert.Equal(t, 0.0, led.Committed("w1", friday.AddDate(0, 0, 2)))
	assert.Equal(t, 2.0, led.Committed("w1", friday.AddDate(0, 0, 3)))
}

func TestDebitInterval_UnschedulableWorkerNoop(t *testing.T) {
	led := NewLedger()
	led.DebitInterval(&domain.Worker{ID: "w1"}, monday(), monday(), 5)
	assert.Equal(t, 0.0, led.Committed("w1", monday()))
}
