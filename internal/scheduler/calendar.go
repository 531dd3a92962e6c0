package scheduler

import "time"

// firstWorkingDayScan bounds the forward scan for the next working day.
// Any non-empty weekday set matches within 7 days; the extra slack guards
// against malformed sets without looping forever.
const firstWorkingDayScan = 14

// ISOWeekday returns the ISO weekday number for t (1=Monday .. 7=Sunday).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Day truncates t to midnight UTC, the granularity all schedule math uses.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar day n days after t, at day granularity.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// CompareDays compares two times at day granularity: -1 if a is an earlier
// day than b, 0 if the same day, 1 if later.
func CompareDays(a, b time.Time) int {
	da, db := Day(a), Day(b)
	switch {
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	default:
		return 0
	}
}

// MaxDay returns the later of a and b at day granularity.
func MaxDay(a, b time.Time) time.Time {
	if CompareDays(a, b) >= 0 {
		return Day(a)
	}
	return Day(b)
}

// IsWorkingDay reports whether t falls on one of the given ISO weekdays.
func IsWorkingDay(t time.Time, workingDays []int) bool {
	wd := ISOWeekday(t)
	for _, d := range workingDays {
		if d == wd {
			return true
		}
	}
	return false
}

// FirstWorkingDay returns t's day if it is a working day, otherwise the next
// qualifying day. Returns nil when the weekday set never matches (e.g. a
// worker with no working days).
func FirstWorkingDay(t time.Time, workingDays []int) *time.Time {
	if len(workingDays) == 0 {
		return nil
	}
	day := Day(t)
	for i := 0; i < firstWorkingDayScan; i++ {
		if IsWorkingDay(day, workingDays) {
			return &day
		}
		day = day.AddDate(0, 0, 1)
	}
	return nil
}

// CountWorkingDays returns the number of working days in [from, to]
// inclusive, at day granularity.
func CountWorkingDays(from, to time.Time, workingDays []int) int {
	if CompareDays(from, to) > 0 {
		return 0
	}
	count := 0
	for day := Day(from); !day.After(Day(to)); day = day.AddDate(0, 0, 1) {
		if IsWorkingDay(day, workingDays) {
			count++
		}
	}
	return count
}
