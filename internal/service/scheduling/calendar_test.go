package scheduling

import (
	"testing"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdaySchedule() *technician.WorkSchedule {
	return &technician.WorkSchedule{
		Days: map[string]technician.DaySchedule{
			"monday":    {Active: true, Start: "08:00", End: "16:00"},
			"tuesday":   {Active: true, Start: "08:00", End: "16:00"},
			"wednesday": {Active: true, Start: "08:00", End: "16:00"},
			"thursday":  {Active: true, Start: "08:00", End: "16:00"},
			"friday":    {Active: true, Start: "08:00", End: "14:00"},
			"saturday":  {Active: false, Start: "08:00", End: "16:00"},
		},
	}
}

func TestExpandWorkDays_OneWeek(t *testing.T) {
	t.Parallel()

	// 2025-06-02 is a Monday.
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	days := ExpandWorkDays(weekdaySchedule(), start, end)
	require.Len(t, days, 5)

	assert.Equal(t, "monday", days[0].Weekday)
	assert.Equal(t, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), days[0].Start)
	assert.Equal(t, time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC), days[0].End)
	assert.Equal(t, 8.0, days[0].Hours())

	// Friday carries its own shorter times.
	assert.Equal(t, "friday", days[4].Weekday)
	assert.Equal(t, 6.0, days[4].Hours())
}

func TestExpandWorkDays_NilSchedule(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, ExpandWorkDays(nil, start, end))
}

func TestExpandWorkDays_CaseInsensitiveWeekday(t *testing.T) {
	t.Parallel()

	schedule := &technician.WorkSchedule{
		Days: map[string]technician.DaySchedule{
			"monday": {Active: true, Start: "09:00", End: "17:00"},
		},
	}

	day, ok := schedule.Day("Monday")
	require.True(t, ok)
	assert.True(t, day.Active)

	day, ok = schedule.Day("MONDAY")
	require.True(t, ok)
	assert.Equal(t, "09:00", day.Start)
}

func TestExpandWorkDays_SkipsMalformedTimes(t *testing.T) {
	t.Parallel()

	schedule := &technician.WorkSchedule{
		Days: map[string]technician.DaySchedule{
			"monday":  {Active: true, Start: "not-a-time", End: "16:00"},
			"tuesday": {Active: true, Start: "16:00", End: "08:00"}, // end before start
		},
	}

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, ExpandWorkDays(schedule, start, end))
}

func TestApplyAbsences_FullDayDrops(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	days := ExpandWorkDays(weekdaySchedule(), start, start)
	require.Len(t, days, 1)

	absences := []technician.Absence{{
		Start: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}}

	assert.Empty(t, ApplyAbsences(days, absences))
}

func TestApplyAbsences_PartialTrimsAndSplits(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	days := ExpandWorkDays(weekdaySchedule(), start, start)
	require.Len(t, days, 1)

	// Mid-day absence 10:00-12:00 splits the 08:00-16:00 day.
	absences := []technician.Absence{{
		Start: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}}

	segments := ApplyAbsences(days, absences)
	require.Len(t, segments, 2)
	assert.Equal(t, 2.0, segments[0].Hours())
	assert.Equal(t, 4.0, segments[1].Hours())
	assert.Equal(t, time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), segments[1].Start)
}

func TestApplyAbsences_NonOverlappingDayUntouched(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	days := ExpandWorkDays(weekdaySchedule(), start, start)

	absences := []technician.Absence{{
		Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
	}}

	segments := ApplyAbsences(days, absences)
	require.Len(t, segments, 1)
	assert.Equal(t, days[0], segments[0])
}
