package scheduling

import (
	"strconv"
	"strings"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/scheduling"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
)

// ExpandWorkDays converts a weekly schedule into concrete work-day intervals
// for every calendar day in [start, end] whose weekday is active. A nil
// schedule expands to nothing.
func ExpandWorkDays(schedule *technician.WorkSchedule, start, end time.Time) []scheduling.WorkDay {
	if schedule == nil {
		return nil
	}

	var days []scheduling.WorkDay
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		weekday := strings.ToLower(d.Weekday().String())
		day, ok := schedule.Day(weekday)
		if !ok || !day.Active {
			continue
		}

		dayStart, okStart := atClock(d, day.Start)
		dayEnd, okEnd := atClock(d, day.End)
		if !okStart || !okEnd || !dayEnd.After(dayStart) {
			continue
		}

		days = append(days, scheduling.WorkDay{
			Date:    d,
			Weekday: weekday,
			Start:   dayStart,
			End:     dayEnd,
		})
	}
	return days
}

// ApplyAbsences subtracts absence intervals from expanded work days. A day
// fully covered by an absence disappears; a partial overlap trims or splits
// the day.
func ApplyAbsences(days []scheduling.WorkDay, absences []technician.Absence) []scheduling.WorkDay {
	if len(absences) == 0 {
		return days
	}

	var result []scheduling.WorkDay
	for _, day := range days {
		segments := []scheduling.WorkDay{day}
		for _, absence := range absences {
			var next []scheduling.WorkDay
			for _, seg := range segments {
				next = append(next, subtractInterval(seg, absence.Start, absence.End)...)
			}
			segments = next
		}
		result = append(result, segments...)
	}
	return result
}

// subtractInterval removes [from, to) from a work-day segment, returning the
// zero, one or two segments that remain.
func subtractInterval(seg scheduling.WorkDay, from, to time.Time) []scheduling.WorkDay {
	if !to.After(seg.Start) || !seg.End.After(from) {
		return []scheduling.WorkDay{seg}
	}

	var parts []scheduling.WorkDay
	if from.After(seg.Start) {
		left := seg
		left.End = from
		parts = append(parts, left)
	}
	if seg.End.After(to) {
		right := seg
		right.Start = to
		parts = append(parts, right)
	}
	return parts
}

// atClock anchors an "HH:MM" clock time on a date.
func atClock(date time.Time, clock string) (time.Time, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
