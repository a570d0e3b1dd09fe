package scheduling

import (
	"math"
	"sort"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/scheduling"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
)

const (
	minGapHours   = 1.0
	majorGapHours = 3.0
	suggestedSlot = 2 * time.Hour
)

// dayGaps subtracts a technician's bookings on one work day from the
// work-day interval and returns the idle sub-intervals of at least one hour.
// Bookings are walked in start order with a cursor; overlapping bookings are
// tolerated via the max-advance but not validated or merged.
func dayGaps(tech technician.Technician, day scheduling.WorkDay, bookings []booking) []scheduling.GapResponse {
	sorted := make([]booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})

	var gaps []scheduling.GapResponse
	cursor := day.Start
	for _, b := range sorted {
		if b.start.After(cursor) {
			gaps = appendGap(gaps, tech, day, cursor, minTime(b.start, day.End))
		}
		if b.end.After(cursor) {
			cursor = b.end
		}
	}
	if day.End.After(cursor) {
		gaps = appendGap(gaps, tech, day, cursor, day.End)
	}
	return gaps
}

func appendGap(gaps []scheduling.GapResponse, tech technician.Technician, day scheduling.WorkDay, start, end time.Time) []scheduling.GapResponse {
	hours := end.Sub(start).Hours()
	if hours < minGapHours {
		return gaps
	}

	classification := scheduling.GapMinor
	if hours >= majorGapHours {
		classification = scheduling.GapMajor
	}

	return append(gaps, scheduling.GapResponse{
		TechnicianID:   tech.ID,
		TechnicianName: tech.Name,
		Date:           day.Date.Format("2006-01-02"),
		Weekday:        day.Weekday,
		StartTime:      start.Format("15:04"),
		EndTime:        end.Format("15:04"),
		DurationHours:  roundHours(hours),
		Classification: classification,
		SuggestedSlot: scheduling.SuggestedSlot{
			StartTime: start.Format("15:04"),
			EndTime:   minTime(start.Add(suggestedSlot), end).Format("15:04"),
		},
	})
}

// booking is a job interval clipped to nothing: raw scheduled start/end.
type booking struct {
	start time.Time
	end   time.Time
}

// bookingsOn collects the technician's booked intervals whose start falls on
// the given work day. Jobs missing either timestamp do not participate.
func bookingsOn(jobs []job.Job, technicianID string, date time.Time) []booking {
	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)

	var result []booking
	for _, j := range jobs {
		start, end, ok := j.BookedInterval()
		if !ok {
			continue
		}
		if id := j.PrimaryAssigneeID; id == nil || *id != technicianID {
			continue
		}
		if start.Before(dayStart) || !start.Before(dayEnd) {
			continue
		}
		result = append(result, booking{start: start, end: end})
	}
	return result
}

func roundHours(h float64) float64 {
	return math.Round(h*10) / 10
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
