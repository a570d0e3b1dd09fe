package scheduling

import (
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/scheduling"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
)

const (
	underutilizedBelow = 60.0
	overutilizedAbove  = 90.0
)

// utilizationFor derives one technician's utilization from their workable
// hours and their booked hours as primary assignee inside [start, end].
func utilizationFor(tech technician.Technician, workDays []scheduling.WorkDay, jobs []job.Job, start, end time.Time) scheduling.UtilizationResponse {
	var workHours float64
	for _, day := range workDays {
		workHours += day.Hours()
	}

	// The end date is inclusive: a booking starting anywhere on it counts.
	cutoff := dateOnly(end).AddDate(0, 0, 1)

	var scheduledHours float64
	for _, j := range jobs {
		bookedStart, bookedEnd, ok := j.BookedInterval()
		if !ok {
			continue
		}
		if id := j.PrimaryAssigneeID; id == nil || *id != tech.ID {
			continue
		}
		if bookedStart.Before(dateOnly(start)) || !bookedStart.Before(cutoff) {
			continue
		}
		scheduledHours += bookedEnd.Sub(bookedStart).Hours()
	}

	// Zero work hours means zero utilization, never a division error.
	var percent float64
	if workHours > 0 {
		percent = scheduledHours / workHours * 100
	}

	available := workHours - scheduledHours
	if available < 0 {
		available = 0
	}

	level := scheduling.Optimal
	switch {
	case percent < underutilizedBelow:
		level = scheduling.Underutilized
	case percent > overutilizedAbove:
		level = scheduling.Overutilized
	}

	return scheduling.UtilizationResponse{
		TechnicianID:       tech.ID,
		TechnicianName:     tech.Name,
		TotalWorkHours:     roundHours(workHours),
		ScheduledHours:     roundHours(scheduledHours),
		AvailableHours:     roundHours(available),
		UtilizationPercent: roundHours(percent),
		Level:              level,
	}
}
