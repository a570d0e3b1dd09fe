package scheduling

import (
	"testing"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/scheduling"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mon-Thu 08-16 plus Fri 08-14 is 38 workable hours per week.
func fullWeekJobs(technicianID string) []job.Job {
	var jobs []job.Job
	for offset := 0; offset < 4; offset++ {
		day := time.Date(2025, 6, 2+offset, 0, 0, 0, 0, time.UTC)
		jobs = append(jobs, bookedJob(technicianID,
			day.Add(8*time.Hour),
			day.Add(16*time.Hour),
		))
	}
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	jobs = append(jobs, bookedJob(technicianID,
		friday.Add(8*time.Hour),
		friday.Add(14*time.Hour),
	))
	return jobs
}

func TestCalculateUtilization_FullyBookedIsOverutilized(t *testing.T) {
	t.Parallel()

	tech := newTechnician("Anna Lind")
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 6, 23, 59, 0, 0, time.UTC)

	result := CalculateUtilization(fullWeekJobs(tech.ID), []technician.Technician{tech}, start, end)
	require.Len(t, result, 1)

	assert.Equal(t, 38.0, result[0].TotalWorkHours)
	assert.Equal(t, 38.0, result[0].ScheduledHours)
	assert.Equal(t, 0.0, result[0].AvailableHours)
	assert.Equal(t, 100.0, result[0].UtilizationPercent)
	assert.Equal(t, scheduling.Overutilized, result[0].Level)
}

func TestCalculateUtilization_NoScheduleIsZeroNotPanic(t *testing.T) {
	t.Parallel()

	tech := technician.Technician{ID: "t-1", Name: "Bo Ek", Active: true}
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	result := CalculateUtilization(nil, []technician.Technician{tech}, start, end)
	require.Len(t, result, 1)

	assert.Equal(t, 0.0, result[0].TotalWorkHours)
	assert.Equal(t, 0.0, result[0].UtilizationPercent)
	assert.Equal(t, scheduling.Underutilized, result[0].Level)
}

func TestCalculateUtilization_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		bookedHours float64
		want        scheduling.UtilizationLevel
	}{
		{name: "half booked is underutilized", bookedHours: 4, want: scheduling.Underutilized},
		{name: "three quarters booked is optimal", bookedHours: 6, want: scheduling.Optimal},
		{name: "nearly full is overutilized", bookedHours: 7.5, want: scheduling.Overutilized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tech := newTechnician("Anna Lind")
			monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
			jobs := []job.Job{bookedJob(tech.ID,
				monday.Add(8*time.Hour),
				monday.Add(8*time.Hour+time.Duration(tt.bookedHours*float64(time.Hour))),
			)}

			result := CalculateUtilization(jobs, []technician.Technician{tech}, monday, monday)
			require.Len(t, result, 1)
			assert.Equal(t, tt.want, result[0].Level)
		})
	}
}

func TestCalculateUtilization_OverbookingClampsAvailable(t *testing.T) {
	t.Parallel()

	tech := newTechnician("Anna Lind")
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	// Two full-day jobs double-book the technician.
	jobs := []job.Job{
		bookedJob(tech.ID, monday.Add(8*time.Hour), monday.Add(16*time.Hour)),
		bookedJob(tech.ID, monday.Add(8*time.Hour), monday.Add(16*time.Hour)),
	}

	result := CalculateUtilization(jobs, []technician.Technician{tech}, monday, monday)
	require.Len(t, result, 1)

	assert.Equal(t, 16.0, result[0].ScheduledHours)
	assert.Equal(t, 0.0, result[0].AvailableHours)
	assert.Equal(t, 200.0, result[0].UtilizationPercent)
	assert.Equal(t, scheduling.Overutilized, result[0].Level)
}

func TestCalculateUtilization_SortedAscendingByPercent(t *testing.T) {
	t.Parallel()

	busy := newTechnician("Anna Lind")
	idle := newTechnician("Bo Ek")
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	jobs := []job.Job{bookedJob(busy.ID, monday.Add(8*time.Hour), monday.Add(16*time.Hour))}

	result := CalculateUtilization(jobs, []technician.Technician{busy, idle}, monday, monday)
	require.Len(t, result, 2)

	assert.Equal(t, idle.ID, result[0].TechnicianID)
	assert.Equal(t, busy.ID, result[1].TechnicianID)
}

func TestCalculateUtilization_AbsenceReducesWorkHours(t *testing.T) {
	t.Parallel()

	tech := newTechnician("Anna Lind")
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tech.Absences = []technician.Absence{{
		ID:    "abs-1",
		Start: monday.Add(12 * time.Hour),
		End:   monday.Add(16 * time.Hour),
	}}
	jobs := []job.Job{bookedJob(tech.ID, monday.Add(8*time.Hour), monday.Add(12*time.Hour))}

	result := CalculateUtilization(jobs, []technician.Technician{tech}, monday, monday)
	require.Len(t, result, 1)

	assert.Equal(t, 4.0, result[0].TotalWorkHours)
	assert.Equal(t, 100.0, result[0].UtilizationPercent)
}
