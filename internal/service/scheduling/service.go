package scheduling

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/scheduling"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
	"golang.org/x/sync/errgroup"
)

type schedulingServiceImpl struct {
	jobRepo        job.JobRepository
	technicianRepo technician.TechnicianRepository
}

func NewSchedulingService(jobRepo job.JobRepository, technicianRepo technician.TechnicianRepository) scheduling.SchedulingService {
	return &schedulingServiceImpl{
		jobRepo:        jobRepo,
		technicianRepo: technicianRepo,
	}
}

// fetchWindow issues the two wide queries concurrently; they have no data
// dependency on each other. A failure on either aborts the whole call.
func (s *schedulingServiceImpl) fetchWindow(ctx context.Context, start, end time.Time) ([]job.Job, []technician.Technician, error) {
	var (
		jobs        []job.Job
		technicians []technician.Technician
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobRepo.ListByWindow(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch jobs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		technicians, err = s.technicianRepo.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch technicians: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return jobs, technicians, nil
}

func (s *schedulingServiceImpl) AnalyzeGaps(ctx context.Context, start, end time.Time) ([]scheduling.GapResponse, error) {
	jobs, technicians, err := s.fetchWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return AnalyzeGaps(jobs, technicians, start, end), nil
}

// AnalyzeGaps is the pure form: no hidden state, callers own caching.
func AnalyzeGaps(jobs []job.Job, technicians []technician.Technician, start, end time.Time) []scheduling.GapResponse {
	var gaps []scheduling.GapResponse
	for _, tech := range technicians {
		days := ApplyAbsences(ExpandWorkDays(tech.Schedule, start, end), tech.Absences)
		for _, day := range days {
			bookings := bookingsOn(jobs, tech.ID, day.Date)
			gaps = append(gaps, dayGaps(tech, day, bookings)...)
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Date < gaps[j].Date
	})
	return gaps
}

func (s *schedulingServiceImpl) CalculateUtilization(ctx context.Context, start, end time.Time) ([]scheduling.UtilizationResponse, error) {
	jobs, technicians, err := s.fetchWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return CalculateUtilization(jobs, technicians, start, end), nil
}

// CalculateUtilization is the pure form, sorted ascending by utilization so
// the most available technicians come first.
func CalculateUtilization(jobs []job.Job, technicians []technician.Technician, start, end time.Time) []scheduling.UtilizationResponse {
	result := make([]scheduling.UtilizationResponse, 0, len(technicians))
	for _, tech := range technicians {
		days := ApplyAbsences(ExpandWorkDays(tech.Schedule, start, end), tech.Absences)
		result = append(result, utilizationFor(tech, days, jobs, start, end))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UtilizationPercent < result[j].UtilizationPercent
	})
	return result
}
