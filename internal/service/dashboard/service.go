package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/dashboard"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
	pricingService "github.com/begoneskadedjur/kundportal-sub011/internal/service/pricing"
	provisionService "github.com/begoneskadedjur/kundportal-sub011/internal/service/provision"
	schedulingService "github.com/begoneskadedjur/kundportal-sub011/internal/service/scheduling"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	jobRepo        job.JobRepository
	technicianRepo technician.TechnicianRepository
	policy         provisionService.CommissionPolicy
	now            func() time.Time
}

func NewDashboardService(jobRepo job.JobRepository, technicianRepo technician.TechnicianRepository, policy provisionService.CommissionPolicy) dashboard.DashboardService {
	return &DashboardServiceImpl{
		jobRepo:        jobRepo,
		technicianRepo: technicianRepo,
		policy:         policy,
		now:            time.Now,
	}
}

// GetDashboard fetches jobs and technicians concurrently, then runs every
// engine over the same in-memory snapshot. A fetch failure aborts the whole
// call; the facade never aggregates partial data.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, req dashboard.DashboardRequest) (*dashboard.DashboardResponse, error) {
	months := req.Months
	if months <= 0 {
		months = 12
	}
	now := s.now()
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	start := end.AddDate(0, -months, 0)

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
		return nil, err
	}

	selected := technicians
	if len(req.TechnicianIDs) > 0 {
		wanted := make(map[string]bool, len(req.TechnicianIDs))
		for _, id := range req.TechnicianIDs {
			wanted[id] = true
		}
		selected = nil
		for _, tech := range technicians {
			if wanted[tech.ID] {
				selected = append(selected, tech)
			}
		}
	}

	resp := &dashboard.DashboardResponse{
		Cases:       caseSummaries(jobs, req.CaseFilter),
		Technicians: technicianResponses(selected),
		Gaps:        schedulingService.AnalyzeGaps(jobs, selected, start, end.AddDate(0, 0, -1)),
		Utilization: schedulingService.CalculateUtilization(jobs, selected, start, end.AddDate(0, 0, -1)),
		Provisions:  provisionService.TechnicianProvisions(s.policy, jobs, selected),
		Monthly:     provisionService.MonthlySummaries(s.policy, jobs, selected, start, end),
		Patterns:    pricingService.Patterns(jobs),
	}
	return resp, nil
}

// caseSummaries flattens jobs into dashboard rows and applies the
// post-aggregation filter against the resolved pest category.
func caseSummaries(jobs []job.Job, filter job.CaseFilter) []job.CaseSummaryResponse {
	summaries := make([]job.CaseSummaryResponse, 0, len(jobs))
	for _, j := range jobs {
		category := pricingService.CategoryOf(j)
		if !filter.Matches(j, category) {
			continue
		}
		summaries = append(summaries, j.ToSummary(category))
	}
	return summaries
}

func technicianResponses(technicians []technician.Technician) []technician.TechnicianResponse {
	result := make([]technician.TechnicianResponse, 0, len(technicians))
	for _, tech := range technicians {
		result = append(result, tech.ToResponse())
	}
	return result
}
