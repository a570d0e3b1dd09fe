package provision

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/provision"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const monthFormat = "2006-01"

type provisionServiceImpl struct {
	jobRepo        job.JobRepository
	technicianRepo technician.TechnicianRepository
	policy         CommissionPolicy
	now            func() time.Time
}

func NewProvisionService(jobRepo job.JobRepository, technicianRepo technician.TechnicianRepository, policy CommissionPolicy) provision.ProvisionService {
	return &provisionServiceImpl{
		jobRepo:        jobRepo,
		technicianRepo: technicianRepo,
		policy:         policy,
		now:            time.Now,
	}
}

func (s *provisionServiceImpl) window(months int) (time.Time, time.Time) {
	if months <= 0 {
		months = 12
	}
	now := s.now()
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	start := end.AddDate(0, -months, 0)
	return start, end
}

func (s *provisionServiceImpl) fetch(ctx context.Context, months int) ([]job.Job, []technician.Technician, time.Time, time.Time, error) {
	start, end := s.window(months)

	var (
		jobs        []job.Job
		technicians []technician.Technician
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobRepo.ListCompletedByWindow(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch completed jobs: %w", err)
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
		return nil, nil, time.Time{}, time.Time{}, err
	}
	return jobs, technicians, start, end, nil
}

func (s *provisionServiceImpl) TechnicianProvisions(ctx context.Context, months int, technicianIDs []string) ([]provision.TechnicianProvisionResponse, error) {
	jobs, technicians, _, _, err := s.fetch(ctx, months)
	if err != nil {
		return nil, err
	}
	return TechnicianProvisions(s.policy, jobs, filterTechnicians(technicians, technicianIDs)), nil
}

// TechnicianProvisions is the pure rollup, sorted descending by total
// provision.
func TechnicianProvisions(policy CommissionPolicy, jobs []job.Job, technicians []technician.Technician) []provision.TechnicianProvisionResponse {
	result := make([]provision.TechnicianProvisionResponse, 0, len(technicians))
	for _, tech := range technicians {
		result = append(result, technicianProvision(policy, jobs, tech))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalProvision.GreaterThan(result[j].TotalProvision)
	})
	return result
}

func technicianProvision(policy CommissionPolicy, jobs []job.Job, tech technician.Technician) provision.TechnicianProvisionResponse {
	resp := provision.TechnicianProvisionResponse{
		TechnicianID:   tech.ID,
		TechnicianName: tech.Name,
		TotalProvision: decimal.Zero,
		TotalRevenue:   decimal.Zero,
		MonthlyIndex:   make(map[string]provision.MonthlyBucket),
	}

	for _, j := range jobs {
		if !j.CommissionEligible() {
			continue
		}
		roles := j.RolesOf(tech.ID)
		if len(roles) == 0 {
			continue
		}

		month := j.CompletedDate.Format(monthFormat)
		bucket := resp.MonthlyIndex[month]
		if bucket.Month == "" {
			bucket.Month = month
			bucket.Provision = decimal.Zero
			bucket.Revenue = decimal.Zero
		}

		for _, role := range roles {
			amount := policy.Attribute(*j.Price, role)
			resp.TotalProvision = resp.TotalProvision.Add(amount)
			bucket.Provision = bucket.Provision.Add(amount)

			switch role {
			case job.RolePrimary:
				resp.RoleJobCounts.Primary++
			case job.RoleSecondary:
				resp.RoleJobCounts.Secondary++
			case job.RoleTertiary:
				resp.RoleJobCounts.Tertiary++
			}
		}

		// Revenue counts the full job price once per job, not per role.
		resp.TotalRevenue = resp.TotalRevenue.Add(*j.Price)
		resp.TotalJobs++
		bucket.Revenue = bucket.Revenue.Add(*j.Price)
		bucket.JobCount++
		resp.MonthlyIndex[month] = bucket
	}

	months := make([]string, 0, len(resp.MonthlyIndex))
	for month := range resp.MonthlyIndex {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		resp.Monthly = append(resp.Monthly, resp.MonthlyIndex[month])
	}
	return resp
}

func (s *provisionServiceImpl) MonthlySummaries(ctx context.Context, months int) ([]provision.MonthlySummaryResponse, error) {
	jobs, technicians, start, end, err := s.fetch(ctx, months)
	if err != nil {
		return nil, err
	}
	return MonthlySummaries(s.policy, jobs, technicians, start, end), nil
}

// MonthlySummaries folds eligible jobs into their completion month on a
// pre-seeded series, so every month in the window appears exactly once even
// with zero activity.
func MonthlySummaries(policy CommissionPolicy, jobs []job.Job, technicians []technician.Technician, start, end time.Time) []provision.MonthlySummaryResponse {
	index := make(map[string]*provision.MonthlySummaryResponse)
	var order []string
	for m := start; m.Before(end); m = m.AddDate(0, 1, 0) {
		key := m.Format(monthFormat)
		index[key] = &provision.MonthlySummaryResponse{
			Month:             key,
			TotalProvision:    decimal.Zero,
			TotalRevenue:      decimal.Zero,
			PrivateProvision:  decimal.Zero,
			BusinessProvision: decimal.Zero,
			TopProvision:      decimal.Zero,
		}
		order = append(order, key)
	}

	for _, j := range jobs {
		if !j.CommissionEligible() {
			continue
		}
		summary, ok := index[j.CompletedDate.Format(monthFormat)]
		if !ok {
			continue
		}

		jobProvision := decimal.Zero
		for _, role := range job.AssigneeRoles {
			if j.AssigneeID(role) == nil {
				continue
			}
			jobProvision = jobProvision.Add(policy.Attribute(*j.Price, role))
		}

		summary.TotalProvision = summary.TotalProvision.Add(jobProvision)
		summary.TotalRevenue = summary.TotalRevenue.Add(*j.Price)
		summary.JobCount++
		switch j.Origin {
		case job.OriginBusiness:
			summary.BusinessProvision = summary.BusinessProvision.Add(jobProvision)
		default:
			summary.PrivateProvision = summary.PrivateProvision.Add(jobProvision)
		}
	}

	// Top earner per month comes from each technician's own month bucket.
	rollups := TechnicianProvisions(policy, jobs, technicians)
	for _, key := range order {
		summary := index[key]
		for _, rollup := range rollups {
			bucket, ok := rollup.MonthlyIndex[key]
			if !ok {
				continue
			}
			if bucket.Provision.GreaterThan(summary.TopProvision) {
				summary.TopProvision = bucket.Provision
				summary.TopTechnician = rollup.TechnicianName
			}
		}
	}

	result := make([]provision.MonthlySummaryResponse, 0, len(order))
	for _, key := range order {
		result = append(result, *index[key])
	}
	return result
}

func (s *provisionServiceImpl) GraphSeries(ctx context.Context, months int, technicianIDs []string) (provision.GraphSeriesResponse, error) {
	jobs, technicians, _, _, err := s.fetch(ctx, months)
	if err != nil {
		return provision.GraphSeriesResponse{}, err
	}
	return GraphSeries(s.policy, jobs, filterTechnicians(technicians, technicianIDs)), nil
}

// GraphSeries keys monthly points per technician name. Months without
// activity for a technician are simply absent from that series.
func GraphSeries(policy CommissionPolicy, jobs []job.Job, technicians []technician.Technician) provision.GraphSeriesResponse {
	resp := provision.GraphSeriesResponse{
		Series: make(map[string][]provision.GraphPoint),
	}

	totals := make(map[string]*provision.GraphPoint)
	var totalMonths []string

	for _, rollup := range TechnicianProvisions(policy, jobs, technicians) {
		points := make([]provision.GraphPoint, 0, len(rollup.Monthly))
		for _, bucket := range rollup.Monthly {
			points = append(points, provision.GraphPoint{
				Month:     bucket.Month,
				Provision: bucket.Provision,
				JobCount:  bucket.JobCount,
			})

			total, ok := totals[bucket.Month]
			if !ok {
				total = &provision.GraphPoint{Month: bucket.Month, Provision: decimal.Zero}
				totals[bucket.Month] = total
				totalMonths = append(totalMonths, bucket.Month)
			}
			total.Provision = total.Provision.Add(bucket.Provision)
			total.JobCount += bucket.JobCount
		}
		resp.Series[rollup.TechnicianName] = points
	}

	sort.Strings(totalMonths)
	for _, month := range totalMonths {
		resp.Total = append(resp.Total, *totals[month])
	}
	return resp
}

func filterTechnicians(technicians []technician.Technician, ids []string) []technician.Technician {
	if len(ids) == 0 {
		return technicians
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var result []technician.Technician
	for _, tech := range technicians {
		if wanted[tech.ID] {
			result = append(result, tech)
		}
	}
	return result
}
