package pricing

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

const (
	minCategorySamples = 3
	maxRecentSamples   = 25
)

type pricingServiceImpl struct {
	jobRepo job.JobRepository
	now     func() time.Time
}

func NewPricingService(jobRepo job.JobRepository) pricing.PricingService {
	return &pricingServiceImpl{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

func (s *pricingServiceImpl) Patterns(ctx context.Context, months int) ([]pricing.PatternResponse, error) {
	if months <= 0 {
		months = 12
	}
	now := s.now()
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	start := end.AddDate(0, -months, 0)

	jobs, err := s.jobRepo.ListCompletedByWindow(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed jobs: %w", err)
	}
	return Patterns(jobs), nil
}

// Patterns is the pure analyzer: group priced jobs by pest category and
// profile each category, most-represented first.
func Patterns(jobs []job.Job) []pricing.PatternResponse {
	groups := make(map[string][]job.Job)
	for _, j := range jobs {
		if !j.CommissionEligible() {
			continue
		}
		category := CategoryOf(j)
		groups[category] = append(groups[category], j)
	}

	var result []pricing.PatternResponse
	for category, members := range groups {
		if len(members) < minCategorySamples {
			continue
		}
		result = append(result, profileCategory(category, members))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].SampleCount != result[j].SampleCount {
			return result[i].SampleCount > result[j].SampleCount
		}
		return result[i].Category < result[j].Category
	})
	return result
}

func profileCategory(category string, members []job.Job) pricing.PatternResponse {
	prices := make([]decimal.Decimal, 0, len(members))
	for _, j := range members {
		prices = append(prices, *j.Price)
	}

	return pricing.PatternResponse{
		Category:      category,
		SampleCount:   len(members),
		Price:         priceStats(prices),
		Duration:      durationStats(members),
		TeamSizes:     teamSizeBuckets(members),
		Complexity:    complexityBreakdown(members),
		RecentSamples: recentSamples(members),
	}
}

func priceStats(prices []decimal.Decimal) pricing.PriceStats {
	sorted := make([]decimal.Decimal, len(prices))
	copy(sorted, prices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	sum := decimal.Zero
	for _, p := range sorted {
		sum = sum.Add(p)
	}

	n := len(sorted)
	var median decimal.Decimal
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = sorted[n/2-1].Add(sorted[n/2]).Div(decimal.NewFromInt(2))
	}

	return pricing.PriceStats{
		Mean:   sum.Div(decimal.NewFromInt(int64(n))).Round(2),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Spread: sorted[n-1].Sub(sorted[0]),
	}
}

// durationStats covers only jobs with both scheduled timestamps.
func durationStats(members []job.Job) pricing.DurationStats {
	var total float64
	count := 0
	for _, j := range members {
		start, end, ok := j.BookedInterval()
		if !ok {
			continue
		}
		total += end.Sub(start).Hours()
		count++
	}

	stats := pricing.DurationStats{SampleCount: count}
	if count > 0 {
		stats.MeanHours = math.Round(total/float64(count)*10) / 10
	}
	return stats
}

func teamSizeBuckets(members []job.Job) []pricing.TeamSizeBucket {
	type bucket struct {
		count int
		sum   decimal.Decimal
		min   decimal.Decimal
		max   decimal.Decimal
	}
	buckets := make(map[int]*bucket)

	for _, j := range members {
		size := j.AssigneeCount()
		if size == 0 {
			continue
		}
		b, ok := buckets[size]
		if !ok {
			b = &bucket{sum: decimal.Zero, min: *j.Price, max: *j.Price}
			buckets[size] = b
		}
		b.count++
		b.sum = b.sum.Add(*j.Price)
		if j.Price.LessThan(b.min) {
			b.min = *j.Price
		}
		if j.Price.GreaterThan(b.max) {
			b.max = *j.Price
		}
	}

	var result []pricing.TeamSizeBucket
	for size := 1; size <= 3; size++ {
		b, ok := buckets[size]
		if !ok {
			continue
		}
		result = append(result, pricing.TeamSizeBucket{
			Technicians: size,
			Count:       b.count,
			MeanPrice:   b.sum.Div(decimal.NewFromInt(int64(b.count))).Round(2),
			MinPrice:    b.min,
			MaxPrice:    b.max,
		})
	}
	return result
}

func complexityBreakdown(members []job.Job) pricing.ComplexityBreakdown {
	var breakdown pricing.ComplexityBreakdown
	for _, j := range members {
		switch score := ComplexityScore(j); {
		case score >= 5:
			breakdown.High++
		case score >= 2:
			breakdown.Medium++
		default:
			breakdown.Low++
		}
	}
	return breakdown
}

func recentSamples(members []job.Job) []pricing.SampleCase {
	sorted := make([]job.Job, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedDate.After(*sorted[j].CompletedDate)
	})
	if len(sorted) > maxRecentSamples {
		sorted = sorted[:maxRecentSamples]
	}

	samples := make([]pricing.SampleCase, 0, len(sorted))
	for _, j := range sorted {
		samples = append(samples, pricing.SampleCase{
			ID:              j.ID,
			Title:           j.Title,
			Price:           *j.Price,
			CompletedDate:   j.CompletedDate.Format("2006-01-02"),
			AssigneeCount:   j.AssigneeCount(),
			ComplexityScore: ComplexityScore(j),
		})
	}
	return samples
}
