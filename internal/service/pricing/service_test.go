package pricing

import (
	"fmt"
	"testing"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedJob(pestType string, price float64, completed time.Time) job.Job {
	p := decimal.NewFromFloat(price)
	return job.Job{
		ID:            uuid.NewString(),
		Status:        job.StatusCompleted,
		PestType:      pestType,
		Price:         &p,
		CompletedDate: &completed,
	}
}

func pricedJobs(pestType string, count int, price float64) []job.Job {
	jobs := make([]job.Job, 0, count)
	for i := 0; i < count; i++ {
		completed := time.Date(2025, 5, 1+i, 10, 0, 0, 0, time.UTC)
		jobs = append(jobs, pricedJob(pestType, price, completed))
	}
	return jobs
}

func TestPatterns_SmallCategoriesDropped(t *testing.T) {
	t.Parallel()

	jobs := append(pricedJobs("Rodents", 3, 5000), pricedJobs("Wasps", 2, 3000)...)

	result := Patterns(jobs)
	require.Len(t, result, 1)
	assert.Equal(t, "Rodents", result[0].Category)
	assert.Equal(t, 3, result[0].SampleCount)
}

func TestPatterns_IneligibleJobsExcluded(t *testing.T) {
	t.Parallel()

	jobs := pricedJobs("Rodents", 2, 5000)
	completed := time.Date(2025, 5, 10, 10, 0, 0, 0, time.UTC)
	jobs = append(jobs, job.Job{
		ID:            uuid.NewString(),
		Status:        job.StatusCompleted,
		PestType:      "Rodents",
		CompletedDate: &completed, // no price
	})

	assert.Empty(t, Patterns(jobs))
}

func TestPatterns_SortedBySampleCountThenCategory(t *testing.T) {
	t.Parallel()

	jobs := append(pricedJobs("Wasps", 3, 3000), pricedJobs("Ants", 3, 2000)...)
	jobs = append(jobs, pricedJobs("Rodents", 5, 5000)...)

	result := Patterns(jobs)
	require.Len(t, result, 3)
	assert.Equal(t, "Rodents", result[0].Category)
	assert.Equal(t, "Ants", result[1].Category)
	assert.Equal(t, "Wasps", result[2].Category)
}

func TestPriceStats(t *testing.T) {
	t.Parallel()

	d := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }

	t.Run("odd sample count uses middle value", func(t *testing.T) {
		t.Parallel()
		stats := priceStats([]decimal.Decimal{d("3000"), d("1000"), d("2000")})
		assert.True(t, stats.Median.Equal(d("2000")))
		assert.True(t, stats.Mean.Equal(d("2000")))
		assert.True(t, stats.Min.Equal(d("1000")))
		assert.True(t, stats.Max.Equal(d("3000")))
		assert.True(t, stats.Spread.Equal(d("2000")))
	})

	t.Run("even sample count averages middle pair", func(t *testing.T) {
		t.Parallel()
		stats := priceStats([]decimal.Decimal{d("1000"), d("2000"), d("4000"), d("8000")})
		assert.True(t, stats.Median.Equal(d("3000")), "got %s", stats.Median)
		assert.True(t, stats.Mean.Equal(d("3750")))
	})

	t.Run("mean rounds to two decimals", func(t *testing.T) {
		t.Parallel()
		stats := priceStats([]decimal.Decimal{d("100"), d("100"), d("101")})
		assert.True(t, stats.Mean.Equal(d("100.33")), "got %s", stats.Mean)
	})
}

func TestDurationStats_OnlyScheduledJobsCounted(t *testing.T) {
	t.Parallel()

	completed := time.Date(2025, 5, 10, 10, 0, 0, 0, time.UTC)
	scheduled := pricedJob("Rodents", 5000, completed)
	start := time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 10, 11, 30, 0, 0, time.UTC)
	scheduled.ScheduledStart = &start
	scheduled.ScheduledEnd = &end

	unscheduled := pricedJob("Rodents", 5000, completed)

	stats := durationStats([]job.Job{scheduled, unscheduled})
	assert.Equal(t, 1, stats.SampleCount)
	assert.Equal(t, 3.5, stats.MeanHours)
}

func TestTeamSizeBuckets(t *testing.T) {
	t.Parallel()

	anna, bo := "t-1", "t-2"
	completed := time.Date(2025, 5, 10, 10, 0, 0, 0, time.UTC)

	solo := pricedJob("Rodents", 4000, completed)
	solo.PrimaryAssigneeID = &anna

	soloPricier := pricedJob("Rodents", 6000, completed)
	soloPricier.PrimaryAssigneeID = &bo

	pair := pricedJob("Rodents", 9000, completed)
	pair.PrimaryAssigneeID = &anna
	pair.SecondaryAssigneeID = &bo

	unassigned := pricedJob("Rodents", 100, completed)

	buckets := teamSizeBuckets([]job.Job{solo, soloPricier, pair, unassigned})
	require.Len(t, buckets, 2)

	assert.Equal(t, 1, buckets[0].Technicians)
	assert.Equal(t, 2, buckets[0].Count)
	assert.True(t, buckets[0].MeanPrice.Equal(decimal.NewFromInt(5000)))
	assert.True(t, buckets[0].MinPrice.Equal(decimal.NewFromInt(4000)))
	assert.True(t, buckets[0].MaxPrice.Equal(decimal.NewFromInt(6000)))

	assert.Equal(t, 2, buckets[1].Technicians)
	assert.Equal(t, 1, buckets[1].Count)
}

func TestComplexityBreakdown(t *testing.T) {
	t.Parallel()

	completed := time.Date(2025, 5, 10, 10, 0, 0, 0, time.UTC)
	low := pricedJob("Rodents", 1000, completed)
	low.Description = "routine check"

	medium := pricedJob("Rodents", 2000, completed)
	medium.Description = "infestation found"

	high := pricedJob("Rodents", 3000, completed)
	high.Description = "extensive infestation"

	breakdown := complexityBreakdown([]job.Job{low, medium, high})
	assert.Equal(t, 1, breakdown.Low)
	assert.Equal(t, 1, breakdown.Medium)
	assert.Equal(t, 1, breakdown.High)
}

func TestRecentSamples_NewestFirstAndCapped(t *testing.T) {
	t.Parallel()

	var jobs []job.Job
	for i := 0; i < 30; i++ {
		completed := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		j := pricedJob("Rodents", 5000, completed)
		j.Title = fmt.Sprintf("visit %d", i)
		jobs = append(jobs, j)
	}

	samples := recentSamples(jobs)
	require.Len(t, samples, 25)
	assert.Equal(t, "visit 29", samples[0].Title)
	assert.Equal(t, "2025-04-30", samples[0].CompletedDate)
	assert.Equal(t, "visit 5", samples[24].Title)
}
