package pricing

import "github.com/shopspring/decimal"

// PatternResponse is the statistical profile of one pest category.
// Categories with fewer than three priced jobs are dropped as noise.
type PatternResponse struct {
	Category      string              `json:"category"`
	SampleCount   int                 `json:"sample_count"`
	Price         PriceStats          `json:"price"`
	Duration      DurationStats       `json:"duration"`
	TeamSizes     []TeamSizeBucket    `json:"team_sizes"`
	Complexity    ComplexityBreakdown `json:"complexity"`
	RecentSamples []SampleCase        `json:"recent_samples"`
}

type PriceStats struct {
	Mean   decimal.Decimal `json:"mean"`
	Median decimal.Decimal `json:"median"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Spread decimal.Decimal `json:"spread"`
}

// DurationStats covers only jobs carrying both scheduled timestamps.
type DurationStats struct {
	MeanHours   float64 `json:"mean_hours"`
	SampleCount int     `json:"sample_count"`
}

// TeamSizeBucket profiles jobs by assignee count (1..3). Buckets without
// samples are omitted.
type TeamSizeBucket struct {
	Technicians int             `json:"technicians"`
	Count       int             `json:"count"`
	MeanPrice   decimal.Decimal `json:"mean_price"`
	MinPrice    decimal.Decimal `json:"min_price"`
	MaxPrice    decimal.Decimal `json:"max_price"`
}

// ComplexityBreakdown buckets the advisory keyword score. The score never
// feeds pricing or commission decisions.
type ComplexityBreakdown struct {
	Low    int `json:"low"`    // score 0-1
	Medium int `json:"medium"` // score 2-4
	High   int `json:"high"`   // score 5+
}

type SampleCase struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Price           decimal.Decimal `json:"price"`
	CompletedDate   string          `json:"completed_date"`
	AssigneeCount   int             `json:"assignee_count"`
	ComplexityScore int             `json:"complexity_score"`
}
