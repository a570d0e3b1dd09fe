package pricing

import "context"

// PricingService groups priced jobs by pest category and computes the
// price, duration, team-size and complexity profile per category.
type PricingService interface {
	// Patterns returns per-category profiles over the last months, sorted
	// descending by sample count.
	Patterns(ctx context.Context, months int) ([]PatternResponse, error)
}
