package provision

import "context"

// ProvisionService attributes percentage-of-price commission across up to
// three assignee roles per completed job and rolls the result up per
// technician, per month, and into graph-ready series.
type ProvisionService interface {
	// TechnicianProvisions returns the rollup over the last months,
	// sorted descending by total provision. An empty technicianIDs slice
	// means all active technicians.
	TechnicianProvisions(ctx context.Context, months int, technicianIDs []string) ([]TechnicianProvisionResponse, error)

	// MonthlySummaries returns a contiguous month series covering the last
	// months up to now.
	MonthlySummaries(ctx context.Context, months int) ([]MonthlySummaryResponse, error)

	// GraphSeries returns per-technician monthly series plus an aggregate
	// total line.
	GraphSeries(ctx context.Context, months int, technicianIDs []string) (GraphSeriesResponse, error)
}
