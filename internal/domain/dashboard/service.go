package dashboard

import "context"

// DashboardService is the aggregation facade over the scheduling, provision
// and pricing engines. Idempotent and side-effect free: the same input data
// always yields the same payload.
type DashboardService interface {
	GetDashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}
