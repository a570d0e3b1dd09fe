package scheduling

import (
	"context"
	"time"
)

// SchedulingService computes schedule gaps and utilization for the active
// technician pool over a date range. All computation is stateless; a caller
// may re-run it at any time.
type SchedulingService interface {
	// AnalyzeGaps returns every gap of at least one hour across all active
	// technicians in [start, end], sorted ascending by date.
	AnalyzeGaps(ctx context.Context, start, end time.Time) ([]GapResponse, error)

	// CalculateUtilization returns per-technician utilization over
	// [start, end], sorted ascending by utilization percent.
	CalculateUtilization(ctx context.Context, start, end time.Time) ([]UtilizationResponse, error)
}
