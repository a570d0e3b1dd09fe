package job

import (
	"context"
	"time"
)

// JobRepository is the read side of the record store for jobs. The engine
// only ever issues wide, filtered window queries; it never writes.
type JobRepository interface {
	// ListByWindow returns every job whose scheduled start or completion
	// date falls inside [start, end].
	ListByWindow(ctx context.Context, start, end time.Time) ([]Job, error)

	// ListCompletedByWindow returns jobs in terminal status completed
	// inside [start, end].
	ListCompletedByWindow(ctx context.Context, start, end time.Time) ([]Job, error)

	// GetByID returns a single job.
	GetByID(ctx context.Context, id string) (Job, error)
}
