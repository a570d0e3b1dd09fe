package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `
	id, case_number, title, description, completion_report, status, pest_type, origin,
	price::text, scheduled_start, scheduled_end, completed_date,
	primary_assignee_id, secondary_assignee_id, tertiary_assignee_id, primary_assignee_name,
	created_at, updated_at
`

// ListByWindow implements job.JobRepository.
func (r *jobRepositoryImpl) ListByWindow(ctx context.Context, start, end time.Time) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM cases
		WHERE deleted_at IS NULL
		AND (
			(scheduled_start >= $1 AND scheduled_start <= $2)
			OR (completed_date >= $1 AND completed_date <= $2)
		)
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: list by window: %v", job.ErrFetchFailed, err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// ListCompletedByWindow implements job.JobRepository.
func (r *jobRepositoryImpl) ListCompletedByWindow(ctx context.Context, start, end time.Time) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM cases
		WHERE deleted_at IS NULL
		AND status = $1
		AND completed_date >= $2 AND completed_date <= $3
		ORDER BY completed_date
	`

	rows, err := q.Query(ctx, query, job.StatusCompleted, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: list completed by window: %v", job.ErrFetchFailed, err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM cases
		WHERE id = $1 AND deleted_at IS NULL
	`

	j, err := scanJob(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return j, nil
}

func scanJobs(rows pgx.Rows) ([]job.Job, error) {
	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (job.Job, error) {
	var (
		j        job.Job
		origin   *string
		pestType *string
		price    *string
		primName *string
	)

	err := row.Scan(
		&j.ID, &j.CaseNumber, &j.Title, &j.Description, &j.CompletionReport,
		&j.Status, &pestType, &origin, &price,
		&j.ScheduledStart, &j.ScheduledEnd, &j.CompletedDate,
		&j.PrimaryAssigneeID, &j.SecondaryAssigneeID, &j.TertiaryAssigneeID, &primName,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}

	if pestType != nil {
		j.PestType = *pestType
	}
	if origin != nil {
		j.Origin = job.CustomerOrigin(*origin)
	}
	if primName != nil {
		j.PrimaryAssigneeName = *primName
	}
	if price != nil {
		parsed, err := decimal.NewFromString(*price)
		if err != nil {
			return job.Job{}, fmt.Errorf("invalid price for job %s: %w", j.ID, err)
		}
		j.Price = &parsed
	}
	return j, nil
}
