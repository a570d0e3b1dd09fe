package postgresql

import (
	"context"
	"fmt"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type technicianRepositoryImpl struct {
	db *database.DB
}

func NewTechnicianRepository(db *database.DB) technician.TechnicianRepository {
	return &technicianRepositoryImpl{db: db}
}

// ListActive implements technician.TechnicianRepository.
func (r *technicianRepositoryImpl) ListActive(ctx context.Context) ([]technician.Technician, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, active, created_at, updated_at
		FROM technicians
		WHERE active = true AND deleted_at IS NULL
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list active: %v", technician.ErrFetchFailed, err)
	}
	defer rows.Close()

	var technicians []technician.Technician
	index := make(map[string]int)
	for rows.Next() {
		var tech technician.Technician
		err := rows.Scan(&tech.ID, &tech.Name, &tech.Email, &tech.Active, &tech.CreatedAt, &tech.UpdatedAt)
		if err != nil {
			return nil, err
		}
		index[tech.ID] = len(technicians)
		technicians = append(technicians, tech)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadSchedules(ctx, technicians, index); err != nil {
		return nil, err
	}
	if err := r.loadAbsences(ctx, technicians, index); err != nil {
		return nil, err
	}
	return technicians, nil
}

// GetByID implements technician.TechnicianRepository.
func (r *technicianRepositoryImpl) GetByID(ctx context.Context, id string) (technician.Technician, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, active, created_at, updated_at
		FROM technicians
		WHERE id = $1 AND deleted_at IS NULL
	`

	var tech technician.Technician
	err := q.QueryRow(ctx, query, id).Scan(&tech.ID, &tech.Name, &tech.Email, &tech.Active, &tech.CreatedAt, &tech.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return technician.Technician{}, technician.ErrTechnicianNotFound
		}
		return technician.Technician{}, fmt.Errorf("failed to get technician %s: %w", id, err)
	}

	technicians := []technician.Technician{tech}
	index := map[string]int{tech.ID: 0}
	if err := r.loadSchedules(ctx, technicians, index); err != nil {
		return technician.Technician{}, err
	}
	if err := r.loadAbsences(ctx, technicians, index); err != nil {
		return technician.Technician{}, err
	}
	return technicians[0], nil
}

// loadSchedules attaches the weekly schedule rows to their technicians in
// one query. Weekday names are stored lowercase.
func (r *technicianRepositoryImpl) loadSchedules(ctx context.Context, technicians []technician.Technician, index map[string]int) error {
	if len(technicians) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT technician_id, weekday, active, start_time, end_time
		FROM technician_work_schedules
		WHERE technician_id = ANY($1)
	`

	rows, err := q.Query(ctx, query, technicianIDs(technicians))
	if err != nil {
		return fmt.Errorf("%w: load work schedules: %v", technician.ErrFetchFailed, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			technicianID string
			weekday      string
			day          technician.DaySchedule
		)
		if err := rows.Scan(&technicianID, &weekday, &day.Active, &day.Start, &day.End); err != nil {
			return err
		}

		i, ok := index[technicianID]
		if !ok {
			continue
		}
		if technicians[i].Schedule == nil {
			technicians[i].Schedule = &technician.WorkSchedule{Days: make(map[string]technician.DaySchedule)}
		}
		technicians[i].Schedule.Days[weekday] = day
	}
	return rows.Err()
}

func (r *technicianRepositoryImpl) loadAbsences(ctx context.Context, technicians []technician.Technician, index map[string]int) error {
	if len(technicians) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, technician_id, start_time, end_time
		FROM technician_absences
		WHERE technician_id = ANY($1)
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, technicianIDs(technicians))
	if err != nil {
		return fmt.Errorf("%w: load absences: %v", technician.ErrFetchFailed, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			technicianID string
			absence      technician.Absence
		)
		if err := rows.Scan(&absence.ID, &technicianID, &absence.Start, &absence.End); err != nil {
			return err
		}
		if i, ok := index[technicianID]; ok {
			technicians[i].Absences = append(technicians[i].Absences, absence)
		}
	}
	return rows.Err()
}

func technicianIDs(technicians []technician.Technician) []string {
	ids := make([]string, 0, len(technicians))
	for _, tech := range technicians {
		ids = append(ids, tech.ID)
	}
	return ids
}
