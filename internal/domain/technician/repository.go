package technician

import "context"

// TechnicianRepository is the read side of the record store for
// technicians, their weekly schedules and their absences.
type TechnicianRepository interface {
	// ListActive returns active technicians with schedule and absences
	// populated.
	ListActive(ctx context.Context) ([]Technician, error)

	// GetByID returns a single technician with schedule and absences.
	GetByID(ctx context.Context, id string) (Technician, error)
}
