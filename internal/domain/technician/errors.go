package technician

import "errors"

var (
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrFetchFailed        = errors.New("failed to fetch technicians")
)
