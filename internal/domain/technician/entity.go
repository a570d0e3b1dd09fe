package technician

import (
	"strings"
	"time"
)

type Technician struct {
	ID     string
	Name   string
	Email  string
	Active bool

	// Schedule is nil for technicians without a configured work week.
	// They contribute no work hours and no gaps.
	Schedule *WorkSchedule
	Absences []Absence

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkSchedule maps lowercase weekday names ("monday".."sunday") to that
// day's configuration.
type WorkSchedule struct {
	Days map[string]DaySchedule
}

type DaySchedule struct {
	Active bool
	Start  string // "HH:MM"
	End    string // "HH:MM"
}

// Day resolves a weekday name case-insensitively.
func (w *WorkSchedule) Day(weekday string) (DaySchedule, bool) {
	if w == nil || w.Days == nil {
		return DaySchedule{}, false
	}
	day, ok := w.Days[strings.ToLower(weekday)]
	return day, ok
}

// Absence is a pre-validated interval during which the technician is not
// available. Absences never overlap within one technician.
type Absence struct {
	ID    string
	Start time.Time
	End   time.Time
}
