package scheduling

import "time"

// WorkDay is one concrete day of a technician's expanded weekly schedule.
type WorkDay struct {
	Date    time.Time
	Weekday string
	Start   time.Time
	End     time.Time
}

// Hours returns the workable duration of the day in hours.
func (w WorkDay) Hours() float64 {
	return w.End.Sub(w.Start).Hours()
}

type GapClassification string

const (
	GapMinor GapClassification = "minor"
	GapMajor GapClassification = "major"
)

// GapResponse is one idle interval within a technician's work day. Gaps are
// derived on every call and never stored.
type GapResponse struct {
	TechnicianID   string            `json:"technician_id"`
	TechnicianName string            `json:"technician_name"`
	Date           string            `json:"date"` // YYYY-MM-DD
	Weekday        string            `json:"weekday"`
	StartTime      string            `json:"start_time"` // HH:MM
	EndTime        string            `json:"end_time"`   // HH:MM
	DurationHours  float64           `json:"duration_hours"`
	Classification GapClassification `json:"classification"`
	SuggestedSlot  SuggestedSlot     `json:"suggested_slot"`
}

// SuggestedSlot is a fixed two-hour booking proposal anchored at the gap
// start and clipped to the gap end.
type SuggestedSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type UtilizationLevel string

const (
	Underutilized UtilizationLevel = "underutilized"
	Optimal       UtilizationLevel = "optimal"
	Overutilized  UtilizationLevel = "overutilized"
)

// UtilizationResponse summarizes one technician's booked vs workable hours
// over a period.
type UtilizationResponse struct {
	TechnicianID       string           `json:"technician_id"`
	TechnicianName     string           `json:"technician_name"`
	TotalWorkHours     float64          `json:"total_work_hours"`
	ScheduledHours     float64          `json:"scheduled_hours"`
	AvailableHours     float64          `json:"available_hours"`
	UtilizationPercent float64          `json:"utilization_percent"`
	Level              UtilizationLevel `json:"level"`
}
