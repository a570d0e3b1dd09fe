package technician

import "time"

// TechnicianResponse is the pass-through record the portal lists.
type TechnicianResponse struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Email    string                 `json:"email"`
	Active   bool                   `json:"active"`
	Schedule map[string]DayResponse `json:"schedule,omitempty"`
	Absences []AbsenceResponse      `json:"absences"`
}

type DayResponse struct {
	Active bool   `json:"active"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type AbsenceResponse struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToResponse flattens a technician record for the portal.
func (t Technician) ToResponse() TechnicianResponse {
	resp := TechnicianResponse{
		ID:       t.ID,
		Name:     t.Name,
		Email:    t.Email,
		Active:   t.Active,
		Absences: make([]AbsenceResponse, 0, len(t.Absences)),
	}
	if t.Schedule != nil {
		resp.Schedule = make(map[string]DayResponse, len(t.Schedule.Days))
		for day, cfg := range t.Schedule.Days {
			resp.Schedule[day] = DayResponse{
				Active: cfg.Active,
				Start:  cfg.Start,
				End:    cfg.End,
			}
		}
	}
	for _, absence := range t.Absences {
		resp.Absences = append(resp.Absences, AbsenceResponse{
			ID:    absence.ID,
			Start: absence.Start.Format(time.RFC3339),
			End:   absence.End.Format(time.RFC3339),
		})
	}
	return resp
}
