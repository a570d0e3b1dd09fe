package http

import (
	"net/http"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
	"github.com/begoneskadedjur/kundportal-sub011/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TechnicianHandler interface {
	// List returns active technicians with schedules and absences
	List(w http.ResponseWriter, r *http.Request)
	// GetByID returns one technician
	GetByID(w http.ResponseWriter, r *http.Request)
}

type technicianHandlerImpl struct {
	technicianRepo technician.TechnicianRepository
}

func NewTechnicianHandler(technicianRepo technician.TechnicianRepository) TechnicianHandler {
	return &technicianHandlerImpl{technicianRepo: technicianRepo}
}

// List handles GET /technicians
func (h *technicianHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	technicians, err := h.technicianRepo.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]technician.TechnicianResponse, 0, len(technicians))
	for _, tech := range technicians {
		result = append(result, tech.ToResponse())
	}
	response.Success(w, result)
}

// GetByID handles GET /technicians/{id}
func (h *technicianHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tech, err := h.technicianRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tech.ToResponse())
}
