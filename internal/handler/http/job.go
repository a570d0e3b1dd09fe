package http

import (
	"net/http"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/handler/http/response"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/validator"
	pricingService "github.com/begoneskadedjur/kundportal-sub011/internal/service/pricing"
	"github.com/go-chi/chi/v5"
)

type JobHandler interface {
	// List returns jobs in a window with post-aggregation filters
	List(w http.ResponseWriter, r *http.Request)
	// GetByID returns one job
	GetByID(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobRepo job.JobRepository
}

func NewJobHandler(jobRepo job.JobRepository) JobHandler {
	return &jobHandlerImpl{jobRepo: jobRepo}
}

// List handles GET /jobs. Defaults to the last twelve months.
func (h *jobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	start, end, errs := parseDateRange(r, now.AddDate(0, -12, 0), now)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	filter := parseCaseFilter(r)

	jobs, err := h.jobRepo.ListByWindow(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]job.CaseSummaryResponse, 0, len(jobs))
	for _, j := range jobs {
		category := pricingService.CategoryOf(j)
		if !filter.Matches(j, category) {
			continue
		}
		result = append(result, j.ToSummary(category))
	}
	response.Success(w, result)
}

// GetByID handles GET /jobs/{id}
func (h *jobHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if validator.IsEmpty(id) {
		response.BadRequest(w, "Job id is required", nil)
		return
	}

	j, err := h.jobRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, j.ToSummary(pricingService.CategoryOf(j)))
}
