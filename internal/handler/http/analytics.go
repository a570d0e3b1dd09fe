package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/dashboard"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/pricing"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/provision"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/scheduling"
	"github.com/begoneskadedjur/kundportal-sub011/internal/handler/http/response"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AnalyticsHandler interface {
	// GetDashboard returns the combined facade payload
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetGaps returns schedule gaps for a date range
	GetGaps(w http.ResponseWriter, r *http.Request)
	// GetUtilization returns per-technician utilization for a date range
	GetUtilization(w http.ResponseWriter, r *http.Request)
	// GetProvisions returns the per-technician commission rollup
	GetProvisions(w http.ResponseWriter, r *http.Request)
	// GetMonthlySummaries returns the contiguous monthly commission series
	GetMonthlySummaries(w http.ResponseWriter, r *http.Request)
	// GetGraphSeries returns per-technician monthly graph series
	GetGraphSeries(w http.ResponseWriter, r *http.Request)
	// GetPricingPatterns returns per-category pricing profiles
	GetPricingPatterns(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	dashboardService  dashboard.DashboardService
	schedulingService scheduling.SchedulingService
	provisionService  provision.ProvisionService
	pricingService    pricing.PricingService
}

func NewAnalyticsHandler(
	dashboardService dashboard.DashboardService,
	schedulingService scheduling.SchedulingService,
	provisionService provision.ProvisionService,
	pricingService pricing.PricingService,
) AnalyticsHandler {
	return &analyticsHandlerImpl{
		dashboardService:  dashboardService,
		schedulingService: schedulingService,
		provisionService:  provisionService,
		pricingService:    pricingService,
	}
}

// GetDashboard handles GET /analytics/dashboard
func (h *analyticsHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req := dashboard.DashboardRequest{
		Months:        parseMonths(r.URL.Query().Get("months")),
		TechnicianIDs: parseIDs(r.URL.Query().Get("technician_ids")),
		CaseFilter:    parseCaseFilter(r),
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetGaps handles GET /analytics/gaps. Without parameters it looks at the
// coming two weeks.
func (h *analyticsHandlerImpl) GetGaps(w http.ResponseWriter, r *http.Request) {
	start, end, errs := parseDateRange(r, time.Now(), time.Now().AddDate(0, 0, 13))
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.schedulingService.AnalyzeGaps(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetUtilization handles GET /analytics/utilization. Defaults to the
// current month to date.
func (h *analyticsHandlerImpl) GetUtilization(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start, end, errs := parseDateRange(r, firstOfMonth, now)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.schedulingService.CalculateUtilization(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetProvisions handles GET /analytics/provisions
func (h *analyticsHandlerImpl) GetProvisions(w http.ResponseWriter, r *http.Request) {
	months := parseMonths(r.URL.Query().Get("months"))
	ids := parseIDs(r.URL.Query().Get("technician_ids"))

	result, err := h.provisionService.TechnicianProvisions(r.Context(), months, ids)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlySummaries handles GET /analytics/provisions/monthly
func (h *analyticsHandlerImpl) GetMonthlySummaries(w http.ResponseWriter, r *http.Request) {
	months := parseMonths(r.URL.Query().Get("months"))

	result, err := h.provisionService.MonthlySummaries(r.Context(), months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetGraphSeries handles GET /analytics/provisions/graph
func (h *analyticsHandlerImpl) GetGraphSeries(w http.ResponseWriter, r *http.Request) {
	months := parseMonths(r.URL.Query().Get("months"))
	ids := parseIDs(r.URL.Query().Get("technician_ids"))

	result, err := h.provisionService.GraphSeries(r.Context(), months, ids)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPricingPatterns handles GET /analytics/pricing-patterns
func (h *analyticsHandlerImpl) GetPricingPatterns(w http.ResponseWriter, r *http.Request) {
	months := parseMonths(r.URL.Query().Get("months"))

	result, err := h.pricingService.Patterns(r.Context(), months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseMonths parses the lookback window, defaulting to 12.
func parseMonths(raw string) int {
	if raw == "" {
		return 12
	}
	months, err := strconv.Atoi(raw)
	if err != nil || months <= 0 {
		return 12
	}
	return months
}

func parseIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func parseDateRange(r *http.Request, defaultStart, defaultEnd time.Time) (time.Time, time.Time, map[string]string) {
	errs := make(map[string]string)

	start := defaultStart
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			errs["start"] = "must be a YYYY-MM-DD date"
		} else {
			start = parsed
		}
	}

	end := defaultEnd
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			errs["end"] = "must be a YYYY-MM-DD date"
		} else {
			end = parsed
		}
	}

	if len(errs) == 0 && end.Before(start) {
		errs["end"] = "must not be before start"
	}
	return start, end, errs
}

func parseCaseFilter(r *http.Request) job.CaseFilter {
	filter := job.CaseFilter{
		PestType:  r.URL.Query().Get("pest_type"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if raw := r.URL.Query().Get("min_price"); raw != "" {
		if parsed, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &parsed
		}
	}
	if raw := r.URL.Query().Get("max_price"); raw != "" {
		if parsed, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &parsed
		}
	}
	return filter
}
