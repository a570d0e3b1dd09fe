package dashboard

import (
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/pricing"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/provision"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/scheduling"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
)

// DashboardRequest selects the aggregation window and optional filters.
// CaseFilter applies post-aggregation to the case list only.
type DashboardRequest struct {
	Months        int // lookback in months, default 12
	TechnicianIDs []string
	CaseFilter    job.CaseFilter
}

// DashboardResponse is the combined payload the dashboards and the
// operations assistant consume. It is recomputed wholesale on every call;
// there is no cached derived state.
type DashboardResponse struct {
	Cases       []job.CaseSummaryResponse               `json:"cases"`
	Technicians []technician.TechnicianResponse         `json:"technicians"`
	Gaps        []scheduling.GapResponse                `json:"gaps"`
	Utilization []scheduling.UtilizationResponse        `json:"utilization"`
	Provisions  []provision.TechnicianProvisionResponse `json:"provisions"`
	Monthly     []provision.MonthlySummaryResponse      `json:"monthly"`
	Patterns    []pricing.PatternResponse               `json:"pricing_patterns"`
}
