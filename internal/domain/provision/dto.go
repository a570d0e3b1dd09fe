package provision

import "github.com/shopspring/decimal"

// TechnicianProvisionResponse is the per-technician commission rollup.
// Recomputed in full on every request; amounts are always derived from the
// job price, never stored, so price corrections flow through automatically.
type TechnicianProvisionResponse struct {
	TechnicianID   string                   `json:"technician_id"`
	TechnicianName string                   `json:"technician_name"`
	TotalProvision decimal.Decimal          `json:"total_provision"`
	TotalRevenue   decimal.Decimal          `json:"total_revenue"`
	TotalJobs      int                      `json:"total_jobs"`
	RoleJobCounts  RoleJobCounts            `json:"role_job_counts"`
	Monthly        []MonthlyBucket          `json:"monthly"`
	MonthlyIndex   map[string]MonthlyBucket `json:"-"`
}

type RoleJobCounts struct {
	Primary   int `json:"primary"`
	Secondary int `json:"secondary"`
	Tertiary  int `json:"tertiary"`
}

// MonthlyBucket holds one technician's commission for one YYYY-MM month.
type MonthlyBucket struct {
	Month     string          `json:"month"`
	Provision decimal.Decimal `json:"provision"`
	Revenue   decimal.Decimal `json:"revenue"`
	JobCount  int             `json:"job_count"`
}

// MonthlySummaryResponse is one month of the pre-seeded, contiguous
// company-wide series. Months without activity appear with zero values.
type MonthlySummaryResponse struct {
	Month             string          `json:"month"`
	TotalProvision    decimal.Decimal `json:"total_provision"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	JobCount          int             `json:"job_count"`
	PrivateProvision  decimal.Decimal `json:"private_provision"`
	BusinessProvision decimal.Decimal `json:"business_provision"`
	TopTechnician     string          `json:"top_technician"`
	TopProvision      decimal.Decimal `json:"top_provision"`
}

// GraphSeriesResponse keys monthly points per technician name. Months with
// no activity for a technician are absent from that series; consumers must
// handle sparse series.
type GraphSeriesResponse struct {
	Series map[string][]GraphPoint `json:"series"`
	Total  []GraphPoint            `json:"total"`
}

type GraphPoint struct {
	Month     string          `json:"month"`
	Provision decimal.Decimal `json:"provision"`
	JobCount  int             `json:"job_count"`
}
