package job

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseSummaryResponse is the flattened per-job record the dashboards list.
// Optional numerics default to zero, never omitted.
type CaseSummaryResponse struct {
	ID              string          `json:"id"`
	CaseNumber      string          `json:"case_number"`
	Title           string          `json:"title"`
	Status          string          `json:"status"`
	PestType        string          `json:"pest_type"`
	Origin          string          `json:"origin"`
	Price           decimal.Decimal `json:"price"`
	ScheduledStart  string          `json:"scheduled_start,omitempty"`
	ScheduledEnd    string          `json:"scheduled_end,omitempty"`
	CompletedDate   string          `json:"completed_date,omitempty"`
	PrimaryAssignee string          `json:"primary_assignee"`
	AssigneeCount   int             `json:"assignee_count"`
}

// CaseFilter is applied post-aggregation to the case list.
type CaseFilter struct {
	PestType  string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
}

// ToSummary flattens a job for the dashboards. The category is resolved by
// the caller since classification lives with the pricing engine. Missing
// optional numerics default to zero, never omitted.
func (j Job) ToSummary(category string) CaseSummaryResponse {
	price := decimal.Zero
	if j.Price != nil {
		price = *j.Price
	}
	summary := CaseSummaryResponse{
		ID:              j.ID,
		CaseNumber:      j.CaseNumber,
		Title:           j.Title,
		Status:          j.Status,
		PestType:        category,
		Origin:          string(j.Origin),
		Price:           price,
		PrimaryAssignee: j.PrimaryAssigneeName,
		AssigneeCount:   j.AssigneeCount(),
	}
	if j.ScheduledStart != nil {
		summary.ScheduledStart = j.ScheduledStart.Format(time.RFC3339)
	}
	if j.ScheduledEnd != nil {
		summary.ScheduledEnd = j.ScheduledEnd.Format(time.RFC3339)
	}
	if j.CompletedDate != nil {
		summary.CompletedDate = j.CompletedDate.Format("2006-01-02")
	}
	return summary
}

// Matches applies the post-aggregation case filter against a job and its
// resolved category. Jobs missing a filtered field do not match.
func (f CaseFilter) Matches(j Job, category string) bool {
	if f.PestType != "" && category != f.PestType {
		return false
	}
	if f.MinPrice != nil && (j.Price == nil || j.Price.LessThan(*f.MinPrice)) {
		return false
	}
	if f.MaxPrice != nil && (j.Price == nil || j.Price.GreaterThan(*f.MaxPrice)) {
		return false
	}
	if f.StartDate != "" {
		if j.CompletedDate == nil || j.CompletedDate.Format("2006-01-02") < f.StartDate {
			return false
		}
	}
	if f.EndDate != "" {
		if j.CompletedDate == nil || j.CompletedDate.Format("2006-01-02") > f.EndDate {
			return false
		}
	}
	return true
}
