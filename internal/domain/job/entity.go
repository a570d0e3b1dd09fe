package job

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is a priced unit of pest-control work (a "case" in the portal UI).
// Once a job carries both a price and a completion date the engine treats
// it as immutable.
type Job struct {
	ID               string
	CaseNumber       string
	Title            string
	Description      string
	CompletionReport string
	Status           string
	PestType         string // may be empty, classified from title+description when absent
	Origin           CustomerOrigin
	Price            *decimal.Decimal
	ScheduledStart   *time.Time
	ScheduledEnd     *time.Time
	CompletedDate    *time.Time

	PrimaryAssigneeID   *string
	SecondaryAssigneeID *string
	TertiaryAssigneeID  *string
	PrimaryAssigneeName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusCompleted is the terminal status label that makes a job
// commission-eligible. Status is otherwise free text.
const StatusCompleted = "Completed"

type CustomerOrigin string

const (
	OriginPrivate  CustomerOrigin = "private"
	OriginBusiness CustomerOrigin = "business"
)

type AssigneeRole string

const (
	RolePrimary   AssigneeRole = "primary"
	RoleSecondary AssigneeRole = "secondary"
	RoleTertiary  AssigneeRole = "tertiary"
)

var AssigneeRoles = []AssigneeRole{RolePrimary, RoleSecondary, RoleTertiary}

// AssigneeID returns the technician id holding the given role, or nil.
func (j Job) AssigneeID(role AssigneeRole) *string {
	switch role {
	case RolePrimary:
		return j.PrimaryAssigneeID
	case RoleSecondary:
		return j.SecondaryAssigneeID
	case RoleTertiary:
		return j.TertiaryAssigneeID
	}
	return nil
}

// RolesOf returns every role the technician holds on this job.
func (j Job) RolesOf(technicianID string) []AssigneeRole {
	var roles []AssigneeRole
	for _, role := range AssigneeRoles {
		if id := j.AssigneeID(role); id != nil && *id == technicianID {
			roles = append(roles, role)
		}
	}
	return roles
}

// AssigneeCount returns how many of the three roles are filled.
func (j Job) AssigneeCount() int {
	count := 0
	for _, role := range AssigneeRoles {
		if j.AssigneeID(role) != nil {
			count++
		}
	}
	return count
}

// CommissionEligible reports whether the job participates in commission
// aggregation: terminal status, a price, and a completion date. Whether the
// completion date lies in the past is irrelevant.
func (j Job) CommissionEligible() bool {
	return j.Status == StatusCompleted && j.Price != nil && j.CompletedDate != nil
}

// BookedInterval returns the scheduled start/end pair when both are set.
func (j Job) BookedInterval() (start, end time.Time, ok bool) {
	if j.ScheduledStart == nil || j.ScheduledEnd == nil {
		return time.Time{}, time.Time{}, false
	}
	return *j.ScheduledStart, *j.ScheduledEnd, true
}
