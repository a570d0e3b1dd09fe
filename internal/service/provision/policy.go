package provision

import (
	"fmt"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/shopspring/decimal"
)

// CommissionRate is the base percentage of the job price available as
// provision.
var CommissionRate = decimal.NewFromFloat(0.05)

// RoleRates splits the commission base across the three assignee roles.
// Primary lands at an effective 3% of price, secondary 1.5%, tertiary 0.5%.
var RoleRates = map[job.AssigneeRole]decimal.Decimal{
	job.RolePrimary:   decimal.NewFromFloat(0.60),
	job.RoleSecondary: decimal.NewFromFloat(0.30),
	job.RoleTertiary:  decimal.NewFromFloat(0.10),
}

// CommissionPolicy is the single canonical commission rule, selected once by
// configuration and applied uniformly to every aggregation.
type CommissionPolicy interface {
	Name() string
	// Attribute returns the commission for one role on a job with the
	// given price. Zero when the role does not participate.
	Attribute(price decimal.Decimal, role job.AssigneeRole) decimal.Decimal
}

// RoleSplitPolicy pays 5% of price split 60/30/10 across the filled roles.
type RoleSplitPolicy struct{}

func (RoleSplitPolicy) Name() string { return "role_split" }

func (RoleSplitPolicy) Attribute(price decimal.Decimal, role job.AssigneeRole) decimal.Decimal {
	rate, ok := RoleRates[role]
	if !ok {
		return decimal.Zero
	}
	return price.Mul(CommissionRate).Mul(rate)
}

// FlatPrimaryPolicy pays a flat 5% of price to the primary assignee only.
type FlatPrimaryPolicy struct{}

func (FlatPrimaryPolicy) Name() string { return "flat_primary" }

func (FlatPrimaryPolicy) Attribute(price decimal.Decimal, role job.AssigneeRole) decimal.Decimal {
	if role != job.RolePrimary {
		return decimal.Zero
	}
	return price.Mul(CommissionRate)
}

// PolicyFromName resolves the configured policy name.
func PolicyFromName(name string) (CommissionPolicy, error) {
	switch name {
	case "", "role_split":
		return RoleSplitPolicy{}, nil
	case "flat_primary":
		return FlatPrimaryPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown commission policy %q", name)
	}
}
