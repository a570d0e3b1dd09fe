package provision

import (
	"testing"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleSplitPolicy_Attribute(t *testing.T) {
	t.Parallel()

	price := decimal.NewFromInt(10000)
	policy := RoleSplitPolicy{}

	tests := []struct {
		name string
		role job.AssigneeRole
		want string
	}{
		{name: "primary gets 3 percent", role: job.RolePrimary, want: "300"},
		{name: "secondary gets 1.5 percent", role: job.RoleSecondary, want: "150"},
		{name: "tertiary gets 0.5 percent", role: job.RoleTertiary, want: "50"},
		{name: "unknown role gets nothing", role: job.AssigneeRole("driver"), want: "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := policy.Attribute(price, tt.role)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestRoleSplitPolicy_FullTeamSumsToCommissionBase(t *testing.T) {
	t.Parallel()

	price := decimal.NewFromInt(10000)
	policy := RoleSplitPolicy{}

	sum := decimal.Zero
	for _, role := range job.AssigneeRoles {
		sum = sum.Add(policy.Attribute(price, role))
	}

	base := price.Mul(CommissionRate)
	assert.True(t, sum.Equal(base), "got %s, want %s", sum, base)
}

func TestRoleSplitPolicy_NeverExceedsCommissionBase(t *testing.T) {
	t.Parallel()

	policy := RoleSplitPolicy{}
	for _, raw := range []string{"0", "1", "499.99", "10000", "123456.78"} {
		price := decimal.RequireFromString(raw)
		base := price.Mul(CommissionRate)

		sum := decimal.Zero
		for _, role := range job.AssigneeRoles {
			sum = sum.Add(policy.Attribute(price, role))
		}
		assert.True(t, sum.LessThanOrEqual(base), "price %s: sum %s exceeds base %s", raw, sum, base)
	}
}

func TestFlatPrimaryPolicy_Attribute(t *testing.T) {
	t.Parallel()

	price := decimal.NewFromInt(10000)
	policy := FlatPrimaryPolicy{}

	assert.True(t, policy.Attribute(price, job.RolePrimary).Equal(decimal.NewFromInt(500)))
	assert.True(t, policy.Attribute(price, job.RoleSecondary).IsZero())
	assert.True(t, policy.Attribute(price, job.RoleTertiary).IsZero())
}

func TestPolicyFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to role split", input: "", want: "role_split"},
		{name: "explicit role split", input: "role_split", want: "role_split"},
		{name: "flat primary", input: "flat_primary", want: "flat_primary"},
		{name: "unknown is rejected", input: "double_dutch", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			policy, err := PolicyFromName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, policy.Name())
		})
	}
}
