package validate

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tea-engine/internal/model"
)

func validInputs() model.ProjectInputs {
	return model.ProjectInputs{
		CapacityMW:             100,
		CapacityFactor:         0.25,
		CapexPerKW:             1000,
		InstallationFactor:     1.2,
		OpexPerKWYear:          15,
		InsuranceRate:          0.01,
		ProjectLifetimeYears:   25,
		DiscountRate:           0.08,
		ElectricityPricePerMWh: 50,
		PriceEscalationRate:    0.02,
		OpexEscalationRate:     0.02,
	}
}

func TestInputsValid(t *testing.T) {
	assert.Empty(t, Inputs(validInputs()))
}

func TestInputsViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ProjectInputs)
		field  string
		code   string
	}{
		{"zero capacity", func(in *model.ProjectInputs) { in.CapacityMW = 0 }, "capacity_mw", CodeNonPositive},
		{"negative capacity", func(in *model.ProjectInputs) { in.CapacityMW = -5 }, "capacity_mw", CodeNonPositive},
		{"zero capacity factor", func(in *model.ProjectInputs) { in.CapacityFactor = 0 }, "capacity_factor", CodeOutOfRange},
		{"capacity factor above one", func(in *model.ProjectInputs) { in.CapacityFactor = 1.2 }, "capacity_factor", CodeOutOfRange},
		{"zero discount rate", func(in *model.ProjectInputs) { in.DiscountRate = 0 }, "discount_rate", CodeNonPositive},
		{"discount rate at one", func(in *model.ProjectInputs) { in.DiscountRate = 1 }, "discount_rate", CodeOutOfRange},
		{"zero lifetime", func(in *model.ProjectInputs) { in.ProjectLifetimeYears = 0 }, "project_lifetime_years", CodeOutOfRange},
		{"installation factor below one", func(in *model.ProjectInputs) { in.InstallationFactor = 0.9 }, "installation_factor", CodeOutOfRange},
		{"negative insurance", func(in *model.ProjectInputs) { in.InsuranceRate = -0.01 }, "insurance_rate", CodeOutOfRange},
		{"insurance at one", func(in *model.ProjectInputs) { in.InsuranceRate = 1 }, "insurance_rate", CodeOutOfRange},
		{"price escalation at minus one", func(in *model.ProjectInputs) { in.PriceEscalationRate = -1 }, "price_escalation_rate", CodeOutOfRange},
		{"negative opex escalation", func(in *model.ProjectInputs) { in.OpexEscalationRate = -0.01 }, "opex_escalation_rate", CodeNegative},
		{"negative capex", func(in *model.ProjectInputs) { in.CapexPerKW = -1 }, "capex_per_kw", CodeNegative},
		{"negative land cost", func(in *model.ProjectInputs) { in.LandCost = -1 }, "land_cost", CodeNegative},
		{"negative electricity price", func(in *model.ProjectInputs) { in.ElectricityPricePerMWh = -10 }, "electricity_price_per_mwh", CodeNegative},
		{"negative production override", func(in *model.ProjectInputs) { in.AnnualProductionMWhOverride = -1 }, "annual_production_mwh", CodeNegative},
		{"nan capex", func(in *model.ProjectInputs) { in.CapexPerKW = math.NaN() }, "capex_per_kw", CodeNotFinite},
		{"infinite price", func(in *model.ProjectInputs) { in.ElectricityPricePerMWh = math.Inf(1) }, "electricity_price_per_mwh", CodeNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.mutate(&in)

			violations := Inputs(in)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.field, violations[0].Field)
			assert.Equal(t, tt.code, violations[0].Code)
			assert.NotEmpty(t, violations[0].Message)
		})
	}
}

func TestInputsNegativePriceEscalationAllowed(t *testing.T) {
	in := validInputs()
	in.PriceEscalationRate = -0.05
	assert.Empty(t, Inputs(in))
}

func TestInputsMultipleViolationsSorted(t *testing.T) {
	in := validInputs()
	in.CapacityMW = 0
	in.DiscountRate = 0
	in.CapexPerKW = -1

	violations := Inputs(in)
	require.Len(t, violations, 3)
	assert.True(t, sort.SliceIsSorted(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	}))
}

func TestInputsNotFiniteShortCircuits(t *testing.T) {
	in := validInputs()
	in.CapacityMW = math.NaN()
	in.DiscountRate = 0 // would also be a violation, but finiteness wins

	violations := Inputs(in)
	require.Len(t, violations, 1)
	assert.Equal(t, CodeNotFinite, violations[0].Code)
}

func TestViolationError(t *testing.T) {
	v := Violation{Field: "capacity_mw", Code: CodeNonPositive, Message: "must be greater than 0, got 0"}
	assert.Equal(t, "capacity_mw: must be greater than 0, got 0", v.Error())
}
