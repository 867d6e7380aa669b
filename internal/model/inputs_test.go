package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualProductionMWh(t *testing.T) {
	in := ProjectInputs{CapacityMW: 100, CapacityFactor: 0.25}
	assert.InDelta(t, 219_000, in.AnnualProductionMWh(), 1e-9)

	in.AnnualProductionMWhOverride = 200_000
	assert.InDelta(t, 200_000, in.AnnualProductionMWh(), 1e-9)
}

func TestApplyToOverlaysOnlySetFields(t *testing.T) {
	base := ProjectInputs{
		ProjectName:            "Base",
		CapacityMW:             100,
		CapacityFactor:         0.25,
		CapexPerKW:             1000,
		DiscountRate:           0.08,
		ProjectLifetimeYears:   25,
		ElectricityPricePerMWh: 50,
		PriceEscalationRate:    0.02,
	}

	capex := 850.0
	life := 30
	zero := 0.0
	out := InputOverrides{
		CapexPerKW:           &capex,
		ProjectLifetimeYears: &life,
		PriceEscalationRate:  &zero,
	}.ApplyTo(base)

	assert.InDelta(t, 850, out.CapexPerKW, 1e-9)
	assert.Equal(t, 30, out.ProjectLifetimeYears)
	assert.Zero(t, out.PriceEscalationRate)

	// Untouched fields carry through.
	assert.Equal(t, "Base", out.ProjectName)
	assert.InDelta(t, 100, out.CapacityMW, 1e-9)
	assert.InDelta(t, 0.08, out.DiscountRate, 1e-9)

	// The base itself is never mutated.
	assert.InDelta(t, 1000, base.CapexPerKW, 1e-9)
	assert.Equal(t, 25, base.ProjectLifetimeYears)
}

func TestApplyToProjectName(t *testing.T) {
	base := ProjectInputs{ProjectName: "Base"}
	out := InputOverrides{ProjectName: "Override"}.ApplyTo(base)
	assert.Equal(t, "Override", out.ProjectName)

	out = InputOverrides{}.ApplyTo(base)
	assert.Equal(t, "Base", out.ProjectName)
}
