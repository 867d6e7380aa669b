package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tea-engine/internal/model"
)

func TestLoadPresets(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	list := c.List()
	require.NotEmpty(t, list)
	assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool { return list[i].ID < list[j].ID }))

	for _, p := range list {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Label, "technology %s", p.ID)
		assert.Greater(t, p.CapexPerKW, 0.0, "technology %s", p.ID)
		assert.Greater(t, p.OpexPerKWYear, 0.0, "technology %s", p.ID)
		assert.Greater(t, p.CapacityFactor, 0.0, "technology %s", p.ID)
		assert.LessOrEqual(t, p.CapacityFactor, 1.0, "technology %s", p.ID)
		assert.GreaterOrEqual(t, p.LifetimeYears, 1, "technology %s", p.ID)
	}
}

func TestGetKnownAndUnknown(t *testing.T) {
	c := MustLoad()

	solar, err := c.Get("solar")
	require.NoError(t, err)
	assert.InDelta(t, 1000, solar.CapexPerKW, 1e-9)
	assert.InDelta(t, 0.25, solar.CapacityFactor, 1e-9)
	assert.Equal(t, 30, solar.LifetimeYears)

	_, err = c.Get("cold_fusion")
	var unknown *UnknownTechnologyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "cold_fusion", unknown.ID)
	assert.Contains(t, unknown.Error(), "cold_fusion")
}

func TestResolvePrecedence(t *testing.T) {
	c := MustLoad()

	capacity := 100.0
	capex := 850.0
	in, err := c.Resolve("solar", model.InputOverrides{
		CapacityMW: &capacity,
		CapexPerKW: &capex,
	})
	require.NoError(t, err)

	// Override beats profile, profile beats defaults.
	assert.InDelta(t, 850, in.CapexPerKW, 1e-9)
	assert.InDelta(t, 15, in.OpexPerKWYear, 1e-9)
	assert.Equal(t, 30, in.ProjectLifetimeYears)
	assert.InDelta(t, 0.25, in.CapacityFactor, 1e-9)

	// Default assumptions survive untouched.
	d := DefaultAssumptions()
	assert.InDelta(t, d.DiscountRate, in.DiscountRate, 1e-9)
	assert.InDelta(t, d.ElectricityPricePerMWh, in.ElectricityPricePerMWh, 1e-9)
	assert.InDelta(t, d.InstallationFactor, in.InstallationFactor, 1e-9)
}

func TestResolveExplicitZeroOverride(t *testing.T) {
	c := MustLoad()

	zero := 0.0
	in, err := c.Resolve("wind_onshore", model.InputOverrides{
		PriceEscalationRate: &zero,
	})
	require.NoError(t, err)

	// A deliberate zero must win over the non-zero default.
	assert.Zero(t, in.PriceEscalationRate)
	assert.InDelta(t, DefaultAssumptions().OpexEscalationRate, in.OpexEscalationRate, 1e-9)
}

func TestResolveWithoutTechnology(t *testing.T) {
	c := MustLoad()

	capacity := 10.0
	cf := 0.5
	capex := 1200.0
	in, err := c.Resolve("", model.InputOverrides{
		CapacityMW:     &capacity,
		CapacityFactor: &cf,
		CapexPerKW:     &capex,
	})
	require.NoError(t, err)
	assert.Empty(t, in.TechnologyID)
	assert.InDelta(t, 1200, in.CapexPerKW, 1e-9)
	assert.Equal(t, DefaultAssumptions().ProjectLifetimeYears, in.ProjectLifetimeYears)
}

func TestResolveUnknownTechnology(t *testing.T) {
	c := MustLoad()
	_, err := c.Resolve("perpetual_motion", model.InputOverrides{})
	var unknown *UnknownTechnologyError
	require.ErrorAs(t, err, &unknown)
}
