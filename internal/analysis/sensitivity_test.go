package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tea-engine/internal/finance"
	"tea-engine/internal/model"
)

func baseInputs() model.ProjectInputs {
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

func TestSensitivityCapexMonotonic(t *testing.T) {
	engine := finance.New()
	variations := []float64{-20, -10, 0, 10, 20}

	res, err := Sensitivity(engine, baseInputs(), "capex_per_kw", variations)
	require.NoError(t, err)

	assert.Equal(t, "capex_per_kw", res.Parameter)
	assert.InDelta(t, 1000, res.BaseValue, 1e-9)
	require.Len(t, res.Points, len(variations))

	for i, p := range res.Points {
		assert.Equal(t, variations[i], p.VariationPct)
		assert.InDelta(t, 1000*(1+variations[i]/100), p.ParameterValue, 1e-9)
	}

	// More capex means higher LCOE and lower NPV.
	for i := 1; i < len(res.Points); i++ {
		assert.Greater(t, res.Points[i].LCOE, res.Points[i-1].LCOE)
		assert.Less(t, res.Points[i].NPV, res.Points[i-1].NPV)
	}

	assert.Greater(t, res.LCOESpread, 0.0)
	assert.Greater(t, res.NPVStdDev, 0.0)
}

func TestSensitivityZeroVariationMatchesBase(t *testing.T) {
	engine := finance.New()
	in := baseInputs()

	baseResult, err := engine.Calculate(in)
	require.NoError(t, err)

	res, err := Sensitivity(engine, in, "electricity_price_per_mwh", []float64{0})
	require.NoError(t, err)
	require.Len(t, res.Points, 1)
	assert.InDelta(t, baseResult.LCOE, res.Points[0].LCOE, 1e-9)
	assert.InDelta(t, baseResult.NPV, res.Points[0].NPV, 1e-6)
	assert.Zero(t, res.NPVStdDev)
}

func TestSensitivityUnsupportedParameter(t *testing.T) {
	engine := finance.New()
	_, err := Sensitivity(engine, baseInputs(), "moon_phase", []float64{-10, 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moon_phase")
	assert.Contains(t, err.Error(), "capex_per_kw")
}

func TestSensitivityNoVariations(t *testing.T) {
	engine := finance.New()
	_, err := Sensitivity(engine, baseInputs(), "capex_per_kw", nil)
	require.Error(t, err)
}

func TestSensitivityPropagatesEngineError(t *testing.T) {
	engine := finance.New()
	// A -100% variation on capacity factor gives zero production.
	_, err := Sensitivity(engine, baseInputs(), "capacity_factor", []float64{-100})
	require.Error(t, err)

	var engineErr *finance.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, finance.KindZeroProduction, engineErr.Kind)
}

func TestSupportedParameters(t *testing.T) {
	params := SupportedParameters()
	assert.Contains(t, params, "capex_per_kw")
	assert.Contains(t, params, "discount_rate")
	assert.Contains(t, params, "electricity_price_per_mwh")
	assert.IsNonDecreasing(t, params)
}
