package catalog

import "tea-engine/internal/model"

// Defaults holds the financial assumptions applied when the caller does not
// override them. The OPEX escalation is deliberately an ordinary, visible
// default here: the displayed cash-flow series and the NPV/IRR/payback inputs
// all read the same resolved value.
type Defaults struct {
	InstallationFactor     float64
	InsuranceRate          float64
	ProjectLifetimeYears   int
	DiscountRate           float64
	ElectricityPricePerMWh float64
	PriceEscalationRate    float64
	OpexEscalationRate     float64
}

// DefaultAssumptions returns the standard assumption set.
func DefaultAssumptions() Defaults {
	return Defaults{
		InstallationFactor:     1.2,
		InsuranceRate:          0.01,
		ProjectLifetimeYears:   25,
		DiscountRate:           0.08,
		ElectricityPricePerMWh: 50,
		PriceEscalationRate:    0.02,
		OpexEscalationRate:     0.02,
	}
}

// Resolve merges, in precedence order: default assumptions, the technology
// profile for technologyID (skipped when empty), then the caller's overrides.
// The result is a fully concrete ProjectInputs ready for validation.
func (c *Catalog) Resolve(technologyID string, overrides model.InputOverrides) (model.ProjectInputs, error) {
	d := DefaultAssumptions()
	base := model.ProjectInputs{
		TechnologyID:           technologyID,
		InstallationFactor:     d.InstallationFactor,
		InsuranceRate:          d.InsuranceRate,
		ProjectLifetimeYears:   d.ProjectLifetimeYears,
		DiscountRate:           d.DiscountRate,
		ElectricityPricePerMWh: d.ElectricityPricePerMWh,
		PriceEscalationRate:    d.PriceEscalationRate,
		OpexEscalationRate:     d.OpexEscalationRate,
	}

	if technologyID != "" {
		profile, err := c.Get(technologyID)
		if err != nil {
			return model.ProjectInputs{}, err
		}
		base.CapexPerKW = profile.CapexPerKW
		base.OpexPerKWYear = profile.OpexPerKWYear
		base.CapacityFactor = profile.CapacityFactor
		base.ProjectLifetimeYears = profile.LifetimeYears
	}

	return overrides.ApplyTo(base), nil
}
