package model

// HoursPerYear is the number of hours in a (non-leap) year, used to derive
// annual production from capacity and capacity factor.
const HoursPerYear = 8760

// ProjectInputs is the fully resolved parameter set for one calculation.
// Units:
// - CapacityMW: MW
// - CapexPerKW: $/kW installed
// - OpexPerKWYear: $/kW-yr
// - ElectricityPricePerMWh, VariableOpexPerMWh: $/MWh
// - Rates (discount, escalation, insurance): fractions, not percent
//
// Every field is concrete; optional inputs are resolved against technology
// defaults before this struct exists (see catalog.Resolve).
type ProjectInputs struct {
	ProjectName  string `json:"project_name,omitempty" yaml:"project_name,omitempty"`
	TechnologyID string `json:"technology_id,omitempty" yaml:"technology_id,omitempty"`

	// Capacity and production.
	CapacityMW     float64 `json:"capacity_mw" yaml:"capacity_mw"`
	CapacityFactor float64 `json:"capacity_factor" yaml:"capacity_factor"`
	// AnnualProductionMWhOverride, when > 0, replaces the derived production.
	AnnualProductionMWhOverride float64 `json:"annual_production_mwh,omitempty" yaml:"annual_production_mwh,omitempty"`

	// Capital costs.
	CapexPerKW         float64 `json:"capex_per_kw" yaml:"capex_per_kw"`
	InstallationFactor float64 `json:"installation_factor" yaml:"installation_factor"`
	LandCost           float64 `json:"land_cost" yaml:"land_cost"`
	GridConnectionCost float64 `json:"grid_connection_cost" yaml:"grid_connection_cost"`

	// Operating costs.
	OpexPerKWYear      float64 `json:"opex_per_kw_year" yaml:"opex_per_kw_year"`
	FixedOpexAnnual    float64 `json:"fixed_opex_annual" yaml:"fixed_opex_annual"`
	VariableOpexPerMWh float64 `json:"variable_opex_per_mwh" yaml:"variable_opex_per_mwh"`
	InsuranceRate      float64 `json:"insurance_rate" yaml:"insurance_rate"`

	// Financial assumptions.
	ProjectLifetimeYears int     `json:"project_lifetime_years" yaml:"project_lifetime_years"`
	DiscountRate         float64 `json:"discount_rate" yaml:"discount_rate"`

	// Revenue assumptions.
	ElectricityPricePerMWh float64 `json:"electricity_price_per_mwh" yaml:"electricity_price_per_mwh"`
	PriceEscalationRate    float64 `json:"price_escalation_rate" yaml:"price_escalation_rate"`
	OpexEscalationRate     float64 `json:"opex_escalation_rate" yaml:"opex_escalation_rate"`
	CarbonCreditPerTon     float64 `json:"carbon_credit_per_ton" yaml:"carbon_credit_per_ton"`
	CarbonIntensityAvoided float64 `json:"carbon_intensity_avoided" yaml:"carbon_intensity_avoided"`
}

// AnnualProductionMWh returns the production used by every downstream
// formula: the explicit override when set, otherwise
// capacity_mw * capacity_factor * 8760.
func (in ProjectInputs) AnnualProductionMWh() float64 {
	if in.AnnualProductionMWhOverride > 0 {
		return in.AnnualProductionMWhOverride
	}
	return in.CapacityMW * in.CapacityFactor * HoursPerYear
}

// InputOverrides is the caller-facing partial parameter set. Nil fields fall
// back to the technology profile and the default assumptions; a non-nil
// pointer always wins, including explicit zeros (e.g. price_escalation_rate: 0).
type InputOverrides struct {
	ProjectName string `json:"project_name,omitempty" yaml:"project_name,omitempty"`

	CapacityMW                  *float64 `json:"capacity_mw,omitempty" yaml:"capacity_mw,omitempty"`
	CapacityFactor              *float64 `json:"capacity_factor,omitempty" yaml:"capacity_factor,omitempty"`
	AnnualProductionMWhOverride *float64 `json:"annual_production_mwh,omitempty" yaml:"annual_production_mwh,omitempty"`

	CapexPerKW         *float64 `json:"capex_per_kw,omitempty" yaml:"capex_per_kw,omitempty"`
	InstallationFactor *float64 `json:"installation_factor,omitempty" yaml:"installation_factor,omitempty"`
	LandCost           *float64 `json:"land_cost,omitempty" yaml:"land_cost,omitempty"`
	GridConnectionCost *float64 `json:"grid_connection_cost,omitempty" yaml:"grid_connection_cost,omitempty"`

	OpexPerKWYear      *float64 `json:"opex_per_kw_year,omitempty" yaml:"opex_per_kw_year,omitempty"`
	FixedOpexAnnual    *float64 `json:"fixed_opex_annual,omitempty" yaml:"fixed_opex_annual,omitempty"`
	VariableOpexPerMWh *float64 `json:"variable_opex_per_mwh,omitempty" yaml:"variable_opex_per_mwh,omitempty"`
	InsuranceRate      *float64 `json:"insurance_rate,omitempty" yaml:"insurance_rate,omitempty"`

	ProjectLifetimeYears *int     `json:"project_lifetime_years,omitempty" yaml:"project_lifetime_years,omitempty"`
	DiscountRate         *float64 `json:"discount_rate,omitempty" yaml:"discount_rate,omitempty"`

	ElectricityPricePerMWh *float64 `json:"electricity_price_per_mwh,omitempty" yaml:"electricity_price_per_mwh,omitempty"`
	PriceEscalationRate    *float64 `json:"price_escalation_rate,omitempty" yaml:"price_escalation_rate,omitempty"`
	OpexEscalationRate     *float64 `json:"opex_escalation_rate,omitempty" yaml:"opex_escalation_rate,omitempty"`
	CarbonCreditPerTon     *float64 `json:"carbon_credit_per_ton,omitempty" yaml:"carbon_credit_per_ton,omitempty"`
	CarbonIntensityAvoided *float64 `json:"carbon_intensity_avoided,omitempty" yaml:"carbon_intensity_avoided,omitempty"`
}

// ApplyTo overlays the non-nil fields onto base and returns the result.
func (o InputOverrides) ApplyTo(base ProjectInputs) ProjectInputs {
	out := base
	if o.ProjectName != "" {
		out.ProjectName = o.ProjectName
	}
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&out.CapacityMW, o.CapacityMW)
	setF(&out.CapacityFactor, o.CapacityFactor)
	setF(&out.AnnualProductionMWhOverride, o.AnnualProductionMWhOverride)
	setF(&out.CapexPerKW, o.CapexPerKW)
	setF(&out.InstallationFactor, o.InstallationFactor)
	setF(&out.LandCost, o.LandCost)
	setF(&out.GridConnectionCost, o.GridConnectionCost)
	setF(&out.OpexPerKWYear, o.OpexPerKWYear)
	setF(&out.FixedOpexAnnual, o.FixedOpexAnnual)
	setF(&out.VariableOpexPerMWh, o.VariableOpexPerMWh)
	setF(&out.InsuranceRate, o.InsuranceRate)
	if o.ProjectLifetimeYears != nil {
		out.ProjectLifetimeYears = *o.ProjectLifetimeYears
	}
	setF(&out.DiscountRate, o.DiscountRate)
	setF(&out.ElectricityPricePerMWh, o.ElectricityPricePerMWh)
	setF(&out.PriceEscalationRate, o.PriceEscalationRate)
	setF(&out.OpexEscalationRate, o.OpexEscalationRate)
	setF(&out.CarbonCreditPerTon, o.CarbonCreditPerTon)
	setF(&out.CarbonIntensityAvoided, o.CarbonIntensityAvoided)
	return out
}
