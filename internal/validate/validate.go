// Package validate checks a resolved parameter set for completeness and
// physical sanity before any computation runs. It reports every problem it
// finds as a field-level violation; it never partially accepts.
package validate

import (
	"fmt"
	"math"
	"sort"

	"tea-engine/internal/model"
)

// Violation codes. Stable strings, intended for API clients.
const (
	CodeNonPositive = "NON_POSITIVE"
	CodeNegative    = "NEGATIVE"
	CodeOutOfRange  = "OUT_OF_RANGE"
	CodeNotFinite   = "NOT_FINITE"
)

// Violation is one rejected field.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Inputs validates in and returns all violations found. An empty slice means
// the inputs are safe to hand to the engine.
func Inputs(in model.ProjectInputs) []Violation {
	var out []Violation

	add := func(field, code, format string, args ...any) {
		out = append(out, Violation{Field: field, Code: code, Message: fmt.Sprintf(format, args...)})
	}

	// Every float field must be finite before range rules mean anything.
	finite := true
	for field, v := range map[string]float64{
		"capacity_mw":               in.CapacityMW,
		"capacity_factor":           in.CapacityFactor,
		"annual_production_mwh":     in.AnnualProductionMWhOverride,
		"capex_per_kw":              in.CapexPerKW,
		"installation_factor":       in.InstallationFactor,
		"land_cost":                 in.LandCost,
		"grid_connection_cost":      in.GridConnectionCost,
		"opex_per_kw_year":          in.OpexPerKWYear,
		"fixed_opex_annual":         in.FixedOpexAnnual,
		"variable_opex_per_mwh":     in.VariableOpexPerMWh,
		"insurance_rate":            in.InsuranceRate,
		"discount_rate":             in.DiscountRate,
		"electricity_price_per_mwh": in.ElectricityPricePerMWh,
		"price_escalation_rate":     in.PriceEscalationRate,
		"opex_escalation_rate":      in.OpexEscalationRate,
		"carbon_credit_per_ton":     in.CarbonCreditPerTon,
		"carbon_intensity_avoided":  in.CarbonIntensityAvoided,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			add(field, CodeNotFinite, "must be a finite number")
			finite = false
		}
	}
	if !finite {
		sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
		return out
	}

	if in.CapacityMW <= 0 {
		add("capacity_mw", CodeNonPositive, "must be greater than 0, got %g", in.CapacityMW)
	}
	if in.CapacityFactor <= 0 || in.CapacityFactor > 1 {
		add("capacity_factor", CodeOutOfRange, "must be in (0, 1], got %g", in.CapacityFactor)
	}
	if in.DiscountRate <= 0 {
		add("discount_rate", CodeNonPositive, "must be greater than 0, got %g", in.DiscountRate)
	} else if in.DiscountRate >= 1 {
		add("discount_rate", CodeOutOfRange, "must be less than 1, got %g", in.DiscountRate)
	}
	if in.ProjectLifetimeYears < 1 {
		add("project_lifetime_years", CodeOutOfRange, "must be at least 1, got %d", in.ProjectLifetimeYears)
	}
	if in.InstallationFactor < 1 {
		add("installation_factor", CodeOutOfRange, "must be at least 1, got %g", in.InstallationFactor)
	}
	if in.InsuranceRate < 0 || in.InsuranceRate >= 1 {
		add("insurance_rate", CodeOutOfRange, "must be in [0, 1), got %g", in.InsuranceRate)
	}
	// Price escalation may be negative (declining prices), but the yearly
	// factor (1+rate) must stay positive.
	if in.PriceEscalationRate <= -1 {
		add("price_escalation_rate", CodeOutOfRange, "must be greater than -1, got %g", in.PriceEscalationRate)
	}
	if in.OpexEscalationRate < 0 {
		add("opex_escalation_rate", CodeNegative, "must not be negative, got %g", in.OpexEscalationRate)
	}

	for field, v := range map[string]float64{
		"annual_production_mwh":     in.AnnualProductionMWhOverride,
		"capex_per_kw":              in.CapexPerKW,
		"land_cost":                 in.LandCost,
		"grid_connection_cost":      in.GridConnectionCost,
		"opex_per_kw_year":          in.OpexPerKWYear,
		"fixed_opex_annual":         in.FixedOpexAnnual,
		"variable_opex_per_mwh":     in.VariableOpexPerMWh,
		"electricity_price_per_mwh": in.ElectricityPricePerMWh,
		"carbon_credit_per_ton":     in.CarbonCreditPerTon,
		"carbon_intensity_avoided":  in.CarbonIntensityAvoided,
	} {
		if v < 0 {
			add(field, CodeNegative, "must not be negative, got %g", v)
		}
	}

	// Map iteration is unordered; keep responses stable.
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
