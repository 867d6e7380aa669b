package models

import "tea-engine/internal/model"

// CalculateRequest is the body for POST /api/v1/tea/calculate. The embedded
// overrides are the ProjectInputs fields; any field left out falls back to
// the technology preset (when technology_id is set) and then to the default
// assumptions.
type CalculateRequest struct {
	TechnologyID string `json:"technology_id,omitempty"`
	model.InputOverrides
	Options AnalysisOptions `json:"options,omitempty"`
}

// AnalysisOptions carries only the options this engine actually implements.
// Additional analyses (Monte Carlo, tornado plots) belong in components that
// call the engine repeatedly, not in flags smuggled past it.
type AnalysisOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"`
}

// QuickLCOERequest is the minimal-input body for POST /api/v1/tea/quick-lcoe.
type QuickLCOERequest struct {
	CapacityMW    float64 `json:"capacity_mw" binding:"required"`
	CapexPerKW    float64 `json:"capex_per_kw" binding:"required"`
	OpexPerKWYear float64 `json:"opex_per_kw_year"`

	CapacityFactor       *float64 `json:"capacity_factor,omitempty"`
	ProjectLifetimeYears *int     `json:"project_lifetime_years,omitempty"`
	DiscountRate         *float64 `json:"discount_rate,omitempty"`
}

// CompareRequest runs several named variations against one base scenario.
type CompareRequest struct {
	Base       CalculateRequest `json:"base" binding:"required"`
	Variations []Variation      `json:"variations" binding:"required"`
}

// Variation overlays extra overrides on the resolved base inputs.
type Variation struct {
	Name      string               `json:"name" binding:"required"`
	Overrides model.InputOverrides `json:"overrides"`
}

// SensitivityRequest varies one parameter of a scenario by a list of
// percentage variations.
type SensitivityRequest struct {
	TechnologyID string `json:"technology_id,omitempty"`
	model.InputOverrides
	Parameter     string    `json:"parameter" binding:"required"`
	VariationsPct []float64 `json:"variations_pct" binding:"required"`
}
