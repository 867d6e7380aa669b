package models

import "tea-engine/internal/model"

// CalculateResponse is the full calculation result with a per-request id.
// The embedded FinancialResult fields sit at the top level of the JSON body.
type CalculateResponse struct {
	ID string `json:"id"`
	*model.FinancialResult
}

// QuickLCOEResponse is the minimal-input estimate.
type QuickLCOEResponse struct {
	LCOE                float64 `json:"lcoe"`
	TotalCapex          float64 `json:"total_capex"`
	AnnualProductionMWh float64 `json:"annual_production_mwh"`
	Unit                string  `json:"unit"`
}

// Summary is the compact per-scenario view used by comparisons.
type Summary struct {
	LCOE float64  `json:"lcoe"`
	NPV  float64  `json:"npv"`
	IRR  *float64 `json:"irr"`

	SimplePaybackYears     *float64 `json:"simple_payback_years"`
	DiscountedPaybackYears *float64 `json:"discounted_payback_years"`

	TotalCapex float64 `json:"total_capex"`
	AnnualOpex float64 `json:"annual_opex"`
}

// SummaryFromResult projects a FinancialResult down to its headline metrics.
func SummaryFromResult(r *model.FinancialResult) Summary {
	return Summary{
		LCOE:                   r.LCOE,
		NPV:                    r.NPV,
		IRR:                    r.IRR,
		SimplePaybackYears:     r.SimplePaybackYears,
		DiscountedPaybackYears: r.DiscountedPaybackYears,
		TotalCapex:             r.TotalCapex,
		AnnualOpex:             r.AnnualOpex,
	}
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name    string  `json:"name"`
	Summary Summary `json:"summary"`
}

// CompareResponse is the side-by-side comparison output.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// TechnologiesResponse lists the catalog.
type TechnologiesResponse struct {
	Technologies []model.TechnologyProfile `json:"technologies"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information. Field is set for single-field
// input errors; Details carries the full violation list for validation
// failures.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}
