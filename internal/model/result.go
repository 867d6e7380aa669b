package model

// FinancialResult is the immutable output of one calculation. It is built
// once by the result assembler and never mutated afterwards; the breakdown
// and cash-flow series are the exact objects the headline metrics were
// computed from.
//
// IRR and the payback fields are pointers: nil means "no meaningful value"
// (IRR search found no sign change, or cumulative cash flow never recovers
// the investment within the project life).
type FinancialResult struct {
	LCOE float64  `json:"lcoe"`
	NPV  float64  `json:"npv"`
	IRR  *float64 `json:"irr"`

	SimplePaybackYears     *float64 `json:"simple_payback_years"`
	DiscountedPaybackYears *float64 `json:"discounted_payback_years"`

	TotalCapex float64 `json:"total_capex"`
	AnnualOpex float64 `json:"annual_opex"`

	AnnualProductionMWh   float64 `json:"annual_production_mwh"`
	LifetimeProductionMWh float64 `json:"lifetime_production_mwh"`
	AnnualRevenue         float64 `json:"annual_revenue"`
	LifetimeRevenueNPV    float64 `json:"lifetime_revenue_npv"`
	TotalLifetimeCost     float64 `json:"total_lifetime_cost"`

	CapexBreakdown CapexBreakdown `json:"capex_breakdown"`
	OpexBreakdown  OpexBreakdown  `json:"opex_breakdown"`

	CashFlowSeries []float64 `json:"cash_flow_series"`

	// Ledger is the per-year detail behind CashFlowSeries (CSV output,
	// payback interpolation). Omitted from compact API responses.
	Ledger []YearRow `json:"ledger,omitempty"`
}
