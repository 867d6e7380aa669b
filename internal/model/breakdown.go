package model

// CapexBreakdown decomposes the upfront investment. The total used everywhere
// else is the sum of these four components, never recomputed elsewhere.
type CapexBreakdown struct {
	Equipment      float64 `json:"equipment"`
	Installation   float64 `json:"installation"`
	Land           float64 `json:"land"`
	GridConnection float64 `json:"grid_connection"`
}

func (b CapexBreakdown) Total() float64 {
	return b.Equipment + b.Installation + b.Land + b.GridConnection
}

// OpexBreakdown decomposes the year-1 operating cost (before escalation).
type OpexBreakdown struct {
	CapacityBased float64 `json:"capacity_based"`
	Fixed         float64 `json:"fixed"`
	Variable      float64 `json:"variable"`
	Insurance     float64 `json:"insurance"`
}

func (b OpexBreakdown) Total() float64 {
	return b.CapacityBased + b.Fixed + b.Variable + b.Insurance
}

// CostBreakdown bundles both breakdowns with the totals and production they
// were computed from. TotalCapex and AnnualOpex are always the component sums.
type CostBreakdown struct {
	Capex CapexBreakdown `json:"capex_breakdown"`
	Opex  OpexBreakdown  `json:"opex_breakdown"`

	TotalCapex          float64 `json:"total_capex"`
	AnnualOpex          float64 `json:"annual_opex"`
	AnnualProductionMWh float64 `json:"annual_production_mwh"`
}
