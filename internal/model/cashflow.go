package model

// YearRow is one year of the projected cash-flow ledger. Year 0 carries the
// investment (Net = -TotalCapex, no revenue or opex); years 1..N carry the
// escalated operating flows. Discounted columns use the project discount rate.
type YearRow struct {
	Year int `json:"year"`

	ElectricityPricePerMWh float64 `json:"electricity_price_per_mwh"`
	Revenue                float64 `json:"revenue"`
	Opex                   float64 `json:"opex"`

	Net           float64 `json:"net"`
	CumulativeNet float64 `json:"cumulative_net"`

	DiscountedNet           float64 `json:"discounted_net"`
	CumulativeDiscountedNet float64 `json:"cumulative_discounted_net"`
}

// CashFlowSeries is the single source of truth for NPV, IRR and payback.
// Rows has length lifetime+1 (year 0 included).
type CashFlowSeries struct {
	Rows []YearRow `json:"rows"`
}

// Nominal returns the plain yearly net flows, year 0 first.
func (s CashFlowSeries) Nominal() []float64 {
	out := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Net
	}
	return out
}

// Discounted returns the present-valued yearly net flows, year 0 first.
func (s CashFlowSeries) Discounted() []float64 {
	out := make([]float64, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.DiscountedNet
	}
	return out
}
