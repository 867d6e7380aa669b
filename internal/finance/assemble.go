package finance

import (
	"math"

	"tea-engine/internal/model"
)

// assemble packages the metrics, breakdown and cash flows into one result.
// Pure aggregation plus the derived lifetime figures; the breakdown and
// series are the exact objects the headline metrics were computed from, so
// the result cannot be internally inconsistent.
func assemble(
	in model.ProjectInputs,
	b model.CostBreakdown,
	series model.CashFlowSeries,
	lcoe, npv float64,
	irr, simplePayback, discountedPayback *float64,
) *model.FinancialResult {
	var annualRevenue, lifetimeRevenueNPV, discountedOpex float64
	for _, r := range series.Rows[1:] {
		df := math.Pow(1+in.DiscountRate, float64(r.Year))
		lifetimeRevenueNPV += r.Revenue / df
		discountedOpex += r.Opex / df
	}
	if len(series.Rows) > 1 {
		annualRevenue = series.Rows[1].Revenue
	}

	return &model.FinancialResult{
		LCOE: lcoe,
		NPV:  npv,
		IRR:  irr,

		SimplePaybackYears:     simplePayback,
		DiscountedPaybackYears: discountedPayback,

		TotalCapex: b.TotalCapex,
		AnnualOpex: b.AnnualOpex,

		AnnualProductionMWh:   b.AnnualProductionMWh,
		LifetimeProductionMWh: b.AnnualProductionMWh * float64(in.ProjectLifetimeYears),
		AnnualRevenue:         annualRevenue,
		LifetimeRevenueNPV:    lifetimeRevenueNPV,
		TotalLifetimeCost:     b.TotalCapex + discountedOpex,

		CapexBreakdown: b.Capex,
		OpexBreakdown:  b.Opex,

		CashFlowSeries: series.Nominal(),
		Ledger:         series.Rows,
	}
}
