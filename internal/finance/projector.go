package finance

import (
	"math"

	"tea-engine/internal/model"
)

// Project builds the nominal year-by-year cash-flow ledger:
//
//	year 0:    net = -total_capex
//	year t>=1: net = revenue_t - opex_t
//	  revenue_t = production * price * (1+price_escalation)^(t-1)
//	             + production * carbon_intensity * carbon_credit
//	  opex_t    = annual_opex * (1+opex_escalation)^(t-1)
//
// This series is the single source for NPV, IRR and payback; no other code
// applies escalation. Discounted columns use the project discount rate.
func Project(in model.ProjectInputs, b model.CostBreakdown) model.CashFlowSeries {
	n := in.ProjectLifetimeYears
	rows := make([]model.YearRow, 0, n+1)

	rows = append(rows, model.YearRow{
		Year:                    0,
		Net:                     -b.TotalCapex,
		CumulativeNet:           -b.TotalCapex,
		DiscountedNet:           -b.TotalCapex,
		CumulativeDiscountedNet: -b.TotalCapex,
	})

	carbonRevenue := b.AnnualProductionMWh * in.CarbonIntensityAvoided * in.CarbonCreditPerTon

	cum := -b.TotalCapex
	cumDisc := -b.TotalCapex
	for t := 1; t <= n; t++ {
		price := in.ElectricityPricePerMWh * math.Pow(1+in.PriceEscalationRate, float64(t-1))
		revenue := b.AnnualProductionMWh*price + carbonRevenue
		opex := b.AnnualOpex * math.Pow(1+in.OpexEscalationRate, float64(t-1))

		net := revenue - opex
		disc := net / math.Pow(1+in.DiscountRate, float64(t))
		cum += net
		cumDisc += disc

		rows = append(rows, model.YearRow{
			Year:                    t,
			ElectricityPricePerMWh:  price,
			Revenue:                 revenue,
			Opex:                    opex,
			Net:                     net,
			CumulativeNet:           cum,
			DiscountedNet:           disc,
			CumulativeDiscountedNet: cumDisc,
		})
	}

	return model.CashFlowSeries{Rows: rows}
}
