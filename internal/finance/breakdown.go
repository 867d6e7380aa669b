package finance

import "tea-engine/internal/model"

// Compose decomposes total CAPEX and annual OPEX into labeled components.
// This is the only place these numbers are computed; the engine and the
// cash-flow projector consume the result instead of recomputing, so the
// components always sum to the totals used everywhere else.
func Compose(in model.ProjectInputs) model.CostBreakdown {
	capacityKW := in.CapacityMW * 1000
	production := in.AnnualProductionMWh()

	equipment := capacityKW * in.CapexPerKW
	capex := model.CapexBreakdown{
		Equipment:      equipment,
		Installation:   equipment * (in.InstallationFactor - 1),
		Land:           in.LandCost,
		GridConnection: in.GridConnectionCost,
	}
	totalCapex := capex.Total()

	opex := model.OpexBreakdown{
		CapacityBased: capacityKW * in.OpexPerKWYear,
		Fixed:         in.FixedOpexAnnual,
		Variable:      production * in.VariableOpexPerMWh,
		Insurance:     totalCapex * in.InsuranceRate,
	}

	return model.CostBreakdown{
		Capex:               capex,
		Opex:                opex,
		TotalCapex:          totalCapex,
		AnnualOpex:          opex.Total(),
		AnnualProductionMWh: production,
	}
}
