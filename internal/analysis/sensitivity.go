// Package analysis layers parameter studies on top of the deterministic
// engine: it calls finance.Engine once per perturbed input set and never
// reaches into the engine's internals.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"tea-engine/internal/finance"
	"tea-engine/internal/model"
)

// SensitivityPoint is the outcome of one perturbed run.
type SensitivityPoint struct {
	VariationPct   float64 `json:"variation_pct"`
	ParameterValue float64 `json:"parameter_value"`
	LCOE           float64 `json:"lcoe"`
	NPV            float64 `json:"npv"`
}

// SensitivityResult summarizes how LCOE and NPV respond to varying one
// parameter around its base value.
type SensitivityResult struct {
	Parameter string             `json:"parameter"`
	BaseValue float64            `json:"base_value"`
	Points    []SensitivityPoint `json:"points"`

	LCOESpread float64 `json:"lcoe_spread"`
	NPVMean    float64 `json:"npv_mean"`
	NPVStdDev  float64 `json:"npv_std_dev"`
}

type paramAccess struct {
	get func(model.ProjectInputs) float64
	set func(*model.ProjectInputs, float64)
}

var sensitivityParams = map[string]paramAccess{
	"capex_per_kw": {
		get: func(in model.ProjectInputs) float64 { return in.CapexPerKW },
		set: func(in *model.ProjectInputs, v float64) { in.CapexPerKW = v },
	},
	"opex_per_kw_year": {
		get: func(in model.ProjectInputs) float64 { return in.OpexPerKWYear },
		set: func(in *model.ProjectInputs, v float64) { in.OpexPerKWYear = v },
	},
	"capacity_factor": {
		get: func(in model.ProjectInputs) float64 { return in.CapacityFactor },
		set: func(in *model.ProjectInputs, v float64) { in.CapacityFactor = v },
	},
	"electricity_price_per_mwh": {
		get: func(in model.ProjectInputs) float64 { return in.ElectricityPricePerMWh },
		set: func(in *model.ProjectInputs, v float64) { in.ElectricityPricePerMWh = v },
	},
	"discount_rate": {
		get: func(in model.ProjectInputs) float64 { return in.DiscountRate },
		set: func(in *model.ProjectInputs, v float64) { in.DiscountRate = v },
	},
	"variable_opex_per_mwh": {
		get: func(in model.ProjectInputs) float64 { return in.VariableOpexPerMWh },
		set: func(in *model.ProjectInputs, v float64) { in.VariableOpexPerMWh = v },
	},
	"fixed_opex_annual": {
		get: func(in model.ProjectInputs) float64 { return in.FixedOpexAnnual },
		set: func(in *model.ProjectInputs, v float64) { in.FixedOpexAnnual = v },
	},
}

// SupportedParameters lists the parameter names Sensitivity accepts, sorted.
func SupportedParameters() []string {
	out := make([]string, 0, len(sensitivityParams))
	for name := range sensitivityParams {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Sensitivity varies one parameter of base by each percentage in
// variationsPct (e.g. [-20, -10, 0, 10, 20]) and runs the engine for each.
func Sensitivity(engine *finance.Engine, base model.ProjectInputs, parameter string, variationsPct []float64) (*SensitivityResult, error) {
	access, ok := sensitivityParams[parameter]
	if !ok {
		return nil, fmt.Errorf("unsupported sensitivity parameter %q (supported: %s)",
			parameter, strings.Join(SupportedParameters(), ", "))
	}
	if len(variationsPct) == 0 {
		return nil, fmt.Errorf("no variations given")
	}

	baseValue := access.get(base)
	result := &SensitivityResult{
		Parameter: parameter,
		BaseValue: baseValue,
		Points:    make([]SensitivityPoint, 0, len(variationsPct)),
	}

	lcoes := make([]float64, 0, len(variationsPct))
	npvs := make([]float64, 0, len(variationsPct))
	for _, pct := range variationsPct {
		perturbed := base
		value := baseValue * (1 + pct/100)
		access.set(&perturbed, value)

		res, err := engine.Calculate(perturbed)
		if err != nil {
			return nil, fmt.Errorf("variation %+g%%: %w", pct, err)
		}

		result.Points = append(result.Points, SensitivityPoint{
			VariationPct:   pct,
			ParameterValue: value,
			LCOE:           res.LCOE,
			NPV:            res.NPV,
		})
		lcoes = append(lcoes, res.LCOE)
		npvs = append(npvs, res.NPV)
	}

	minLCOE, maxLCOE := lcoes[0], lcoes[0]
	for _, v := range lcoes[1:] {
		if v < minLCOE {
			minLCOE = v
		}
		if v > maxLCOE {
			maxLCOE = v
		}
	}
	result.LCOESpread = maxLCOE - minLCOE
	result.NPVMean = stat.Mean(npvs, nil)
	if len(npvs) > 1 {
		result.NPVStdDev = stat.StdDev(npvs, nil)
	}

	return result, nil
}
