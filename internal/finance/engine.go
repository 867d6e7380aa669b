package finance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"tea-engine/internal/model"
)

// Engine computes the core financial metrics for one project. It is a
// deterministic function of its inputs: no I/O, no shared mutable state, so
// any number of calculations may run concurrently.
type Engine struct{}

func New() *Engine { return &Engine{} }

// CapitalRecoveryFactor is the annuity factor r(1+r)^n / ((1+r)^n - 1).
// Undefined for non-positive rates.
func CapitalRecoveryFactor(r float64, n int) (float64, error) {
	if r <= 0 {
		return 0, &EngineError{
			Kind:   KindCrfUndefined,
			Detail: fmt.Sprintf("discount rate must be > 0, got %g", r),
		}
	}
	if n < 1 {
		return 0, &EngineError{
			Kind:   KindCrfUndefined,
			Detail: fmt.Sprintf("lifetime must be at least 1 year, got %d", n),
		}
	}
	f := math.Pow(1+r, float64(n))
	return r * f / (f - 1), nil
}

// NPV discounts flows at rate r. flows[0] is year 0 and is not discounted;
// the year-0 entry already carries -total_capex, so this is the complete NPV
// with no separate investment term.
func NPV(flows []float64, r float64) float64 {
	disc := make([]float64, len(flows))
	for t, cf := range flows {
		disc[t] = cf / math.Pow(1+r, float64(t))
	}
	return floats.Sum(disc)
}

// Calculate runs the full computation: cost breakdown, cash-flow projection,
// LCOE, NPV, IRR and both payback periods, assembled into one immutable
// result.
//
// Inputs are expected to have passed validation; the division-by-zero and
// CRF guards remain as defense in depth. IRR and payback can be legitimately
// absent (cash flows that never recover the investment) and come back as nil
// fields rather than errors, since the rest of the result is still meaningful.
func (e *Engine) Calculate(in model.ProjectInputs) (*model.FinancialResult, error) {
	b := Compose(in)
	if b.AnnualProductionMWh <= 0 {
		return nil, &EngineError{
			Kind:   KindZeroProduction,
			Detail: "annual production is zero; check capacity_mw and capacity_factor",
		}
	}

	crf, err := CapitalRecoveryFactor(in.DiscountRate, in.ProjectLifetimeYears)
	if err != nil {
		return nil, err
	}
	lcoe := (b.TotalCapex*crf + b.AnnualOpex) / b.AnnualProductionMWh

	series := Project(in, b)
	npv := floats.Sum(series.Discounted())

	var irrPtr *float64
	if irr, irrErr := IRR(series.Nominal()); irrErr == nil {
		irrPtr = &irr
	}

	simple := payback(series, false)
	discounted := payback(series, true)

	return assemble(in, b, series, lcoe, npv, irrPtr, simple, discounted), nil
}

// payback returns the fractional year at which the cumulative (optionally
// discounted) cash flow first turns non-negative, or nil if it never does
// within the project life.
func payback(s model.CashFlowSeries, discounted bool) *float64 {
	cum := func(r model.YearRow) float64 {
		if discounted {
			return r.CumulativeDiscountedNet
		}
		return r.CumulativeNet
	}
	flow := func(r model.YearRow) float64 {
		if discounted {
			return r.DiscountedNet
		}
		return r.Net
	}

	for i, r := range s.Rows {
		if cum(r) >= 0 {
			y := float64(r.Year)
			if i > 0 && flow(r) > 0 {
				// Interpolate within the crossing year.
				prev := cum(s.Rows[i-1])
				y = float64(r.Year-1) + (-prev)/flow(r)
			}
			return &y
		}
	}
	return nil
}
