package finance

import (
	"fmt"
	"math"
)

// IRR search bounds and controls. The bracket is wide enough for any
// realistic project (-99% to +1000% annual return); the iteration cap is the
// only timeout-like control in the engine.
const (
	irrSearchLow    = -0.99
	irrSearchHigh   = 10.0
	irrScanSteps    = 1099 // ~0.01 rate resolution across the bracket
	irrMaxIter      = 200
	irrNPVTolerance = 1e-6
)

// IRR finds the rate where NPV(flows) crosses zero: a coarse scan over the
// search bracket locates a sign change, then bisection refines it. Returns an
// *EngineError with KindIrrNotFound when the bracket contains no sign change
// (e.g. cash flows never turn positive); there is no meaningful rate to
// report in that case.
func IRR(flows []float64) (float64, error) {
	if len(flows) < 2 {
		return 0, &EngineError{
			Kind:   KindIrrNotFound,
			Detail: "need at least two cash-flow periods",
		}
	}

	// NPV tolerance scales with the magnitude of the flows, so the same
	// convergence criterion works for $1k and $1B projects.
	scale := 0.0
	for _, cf := range flows {
		if a := math.Abs(cf); a > scale {
			scale = a
		}
	}
	if scale == 0 {
		return 0, &EngineError{Kind: KindIrrNotFound, Detail: "all cash flows are zero"}
	}
	tol := irrNPVTolerance * scale

	step := (irrSearchHigh - irrSearchLow) / float64(irrScanSteps)
	lo, fLo := irrSearchLow, NPV(flows, irrSearchLow)
	if math.Abs(fLo) <= tol {
		return lo, nil
	}

	for i := 1; i <= irrScanSteps; i++ {
		hi := irrSearchLow + float64(i)*step
		fHi := NPV(flows, hi)
		if math.Abs(fHi) <= tol {
			return hi, nil
		}
		if fLo*fHi < 0 {
			return bisectIRR(flows, lo, hi, fLo, tol), nil
		}
		lo, fLo = hi, fHi
	}

	return 0, &EngineError{
		Kind:   KindIrrNotFound,
		Detail: fmt.Sprintf("no sign change in [%g, %g]", irrSearchLow, irrSearchHigh),
	}
}

func bisectIRR(flows []float64, lo, hi, fLo float64, tol float64) float64 {
	for i := 0; i < irrMaxIter; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(flows, mid)
		if math.Abs(fMid) <= tol || (hi-lo)/2 < 1e-9 {
			return mid
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2
}
