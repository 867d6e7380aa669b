package finance

import "fmt"

// ErrorKind identifies a computation failure class. Stable strings, surfaced
// verbatim in API error payloads.
type ErrorKind string

const (
	// KindCrfUndefined: capital recovery factor requested with a
	// non-positive discount rate.
	KindCrfUndefined ErrorKind = "CrfUndefined"
	// KindZeroProduction: annual production is zero, so per-MWh metrics
	// would divide by zero.
	KindZeroProduction ErrorKind = "ZeroProduction"
	// KindIrrNotFound: the IRR search bracket contains no sign change.
	KindIrrNotFound ErrorKind = "IrrNotFound"
)

// EngineError is a typed computation failure. Callers match on Kind to
// distinguish input problems from numerical non-convergence; none of these
// are programming errors.
type EngineError struct {
	Kind   ErrorKind
	Detail string
}

func (e *EngineError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}
