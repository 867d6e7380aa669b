package model

// TechnologyProfile holds the default cost/performance parameters for one
// technology. Loaded once at startup and treated as read-only; the values are
// illustrative industry defaults, not market quotes, and callers may override
// any of them per project.
type TechnologyProfile struct {
	ID             string  `json:"id" yaml:"id"`
	Label          string  `json:"label" yaml:"label"`
	CapexPerKW     float64 `json:"capex_per_kw" yaml:"capex_per_kw"`
	OpexPerKWYear  float64 `json:"opex_per_kw_year" yaml:"opex_per_kw_year"`
	CapacityFactor float64 `json:"capacity_factor" yaml:"capacity_factor"`
	LifetimeYears  int     `json:"project_lifetime_years" yaml:"project_lifetime_years"`
}
