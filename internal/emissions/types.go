package emissions

// EmissionFactor describes the linear emission factor for one transport mode.
type EmissionFactor struct {
	// Mode is the transport category this factor applies to.
	Mode TransportMode `json:"mode"`

	// KgPerTonneKm is kg CO2 emitted per tonne of cargo per kilometer.
	KgPerTonneKm float64 `json:"factor_kg_co2_per_tonne_km"`

	// Description is a short human-readable description of the mode.
	Description string `json:"description"`

	// Source cites where the factor value comes from.
	Source string `json:"source"`
}

// ShipmentSpec is the input for a single emission calculation.
// Distance and weight must be positive; the mode must be in the catalog.
type ShipmentSpec struct {
	DistanceKm   float64       `json:"distance_km"`
	WeightTonnes float64       `json:"weight_tonnes"`
	Mode         TransportMode `json:"transport_mode"`
}

// EmissionResult is the outcome of a single shipment calculation.
// It is derived deterministically from the spec and the catalog.
type EmissionResult struct {
	CO2Kg        float64       `json:"co2_emissions_kg"`
	CO2Tonnes    float64       `json:"co2_emissions_tonnes"`
	DistanceKm   float64       `json:"distance_km"`
	WeightTonnes float64       `json:"weight_tonnes"`
	Mode         TransportMode `json:"transport_mode"`
	Factor       float64       `json:"emission_factor"`
	FactorSource string        `json:"emission_factor_source"`
}

// ComparisonRow is one entry in a cross-mode comparison, ranked ascending
// by emissions. Rank 1 is the lowest-emission mode; ties preserve the
// catalog's canonical mode order.
type ComparisonRow struct {
	EmissionResult

	// Rank is the 1-based position after sorting ascending by CO2Kg.
	Rank int `json:"emission_rank"`

	// DiffVsBestKg is this row's emissions minus the comparison minimum.
	DiffVsBestKg float64 `json:"emission_difference_vs_best"`

	// PctVsBest is the percentage excess over the comparison minimum,
	// rounded to 1 decimal.
	PctVsBest float64 `json:"emission_percentage_vs_best"`
}

// TaxAssessment prices a quantity of emitted CO2 under a carbon tax.
type TaxAssessment struct {
	CO2Kg        float64 `json:"co2_emissions_kg"`
	CO2Tonnes    float64 `json:"co2_emissions_tonnes"`
	RatePerTonne float64 `json:"carbon_tax_rate_per_tonne"`
	CostUSD      float64 `json:"carbon_tax_cost_usd"`
}

// ModeOption is one candidate considered by RecommendGreenest.
type ModeOption struct {
	Mode            TransportMode `json:"mode"`
	CO2Kg           float64       `json:"co2_emissions_kg"`
	TravelTimeHours float64       `json:"travel_time_hours"`
	Factor          float64       `json:"emission_factor"`
}

// Recommendation is the outcome of a green-mode selection. It is a pure
// function of (distance, weight, candidate modes, time-penalty budget) and
// carries no independent lifecycle.
type Recommendation struct {
	RecommendedMode TransportMode `json:"recommended_mode"`
	CO2Kg           float64       `json:"co2_emissions_kg"`
	TravelTimeHours float64       `json:"travel_time_hours"`

	// WithinTimeConstraint reports whether the time penalty of the
	// greenest mode fits the caller's budget.
	WithinTimeConstraint bool `json:"is_within_time_constraint"`

	// TimePenaltyPct is the relative travel-time increase of the greenest
	// mode versus the fastest candidate, rounded to 1 decimal. Negative
	// when the greenest mode is also the fastest or faster.
	TimePenaltyPct float64 `json:"time_penalty_percent"`

	// SavingsVsFastestKg is fastest.CO2Kg - greenest.CO2Kg, rounded to
	// 2 decimals. May be <= 0 when the fastest mode is also greenest.
	SavingsVsFastestKg float64 `json:"emission_savings_vs_fastest"`

	// ReductionPct is the relative emission reduction versus the fastest
	// candidate, rounded to 1 decimal; 0 when the fastest emits nothing.
	ReductionPct float64 `json:"emission_reduction_percent"`

	// AllOptions lists every considered candidate, ascending by CO2Kg.
	AllOptions []ModeOption `json:"all_options"`
}
