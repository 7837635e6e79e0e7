package emissions

import (
	"fmt"
	"math"
	"sort"
)

// Defaults for the configuration knobs callers may override per call.
const (
	// DefaultCarbonTaxRate is the carbon tax rate in USD per tonne CO2.
	DefaultCarbonTaxRate = 50.0

	// DefaultMaxTimePenaltyPct is the maximum acceptable travel-time
	// penalty (percent) for a green recommendation.
	DefaultMaxTimePenaltyPct = 10.0
)

// modeSpeeds holds typical freight speeds in km/h used to derive travel
// time for the time-penalty tradeoff.
var modeSpeeds = map[TransportMode]float64{
	ModeRoadTruck:     80,
	ModeRoadVan:       70,
	ModeRail:          50,
	ModeAirCargo:      800,
	ModeShipContainer: 25,
	ModeShipBulk:      20,
}

// fallbackSpeedKmh is the speed assumed for a catalog mode with no entry
// in modeSpeeds. Candidates are validated against the catalog before the
// speed lookup, so this only applies when a mode is added to the catalog
// without a matching speed entry.
const fallbackSpeedKmh = 50.0

// Engine performs all emission arithmetic and mode-selection logic.
//
// Every operation is a pure, idempotent computation over its explicit
// inputs plus the immutable catalog, so an Engine is safe for concurrent
// use from multiple goroutines.
type Engine struct {
	catalog *Catalog
}

// NewEngine returns an engine backed by catalog. A nil catalog selects
// DefaultCatalog.
func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

// Catalog returns the engine's factor catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Calculate computes the CO2 emissions for a single shipment.
//
// The contract is co2_kg = distance_km x weight_tonnes x factor, with kg
// rounded to 3 decimals and tonnes to 6 (display precision only; the
// computation itself uses full precision).
//
// Returns ErrInvalidInput when distance or weight is non-positive and
// ErrUnknownMode when the mode is not in the catalog.
func (e *Engine) Calculate(spec ShipmentSpec) (EmissionResult, error) {
	if spec.DistanceKm <= 0 {
		return EmissionResult{}, fmt.Errorf("%w: distance_km must be positive, got %v", ErrInvalidInput, spec.DistanceKm)
	}
	if spec.WeightTonnes <= 0 {
		return EmissionResult{}, fmt.Errorf("%w: weight_tonnes must be positive, got %v", ErrInvalidInput, spec.WeightTonnes)
	}

	factor, err := e.catalog.FactorFor(spec.Mode)
	if err != nil {
		return EmissionResult{}, err
	}

	co2Kg := spec.DistanceKm * spec.WeightTonnes * factor.KgPerTonneKm

	return EmissionResult{
		CO2Kg:        roundTo(co2Kg, 3),
		CO2Tonnes:    roundTo(co2Kg/1000, 6),
		DistanceKm:   spec.DistanceKm,
		WeightTonnes: spec.WeightTonnes,
		Mode:         spec.Mode,
		Factor:       factor.KgPerTonneKm,
		FactorSource: factor.Source,
	}, nil
}

// Compare computes emissions for each requested mode and ranks the
// results ascending by CO2. A mode that individually fails is skipped,
// not fatal: a comparison across many modes stays useful when one entry
// is broken. Ties keep the catalog's canonical mode order.
//
// A nil or empty modes slice compares every catalog mode. Returns an
// empty slice when no mode succeeds.
func (e *Engine) Compare(distanceKm, weightTonnes float64, modes []TransportMode) []ComparisonRow {
	if len(modes) == 0 {
		modes = e.catalog.AllModes()
	}

	// Accumulate result-or-skip per mode, walking the canonical order so
	// the later stable sort breaks emission ties deterministically.
	requested := make(map[TransportMode]bool, len(modes))
	for _, m := range modes {
		requested[m] = true
	}

	rows := make([]ComparisonRow, 0, len(modes))
	for _, mode := range e.catalog.AllModes() {
		if !requested[mode] {
			continue
		}
		result, err := e.Calculate(ShipmentSpec{
			DistanceKm:   distanceKm,
			WeightTonnes: weightTonnes,
			Mode:         mode,
		})
		if err != nil {
			continue
		}
		rows = append(rows, ComparisonRow{EmissionResult: result})
	}

	if len(rows) == 0 {
		return rows
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CO2Kg < rows[j].CO2Kg
	})

	best := rows[0].CO2Kg
	for i := range rows {
		rows[i].Rank = i + 1
		rows[i].DiffVsBestKg = roundTo(rows[i].CO2Kg-best, 3)
		rows[i].PctVsBest = roundTo((rows[i].CO2Kg/best-1)*100, 1)
	}
	return rows
}

// CarbonTax prices co2Kg of emissions at ratePerTonne (USD per tonne CO2).
// Pure arithmetic; invalid numeric input propagates into the result.
func (e *Engine) CarbonTax(co2Kg, ratePerTonne float64) TaxAssessment {
	co2Tonnes := co2Kg / 1000
	return TaxAssessment{
		CO2Kg:        co2Kg,
		CO2Tonnes:    roundTo(co2Tonnes, 6),
		RatePerTonne: ratePerTonne,
		CostUSD:      roundTo(co2Tonnes*ratePerTonne, 2),
	}
}

// RecommendGreenest selects the lowest-emission candidate mode and reports
// how its travel time compares against the fastest candidate.
//
// The greenest candidate wins regardless of the time budget; the
// WithinTimeConstraint flag tells the caller whether its time penalty fits
// maxTimePenaltyPct. The penalty is zero when the greenest mode is also
// the fastest.
//
// Ties on emissions keep the candidate input order; ties on travel time go
// to the first occurrence. Returns ErrNoCandidates for an empty candidate
// set and propagates Calculate errors for invalid inputs or modes.
func (e *Engine) RecommendGreenest(
	distanceKm, weightTonnes float64,
	candidates []TransportMode,
	maxTimePenaltyPct float64,
) (Recommendation, error) {
	if len(candidates) == 0 {
		return Recommendation{}, ErrNoCandidates
	}

	options := make([]ModeOption, 0, len(candidates))
	for _, mode := range candidates {
		result, err := e.Calculate(ShipmentSpec{
			DistanceKm:   distanceKm,
			WeightTonnes: weightTonnes,
			Mode:         mode,
		})
		if err != nil {
			return Recommendation{}, err
		}
		options = append(options, ModeOption{
			Mode:            mode,
			CO2Kg:           result.CO2Kg,
			TravelTimeHours: distanceKm / speedFor(mode),
			Factor:          result.Factor,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].CO2Kg < options[j].CO2Kg
	})

	greenest := options[0]
	fastest := options[0]
	for _, opt := range options[1:] {
		if opt.TravelTimeHours < fastest.TravelTimeHours {
			fastest = opt
		}
	}

	timePenalty := (greenest.TravelTimeHours - fastest.TravelTimeHours) / fastest.TravelTimeHours * 100

	reductionPct := 0.0
	if fastest.CO2Kg > 0 {
		reductionPct = roundTo((1-greenest.CO2Kg/fastest.CO2Kg)*100, 1)
	}

	all := make([]ModeOption, len(options))
	for i, opt := range options {
		opt.TravelTimeHours = roundTo(opt.TravelTimeHours, 1)
		all[i] = opt
	}

	return Recommendation{
		RecommendedMode:      greenest.Mode,
		CO2Kg:                greenest.CO2Kg,
		TravelTimeHours:      greenest.TravelTimeHours,
		WithinTimeConstraint: timePenalty <= maxTimePenaltyPct,
		TimePenaltyPct:       roundTo(timePenalty, 1),
		SavingsVsFastestKg:   roundTo(fastest.CO2Kg-greenest.CO2Kg, 2),
		ReductionPct:         reductionPct,
		AllOptions:           all,
	}, nil
}

// speedFor returns the typical speed for mode, falling back to
// fallbackSpeedKmh for catalog modes without a speed entry.
func speedFor(mode TransportMode) float64 {
	if speed, ok := modeSpeeds[mode]; ok {
		return speed
	}
	return fallbackSpeedKmh
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
