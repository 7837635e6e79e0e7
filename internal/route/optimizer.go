// Package route holds a placeholder route optimizer.
//
// The optimizer approximates a route as the straight line between two
// coordinate points. Real geographic routing is deliberately out of scope;
// this stub exists so callers have a stable shape to render while keeping
// the emission engine free of any routing knowledge.
package route

import "math"

// placeholderFactorKgPerKm is the example per-km emission factor used by
// the stub estimate. It is not a catalog factor and is for illustration
// only.
const placeholderFactorKgPerKm = 0.21

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Route is the mock optimization result.
type Route struct {
	Start               Point   `json:"start"`
	End                 Point   `json:"end"`
	Mode                string  `json:"mode"`
	OptimizedDistanceKm float64 `json:"optimized_distance_km"`
	EstimatedEmissionKg float64 `json:"estimated_emission_kg"`
}

// Optimize returns a mock optimized route between start and end using the
// Euclidean distance between the points. An empty mode defaults to
// "driving".
func Optimize(start, end Point, mode string) Route {
	if mode == "" {
		mode = "driving"
	}

	distance := math.Hypot(end.X-start.X, end.Y-start.Y)

	return Route{
		Start:               start,
		End:                 end,
		Mode:                mode,
		OptimizedDistanceKm: roundTo(distance, 2),
		EstimatedEmissionKg: roundTo(distance*placeholderFactorKgPerKm, 3),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
