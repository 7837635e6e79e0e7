// Package sample generates demonstration shipment data.
//
// The generator produces random but plausible shipments between major US
// cities with great-circle distances, delay probabilities, and a
// fixed-threshold risk classification. It exists for demos and for
// exercising the import pipeline; nothing in it feeds back into the
// emission engine beyond the public ShipmentSpec contract.
package sample

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// City is a named location a sample shipment can start or end at.
type City struct {
	Name string
	Lat  float64
	Lng  float64
}

// Cities are the origins and destinations sampled by the generator.
var Cities = []City{
	{"New York", 40.7128, -74.0060},
	{"Los Angeles", 34.0522, -118.2437},
	{"Chicago", 41.8781, -87.6298},
	{"Houston", 29.7604, -95.3698},
	{"Phoenix", 33.4484, -112.0740},
	{"Philadelphia", 39.9526, -75.1652},
	{"San Antonio", 29.4241, -98.4936},
	{"San Diego", 32.7157, -117.1611},
	{"Dallas", 32.7767, -96.7970},
	{"San Jose", 37.3382, -121.8863},
}

// RiskLevel buckets a shipment's delay probability.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Risk classification thresholds on delay probability.
const (
	highRiskThreshold   = 0.7
	mediumRiskThreshold = 0.4
)

// ClassifyRisk buckets a delay probability with fixed thresholds:
// high at 0.7 and above, medium at 0.4 and above, low otherwise.
// This is a rule, not a trained model.
func ClassifyRisk(delayProbability float64) RiskLevel {
	switch {
	case delayProbability >= highRiskThreshold:
		return RiskHigh
	case delayProbability >= mediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Shipment is one generated demonstration record.
type Shipment struct {
	TrackingNumber    string                  `json:"tracking_number"`
	Origin            string                  `json:"origin"`
	Destination       string                  `json:"destination"`
	DistanceKm        float64                 `json:"distance_km"`
	WeightTonnes      float64                 `json:"weight_tonnes"`
	Mode              emissions.TransportMode `json:"transport_mode"`
	ScheduledDelivery time.Time               `json:"scheduled_delivery"`
	DelayProbability  float64                 `json:"delay_probability"`
	DelayMinutes      float64                 `json:"delay_minutes"`
	IsDelayed         bool                    `json:"is_delayed"`
	Status            string                  `json:"status"`
	Risk              RiskLevel               `json:"risk_level"`
}

// Spec returns the shipment's engine input.
func (s Shipment) Spec() emissions.ShipmentSpec {
	return emissions.ShipmentSpec{
		DistanceKm:   s.DistanceKm,
		WeightTonnes: s.WeightTonnes,
		Mode:         s.Mode,
	}
}

// Generator produces random shipments. Not safe for concurrent use: it
// owns a single rand source so seeded runs stay reproducible.
type Generator struct {
	rng     *rand.Rand
	entropy *ulid.MonotonicEntropy
	modes   []emissions.TransportMode
	now     func() time.Time
}

// NewGenerator returns a generator seeded with seed. The same seed yields
// the same shipment sequence apart from ULID timestamps and delivery
// times, which derive from the clock.
func NewGenerator(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		rng:     rng,
		entropy: ulid.Monotonic(rng, 0),
		modes:   emissions.DefaultCatalog().AllModes(),
		now:     time.Now,
	}
}

// Shipments generates n random shipments.
func (g *Generator) Shipments(n int) []Shipment {
	shipments := make([]Shipment, 0, n)
	for range n {
		shipments = append(shipments, g.shipment())
	}
	return shipments
}

func (g *Generator) shipment() Shipment {
	origin := Cities[g.rng.Intn(len(Cities))]
	destination := origin
	for destination.Name == origin.Name {
		destination = Cities[g.rng.Intn(len(Cities))]
	}

	distance := Haversine(origin.Lat, origin.Lng, destination.Lat, destination.Lng)

	// Base travel estimate plus random slack, as hours from now.
	baseHours := distance / 60
	scheduled := g.now().Add(time.Duration((baseHours + 2 + g.rng.Float64()*22) * float64(time.Hour)))

	delayProb := math.Min(0.9, 0.1+distance/3000+g.rng.Float64()*0.3)
	isDelayed := g.rng.Float64() < delayProb
	delayMinutes := 0.0
	if isDelayed {
		delayMinutes = 15 + g.rng.Float64()*105
	}

	status := "pending"
	if g.rng.Float64() < 0.7 {
		status = "in_transit"
	}

	return Shipment{
		TrackingNumber:    fmt.Sprintf("TRK-%s", ulid.MustNew(ulid.Timestamp(g.now()), g.entropy)),
		Origin:            origin.Name,
		Destination:       destination.Name,
		DistanceKm:        roundTo(distance, 1),
		WeightTonnes:      roundTo(0.5+g.rng.Float64()*29.5, 2),
		Mode:              g.modes[g.rng.Intn(len(g.modes))],
		ScheduledDelivery: scheduled,
		DelayProbability:  roundTo(delayProb, 3),
		DelayMinutes:      roundTo(delayMinutes, 1),
		IsDelayed:         isDelayed,
		Status:            status,
		Risk:              ClassifyRisk(delayProb),
	}
}

// Haversine returns the great-circle distance in km between two points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
