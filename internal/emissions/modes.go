// Package emissions provides CO2 emission calculations for freight shipments.
//
// It computes emissions from a (distance, weight, mode) triple using a linear
// tonne-kilometer factor model, compares candidate transport modes, prices
// emissions under a carbon tax, and recommends the lowest-emission mode that
// fits inside a bounded travel-time penalty.
package emissions

import "fmt"

// TransportMode identifies a freight transport category.
//
// The enumeration is closed: modes are fixed at compile time and adding one
// is a data-table edit in the default catalog, not a structural change.
type TransportMode string

const (
	// ModeRoadTruck is heavy duty road haulage (>32 tonnes).
	ModeRoadTruck TransportMode = "road_truck"

	// ModeRoadVan is light commercial road transport (<3.5 tonnes).
	ModeRoadVan TransportMode = "road_van"

	// ModeRail is electric or diesel freight rail.
	ModeRail TransportMode = "rail"

	// ModeAirCargo is air freight.
	ModeAirCargo TransportMode = "air_cargo"

	// ModeShipContainer is container shipping.
	ModeShipContainer TransportMode = "ship_container"

	// ModeShipBulk is bulk carrier shipping.
	ModeShipBulk TransportMode = "ship_bulk"
)

// String returns the wire/display form of the mode.
func (m TransportMode) String() string {
	return string(m)
}

// ParseMode converts a string into a TransportMode.
// Returns ErrUnknownMode wrapped with the offending value for anything
// outside the closed enumeration.
func ParseMode(s string) (TransportMode, error) {
	switch TransportMode(s) {
	case ModeRoadTruck, ModeRoadVan, ModeRail, ModeAirCargo, ModeShipContainer, ModeShipBulk:
		return TransportMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
