// Package ingest reads shipment rows from external CSV and Excel files
// and validates them into specs the emission engine accepts.
//
// The engine itself never parses files; this package is the data-import
// collaborator in front of it. Parsing accumulates per-row errors instead
// of aborting, so a single malformed line never discards a whole file.
package ingest

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

// Expected column headers, matched case-insensitively.
const (
	colTracking = "tracking_number"
	colOrigin   = "origin"
	colDest     = "destination"
	colDistance = "distance_km"
	colWeight   = "weight_tonnes"
	colMode     = "transport_mode"
)

// validate is the shared validator instance. validator.Validate is safe
// for concurrent use and caches struct metadata, so one instance serves
// the whole package.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ShipmentRecord is one imported shipment row.
type ShipmentRecord struct {
	TrackingNumber string  `json:"tracking_number" validate:"required"`
	Origin         string  `json:"origin" validate:"required"`
	Destination    string  `json:"destination" validate:"required"`
	DistanceKm     float64 `json:"distance_km" validate:"required,gt=0"`
	WeightTonnes   float64 `json:"weight_tonnes" validate:"required,gt=0"`
	Mode           string  `json:"transport_mode" validate:"required"`
}

// Spec converts the record into an engine input. The mode is parsed
// against the closed enumeration; the numeric fields were already
// validated positive.
func (r ShipmentRecord) Spec() (emissions.ShipmentSpec, error) {
	mode, err := emissions.ParseMode(r.Mode)
	if err != nil {
		return emissions.ShipmentSpec{}, err
	}
	return emissions.ShipmentSpec{
		DistanceKm:   r.DistanceKm,
		WeightTonnes: r.WeightTonnes,
		Mode:         mode,
	}, nil
}

// RowError ties a parse or validation failure to its 1-based row number
// in the source file (header row included in the count).
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Result is the outcome of reading a file: the valid records plus the
// rows that failed. Both can be non-empty at once.
type Result struct {
	Records []ShipmentRecord
	Errors  []RowError
}
