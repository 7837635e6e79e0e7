package sample

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes shipments in the column layout the ingest package reads,
// so generated data round-trips through the import pipeline.
func WriteCSV(w io.Writer, shipments []Shipment) error {
	writer := csv.NewWriter(w)

	header := []string{
		"tracking_number", "origin", "destination",
		"distance_km", "weight_tonnes", "transport_mode",
		"scheduled_delivery", "delay_probability", "risk_level", "status",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range shipments {
		row := []string{
			s.TrackingNumber,
			s.Origin,
			s.Destination,
			strconv.FormatFloat(s.DistanceKm, 'f', -1, 64),
			strconv.FormatFloat(s.WeightTonnes, 'f', -1, 64),
			s.Mode.String(),
			s.ScheduledDelivery.Format("2006-01-02 15:04"),
			strconv.FormatFloat(s.DelayProbability, 'f', -1, 64),
			string(s.Risk),
			s.Status,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
