package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// requiredColumns are the headers a shipment file must carry.
var requiredColumns = []string{colTracking, colOrigin, colDest, colDistance, colWeight, colMode}

// ReadCSV parses shipment rows from r. The first line must be a header
// containing the required columns (any order, case-insensitive, extra
// columns ignored). Row failures are collected in the result; ReadCSV
// itself only fails on an unreadable stream or a bad header.
func ReadCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("read header: %w", err)
	}
	columns, err := mapColumns(header)
	if err != nil {
		return Result{}, err
	}

	var result Result
	row := 1
	for {
		fields, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		row++
		if readErr != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Err: readErr})
			continue
		}

		record, recErr := buildRecord(fields, columns)
		if recErr != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Err: recErr})
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

// mapColumns resolves header names to field indexes and checks that every
// required column is present.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

// buildRecord converts one row of fields into a validated ShipmentRecord.
func buildRecord(fields []string, columns map[string]int) (ShipmentRecord, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[idx])
	}

	distance, err := strconv.ParseFloat(cell(colDistance), 64)
	if err != nil {
		return ShipmentRecord{}, fmt.Errorf("parse %s: %w", colDistance, err)
	}
	weight, err := strconv.ParseFloat(cell(colWeight), 64)
	if err != nil {
		return ShipmentRecord{}, fmt.Errorf("parse %s: %w", colWeight, err)
	}

	record := ShipmentRecord{
		TrackingNumber: cell(colTracking),
		Origin:         cell(colOrigin),
		Destination:    cell(colDest),
		DistanceKm:     distance,
		WeightTonnes:   weight,
		Mode:           strings.ToLower(cell(colMode)),
	}
	if err := validate.Struct(record); err != nil {
		return ShipmentRecord{}, err
	}
	return record, nil
}
