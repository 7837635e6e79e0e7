package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

func TestCompareJSON(t *testing.T) {
	out, err := execute(t, "compare", "--distance", "500", "--weight", "2", "--output", "json")
	require.NoError(t, err)

	var rows []emissions.ComparisonRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 6)
	assert.Equal(t, emissions.ModeShipBulk, rows[0].Mode)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Zero(t, rows[0].DiffVsBestKg)
}

func TestCompareSubsetOfModes(t *testing.T) {
	out, err := execute(t, "compare",
		"--distance", "500", "--weight", "2", "--modes", "rail,road_truck", "--output", "json")
	require.NoError(t, err)

	var rows []emissions.ComparisonRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, emissions.ModeRail, rows[0].Mode)
}

func TestCompareRejectsUnknownMode(t *testing.T) {
	_, err := execute(t, "compare",
		"--distance", "500", "--weight", "2", "--modes", "rail,zeppelin")
	assert.Error(t, err)
}

func TestRecommendJSON(t *testing.T) {
	out, err := execute(t, "recommend",
		"--distance", "500", "--weight", "2",
		"--modes", "road_truck,rail,ship_container", "--output", "json")
	require.NoError(t, err)

	var rec emissions.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, emissions.ModeShipContainer, rec.RecommendedMode)
	assert.False(t, rec.WithinTimeConstraint)
	assert.Len(t, rec.AllOptions, 3)
}

func TestTaxJSON(t *testing.T) {
	out, err := execute(t, "tax", "--co2-kg", "602", "--rate", "50", "--output", "json")
	require.NoError(t, err)

	var tax emissions.TaxAssessment
	require.NoError(t, json.Unmarshal([]byte(out), &tax))
	assert.InDelta(t, 30.10, tax.CostUSD, 1e-9)
}

func TestFactorsJSON(t *testing.T) {
	out, err := execute(t, "factors", "--output", "json")
	require.NoError(t, err)

	var factors []emissions.EmissionFactor
	require.NoError(t, json.Unmarshal([]byte(out), &factors))
	require.Len(t, factors, 6)
	assert.Equal(t, emissions.ModeShipBulk, factors[0].Mode)
}

func TestImportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipments.csv")
	content := `tracking_number,origin,destination,distance_km,weight_tonnes,transport_mode
TRK000001,New York,Chicago,1000,2.5,rail
TRK000002,Chicago,Houston,1514.9,12,road_truck
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := execute(t, "import", path, "--output", "json")
	require.NoError(t, err)

	var report struct {
		Summary struct {
			Total     int `json:"total"`
			Succeeded int `json:"succeeded"`
		} `json:"summary"`
		Rows []struct {
			TrackingNumber string  `json:"tracking_number"`
			CO2Kg          float64 `json:"co2_emissions_kg"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.Succeeded)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "TRK000001", report.Rows[0].TrackingNumber)
	assert.InDelta(t, 55.0, report.Rows[0].CO2Kg, 1e-9) // 1000 x 2.5 x 0.022
}

func TestImportUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipments.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := execute(t, "import", path)
	assert.Error(t, err)
}

func TestSampleJSON(t *testing.T) {
	out, err := execute(t, "sample", "--count", "5", "--seed", "42", "--format", "json")
	require.NoError(t, err)

	var shipments []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shipments))
	assert.Len(t, shipments, 5)
}

func TestSampleRejectsBadCount(t *testing.T) {
	_, err := execute(t, "sample", "--count", "0")
	assert.Error(t, err)
}

func TestRouteJSON(t *testing.T) {
	out, err := execute(t, "route", "--from", "0,0", "--to", "30,40")
	require.NoError(t, err)

	var r struct {
		OptimizedDistanceKm float64 `json:"optimized_distance_km"`
		EstimatedEmissionKg float64 `json:"estimated_emission_kg"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 50.0, r.OptimizedDistanceKm, 1e-9)
	assert.InDelta(t, 10.5, r.EstimatedEmissionKg, 1e-9)
}

func TestRouteBadCoordinates(t *testing.T) {
	_, err := execute(t, "route", "--from", "zero", "--to", "30,40")
	assert.Error(t, err)
}
