package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

func TestRenderResult(t *testing.T) {
	engine := emissions.NewEngine(nil)
	result, err := engine.Calculate(emissions.ShipmentSpec{
		DistanceKm: 500, WeightTonnes: 2, Mode: emissions.ModeRail,
	})
	require.NoError(t, err)

	out := RenderResult(result)
	assert.Contains(t, out, "EMISSION ESTIMATE")
	assert.Contains(t, out, "rail")
	assert.Contains(t, out, "22.000")
	assert.Contains(t, out, "IPCC 2019 Guidelines")
}

func TestRenderTax(t *testing.T) {
	engine := emissions.NewEngine(nil)
	out := RenderTax(engine.CarbonTax(602.0, 50.0))
	assert.Contains(t, out, "$30.10")
	assert.Contains(t, out, "$50.00")
}

func TestRenderComparison(t *testing.T) {
	engine := emissions.NewEngine(nil)
	rows := engine.Compare(500, 2, nil)

	out := RenderComparison(rows)
	assert.Contains(t, out, "MODE COMPARISON")
	assert.Contains(t, out, "ship_bulk")
	assert.Contains(t, out, "air_cargo")
	assert.Contains(t, out, IconLeaf)
}

func TestRenderComparisonEmpty(t *testing.T) {
	out := RenderComparison(nil)
	assert.Contains(t, out, "No comparable transport modes")
}

func TestRenderRecommendation(t *testing.T) {
	engine := emissions.NewEngine(nil)

	rec, err := engine.RecommendGreenest(500, 2,
		[]emissions.TransportMode{emissions.ModeRoadTruck, emissions.ModeRail, emissions.ModeShipContainer},
		emissions.DefaultMaxTimePenaltyPct)
	require.NoError(t, err)

	out := RenderRecommendation(rec)
	assert.Contains(t, out, "GREEN RECOMMENDATION")
	assert.Contains(t, out, "ship_container")
	assert.Contains(t, out, "exceeds time budget")
}

func TestRenderRecommendationWithinBudget(t *testing.T) {
	engine := emissions.NewEngine(nil)

	rec, err := engine.RecommendGreenest(500, 2,
		[]emissions.TransportMode{emissions.ModeRail}, emissions.DefaultMaxTimePenaltyPct)
	require.NoError(t, err)

	out := RenderRecommendation(rec)
	assert.Contains(t, out, "within time budget")
}

func TestRenderFactorTable(t *testing.T) {
	out := RenderFactorTable(emissions.DefaultCatalog().Table())
	assert.Contains(t, out, "EMISSION FACTORS")
	assert.Contains(t, out, "0.008")
	assert.Contains(t, out, "Bulk carrier ship")
	assert.Contains(t, out, "IMO Fourth GHG Study 2020")
}
