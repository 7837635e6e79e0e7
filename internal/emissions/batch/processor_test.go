package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

func TestProcessorRun(t *testing.T) {
	engine := emissions.NewEngine(nil)
	processor := NewProcessor(engine, 2)

	specs := []emissions.ShipmentSpec{
		{DistanceKm: 500, WeightTonnes: 2, Mode: emissions.ModeRail},
		{DistanceKm: 500, WeightTonnes: 2, Mode: "hyperloop"},
		{DistanceKm: 500, WeightTonnes: 2, Mode: emissions.ModeAirCargo},
		{DistanceKm: -1, WeightTonnes: 2, Mode: emissions.ModeRail},
	}

	outcomes, err := processor.Run(context.Background(), specs)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	// Input order preserved.
	assert.InDelta(t, 22.0, outcomes[0].Result.CO2Kg, 1e-9)
	assert.NoError(t, outcomes[0].Err)

	assert.Error(t, outcomes[1].Err)
	assert.True(t, errors.Is(outcomes[1].Err, emissions.ErrUnknownMode))

	assert.InDelta(t, 602.0, outcomes[2].Result.CO2Kg, 1e-9)

	assert.Error(t, outcomes[3].Err)
	assert.True(t, errors.Is(outcomes[3].Err, emissions.ErrInvalidInput))
}

func TestProcessorRunEmpty(t *testing.T) {
	processor := NewProcessor(emissions.NewEngine(nil), 0)

	outcomes, err := processor.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestProcessorRunCancelled(t *testing.T) {
	processor := NewProcessor(emissions.NewEngine(nil), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	specs := make([]emissions.ShipmentSpec, 100)
	for i := range specs {
		specs[i] = emissions.ShipmentSpec{DistanceKm: 1, WeightTonnes: 1, Mode: emissions.ModeRail}
	}

	_, err := processor.Run(ctx, specs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSummarize(t *testing.T) {
	engine := emissions.NewEngine(nil)
	processor := NewProcessor(engine, 4)

	specs := []emissions.ShipmentSpec{
		{DistanceKm: 500, WeightTonnes: 2, Mode: emissions.ModeRail},     // 22.0 kg
		{DistanceKm: 500, WeightTonnes: 2, Mode: emissions.ModeShipBulk}, // 8.0 kg
		{DistanceKm: 0, WeightTonnes: 2, Mode: emissions.ModeRail},       // invalid
	}

	outcomes, err := processor.Run(context.Background(), specs)
	require.NoError(t, err)

	summary := Summarize(outcomes)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.InDelta(t, 30.0, summary.TotalCO2Kg, 1e-9)
}
