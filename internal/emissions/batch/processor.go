// Package batch runs emission calculations over many shipments at once.
//
// It extends the engine's per-row result-or-skip policy to bulk workloads:
// a broken row is recorded, not fatal, so one bad import line never aborts
// a whole file. Memory overhead is O(len(specs)) outcomes with bounded
// worker concurrency.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

// DefaultWorkers is the worker limit used when none is configured.
const DefaultWorkers = 4

// Outcome is the per-shipment result of a batch run: either a calculated
// result or the error that row produced, never both.
type Outcome struct {
	// Index is the position of the spec in the input slice.
	Index int

	// Spec is the shipment the outcome belongs to.
	Spec emissions.ShipmentSpec

	// Result holds the calculation when Err is nil.
	Result emissions.EmissionResult

	// Err holds the per-row failure, if any.
	Err error
}

// Summary aggregates a batch run for display.
type Summary struct {
	Total      int     `json:"total"`
	Succeeded  int     `json:"succeeded"`
	Failed     int     `json:"failed"`
	TotalCO2Kg float64 `json:"total_co2_kg"`
}

// Processor computes emissions for shipment batches with bounded
// concurrency. Safe for concurrent use; the engine it wraps is stateless.
type Processor struct {
	engine  *emissions.Engine
	workers int
}

// NewProcessor returns a processor backed by engine. A workers value
// below 1 selects DefaultWorkers.
func NewProcessor(engine *emissions.Engine, workers int) *Processor {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Processor{engine: engine, workers: workers}
}

// Run calculates emissions for every spec, preserving input order in the
// returned outcomes. Row failures land in the row's Outcome; the only
// error Run itself returns is context cancellation.
func (p *Processor) Run(ctx context.Context, specs []emissions.ShipmentSpec) ([]Outcome, error) {
	outcomes := make([]Outcome, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := p.engine.Calculate(spec)
			outcomes[i] = Outcome{Index: i, Spec: spec, Result: result, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Summarize aggregates outcomes into display totals.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Err != nil {
			s.Failed++
			continue
		}
		s.Succeeded++
		s.TotalCO2Kg += o.Result.CO2Kg
	}
	return s
}
