// Package simulator replays synthetic card traffic through the decision
// engine to estimate fee savings versus always using the baseline processor.
// It runs fully offline against a configuration snapshot.
package simulator

import (
	"fmt"
	"math/rand"

	"payrouter/internal/config"
	"payrouter/internal/engine"
	"payrouter/internal/models"
)

// amountsCents is the synthetic transaction mix, skewed toward typical card
// amounts.
var amountsCents = []int64{500, 1200, 2500, 10000}

// Options control a simulation run. The same seed reproduces the same run.
type Options struct {
	Iterations int
	Seed       int64
}

// Summary aggregates one simulation run.
type Summary struct {
	Iterations          int
	AvgBaselineFeeCents float64
	AvgRoutedFeeCents   float64
	ReductionPct        float64
	ChoiceCounts        map[string]int
}

// Run simulates card payments with uniformly random merchant cash-flow
// sensitivity and reports the routed fees against the baseline fees.
func Run(snap *config.Snapshot, opts Options) (*Summary, error) {
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", opts.Iterations)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	var baselineTotal, routedTotal int64
	counts := make(map[string]int)

	for i := 0; i < opts.Iterations; i++ {
		amount := amountsCents[rng.Intn(len(amountsCents))]
		payment := models.Payment{
			AmountCents:   amount,
			Currency:      "usd",
			PaymentMethod: models.MethodCard,
			Merchant: models.Merchant{
				ID:                  "simulated",
				CashFlowSensitivity: rng.Float64(),
			},
		}

		decision, err := engine.Decide(payment, snap)
		if err != nil {
			return nil, fmt.Errorf("simulated payment %d: %w", i, err)
		}

		baselineTotal += engine.ComputeFeeCents(snap.Baseline(), amount)
		routedTotal += decision.Details.FeeCents
		counts[decision.Chosen]++
	}

	n := float64(opts.Iterations)
	avgBaseline := float64(baselineTotal) / n
	avgRouted := float64(routedTotal) / n

	var reduction float64
	if avgBaseline > 0 {
		reduction = (avgBaseline - avgRouted) / avgBaseline * 100
	}

	return &Summary{
		Iterations:          opts.Iterations,
		AvgBaselineFeeCents: avgBaseline,
		AvgRoutedFeeCents:   avgRouted,
		ReductionPct:        reduction,
		ChoiceCounts:        counts,
	}, nil
}
