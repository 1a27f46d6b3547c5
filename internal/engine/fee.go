package engine

import (
	"math"

	"payrouter/internal/models"
)

// ComputeFeeCents returns the processor's fee for the amount in cents,
// rounded half-up. Total for finite non-negative amounts; negative amounts
// are rejected by validation before they reach the engine.
func ComputeFeeCents(p models.Processor, amountCents int64) int64 {
	return int64(math.Round(float64(amountCents)*p.FeePercentage + float64(p.FeeFlatCents)))
}
