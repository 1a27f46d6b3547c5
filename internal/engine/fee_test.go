package engine

import (
	"testing"

	"payrouter/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeFeeCents(t *testing.T) {
	tests := []struct {
		name        string
		processor   models.Processor
		amountCents int64
		want        int64
	}{
		{
			name:        "percentage plus flat",
			processor:   models.Processor{FeePercentage: 0.029, FeeFlatCents: 30},
			amountCents: 1250,
			want:        66, // 36.25 + 30 rounds up
		},
		{
			name:        "cheaper local processor",
			processor:   models.Processor{FeePercentage: 0.025, FeeFlatCents: 25},
			amountCents: 1250,
			want:        56, // 31.25 + 25 rounds down
		},
		{
			name:        "missing fee fields default to zero",
			processor:   models.Processor{},
			amountCents: 10000,
			want:        0,
		},
		{
			name:        "half cent rounds up",
			processor:   models.Processor{FeePercentage: 0.001},
			amountCents: 500,
			want:        1, // 0.5 rounds half-up
		},
		{
			name:        "flat only",
			processor:   models.Processor{FeeFlatCents: 25},
			amountCents: 0,
			want:        25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeFeeCents(tt.processor, tt.amountCents))
		})
	}
}

func TestComputeFeeCentsNeverNegative(t *testing.T) {
	processors := []models.Processor{
		{FeePercentage: 0, FeeFlatCents: 0},
		{FeePercentage: 0.008, FeeFlatCents: 25},
		{FeePercentage: 0.034, FeeFlatCents: 10},
	}
	amounts := []int64{0, 1, 499, 500, 1250, 10000, 1_000_000}

	for _, p := range processors {
		for _, amount := range amounts {
			assert.GreaterOrEqual(t, ComputeFeeCents(p, amount), int64(0),
				"fee for %+v at amount %d", p, amount)
		}
	}
}
