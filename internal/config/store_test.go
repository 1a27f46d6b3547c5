package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "payrouter/internal/errors"
	"payrouter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProcessorsJSON = `[
  {"name": "Stripe", "fee_percentage": 0.029, "fee_flat_cents": 30,
   "settlement_time_days": 2, "success_rate": 0.98,
   "supports_card": true, "supports_ach": true, "instant_payout": false},
  {"name": "LocalProcessorA", "fee_percentage": 0.025, "fee_flat_cents": 25,
   "settlement_time_days": 1, "success_rate": 0.965,
   "supports_card": true, "supports_ach": false, "instant_payout": false}
]`

const validRulesJSON = `{
  "baseline_processor": "Stripe",
  "rule_thresholds": {
    "min_relative_savings_to_switch": 0.02,
    "min_success_rate": 0.9
  },
  "scoring_weights": {
    "fee_weight": 10,
    "settlement_weight": 4,
    "risk_weight": 6,
    "switch_bonus": 1.5,
    "instant_payout_bonus": 1.0,
    "slow_settlement_penalty": 2.0
  }
}`

func writeConfigFiles(t *testing.T, processors, rules string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	processorsPath := filepath.Join(dir, "processors.json")
	rulesPath := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(processorsPath, []byte(processors), 0o600))
	require.NoError(t, os.WriteFile(rulesPath, []byte(rules), 0o600))
	return processorsPath, rulesPath
}

func TestNewStoreFromFiles(t *testing.T) {
	processorsPath, rulesPath := writeConfigFiles(t, validProcessorsJSON, validRulesJSON)

	store, err := NewStoreFromFiles(processorsPath, rulesPath)
	require.NoError(t, err)

	snap := store.Snapshot()
	assert.Len(t, snap.Processors, 2)
	assert.NotEmpty(t, snap.Version)
	assert.Equal(t, "Stripe", snap.Baseline().Name)
	assert.Equal(t, 0, snap.Processors[0].Position)
	assert.Equal(t, 1, snap.Processors[1].Position)
	assert.InDelta(t, 0.02, snap.Rules.Thresholds.MinRelativeSavingsToSwitch, 1e-9)
	assert.InDelta(t, 2.0, snap.Rules.Weights.SlowSettlementPenalty, 1e-9)
}

func TestParseRulesMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		rules string
	}{
		{"no baseline", `{"rule_thresholds": {"min_relative_savings_to_switch": 0.02, "min_success_rate": 0.9}, "scoring_weights": {"fee_weight": 10, "settlement_weight": 4, "risk_weight": 6, "switch_bonus": 1.5, "instant_payout_bonus": 1.0, "slow_settlement_penalty": 2.0}}`},
		{"no thresholds", `{"baseline_processor": "Stripe", "scoring_weights": {"fee_weight": 10, "settlement_weight": 4, "risk_weight": 6, "switch_bonus": 1.5, "instant_payout_bonus": 1.0, "slow_settlement_penalty": 2.0}}`},
		{"missing weight", `{"baseline_processor": "Stripe", "rule_thresholds": {"min_relative_savings_to_switch": 0.02, "min_success_rate": 0.9}, "scoring_weights": {"fee_weight": 10, "settlement_weight": 4, "risk_weight": 6, "switch_bonus": 1.5, "instant_payout_bonus": 1.0}}`},
		{"missing threshold", `{"baseline_processor": "Stripe", "rule_thresholds": {"min_relative_savings_to_switch": 0.02}, "scoring_weights": {"fee_weight": 10, "settlement_weight": 4, "risk_weight": 6, "switch_bonus": 1.5, "instant_payout_bonus": 1.0, "slow_settlement_penalty": 2.0}}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.rules))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidConfig))
		})
	}
}

func TestNewSnapshotValidation(t *testing.T) {
	rules := models.RuleConfig{
		BaselineProcessor: "Stripe",
		Thresholds:        models.RuleThresholds{MinRelativeSavingsToSwitch: 0.02, MinSuccessRate: 0.9},
		Weights:           models.ScoringWeights{FeeWeight: 10, SettlementWeight: 4, RiskWeight: 6},
	}
	valid := models.Processor{Name: "Stripe", SuccessRate: 0.98, SupportsCard: true}

	t.Run("empty catalog", func(t *testing.T) {
		_, err := NewSnapshot(nil, rules)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidConfig))
	})

	t.Run("baseline not in catalog", func(t *testing.T) {
		other := valid
		other.Name = "Adyen"
		_, err := NewSnapshot([]models.Processor{other}, rules)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidConfig))
		assert.Contains(t, err.Error(), "Stripe")
	})

	t.Run("duplicate processor name", func(t *testing.T) {
		_, err := NewSnapshot([]models.Processor{valid, valid}, rules)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidConfig))
	})

	t.Run("negative settlement time", func(t *testing.T) {
		bad := valid
		bad.SettlementTimeDays = -1
		_, err := NewSnapshot([]models.Processor{bad}, rules)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidConfig))
	})

	t.Run("unnamed processor", func(t *testing.T) {
		_, err := NewSnapshot([]models.Processor{{SuccessRate: 0.9}}, rules)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidConfig))
	})
}

func TestSnapshotVersionTracksContent(t *testing.T) {
	rules := models.RuleConfig{
		BaselineProcessor: "Stripe",
		Thresholds:        models.RuleThresholds{MinRelativeSavingsToSwitch: 0.02, MinSuccessRate: 0.9},
		Weights:           models.ScoringWeights{FeeWeight: 10, SettlementWeight: 4, RiskWeight: 6},
	}
	catalog := []models.Processor{{Name: "Stripe", SuccessRate: 0.98, SupportsCard: true}}

	first, err := NewSnapshot(catalog, rules)
	require.NoError(t, err)
	same, err := NewSnapshot(catalog, rules)
	require.NoError(t, err)
	assert.Equal(t, first.Version, same.Version)

	rules.Weights.FeeWeight = 11
	changed, err := NewSnapshot(catalog, rules)
	require.NoError(t, err)
	assert.NotEqual(t, first.Version, changed.Version)
}

func TestStoreSwap(t *testing.T) {
	rules := models.RuleConfig{
		BaselineProcessor: "Stripe",
		Thresholds:        models.RuleThresholds{MinRelativeSavingsToSwitch: 0.02, MinSuccessRate: 0.9},
		Weights:           models.ScoringWeights{FeeWeight: 10, SettlementWeight: 4, RiskWeight: 6},
	}
	catalog := []models.Processor{{Name: "Stripe", SuccessRate: 0.98, SupportsCard: true}}

	first, err := NewSnapshot(catalog, rules)
	require.NoError(t, err)
	store := NewStore(first)
	assert.Same(t, first, store.Snapshot())

	rules.Thresholds.MinSuccessRate = 0.95
	second, err := NewSnapshot(catalog, rules)
	require.NoError(t, err)
	store.Swap(second)

	// Readers only ever see a complete snapshot, never a mix.
	assert.Same(t, second, store.Snapshot())
	assert.InDelta(t, 0.95, store.Snapshot().Rules.Thresholds.MinSuccessRate, 1e-9)
}
