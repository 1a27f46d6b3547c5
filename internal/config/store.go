package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	apperrors "payrouter/internal/errors"
	"payrouter/internal/models"
)

// Snapshot is one complete, internally consistent routing configuration:
// the ordered processor catalog and the rule configuration that were
// committed together. Snapshots are immutable after construction; a reload
// produces a new Snapshot and swaps it in atomically.
type Snapshot struct {
	Version    string
	Processors []models.Processor
	Rules      models.RuleConfig

	baseline int
}

// Baseline returns the processor relative fee savings are measured against.
func (s *Snapshot) Baseline() models.Processor {
	return s.Processors[s.baseline]
}

// NewSnapshot validates the catalog and rules together and freezes them into
// a versioned snapshot. Validation failures wrap ErrInvalidConfig: they mean
// a deployment bug, not a bad request.
func NewSnapshot(processors []models.Processor, rules models.RuleConfig) (*Snapshot, error) {
	if len(processors) == 0 {
		return nil, fmt.Errorf("%w: processor catalog is empty", apperrors.ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(processors))
	baseline := -1
	for i, p := range processors {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: processor at position %d has no name", apperrors.ErrInvalidConfig, i)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate processor %q", apperrors.ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.SettlementTimeDays < 0 {
			return nil, fmt.Errorf("%w: processor %q has negative settlement time", apperrors.ErrInvalidConfig, p.Name)
		}
		if p.Name == rules.BaselineProcessor {
			baseline = i
		}
	}

	if rules.BaselineProcessor == "" {
		return nil, fmt.Errorf("%w: baseline_processor is not set", apperrors.ErrInvalidConfig)
	}
	if baseline < 0 {
		return nil, fmt.Errorf("%w: baseline processor %q is not in the catalog", apperrors.ErrInvalidConfig, rules.BaselineProcessor)
	}

	version, err := snapshotVersion(processors, rules)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Version:    version,
		Processors: processors,
		Rules:      rules,
		baseline:   baseline,
	}, nil
}

// snapshotVersion derives a short content hash identifying the snapshot, used
// in cache keys and surfaced on /health for auditability.
func snapshotVersion(processors []models.Processor, rules models.RuleConfig) (string, error) {
	payload, err := json.Marshal(struct {
		Processors []models.Processor `json:"processors"`
		Rules      models.RuleConfig  `json:"rules"`
	}{processors, rules})
	if err != nil {
		return "", fmt.Errorf("hashing snapshot: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])[:12], nil
}

// Store publishes the active Snapshot. Readers always observe one complete
// snapshot; Swap replaces it wholesale, never field by field.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

// NewStore creates a store serving the given snapshot.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.snap.Store(snap)
	return s
}

// NewStoreFromFiles loads and validates the catalog and rules from JSON
// files.
func NewStoreFromFiles(processorsPath, rulesPath string) (*Store, error) {
	snap, err := LoadSnapshotFromFiles(processorsPath, rulesPath)
	if err != nil {
		return nil, err
	}
	return NewStore(snap), nil
}

// Snapshot returns the active snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// Swap atomically replaces the active snapshot.
func (s *Store) Swap(snap *Snapshot) {
	s.snap.Store(snap)
}

// LoadSnapshotFromFiles reads both config files and builds a snapshot.
func LoadSnapshotFromFiles(processorsPath, rulesPath string) (*Snapshot, error) {
	procData, err := os.ReadFile(processorsPath)
	if err != nil {
		return nil, fmt.Errorf("reading processor catalog: %w", err)
	}
	processors, err := ParseProcessors(procData)
	if err != nil {
		return nil, err
	}

	rulesData, err := os.ReadFile(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("reading rule config: %w", err)
	}
	rules, err := ParseRules(rulesData)
	if err != nil {
		return nil, err
	}

	return NewSnapshot(processors, rules)
}

// ParseRulesFile reads and validates a rule configuration file.
func ParseRulesFile(path string) (models.RuleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.RuleConfig{}, fmt.Errorf("reading rule config: %w", err)
	}
	return ParseRules(data)
}

// ParseProcessors decodes the catalog. Missing fee fields decode to their
// zero values, which is the documented default.
func ParseProcessors(data []byte) ([]models.Processor, error) {
	var processors []models.Processor
	if err := json.Unmarshal(data, &processors); err != nil {
		return nil, fmt.Errorf("%w: malformed processor catalog: %v", apperrors.ErrInvalidConfig, err)
	}
	for i := range processors {
		processors[i].Position = i
	}
	return processors, nil
}

// ruleConfigFile mirrors rules.json with pointer fields so that absent
// weights and thresholds are detected instead of silently defaulting to 0.
type ruleConfigFile struct {
	BaselineProcessor *string `json:"baseline_processor"`
	RuleThresholds    *struct {
		MinRelativeSavingsToSwitch *float64 `json:"min_relative_savings_to_switch"`
		MinSuccessRate             *float64 `json:"min_success_rate"`
	} `json:"rule_thresholds"`
	ScoringWeights *struct {
		FeeWeight             *float64 `json:"fee_weight"`
		SettlementWeight      *float64 `json:"settlement_weight"`
		RiskWeight            *float64 `json:"risk_weight"`
		SwitchBonus           *float64 `json:"switch_bonus"`
		InstantPayoutBonus    *float64 `json:"instant_payout_bonus"`
		SlowSettlementPenalty *float64 `json:"slow_settlement_penalty"`
	} `json:"scoring_weights"`
}

// ParseRules decodes and fully validates the rule configuration. Every field
// is required.
func ParseRules(data []byte) (models.RuleConfig, error) {
	var raw ruleConfigFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.RuleConfig{}, fmt.Errorf("%w: malformed rule config: %v", apperrors.ErrInvalidConfig, err)
	}

	missing := func(field string) (models.RuleConfig, error) {
		return models.RuleConfig{}, fmt.Errorf("%w: rule config is missing %s", apperrors.ErrInvalidConfig, field)
	}

	switch {
	case raw.BaselineProcessor == nil:
		return missing("baseline_processor")
	case raw.RuleThresholds == nil:
		return missing("rule_thresholds")
	case raw.RuleThresholds.MinRelativeSavingsToSwitch == nil:
		return missing("rule_thresholds.min_relative_savings_to_switch")
	case raw.RuleThresholds.MinSuccessRate == nil:
		return missing("rule_thresholds.min_success_rate")
	case raw.ScoringWeights == nil:
		return missing("scoring_weights")
	case raw.ScoringWeights.FeeWeight == nil:
		return missing("scoring_weights.fee_weight")
	case raw.ScoringWeights.SettlementWeight == nil:
		return missing("scoring_weights.settlement_weight")
	case raw.ScoringWeights.RiskWeight == nil:
		return missing("scoring_weights.risk_weight")
	case raw.ScoringWeights.SwitchBonus == nil:
		return missing("scoring_weights.switch_bonus")
	case raw.ScoringWeights.InstantPayoutBonus == nil:
		return missing("scoring_weights.instant_payout_bonus")
	case raw.ScoringWeights.SlowSettlementPenalty == nil:
		return missing("scoring_weights.slow_settlement_penalty")
	}

	return models.RuleConfig{
		BaselineProcessor: *raw.BaselineProcessor,
		Thresholds: models.RuleThresholds{
			MinRelativeSavingsToSwitch: *raw.RuleThresholds.MinRelativeSavingsToSwitch,
			MinSuccessRate:             *raw.RuleThresholds.MinSuccessRate,
		},
		Weights: models.ScoringWeights{
			FeeWeight:             *raw.ScoringWeights.FeeWeight,
			SettlementWeight:      *raw.ScoringWeights.SettlementWeight,
			RiskWeight:            *raw.ScoringWeights.RiskWeight,
			SwitchBonus:           *raw.ScoringWeights.SwitchBonus,
			InstantPayoutBonus:    *raw.ScoringWeights.InstantPayoutBonus,
			SlowSettlementPenalty: *raw.ScoringWeights.SlowSettlementPenalty,
		},
	}, nil
}
