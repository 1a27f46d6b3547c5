package models

// Processor describes a payment processing provider in the routing catalog.
// The same struct is the JSON catalog entry and the Postgres row, so catalog
// order is preserved through the Position column when loaded from the
// database.
type Processor struct {
	ID                 uint    `gorm:"primarykey" json:"-"`
	Position           int     `gorm:"uniqueIndex" json:"-"`
	Name               string  `gorm:"uniqueIndex;not null" json:"name"`
	FeePercentage      float64 `gorm:"default:0" json:"fee_percentage"`
	FeeFlatCents       int64   `gorm:"default:0" json:"fee_flat_cents"`
	SettlementTimeDays int     `json:"settlement_time_days"`
	SuccessRate        float64 `json:"success_rate"`
	SupportsCard       bool    `json:"supports_card"`
	SupportsACH        bool    `gorm:"column:supports_ach" json:"supports_ach"`
	InstantPayout      bool    `json:"instant_payout"`
	RequiresWhitelist  bool    `gorm:"default:false" json:"requires_whitelist"`
}

// RuleThresholds holds the hard eligibility and switching thresholds.
type RuleThresholds struct {
	MinRelativeSavingsToSwitch float64 `json:"min_relative_savings_to_switch"`
	MinSuccessRate             float64 `json:"min_success_rate"`
}

// ScoringWeights holds the weights of the composite processor score.
type ScoringWeights struct {
	FeeWeight             float64 `json:"fee_weight"`
	SettlementWeight      float64 `json:"settlement_weight"`
	RiskWeight            float64 `json:"risk_weight"`
	SwitchBonus           float64 `json:"switch_bonus"`
	InstantPayoutBonus    float64 `json:"instant_payout_bonus"`
	SlowSettlementPenalty float64 `json:"slow_settlement_penalty"`
}

// RuleConfig is the rule configuration half of a routing snapshot.
// BaselineProcessor names the catalog entry that relative fee savings are
// measured against; it is validated against the catalog at load time.
type RuleConfig struct {
	BaselineProcessor string         `json:"baseline_processor"`
	Thresholds        RuleThresholds `json:"rule_thresholds"`
	Weights           ScoringWeights `json:"scoring_weights"`
}
