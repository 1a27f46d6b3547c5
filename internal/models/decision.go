package models

// Evaluation is the scored assessment of one processor for one payment.
// Score is unclamped and may be negative when penalties outweigh bonuses.
type Evaluation struct {
	Processor         string  `json:"processor"`
	FeeCents          int64   `json:"fee_cents"`
	SavingPctVsStripe float64 `json:"saving_pct_vs_stripe"`
	SettlementScore   float64 `json:"settlement_score"`
	RiskScore         float64 `json:"risk_score"`
	Score             float64 `json:"score"`
	PassesStrict      bool    `json:"passes_strict"`
}

// Decision is the final routing choice for a payment, including the winning
// (or fallback) evaluation and a human-readable rationale. TraceID is an
// audit handle attached by the host, never by the engine, so engine output
// stays deterministic.
type Decision struct {
	Chosen           string     `json:"chosen"`
	ExpectedNetCents int64      `json:"expected_net_cents"`
	Details          Evaluation `json:"details"`
	Reason           string     `json:"reason"`
	TraceID          string     `json:"trace_id,omitempty"`
}
