package models

// Supported payment methods. Anything else yields zero routing candidates.
const (
	MethodCard = "card"
	MethodACH  = "ach"
)

// Merchant carries the merchant attributes the routing rules consume.
type Merchant struct {
	ID                  string   `json:"id"`
	CashFlowSensitivity float64  `json:"cash_flow_sensitivity"`
	WhitelistedFor      []string `json:"whitelisted_for,omitempty"`
}

// IsWhitelistedFor reports whether the merchant may use a whitelist-gated
// processor.
func (m Merchant) IsWhitelistedFor(processor string) bool {
	for _, name := range m.WhitelistedFor {
		if name == processor {
			return true
		}
	}
	return false
}

// Payment is a single routing request. It is created per request, already
// validated and defaulted at the transport boundary, and discarded after the
// decision is produced.
type Payment struct {
	AmountCents   int64    `json:"amount_cents"`
	Currency      string   `json:"currency"`
	PaymentMethod string   `json:"payment_method"`
	Merchant      Merchant `json:"merchant"`
	Metadata      JSON     `json:"metadata,omitempty"`
}
