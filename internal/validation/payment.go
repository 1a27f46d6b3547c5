// Package validation checks and defaults inbound routing requests at the
// transport boundary. The engine never sees an invalid payment.
package validation

import (
	"payrouter/internal/errors"
	"payrouter/internal/models"
)

// Request-level defaults applied when the field is absent.
const (
	DefaultCurrency            = "usd"
	DefaultPaymentMethod       = models.MethodCard
	DefaultCashFlowSensitivity = 0.5
)

// DecideRequest mirrors the wire shape of a routing request. Pointer fields
// distinguish absent values from explicit zeros so defaulting stays explicit.
type DecideRequest struct {
	AmountCents   *int64          `json:"amount_cents"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Merchant      MerchantRequest `json:"merchant"`
	Metadata      models.JSON     `json:"metadata"`
}

// MerchantRequest is the merchant block of a routing request.
type MerchantRequest struct {
	ID                  string   `json:"id"`
	CashFlowSensitivity *float64 `json:"cash_flow_sensitivity"`
	WhitelistedFor      []string `json:"whitelisted_for"`
}

// ValidatePayment validates a request and returns the defaulted Payment the
// engine consumes. Metadata passes through unexamined.
func ValidatePayment(req DecideRequest) (models.Payment, error) {
	if req.AmountCents == nil {
		return models.Payment{}, &errors.DomainError{
			Code:    "VALIDATION_AMOUNT_MISSING",
			Message: "amount_cents is required",
		}
	}
	if *req.AmountCents < 0 {
		return models.Payment{}, &errors.DomainError{
			Code:    "VALIDATION_AMOUNT_NEGATIVE",
			Message: "amount_cents must not be negative",
		}
	}

	sensitivity := DefaultCashFlowSensitivity
	if req.Merchant.CashFlowSensitivity != nil {
		sensitivity = *req.Merchant.CashFlowSensitivity
		if sensitivity < 0 || sensitivity > 1 {
			return models.Payment{}, &errors.DomainError{
				Code:    "VALIDATION_SENSITIVITY_RANGE",
				Message: "merchant.cash_flow_sensitivity must be between 0 and 1",
			}
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	method := req.PaymentMethod
	if method == "" {
		method = DefaultPaymentMethod
	}

	return models.Payment{
		AmountCents:   *req.AmountCents,
		Currency:      currency,
		PaymentMethod: method,
		Merchant: models.Merchant{
			ID:                  req.Merchant.ID,
			CashFlowSensitivity: sensitivity,
			WhitelistedFor:      req.Merchant.WhitelistedFor,
		},
		Metadata: req.Metadata,
	}, nil
}
