package models

import "github.com/golang-jwt/jwt/v5"

// MerchantClaims is the JWT payload issued to API consumers. MerchantID is
// used as the default merchant identity when the request body omits one.
type MerchantClaims struct {
	MerchantID string `json:"merchant_id"`
	jwt.RegisteredClaims
}
