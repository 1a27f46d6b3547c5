package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"payrouter/internal/config"
	"payrouter/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	processors := []models.Processor{
		{Name: "Stripe", FeePercentage: 0.029, FeeFlatCents: 30, SettlementTimeDays: 2, SuccessRate: 0.98, SupportsCard: true, SupportsACH: true},
		{Name: "LocalProcessorA", FeePercentage: 0.025, FeeFlatCents: 25, SettlementTimeDays: 1, SuccessRate: 0.965, SupportsCard: true},
	}
	rules := models.RuleConfig{
		BaselineProcessor: "Stripe",
		Thresholds:        models.RuleThresholds{MinRelativeSavingsToSwitch: 0.02, MinSuccessRate: 0.9},
		Weights: models.ScoringWeights{
			FeeWeight:             10,
			SettlementWeight:      4,
			RiskWeight:            6,
			SwitchBonus:           1.5,
			InstantPayoutBonus:    1.0,
			SlowSettlementPenalty: 2.0,
		},
	}
	snap, err := config.NewSnapshot(processors, rules)
	require.NoError(t, err)

	handler := NewDecisionHandler(config.NewStore(snap), nil)

	app := fiber.New()
	app.Post("/decide", handler.Decide)
	app.Get("/processors", handler.Processors)
	return app
}

func TestDecideEndpoint(t *testing.T) {
	app := testApp(t)

	body := `{
		"amount_cents": 1250,
		"payment_method": "card",
		"merchant": {"id": "m_1", "cash_flow_sensitivity": 0.7}
	}`
	req := httptest.NewRequest("POST", "/decide", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var decision models.Decision
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decision))
	assert.Equal(t, "LocalProcessorA", decision.Chosen)
	assert.Equal(t, int64(1194), decision.ExpectedNetCents)
	assert.Equal(t, int64(56), decision.Details.FeeCents)
	assert.NotEmpty(t, decision.Reason)
	assert.NotEmpty(t, decision.TraceID)
}

func TestDecideEndpointValidationError(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing amount", `{"merchant": {"id": "m_1"}}`},
		{"negative amount", `{"amount_cents": -5}`},
		{"not json", `amount=100`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/decide", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestDecideEndpointUnsupportedMethod(t *testing.T) {
	app := testApp(t)

	body := `{"amount_cents": 1250, "payment_method": "wire", "merchant": {"id": "m_1"}}`
	req := httptest.NewRequest("POST", "/decide", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	// Engine-raised errors are server-side: a catalog with no processor for a
	// configured method is a deployment problem, not a caller mistake.
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "wire")
}

func TestProcessorsEndpoint(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("GET", "/processors", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Version    string             `json:"version"`
		Baseline   string             `json:"baseline"`
		Processors []models.Processor `json:"processors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload.Version)
	assert.Equal(t, "Stripe", payload.Baseline)
	assert.Len(t, payload.Processors, 2)
}
