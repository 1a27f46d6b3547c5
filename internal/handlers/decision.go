package handlers

import (
	"payrouter/internal/config"
	"payrouter/internal/engine"
	"payrouter/internal/models"
	"payrouter/internal/repositories/cache"
	"payrouter/internal/utils/response"
	"payrouter/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DecisionHandler serves routing decisions over HTTP. Validation failures
// map to 400; anything the engine raises is a server-side problem and maps
// to 500.
type DecisionHandler struct {
	store         *config.Store
	decisionCache *cache.DecisionCache // nil when running without Redis
}

func NewDecisionHandler(store *config.Store, decisionCache *cache.DecisionCache) *DecisionHandler {
	return &DecisionHandler{
		store:         store,
		decisionCache: decisionCache,
	}
}

// Decide handles POST /api/v1/decide.
func (h *DecisionHandler) Decide(c *fiber.Ctx) error {
	var req validation.DecideRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	// The authenticated merchant is the default identity.
	if req.Merchant.ID == "" {
		if claims, ok := c.Locals("claims").(*models.MerchantClaims); ok {
			req.Merchant.ID = claims.MerchantID
		}
	}

	payment, err := validation.ValidatePayment(req)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	snap := h.store.Snapshot()

	if h.decisionCache != nil {
		if decision, ok := h.decisionCache.Get(c.Context(), snap.Version, payment); ok {
			decision.TraceID = uuid.NewString()
			return c.JSON(decision)
		}
	}

	decision, err := engine.Decide(payment, snap)
	if err != nil {
		return response.ServerError(c, err.Error())
	}

	if h.decisionCache != nil {
		h.decisionCache.Put(c.Context(), snap.Version, payment, decision)
	}

	// Attached after caching so cached entries stay trace-free and every
	// response gets a fresh audit handle.
	decision.TraceID = uuid.NewString()
	return c.JSON(decision)
}

// Processors handles GET /api/v1/processors: the active catalog and snapshot
// version, for decision auditing.
func (h *DecisionHandler) Processors(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	return c.JSON(fiber.Map{
		"version":    snap.Version,
		"baseline":   snap.Rules.BaselineProcessor,
		"processors": snap.Processors,
	})
}
