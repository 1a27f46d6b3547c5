// Package routes defines the API routing configuration.
package routes

import (
	"time"

	"payrouter/internal/config"
	"payrouter/internal/handlers"
	"payrouter/internal/middleware"
	"payrouter/internal/repositories"
	"payrouter/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires all HTTP routes and their middleware.
func SetupRoutes(app *fiber.App, store *config.Store) {
	var decisionCache *cache.DecisionCache
	if repositories.CacheService != nil {
		ttl := time.Duration(config.GetIntEnv("DECISION_CACHE_TTL_SECONDS", 60)) * time.Second
		decisionCache = cache.NewDecisionCache(repositories.CacheService, ttl)
	}

	decisionHandler := handlers.NewDecisionHandler(store, decisionCache)

	app.Get("/health", handlers.HealthCheck(store))

	api := app.Group("/api/v1")

	// AUTH_DISABLED exists for local development and the simulator harness;
	// production deployments keep merchant JWTs on.
	if !config.GetBoolEnv("AUTH_DISABLED", false) {
		authMiddleware := middleware.NewAuthMiddleware(config.GetEnv("JWT_SECRET", "payrouter"))
		api.Use(authMiddleware.Handler)
	}

	api.Post("/decide", decisionHandler.Decide)
	api.Get("/processors", decisionHandler.Processors)
}
