package handlers

import (
	"payrouter/internal/config"
	"payrouter/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports service status and the active snapshot version.
func HealthCheck(store *config.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := "disabled"
		if repositories.DB != nil {
			db = "connected"
		}
		redis := "disabled"
		if repositories.CacheService != nil {
			redis = "connected"
		}

		return c.JSON(fiber.Map{
			"status":           "ok",
			"snapshot_version": store.Snapshot().Version,
			"services": fiber.Map{
				"database": db,
				"redis":    redis,
			},
		})
	}
}
