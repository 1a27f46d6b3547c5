// Package main is the entry point for the routing service.
// It loads the configuration snapshot, initializes the optional storage
// backends, and starts the HTTP server.
package main

import (
	"context"
	"log"

	"payrouter/internal/config"
	"payrouter/internal/repositories"
	"payrouter/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	processorsPath := config.GetEnv("PROCESSORS_FILE", "config/processors.json")
	rulesPath := config.GetEnv("RULES_FILE", "config/rules.json")

	var store *config.Store

	// The catalog comes from JSON files by default; CATALOG_SOURCE=db serves
	// it from Postgres instead. Rules always come from the rules file, and
	// both halves are committed together as one snapshot.
	if config.GetEnv("CATALOG_SOURCE", "file") == "db" {
		if err := repositories.InitDB(); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		catalog, err := repositories.NewProcessorRepository(repositories.DB).Catalog(context.Background())
		if err != nil {
			log.Fatalf("Failed to load processor catalog from database: %v", err)
		}

		rules, err := config.ParseRulesFile(rulesPath)
		if err != nil {
			log.Fatalf("Failed to load rule config: %v", err)
		}

		snap, err := config.NewSnapshot(catalog, rules)
		if err != nil {
			log.Fatalf("Invalid routing configuration: %v", err)
		}
		store = config.NewStore(snap)
	} else {
		var err error
		store, err = config.NewStoreFromFiles(processorsPath, rulesPath)
		if err != nil {
			log.Fatalf("Invalid routing configuration: %v", err)
		}
	}
	log.Printf("✅ Routing snapshot %s loaded (%d processors, baseline %s)",
		store.Snapshot().Version, len(store.Snapshot().Processors), store.Snapshot().Rules.BaselineProcessor)

	// Redis response cache is optional; the service runs without it.
	if !config.GetBoolEnv("CACHE_DISABLED", false) {
		repositories.InitCache()
	}
	defer repositories.CloseAll()

	// Create Fiber app
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Routes
	routes.SetupRoutes(app, store)

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
