// Command seed loads the processor catalog JSON and writes it to Postgres so
// the server can run with CATALOG_SOURCE=db.
package main

import (
	"context"
	"log"
	"os"

	"payrouter/internal/config"
	"payrouter/internal/repositories"
)

func main() {
	config.LoadEnv()

	processorsPath := config.GetEnv("PROCESSORS_FILE", "config/processors.json")

	data, err := os.ReadFile(processorsPath)
	if err != nil {
		log.Fatalf("Failed to read processor catalog: %v", err)
	}
	processors, err := config.ParseProcessors(data)
	if err != nil {
		log.Fatalf("Invalid processor catalog: %v", err)
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repositories.CloseAll()

	repo := repositories.NewProcessorRepository(repositories.DB)
	if err := repo.Replace(context.Background(), processors); err != nil {
		log.Fatalf("Failed to seed processor catalog: %v", err)
	}

	log.Printf("✅ Seeded %d processors from %s", len(processors), processorsPath)
}
