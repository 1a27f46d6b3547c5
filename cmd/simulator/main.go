// Command simulator estimates fee savings by replaying synthetic card
// traffic through the routing engine, offline.
package main

import (
	"flag"
	"log"

	"payrouter/internal/config"
	"payrouter/internal/simulator"
)

func main() {
	var (
		iterations     = flag.Int("n", 5000, "number of simulated payments")
		seed           = flag.Int64("seed", 1, "random seed")
		processorsPath = flag.String("processors", "config/processors.json", "processor catalog file")
		rulesPath      = flag.String("rules", "config/rules.json", "rule config file")
	)
	flag.Parse()

	snap, err := config.LoadSnapshotFromFiles(*processorsPath, *rulesPath)
	if err != nil {
		log.Fatalf("Invalid routing configuration: %v", err)
	}

	summary, err := simulator.Run(snap, simulator.Options{
		Iterations: *iterations,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	log.Printf("Simulated %d card payments against snapshot %s", summary.Iterations, snap.Version)
	log.Printf("Avg %s fee (cents): %.2f", snap.Rules.BaselineProcessor, summary.AvgBaselineFeeCents)
	log.Printf("Avg routed fee (cents): %.2f", summary.AvgRoutedFeeCents)
	log.Printf("Average per-transaction fee reduction: %.2f%%", summary.ReductionPct)
	log.Printf("Choice distribution: %v", summary.ChoiceCounts)
}
