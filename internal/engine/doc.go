/*
Package engine contains the routing decision logic: scoring each candidate
processor for a payment and choosing the one expected to minimize fees while
respecting the merchant's settlement and risk constraints.

All functions are pure over an immutable configuration snapshot. A decision
is a single bounded pass over the catalog with no I/O and no hidden state,
so concurrent calls need no synchronization and identical inputs always
produce identical output.

Usage:

	snap, err := config.LoadSnapshotFromFiles("config/processors.json", "config/rules.json")
	if err != nil {
	    log.Fatal(err)
	}

	decision, err := engine.Decide(payment, snap)

Error Handling:

The engine raises typed errors instead of guessing:
  - errors.ErrNoEligibleProcessor: no catalog processor supports the
    requested payment method.

"No processor passes strict constraints" is not an error; it selects a
fallback by highest success rate and says so in Decision.Reason.
*/
package engine
