package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"payrouter/internal/models"
)

// DecisionCache caches computed decisions. Routing is deterministic over
// (payment, snapshot), so a decision may be replayed for an identical
// payment as long as the snapshot version is part of the key. Entries are
// short-lived; this is a response cache, not a decision ledger.
type DecisionCache struct {
	cache *Service
	ttl   time.Duration
}

func NewDecisionCache(cache *Service, ttl time.Duration) *DecisionCache {
	return &DecisionCache{cache: cache, ttl: ttl}
}

// Key derives the cache key from the snapshot version and a fingerprint of
// the canonical payment encoding.
func (c *DecisionCache) Key(snapshotVersion string, payment models.Payment) string {
	payload, err := json.Marshal(payment)
	if err != nil {
		// Payment is a plain data struct; marshalling cannot realistically
		// fail, but an unkeyable payment must never hit a shared entry.
		return fmt.Sprintf("decision:%s:unkeyed:%d", snapshotVersion, time.Now().UnixNano())
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("decision:%s:%s", snapshotVersion, hex.EncodeToString(sum[:])[:16])
}

// Get returns a previously computed decision for the identical payment under
// the identical snapshot, if present.
func (c *DecisionCache) Get(ctx context.Context, snapshotVersion string, payment models.Payment) (*models.Decision, bool) {
	var decision models.Decision
	found, err := c.cache.Get(ctx, c.Key(snapshotVersion, payment), &decision)
	if err != nil {
		log.Printf("decision cache read failed: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &decision, true
}

// Put stores a decision. Failures are logged and ignored; the cache is never
// load-bearing.
func (c *DecisionCache) Put(ctx context.Context, snapshotVersion string, payment models.Payment, decision *models.Decision) {
	if err := c.cache.SetWithTTL(ctx, c.Key(snapshotVersion, payment), decision, c.ttl); err != nil {
		log.Printf("decision cache write failed: %v", err)
	}
}
