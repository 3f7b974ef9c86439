package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for chat submissions backed by Redis.
// Key format: nexus:dedup:<conversation_id>:<idempotency_key>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// Claim atomically records the submission and reports whether this caller
// was first. The claim expires after dedupTTL.
func (d *DedupChecker) Claim(ctx context.Context, conversationID, key string) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(conversationID, key), "1", dedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("dedup claim: %w", err)
	}
	return ok, nil
}

// Release drops a claim whose submission was not accepted.
func (d *DedupChecker) Release(ctx context.Context, conversationID, key string) error {
	if err := d.client.Del(ctx, d.key(conversationID, key)).Err(); err != nil {
		return fmt.Errorf("dedup release: %w", err)
	}
	return nil
}

func (d *DedupChecker) key(conversationID, key string) string {
	return fmt.Sprintf("nexus:dedup:%s:%s", conversationID, key)
}
