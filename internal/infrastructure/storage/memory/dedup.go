package memory

import (
	"context"
	"sync"
	"time"
)

const dedupTTL = time.Hour

// DedupChecker is an in-memory idempotency store with a fixed TTL.
type DedupChecker struct {
	mu   sync.Mutex
	seen map[string]time.Time
	now  func() time.Time
}

func NewDedupChecker() *DedupChecker {
	return &DedupChecker{seen: make(map[string]time.Time), now: time.Now}
}

// Claim records the submission and reports whether this caller was first.
// Expired claims are dropped as they are found.
func (d *DedupChecker) Claim(_ context.Context, conversationID, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	id := conversationID + ":" + key
	if exp, ok := d.seen[id]; ok && !now.After(exp) {
		return false, nil
	}
	d.seen[id] = now.Add(dedupTTL)
	if len(d.seen)%256 == 0 {
		d.pruneLocked(now)
	}
	return true, nil
}

func (d *DedupChecker) Release(_ context.Context, conversationID, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, conversationID+":"+key)
	return nil
}

func (d *DedupChecker) pruneLocked(now time.Time) {
	for id, exp := range d.seen {
		if now.After(exp) {
			delete(d.seen, id)
		}
	}
}
