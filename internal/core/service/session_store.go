package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
	"github.com/researchnexus/nexus/internal/pkg/metrics"
)

// SessionKey is the storage key holding a profile's persisted identity.
func SessionKey(profileID string) string {
	return fmt.Sprintf("nexus:profile:%s:user", profileID)
}

// SessionStore is the single source of truth for who is logged in on one
// browser profile. It is safe for concurrent use.
//
// Every operation that changes the identity bumps generation. A login,
// signup or restore that finishes after a newer operation started is
// discarded instead of overwriting the newer state.
type SessionStore struct {
	storage  ports.SessionStorage
	provider ports.IdentityProvider
	key      string
	log      zerolog.Logger

	mu         sync.Mutex
	state      domain.SessionState
	identity   *domain.Identity
	errMsg     string
	generation uint64

	restoreOnce sync.Once
}

func NewSessionStore(storage ports.SessionStorage, provider ports.IdentityProvider, key string, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		storage:  storage,
		provider: provider,
		key:      key,
		log:      log.With().Str("session_key", key).Logger(),
		state:    domain.SessionUnresolved,
	}
}

func (s *SessionStore) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *SessionStore) snapshotLocked() domain.Session {
	var identity *domain.Identity
	if s.identity != nil {
		clone := *s.identity
		identity = &clone
	}
	return domain.Session{
		State:    s.state,
		Identity: identity,
		Loading:  s.state == domain.SessionUnresolved || s.state == domain.SessionLoading,
		Error:    s.errMsg,
	}
}

// begin moves the store to loading and returns the generation the caller
// must present when committing its result.
func (s *SessionStore) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = domain.SessionLoading
	s.errMsg = ""
	return s.generation
}

// settleLocked puts the store back into the resting state matching its
// identity.
func (s *SessionStore) settleLocked() {
	if s.identity != nil {
		s.state = domain.SessionAuthenticated
	} else {
		s.state = domain.SessionAnonymous
	}
}

// Restore loads the persisted identity. A missing, unreadable or malformed
// record leaves the store anonymous; the failure is logged, never returned.
func (s *SessionStore) Restore(ctx context.Context) domain.Session {
	gen := s.begin()
	identity, _ := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.discardStale("restore")
		return s.snapshotLocked()
	}
	s.identity = identity
	s.settleLocked()
	return s.snapshotLocked()
}

// Sync brings a resting store in line with storage, which another instance
// sharing it may have changed. The first call performs the initial Restore.
// A store with an operation in flight is left alone, as is one whose record
// could not be read.
func (s *SessionStore) Sync(ctx context.Context) domain.Session {
	first := false
	s.restoreOnce.Do(func() {
		first = true
		s.Restore(ctx)
	})
	if first {
		return s.Snapshot()
	}

	s.mu.Lock()
	if s.state == domain.SessionLoading {
		defer s.mu.Unlock()
		return s.snapshotLocked()
	}
	gen := s.generation
	s.mu.Unlock()

	identity, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || gen != s.generation || s.state == domain.SessionLoading {
		return s.snapshotLocked()
	}
	if !sameIdentity(s.identity, identity) {
		s.log.Debug().Msg("stored user changed, session refreshed")
		s.identity = identity
		s.errMsg = ""
	}
	s.settleLocked()
	return s.snapshotLocked()
}

func sameIdentity(a, b *domain.Identity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.Email == b.Email && a.Name == b.Name &&
		a.Role == b.Role && a.Avatar == b.Avatar && a.CreatedAt.Equal(b.CreatedAt)
}

// load reads the stored identity. Only a failed read is returned as an
// error; an absent or malformed record yields a nil identity.
func (s *SessionStore) load(ctx context.Context) (*domain.Identity, error) {
	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		s.log.Warn().Err(err).Msg("failed to read stored user")
		return nil, err
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		s.log.Warn().Err(err).Msg("failed to parse stored user")
		return nil, nil
	}
	if identity.ID == "" {
		s.log.Warn().Msg("failed to parse stored user: missing id")
		return nil, nil
	}
	if _, err := domain.ParseRole(string(identity.Role)); err != nil {
		s.log.Warn().Err(err).Msg("failed to parse stored user")
		return nil, nil
	}
	return &identity, nil
}

// Login authenticates through the identity provider. Failures are reported
// in the returned snapshot's Error field.
func (s *SessionStore) Login(ctx context.Context, email, password string) domain.Session {
	return s.authenticate(ctx, "login", domain.MsgLoginFailed, func(ctx context.Context) (*domain.Identity, error) {
		return s.provider.Login(ctx, email, password)
	})
}

// Signup registers through the identity provider. Failures are reported in
// the returned snapshot's Error field.
func (s *SessionStore) Signup(ctx context.Context, in ports.SignupInput) domain.Session {
	return s.authenticate(ctx, "signup", domain.MsgSignupFailed, func(ctx context.Context) (*domain.Identity, error) {
		return s.provider.Signup(ctx, in)
	})
}

func (s *SessionStore) authenticate(
	ctx context.Context,
	op, failMsg string,
	call func(context.Context) (*domain.Identity, error),
) domain.Session {
	gen := s.begin()

	identity, err := call(ctx)
	if err == nil && identity == nil {
		err = errors.New("identity provider returned no identity")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.discardStale(op)
		return s.snapshotLocked()
	}

	if err == nil {
		err = s.persistLocked(ctx, identity)
	}
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("authentication failed")
		metrics.SessionOperationsTotal.WithLabelValues(op, "error").Inc()
		s.errMsg = failMsg
		s.settleLocked()
		return s.snapshotLocked()
	}

	clone := *identity
	s.identity = &clone
	s.settleLocked()
	metrics.SessionOperationsTotal.WithLabelValues(op, "ok").Inc()
	s.log.Info().Str("op", op).Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("session started")
	return s.snapshotLocked()
}

func (s *SessionStore) persistLocked(ctx context.Context, identity *domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// Logout clears the identity and removes the persisted record. It also
// invalidates any login or signup still in flight.
func (s *SessionStore) Logout(ctx context.Context) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.identity = nil
	s.errMsg = ""
	s.state = domain.SessionAnonymous
	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.log.Error().Err(err).Msg("failed to remove stored user")
	}
	metrics.SessionOperationsTotal.WithLabelValues("logout", "ok").Inc()
	return s.snapshotLocked()
}

func (s *SessionStore) discardStale(op string) {
	metrics.SessionOperationsTotal.WithLabelValues(op, "stale").Inc()
	s.log.Debug().Str("op", op).Msg("stale result discarded")
}

// SessionRegistry keeps one SessionStore per browser profile. Storage holds
// the durable state, so an idle store can be dropped and rebuilt on the
// next Open.
type SessionRegistry struct {
	storage  ports.SessionStorage
	provider ports.IdentityProvider
	log      zerolog.Logger
	now      func() time.Time

	mu     sync.Mutex
	stores map[string]*registryEntry
}

type registryEntry struct {
	store    *SessionStore
	lastUsed time.Time
}

func NewSessionRegistry(storage ports.SessionStorage, provider ports.IdentityProvider, log zerolog.Logger) *SessionRegistry {
	return &SessionRegistry{
		storage:  storage,
		provider: provider,
		log:      log,
		now:      time.Now,
		stores:   make(map[string]*registryEntry),
	}
}

// Open returns the profile's store, synced with storage. The first Open of
// a profile restores it; concurrent callers wait for that restore to finish.
func (r *SessionRegistry) Open(ctx context.Context, profileID string) ports.SessionStore {
	r.mu.Lock()
	entry, ok := r.stores[profileID]
	if !ok {
		entry = &registryEntry{store: NewSessionStore(r.storage, r.provider, SessionKey(profileID), r.log)}
		r.stores[profileID] = entry
	}
	entry.lastUsed = r.now()
	st := entry.store
	r.mu.Unlock()

	st.Sync(ctx)
	return st
}

// Sweep drops stores unused for longer than idle, keeping any with an
// operation in flight, and reports how many were dropped.
func (r *SessionRegistry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-idle)
	n := 0
	for id, entry := range r.stores {
		if entry.lastUsed.Before(cutoff) && !entry.store.Snapshot().Loading {
			delete(r.stores, id)
			n++
		}
	}
	return n
}
