package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/CafeBooker/internal/domain"
)

// sweepEvery is how many Reserve calls pass between expired-key sweeps.
const sweepEvery = 256

type memoryState struct {
	status        string
	reservationID string
	expiresAt     time.Time
}

type MemoryStore struct {
	mu   sync.Mutex
	keys map[string]*memoryState
	ttl   time.Duration
	now   func() time.Time
	calls int
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		keys: make(map[string]*memoryState),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *MemoryStore) Reserve(ctx context.Context, idempotencyKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.calls++
	if s.calls%sweepEvery == 0 {
		s.sweep(now)
	}

	if state, ok := s.keys[idempotencyKey]; ok && now.Before(state.expiresAt) {
		switch state.status {
		case statusSuccess:
			return state.reservationID, nil
		case statusProcessing:
			return "", domain.ErrRequestInProgress
		}
	}

	s.keys[idempotencyKey] = &memoryState{status: statusProcessing, expiresAt: now.Add(s.ttl)}
	return "", nil
}

func (s *MemoryStore) Complete(ctx context.Context, idempotencyKey, reservationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys[idempotencyKey] = &memoryState{
		status:        statusSuccess,
		reservationID: reservationID,
		expiresAt:     s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Release(ctx context.Context, idempotencyKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.keys, idempotencyKey)
	return nil
}

func (s *MemoryStore) sweep(now time.Time) {
	for k, state := range s.keys {
		if !now.Before(state.expiresAt) {
			delete(s.keys, k)
		}
	}
}
