package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/repository/memory"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type nopNotifier struct{}

func (nopNotifier) NotifyReservationCreated(context.Context, *domain.Reservation) {}

func (nopNotifier) NotifyReservationCancelled(context.Context, *domain.Reservation, *domain.Requester) {
}

func testPolicy(capacity int) Policy {
	p := DefaultPolicy()
	p.Capacity = capacity
	p.Location = time.UTC
	return p
}

// testEnv is a service stack backed by the in-memory store.
type testEnv struct {
	repo         *memory.ReservationRepository
	availability *AvailabilityService
	svc          *ReservationService
	clock        *fakeClock
}

func newTestEnv(t *testing.T, capacity int) *testEnv {
	t.Helper()

	repo := memory.NewReservationRepo()
	clock := newFakeClock(time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC))
	availability := NewAvailabilityService(repo, capacity)
	svc := NewReservationService(repo, availability, nil, nopNotifier{}, clock, testPolicy(capacity), newTestLogger(t))

	return &testEnv{repo: repo, availability: availability, svc: svc, clock: clock}
}

var (
	userU = &domain.Requester{ID: "u", Name: "Ulla", Email: "u@example.com", Role: domain.RoleUser}
	userV = &domain.Requester{ID: "v", Name: "Vik", Email: "v@example.com", Role: domain.RoleUser}
	admin = &domain.Requester{ID: "a", Name: "Root", Email: "admin@example.com", Role: domain.RoleAdmin}
)

func validInput(date string, terminals int) domain.CreateReservationInput {
	return domain.CreateReservationInput{
		Date:               date,
		DurationDays:       2,
		TerminalsRequested: terminals,
		SessionStart:       "10:00",
		SessionEnd:         "18:00",
	}
}
