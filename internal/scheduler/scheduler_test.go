package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/metrics"
	"github.com/stpnv0/CafeBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func fixedNow(s *Scheduler, date string) {
	day, _ := time.ParseInLocation(domain.DateLayout, date, time.UTC)
	s.now = func() time.Time { return day.Add(15 * time.Hour) }
}

func TestScheduler_Dates(t *testing.T) {
	s := New(mocks.NewMockAvailabilityReader(t), time.Second, 2, time.UTC, newTestLogger(t))
	fixedNow(s, "2031-12-31")

	assert.Equal(t, []string{"2031-12-31", "2032-01-01", "2032-01-02"}, s.dates())
}

func TestScheduler_Tick_PublishesGauge(t *testing.T) {
	reader := mocks.NewMockAvailabilityReader(t)
	s := New(reader, time.Second, 1, time.UTC, newTestLogger(t))
	fixedNow(s, "2031-03-01")

	reader.EXPECT().Get(mock.Anything, "2031-03-01").
		Return(&domain.Availability{Date: "2031-03-01", TotalBooked: 10, Available: 40, TotalComputers: 50}, nil)
	reader.EXPECT().Get(mock.Anything, "2031-03-02").
		Return(&domain.Availability{Date: "2031-03-02", TotalBooked: 50, Available: 0, TotalComputers: 50}, nil)

	s.tick(context.Background())

	assert.Equal(t, float64(40), testutil.ToFloat64(metrics.TerminalsAvailable.WithLabelValues("2031-03-01")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.TerminalsAvailable.WithLabelValues("2031-03-02")))
}

func TestScheduler_Tick_DropsDatesOutsideWindow(t *testing.T) {
	reader := mocks.NewMockAvailabilityReader(t)
	s := New(reader, time.Second, 0, time.UTC, newTestLogger(t))

	reader.EXPECT().Get(mock.Anything, mock.Anything).
		Return(&domain.Availability{Available: 50, TotalComputers: 50}, nil)

	fixedNow(s, "2031-04-01")
	s.tick(context.Background())
	fixedNow(s, "2031-04-02")
	s.tick(context.Background())

	assert.Contains(t, s.published, "2031-04-02")
	assert.NotContains(t, s.published, "2031-04-01")
	assert.False(t, metrics.TerminalsAvailable.DeleteLabelValues("2031-04-01"), "stale label should already be gone")
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	reader := mocks.NewMockAvailabilityReader(t)
	s := New(reader, time.Second, 3, time.UTC, newTestLogger(t))
	fixedNow(s, "2031-05-01")

	reader.EXPECT().Get(mock.Anything, "2031-05-01").Return(nil, errors.New("db error")).Once()

	s.tick(context.Background())

	// stops at the first failure
	assert.Len(t, reader.Calls, 1)
}

func TestScheduler_Start_Ticks(t *testing.T) {
	reader := mocks.NewMockAvailabilityReader(t)
	s := New(reader, 30*time.Millisecond, 0, time.UTC, newTestLogger(t))

	reader.EXPECT().Get(mock.Anything, mock.Anything).
		Return(&domain.Availability{Available: 50, TotalComputers: 50}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reader.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reader := mocks.NewMockAvailabilityReader(t)
	s := New(reader, time.Second, 0, time.UTC, newTestLogger(t)) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
