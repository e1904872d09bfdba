package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

type availabilityReader interface {
	Get(ctx context.Context, date string) (*domain.Availability, error)
}

// Scheduler периодически пересчитывает свободные терминалы на ближайшие дни
// и публикует их в метрику. Брони он не изменяет.
type Scheduler struct {
	availability availabilityReader
	interval     time.Duration
	horizonDays  int
	location     *time.Location
	now          func() time.Time
	published    map[string]struct{}
	logger       logger.Logger
}

func New(
	availability availabilityReader,
	interval time.Duration,
	horizonDays int,
	location *time.Location,
	logger logger.Logger,
) *Scheduler {
	if location == nil {
		location = time.Local
	}
	return &Scheduler{
		availability: availability,
		interval:     interval,
		horizonDays:  horizonDays,
		location:     location,
		now:          time.Now,
		published:    make(map[string]struct{}),
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Int("horizon_days", s.horizonDays),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// dates returns today and the following horizonDays days.
func (s *Scheduler) dates() []string {
	y, m, d := s.now().In(s.location).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, s.location)

	out := make([]string, 0, s.horizonDays+1)
	for i := 0; i <= s.horizonDays; i++ {
		out = append(out, today.AddDate(0, 0, i).Format(domain.DateLayout))
	}
	return out
}

func (s *Scheduler) tick(ctx context.Context) {
	current := make(map[string]struct{}, s.horizonDays+1)

	for _, date := range s.dates() {
		a, err := s.availability.Get(ctx, date)
		if err != nil {
			s.logger.Error("failed to refresh availability",
				logger.String("date", date),
				logger.String("error", err.Error()),
			)
			return
		}

		metrics.TerminalsAvailable.WithLabelValues(date).Set(float64(a.Available))
		current[date] = struct{}{}

		if a.FullyBooked() {
			s.logger.Debug("date fully booked",
				logger.String("date", date),
				logger.Int("total_booked", a.TotalBooked),
			)
		}
	}

	// дни, вышедшие из окна, убираем из метрики
	for date := range s.published {
		if _, ok := current[date]; !ok {
			metrics.TerminalsAvailable.DeleteLabelValues(date)
		}
	}
	s.published = current
}
