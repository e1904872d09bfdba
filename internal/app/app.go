package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/CafeBooker/internal/auth"
	"github.com/stpnv0/CafeBooker/internal/config"
	"github.com/stpnv0/CafeBooker/internal/handler"
	"github.com/stpnv0/CafeBooker/internal/idempotency"
	"github.com/stpnv0/CafeBooker/internal/metrics"
	"github.com/stpnv0/CafeBooker/internal/middleware"
	"github.com/stpnv0/CafeBooker/internal/notification"
	"github.com/stpnv0/CafeBooker/internal/repository"
	"github.com/stpnv0/CafeBooker/internal/repository/memory"
	"github.com/stpnv0/CafeBooker/internal/router"
	"github.com/stpnv0/CafeBooker/internal/scheduler"
	"github.com/stpnv0/CafeBooker/internal/service"
	"github.com/stpnv0/CafeBooker/internal/service/ports"
	"github.com/stpnv0/CafeBooker/internal/tracing"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "CafeBooker"
	migrationsDir = "migrations"
)

type App struct {
	cfg           *config.Config
	log           logger.Logger
	db            *dbpg.DB
	redis         *redis.Client
	repo          ports.ReservationRepo
	idempotency   ports.IdempotencyStore
	httpServer    *http.Server
	scheduler     *scheduler.Scheduler
	shutdownTrace func(context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.shutdownTrace, err = tracing.Init(context.Background(), appName, cfg.Tracing.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initIdempotency(); err != nil {
		return nil, fmt.Errorf("init idempotency: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() error {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.repo = memory.NewReservationRepo()
		a.log.Warn("using in-memory storage, bookings are lost on restart")
		return nil
	}

	if err := a.runMigrations(); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return fmt.Errorf("init db: %w", err)
	}

	a.repo = repository.NewReservationRepo(a.db)
	return nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initIdempotency() error {
	if a.cfg.Redis.Addr == "" {
		a.idempotency = idempotency.NewMemoryStore(a.cfg.Redis.IdempotencyTTL)
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("ping redis: %w", err)
	}

	a.redis = client
	a.idempotency = idempotency.NewRedisStore(client, a.cfg.Redis.IdempotencyTTL)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	policy := service.Policy{
		Capacity:    a.cfg.Booking.Capacity,
		MaxDays:     a.cfg.Booking.MaxDays,
		MinSession:  a.cfg.Booking.MinSession,
		MaxSession:  a.cfg.Booking.MaxSession,
		GraceWindow: a.cfg.Booking.GraceWindow,
		Location:    loc,
	}

	availabilityService := service.NewAvailabilityService(a.repo, policy.Capacity)
	reservationService := service.NewReservationService(
		a.repo,
		availabilityService,
		a.idempotency,
		n,
		ports.RealClock{},
		policy,
		a.log,
	)

	a.scheduler = scheduler.New(
		availabilityService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.HorizonDays,
		loc,
		a.log,
	)

	tokens := auth.NewTokenService(a.cfg.Auth.JWTSecret, a.cfg.Auth.AdminEmails)

	h := handler.NewHandler(availabilityService, reservationService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		tracing.Middleware(),
		metrics.Middleware(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.Server.AllowedOrigins),
		middleware.Authenticate(tokens),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "booking policy loaded",
		logger.Int("capacity", policy.Capacity),
		logger.Int("max_days", policy.MaxDays),
		logger.Duration("grace_window", policy.GraceWindow),
		logger.String("timezone", loc.String()),
		logger.String("storage", a.cfg.Storage.Driver),
	)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	if err := a.shutdownTrace(shutdownCtx); err != nil {
		a.log.Warn("tracer shutdown", logger.String("error", err.Error()))
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
