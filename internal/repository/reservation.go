package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stpnv0/CafeBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, booking_date, duration_days, terminals_requested,
       session_start, session_end, owner_id, owner_name, owner_email, created_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, admit ports.AdmitFunc) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin tx", err)
	}
	defer tx.Rollback()

	// Блокируем дату, чтобы параллельные брони не прошли проверку по устаревшей сумме
	dayQuery := `INSERT INTO reservation_days (booking_date) VALUES ($1)
			  ON CONFLICT (booking_date) DO NOTHING`
	if _, err = tx.ExecContext(ctx, dayQuery, res.Date); err != nil {
		return unavailable("upsert reservation day", err)
	}

	lockQuery := `SELECT booking_date FROM reservation_days WHERE booking_date = $1 FOR UPDATE`
	var locked string
	if err = tx.QueryRowContext(ctx, lockQuery, res.Date).Scan(&locked); err != nil {
		return unavailable("lock reservation day", err)
	}

	var booked int
	sumQuery := `SELECT COALESCE(SUM(terminals_requested), 0) FROM reservations WHERE booking_date = $1`
	if err = tx.QueryRowContext(ctx, sumQuery, res.Date).Scan(&booked); err != nil {
		return unavailable("sum booked terminals", err)
	}

	if err = admit(booked); err != nil {
		return err
	}

	query := `INSERT INTO reservations (id, booking_date, duration_days, terminals_requested,
			  session_start, session_end, owner_id, owner_name, owner_email, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query, res.ID, res.Date, res.DurationDays, res.TerminalsRequested,
		res.SessionStart, res.SessionEnd, res.OwnerID, res.OwnerName, res.OwnerEmail, res.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Message)
		}
		return unavailable("insert booking", err)
	}

	if err = tx.Commit(); err != nil {
		return unavailable("commit", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, unavailable("get booking", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, unavailable("scan booking", err)
	}

	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
              FROM reservations
              ORDER BY created_at DESC, seq ASC`

	return r.list(ctx, query)
}

func (r *ReservationRepository) ListByOwnerEmail(ctx context.Context, email string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
              FROM reservations
              WHERE lower(owner_email) = lower($1)
              ORDER BY created_at DESC, seq ASC`

	return r.list(ctx, query, email)
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, unavailable("list bookings", err)
	}
	defer rows.Close()

	res := make([]*domain.Reservation, 0)
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, unavailable("scan booking", err)
		}
		res = append(res, item)
	}

	if err = rows.Err(); err != nil {
		return nil, unavailable("iterate bookings", err)
	}
	return res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return unavailable("delete booking", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return unavailable("booking rows affected", err)
	}
	if n == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) BookedTerminals(ctx context.Context, date string) (int, error) {
	query := `SELECT COALESCE(SUM(terminals_requested), 0)
			  FROM reservations
			  WHERE booking_date = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, date)
	if err != nil {
		return 0, unavailable("sum booked terminals", err)
	}

	var booked int
	if err = row.Scan(&booked); err != nil {
		return 0, unavailable("scan booked terminals", err)
	}

	return booked, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := s.Scan(
		&res.ID, &res.Date, &res.DurationDays, &res.TerminalsRequested,
		&res.SessionStart, &res.SessionEnd,
		&res.OwnerID, &res.OwnerName, &res.OwnerEmail, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
