package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func newMockRepo(t *testing.T) (*ReservationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewReservationRepo(&dbpg.DB{Master: db})
	repo.strategy = retry.Strategy{Attempts: 1}

	return repo, sqlMock
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:                 "r1",
		Date:               "2025-06-01",
		DurationDays:       2,
		TerminalsRequested: 10,
		SessionStart:       "10:00",
		SessionEnd:         "18:00",
		OwnerID:            "u",
		OwnerName:          "Ulla",
		OwnerEmail:         "u@example.com",
		CreatedAt:          time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC),
	}
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_date", "duration_days", "terminals_requested",
		"session_start", "session_end", "owner_id", "owner_name", "owner_email", "created_at",
	})
}

func TestReservationRepository_Create(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	res := sampleReservation()

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservation_days")).
		WithArgs(res.Date).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(res.Date).
		WillReturnRows(sqlmock.NewRows([]string{"booking_date"}).AddRow(res.Date))
	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(terminals_requested), 0)")).
		WithArgs(res.Date).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(30))
	sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(res.ID, res.Date, res.DurationDays, res.TerminalsRequested,
			res.SessionStart, res.SessionEnd, res.OwnerID, res.OwnerName, res.OwnerEmail, res.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	var seen int
	err := repo.Create(context.Background(), res, func(booked int) error {
		seen = booked
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 30, seen)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestReservationRepository_Create_Rejected(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	res := sampleReservation()

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservation_days")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"booking_date"}).AddRow(res.Date))
	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(terminals_requested), 0)")).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(50))
	sqlMock.ExpectRollback()

	full := domain.NewValidationError(domain.ReasonDateFullyBooked, "No computers available on this date.")
	err := repo.Create(context.Background(), res, func(int) error { return full })

	assert.Equal(t, domain.ReasonDateFullyBooked, domain.ReasonOf(err))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestReservationRepository_Create_BeginFails(t *testing.T) {
	repo, sqlMock := newMockRepo(t)

	sqlMock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), sampleReservation(), func(int) error { return nil })

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestReservationRepository_GetByID(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	want := sampleReservation()

	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM reservations")).
		WithArgs("r1").
		WillReturnRows(reservationRows().AddRow(
			want.ID, want.Date, want.DurationDays, want.TerminalsRequested,
			want.SessionStart, want.SessionEnd, want.OwnerID, want.OwnerName, want.OwnerEmail, want.CreatedAt,
		))

	got, err := repo.GetByID(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReservationRepository_GetByID_NotFound(t *testing.T) {
	repo, sqlMock := newMockRepo(t)

	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM reservations")).
		WithArgs("missing").
		WillReturnRows(reservationRows())

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationRepository_ListByOwnerEmail(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	r := sampleReservation()

	sqlMock.ExpectQuery(regexp.QuoteMeta("WHERE lower(owner_email) = lower($1)")).
		WithArgs("U@example.com").
		WillReturnRows(reservationRows().
			AddRow("r2", r.Date, 1, 3, r.SessionStart, r.SessionEnd, r.OwnerID, r.OwnerName, r.OwnerEmail, r.CreatedAt.Add(time.Minute)).
			AddRow(r.ID, r.Date, r.DurationDays, r.TerminalsRequested, r.SessionStart, r.SessionEnd, r.OwnerID, r.OwnerName, r.OwnerEmail, r.CreatedAt))

	list, err := repo.ListByOwnerEmail(context.Background(), "U@example.com")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID)
	assert.Equal(t, "r1", list[1].ID)
}

func TestReservationRepository_List_Empty(t *testing.T) {
	repo, sqlMock := newMockRepo(t)

	sqlMock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, seq ASC")).
		WillReturnRows(reservationRows())

	list, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestReservationRepository_Delete(t *testing.T) {
	repo, sqlMock := newMockRepo(t)

	sqlMock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations")).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations")).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "r1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "r1"), domain.ErrReservationNotFound)
}

func TestReservationRepository_BookedTerminals(t *testing.T) {
	repo, sqlMock := newMockRepo(t)

	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(terminals_requested), 0)")).
		WithArgs("2025-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(17))

	booked, err := repo.BookedTerminals(context.Background(), "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, 17, booked)
}
