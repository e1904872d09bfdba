package notification

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:                 "r1",
		Date:               "2030-06-01",
		DurationDays:       2,
		TerminalsRequested: 10,
		SessionStart:       "10:00",
		SessionEnd:         "18:00",
		OwnerName:          "Alice",
		OwnerEmail:         "alice@example.com",
	}
}

func TestNewTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))
	require.NoError(t, err)

	// no bot, must not panic
	n.NotifyReservationCreated(context.Background(), testReservation())
}

func TestTelegramNotifier_Created(t *testing.T) {
	s := &fakeSender{}
	n := &TelegramNotifier{bot: s, chatID: 42, logger: newTestLogger(t)}

	n.NotifyReservationCreated(context.Background(), testReservation())

	require.Len(t, s.sent, 1)
	assert.Equal(t, int64(42), s.sent[0].ChatID)
	assert.Equal(t, "Markdown", s.sent[0].ParseMode)
	assert.Contains(t, s.sent[0].Text, "2030-06-01")
	assert.Contains(t, s.sent[0].Text, "Computers: 10")
	assert.Contains(t, s.sent[0].Text, "alice@example.com")
}

func TestTelegramNotifier_CancelledByAdmin(t *testing.T) {
	s := &fakeSender{}
	n := &TelegramNotifier{bot: s, chatID: 42, logger: newTestLogger(t)}

	admin := &domain.Requester{Email: "boss@example.com", Role: domain.RoleAdmin}
	n.NotifyReservationCancelled(context.Background(), testReservation(), admin)

	require.Len(t, s.sent, 1)
	assert.Contains(t, s.sent[0].Text, "admin boss@example.com")
}

func TestTelegramNotifier_CancelledByOwner(t *testing.T) {
	s := &fakeSender{}
	n := &TelegramNotifier{bot: s, chatID: 42, logger: newTestLogger(t)}

	owner := &domain.Requester{Email: "alice@example.com", Role: domain.RoleUser}
	n.NotifyReservationCancelled(context.Background(), testReservation(), owner)

	require.Len(t, s.sent, 1)
	assert.Contains(t, s.sent[0].Text, "Cancelled by: owner")
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	s := &fakeSender{}
	n := &TelegramNotifier{bot: s, chatID: 42, logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyReservationCreated(ctx, testReservation())

	assert.Empty(t, s.sent)
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	s := &fakeSender{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: s, chatID: 42, logger: newTestLogger(t)}

	n.NotifyReservationCreated(context.Background(), testReservation())

	assert.Len(t, s.sent, 1)
}
