package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier пишет о новых и отмененных бронях в чат администраторов.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or admin chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+"Date: %s (%d day(s))\n"+"Computers: %d\n"+"Session: %s-%s\n"+"By: %s <%s>",
		r.Date, r.DurationDays, r.TerminalsRequested,
		r.SessionStart, r.SessionEnd,
		r.OwnerName, r.OwnerEmail,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation, by *domain.Requester) {
	who := "owner"
	if by.IsAdmin() && !by.Owns(r) {
		who = "admin " + by.Email
	}
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Date: %s\n"+"Computers released: %d\n"+"Owner: %s <%s>\n"+"Cancelled by: %s",
		r.Date, r.TerminalsRequested,
		r.OwnerName, r.OwnerEmail,
		who,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
