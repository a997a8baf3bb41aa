package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tattooBooker/internal/lib/logger/sl"
	"tattooBooker/internal/models"

	"github.com/go-telegram/bot"
)

// TelegramNotifier pings the studio chat when a new booking request arrives,
// so nobody has to keep the admin page open. An empty token disables it.
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
	log    *slog.Logger
}

func NewTelegramNotifier(token string, chatID int64, log *slog.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{log: log}, nil
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: b, chatID: chatID, log: log}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *models.Booking) {
	artist := fmt.Sprintf("#%d", b.ArtistID)
	if b.Artist != nil {
		artist = b.Artist.Name
	}

	text := fmt.Sprintf(
		"New booking request\n\nArtist: %s\nSlot: %s (UTC)\nClient: %s (%s)\nTattoo: %s",
		artist,
		b.Datetime.Format("02.01.2006 15:04"),
		b.Name,
		b.Phone,
		b.Tattoo,
	)

	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.log.Debug("notification skipped (bot disabled)")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		n.log.Error("failed to send telegram notification", sl.Err(err))
	}
}
