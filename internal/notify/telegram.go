package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vodeneev/livescores/internal/pkg/models"
)

// Min interval between any two Telegram messages to the same chat to avoid
// 429 Too Many Requests (~30/min limit).
const telegramSendInterval = 2 * time.Second

// TelegramNotifier posts live feed updates to a Telegram chat. Messages go
// through a buffered queue drained by a rate-limited background worker, so
// the refresh loop never blocks on Telegram.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64

	queue chan string
	done  chan struct{}
	wg    sync.WaitGroup

	mu        sync.Mutex
	lastCount int
	hasCount  bool
}

// NewTelegramNotifier creates a new Telegram notifier. Returns nil when the
// bot cannot be reached; the service runs fine without notifications.
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}

	bot.Debug = false

	// Test bot connection
	if _, err := bot.GetMe(); err != nil {
		slog.Error("Failed to get bot info", "error", err)
		return nil
	}

	n := &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		queue:  make(chan string, 100),
		done:   make(chan struct{}),
	}

	n.wg.Add(1)
	go n.messageSender()

	slog.Info("Telegram notifier initialized", "chat_id", chatID)
	return n
}

// NotifyRefresh queues a summary message when the number of live matches
// changed since the previous refresh. Unchanged counts stay silent so the
// chat is not flooded every interval.
func (n *TelegramNotifier) NotifyRefresh(matches []models.DisplayMatch) {
	if n == nil {
		return
	}

	n.mu.Lock()
	changed := !n.hasCount || n.lastCount != len(matches)
	n.lastCount = len(matches)
	n.hasCount = true
	n.mu.Unlock()

	if !changed {
		return
	}

	n.enqueue(buildRefreshSummary(matches))
}

func (n *TelegramNotifier) enqueue(text string) {
	select {
	case n.queue <- text:
	default:
		slog.Warn("Telegram queue full, dropping message")
	}
}

func (n *TelegramNotifier) messageSender() {
	defer n.wg.Done()

	var lastSend time.Time
	for {
		select {
		case <-n.done:
			return
		case text := <-n.queue:
			if wait := telegramSendInterval - time.Since(lastSend); wait > 0 {
				time.Sleep(wait)
			}
			msg := tgbotapi.NewMessage(n.chatID, text)
			if _, err := n.bot.Send(msg); err != nil {
				slog.Error("Failed to send telegram message", "error", err)
			}
			lastSend = time.Now()
		}
	}
}

// Close stops the background sender. Queued messages are discarded.
func (n *TelegramNotifier) Close() {
	if n == nil {
		return
	}
	close(n.done)
	n.wg.Wait()
}

func buildRefreshSummary(matches []models.DisplayMatch) string {
	if len(matches) == 0 {
		return "⚽ No live matches right now"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚽ %d live matches:\n", len(matches))
	for _, m := range matches {
		fmt.Fprintf(&b, "%s %s vs %s %s (%s)\n", m.Minute, m.Home, m.Away, m.Score, m.League)
	}
	return strings.TrimRight(b.String(), "\n")
}
