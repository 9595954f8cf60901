package telegram

import (
	"github.com/gin-gonic/gin"

	"darkwave-task-manager/internal/chat"
	pkgLog "darkwave-task-manager/pkg/log"
	pkgTelegram "darkwave-task-manager/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config holds delivery-layer settings.
type Config struct {
	// RateLimitPerMin is the per-chat message budget. Zero disables limiting.
	RateLimitPerMin int

	// HistorySize is the number of recent messages kept per chat for
	// display context.
	HistorySize int
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot *pkgTelegram.Bot, cfg Config) Handler {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = 20
	}

	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
		history: newHistoryStore(cfg.HistorySize),
	}
}
