package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"darkwave-task-manager/internal/chat"
	"darkwave-task-manager/internal/model"
	pkgLog "darkwave-task-manager/pkg/log"
	pkgResponse "darkwave-task-manager/pkg/response"
	pkgTelegram "darkwave-task-manager/pkg/telegram"
)

type handler struct {
	l       pkgLog.Logger
	uc      chat.UseCase
	bot     *pkgTelegram.Bot
	limiter *rateLimiter
	history *historyStore
}

const (
	startMessage = "👋 Welcome to *DarkWave Task Manager*!\n\n" +
		"Send me a task in plain language and I'll create it in Todoist with " +
		"priorities, due dates, and labels filled in.\n\n" +
		"_Examples:_\n" +
		"• \"Buy groceries tomorrow\"\n" +
		"• \"URGENT: finish the report by Friday\"\n" +
		"• \"What tasks do I have due today?\""

	helpMessage = "*How to use:*\n\n" +
		"*Create tasks* — describe what you need to do:\n" +
		"`Call dentist at 2pm`\n\n" +
		"*View tasks* — ask about your list:\n" +
		"`show tasks due today` or `list tasks labeled work`\n\n" +
		"I'll infer the priority, due date, and labels for you."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within a few seconds,
// while the extraction pipeline (LLM + Todoist) can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	if err := h.limiter.Allow(msg.Chat.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		pkgResponse.OK(c, map[string]string{"status": "rate_limited"})
		return
	}

	// Critical: process in goroutine, return 200 immediately to Telegram
	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, startMessage, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpMessage, "Markdown")
	}

	var userID int64
	var username string
	if msg.From != nil {
		userID = msg.From.ID
		username = msg.From.Username
	}
	sc := model.NewScope(userID, username, msg.Chat.ID)

	input := chat.ProcessInput{
		Text:    msg.Text,
		History: h.history.Get(msg.Chat.ID),
	}
	h.history.Append(msg.Chat.ID, msg.Text)

	output, err := h.uc.Process(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: request_id=%s process failed: %v", sc.RequestID, err)
		reply := userMessage(err)
		h.history.Append(msg.Chat.ID, reply)
		return h.bot.SendMessageWithMode(msg.Chat.ID, reply, "Markdown")
	}

	h.history.Append(msg.Chat.ID, output.Reply)
	return h.bot.SendMessageWithMode(msg.Chat.ID, output.Reply, "Markdown")
}
