package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"darkwave-task-manager/config"
	_ "darkwave-task-manager/docs" // Swagger docs
	tgDelivery "darkwave-task-manager/internal/chat/delivery/telegram"
	"darkwave-task-manager/internal/chat/usecase"
	"darkwave-task-manager/internal/extract"
	"darkwave-task-manager/internal/httpserver"
	todoistRepo "darkwave-task-manager/internal/task/repository/todoist"
	"darkwave-task-manager/pkg/llmprovider"
	"darkwave-task-manager/pkg/log"
	"darkwave-task-manager/pkg/telegram"
)

// @title       DarkWave Task Manager API
// @description Natural-language task management with Telegram, Todoist, and an LLM provider chain.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting DarkWave Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Chat domain
	var telegramHandler tgDelivery.Handler

	if cfg.Telegram.BotToken != "" && cfg.Todoist.APIToken != "" {
		logger.Info(ctx, "Initializing chat pipeline...")

		// Telegram Bot client
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

		// LLM provider chain
		providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
		if provErr != nil {
			logger.Error(ctx, "Failed to initialize LLM providers: ", provErr)
			return
		}

		retryDelay, delayErr := time.ParseDuration(cfg.LLM.RetryDelay)
		if delayErr != nil {
			logger.Warnf(ctx, "Invalid llm.retry_delay %q, using 1s: %v", cfg.LLM.RetryDelay, delayErr)
			retryDelay = time.Second
		}
		maxTotalTimeout, timeoutErr := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		if timeoutErr != nil {
			logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, using 60s: %v", cfg.LLM.MaxTotalTimeout, timeoutErr)
			maxTotalTimeout = 60 * time.Second
		}

		llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTotalTimeout,
		}, logger)

		// Task field extractor
		extractor := extract.New(logger, llmManager)

		// Todoist repository
		todoistClient := todoistRepo.NewClient(cfg.Todoist.URL, cfg.Todoist.APIToken)
		taskRepo := todoistRepo.New(todoistClient, logger)

		// Chat UseCase
		chatUC := usecase.New(logger, extractor, taskRepo)

		// Telegram Delivery handler
		telegramHandler = tgDelivery.New(logger, chatUC, telegramBot, tgDelivery.Config{
			RateLimitPerMin: cfg.Chat.RateLimitPerMin,
			HistorySize:     cfg.Chat.HistorySize,
		})

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}

		logger.Info(ctx, "Chat pipeline initialized successfully")
	} else {
		logger.Warn(ctx, "Chat pipeline skipped: TELEGRAM_BOT_TOKEN or TODOIST_API_TOKEN is missing")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
