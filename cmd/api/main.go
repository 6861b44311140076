package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nl-task-parser/config"
	_ "nl-task-parser/docs" // Swagger docs
	"nl-task-parser/internal/httpserver"
	"nl-task-parser/internal/middleware"
	"nl-task-parser/internal/nlparser"
	tgDelivery "nl-task-parser/internal/task/delivery/telegram"
	"nl-task-parser/internal/task/usecase"
	"nl-task-parser/pkg/datemath"
	"nl-task-parser/pkg/log"
	"nl-task-parser/pkg/telegram"
)

// @title       Task Parser API
// @description Turns one free-text line into a structured task in 13 languages.
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

	logger.Info(ctx, "Starting task parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	dateParser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Error(ctx, "Failed to initialize date parser: ", err)
		return
	}
	location, _ := time.LoadLocation(cfg.Parser.Timezone)

	parser := nlparser.New(dateParser, nlparser.WithPlaceholder(cfg.Parser.PlaceholderTitle))
	taskUC := usecase.New(logger, parser, usecase.Config{
		DefaultLanguage: cfg.Parser.DefaultLanguage,
		Location:        location,
		MaxInputLength:  cfg.Parser.MaxInputLength,
		CacheSize:       cfg.Cache.Size,
		CacheTTL:        cfg.Cache.TTL,
	})

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, bot)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, middleware.Config{RequestsPerMin: cfg.RateLimit.RequestsPerMin}),
		TaskUseCase:     taskUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service, discovering the public URL
// through ngrok when none is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL unknown, skipping registration")
		return
	}
	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
