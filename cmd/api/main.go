package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aufgabe/config"
	_ "aufgabe/docs" // Swagger docs
	"aufgabe/internal/httpserver"
	"aufgabe/internal/parser"
	"aufgabe/internal/reminder"
	"aufgabe/internal/suggest"
	"aufgabe/internal/task/repository/sqlite"
	"aufgabe/internal/task/usecase"
	"aufgabe/pkg/gcalendar"
	"aufgabe/pkg/log"
)

const maxSuggestionPatterns = 512

// @title       Aufgabe API
// @description Natural-language task management: German/English text in, structured tasks with dates, recurrences and reminders out.
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

	logger.Info(ctx, "Starting Aufgabe...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser
	textParser, err := parser.New(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		textParser, _ = parser.New("UTC")
	}

	// 4. Storage
	taskRepo, err := sqlite.New(cfg.Store.Path, textParser.Location(), logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open task store: %v", err)
	}
	defer taskRepo.Close()

	// 5. Suggestion engine
	engine, err := suggest.New(logger, maxSuggestionPatterns)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create suggestion engine: %v", err)
	}

	// 6. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Task UseCase
	taskUC := usecase.New(logger, taskRepo, textParser, engine, calendarClient, cfg.GoogleCalendar.CalendarID)

	// 8. Reminder scanner
	if cfg.Reminder.Enabled {
		scanner := reminder.NewScanner(
			logger,
			taskRepo,
			reminder.NewLogNotifier(logger),
			time.Duration(cfg.Reminder.LeadMinutes)*time.Minute,
		)
		if err := scanner.Start(cfg.Reminder.CronSpec); err != nil {
			logger.Fatalf(ctx, "Failed to start reminder scanner: %v", err)
		}
		defer scanner.Stop()
		logger.Infof(ctx, "Reminder scanner running (%s, lead %dm)", cfg.Reminder.CronSpec, cfg.Reminder.LeadMinutes)
	}

	// 9. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskUseCase: taskUC,
		Suggester:   engine,
		Location:    textParser.Location(),
		AuthToken:   cfg.Auth.Token,
		RatePerMin:  cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create http server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "http server stopped: %v", err)
	}
	logger.Info(ctx, "Shutdown complete")
}
