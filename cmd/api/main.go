package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"focusflow/config"
	_ "focusflow/docs" // Swagger docs
	"focusflow/internal/httpserver"
	"focusflow/internal/session/repository"
	"focusflow/internal/session/repository/inmem"
	"focusflow/internal/session/repository/postgre"
	"focusflow/internal/session/repository/sqlite"
	sessionUC "focusflow/internal/session/usecase"
	"focusflow/pkg/gcalendar"
	"focusflow/pkg/log"
	"focusflow/pkg/openai"
)

// @title       Focus Flow API
// @description AI-powered deep work assistant.
// @version     0.1.0
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

	logger.Info(ctx, "Starting Focus Flow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Session store
	sessionRepo, db, err := openSessionRepo(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open session store: %v", err)
		return
	}
	if db != nil {
		defer db.Close()
	}

	// 4. OpenAI client (optional; breakdown reports 503 without it)
	var llm openai.IOpenAI
	if cfg.OpenAI.IsConfigured() {
		client, oaErr := openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
		})
		if oaErr != nil {
			logger.Warnf(ctx, "OpenAI client not available: %v", oaErr)
		} else {
			llm = client
			logger.Info(ctx, "OpenAI client initialized")
		}
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY not set, task breakdown disabled")
	}

	// 5. Google Calendar client (optional; calendar-link still works without it)
	var calendar sessionUC.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		CORSOrigin:         cfg.HTTPServer.CORSOrigin,
		SessionRepo:        sessionRepo,
		Calendar:           calendar,
		CalendarID:         cfg.GoogleCalendar.CalendarID,
		LLM:                llm,
		OpenAIModel:        cfg.OpenAI.Model,
		BreakdownRateLimit: cfg.Breakdown.RateLimitPerMin,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openSessionRepo picks the store backing from config. The returned DB
// handle is nil for the in-memory backing.
func openSessionRepo(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.Repository, *sql.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping postgres: %w", err)
		}
		repo, err := postgre.New(db, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info(ctx, "Session store: postgres")
		return repo, db, nil

	case "memory":
		logger.Warn(ctx, "Session store: in-memory, sessions are lost on restart")
		return inmem.New(), nil, nil

	default:
		repo, db, err := sqlite.New(cfg.Database.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof(ctx, "Session store: sqlite (%s)", cfg.Database.Path)
		return repo, db, nil
	}
}
