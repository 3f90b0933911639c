package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"life-balance-planner/config"
	_ "life-balance-planner/docs" // Swagger docs
	"life-balance-planner/internal/advisory"
	advisoryHTTP "life-balance-planner/internal/advisory/delivery/http"
	advisoryTelegram "life-balance-planner/internal/advisory/delivery/telegram"
	"life-balance-planner/internal/balance"
	documentHTTP "life-balance-planner/internal/document/delivery/http"
	documentRepo "life-balance-planner/internal/document/repository/memory"
	documentUC "life-balance-planner/internal/document/usecase"
	"life-balance-planner/internal/httpserver"
	"life-balance-planner/internal/janitor"
	"life-balance-planner/internal/middleware"
	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation/analyzer"
	recommendationHTTP "life-balance-planner/internal/recommendation/delivery/http"
	recommendationRepo "life-balance-planner/internal/recommendation/repository/memory"
	recommendationUC "life-balance-planner/internal/recommendation/usecase"
	scheduleHTTP "life-balance-planner/internal/schedule/delivery/http"
	scheduleRepo "life-balance-planner/internal/schedule/repository/memory"
	scheduleUC "life-balance-planner/internal/schedule/usecase"
	taskHTTP "life-balance-planner/internal/task/delivery/http"
	taskRepo "life-balance-planner/internal/task/repository/memory"
	taskUC "life-balance-planner/internal/task/usecase"
	"life-balance-planner/pkg/agent"
	"life-balance-planner/pkg/datemath"
	"life-balance-planner/pkg/gcalendar"
	"life-balance-planner/pkg/log"
	"life-balance-planner/pkg/telegram"
)

// @title       Life Balance Planner API
// @description Tasks, balance tracking, schedules, document ingestion and recommendations.
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

	logger.Info(ctx, "Starting Life Balance Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Agent URL: %s", cfg.Agent.URL)

	// 3. Shared infrastructure
	bus := advisory.NewBus(logger, cfg.Advisory.HistorySize)

	parser, err := datemath.NewParser(cfg.Schedule.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Schedule.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	mw := middleware.New(logger, middleware.Config{
		JWTSecret:             cfg.Auth.JWTSecret,
		UploadRateLimitPerMin: cfg.Upload.RateLimitPerMin,
		AllowedOrigins:        cfg.CORS.AllowedOrigins,
	})
	if cfg.Auth.JWTSecret == "" {
		logger.Warn(ctx, "auth.jwt_secret is empty, API routes are unauthenticated")
	}

	// 4. Tasks and balance
	tasks := taskUC.New(logger, taskRepo.New(), bus, taskUC.Config{
		Thresholds: balance.Thresholds{
			OverloadAcademics:      cfg.Balance.OverloadAcademics,
			OverloadMinWellness:    cfg.Balance.OverloadMinWellness,
			LightLoadTotal:         cfg.Balance.LightLoadTotal,
			LightLoadMinWellness:   cfg.Balance.LightLoadMinWellness,
			BurnoutHighAcademics:   cfg.Balance.BurnoutHighAcademics,
			BurnoutMediumAcademics: cfg.Balance.BurnoutMediumAcademics,
		},
		SuggestionDelay: cfg.Advisory.SuggestionDelay,
		CompletionDelay: cfg.Advisory.CompletionDelay,
		WarningDelay:    cfg.Advisory.WarningDelay,
	})

	// 5. Schedule, with optional Google Calendar export
	scheduleOpts := []scheduleUC.Option{scheduleUC.WithLocation(parser.Location())}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
			Timezone:        cfg.GoogleCalendar.Timezone,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			scheduleOpts = append(scheduleOpts, scheduleUC.WithExporter(calendarClient))
			logger.Info(ctx, "Google Calendar export enabled")
		}
	}
	schedules := scheduleUC.New(logger, scheduleRepo.New(), tasks, bus, scheduleOpts...)

	// 6. Document ingestion
	agentClient, err := agent.New(agent.Config{APIURL: cfg.Agent.URL, Timeout: cfg.Agent.Timeout})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize agent client: %v", err)
		return
	}
	documents := documentUC.New(logger, documentRepo.New(), agentClient, bus, documentUC.Config{
		StudentName: cfg.Agent.StudentName,
		Timeout:     cfg.Agent.Timeout,
		MaxSize:     cfg.Upload.MaxSize(),
	})

	// 7. Recommendations, fed by processed documents
	recommendations := recommendationUC.New(logger, recommendationRepo.New(), analyzer.New(parser), tasks, documents, bus)
	documents.Subscribe(recommendations.HandleDocument)

	cleanup, err := janitor.New(logger, recommendations, janitor.Config{
		Schedule:  cfg.Recommendation.CleanupCron,
		Retention: cfg.Recommendation.Retention(),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize cleanup job: %v", err)
		return
	}
	go cleanup.Run(ctx)

	// 8. Telegram forwarding (optional)
	if cfg.Telegram.BotToken != "" {
		bot, tgErr := telegram.NewBot(telegram.Config{Token: cfg.Telegram.BotToken, ChatID: cfg.Telegram.ChatID})
		if tgErr != nil {
			logger.Warnf(ctx, "Telegram not available (optional): %v", tgErr)
		} else {
			var opts []advisoryTelegram.Option
			if len(cfg.Telegram.Kinds) > 0 {
				kinds := make([]model.AdvisoryKind, len(cfg.Telegram.Kinds))
				for i, k := range cfg.Telegram.Kinds {
					kinds[i] = model.AdvisoryKind(k)
				}
				opts = append(opts, advisoryTelegram.WithKinds(kinds...))
			}
			fw := advisoryTelegram.New(logger, bus, bot, opts...)
			fw.Start()
			go fw.Run(ctx)
			logger.Infof(ctx, "Forwarding advisory messages to Telegram as @%s", bot.Username())
		}
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:                logger,
		Port:                  cfg.HTTPServer.Port,
		Mode:                  cfg.HTTPServer.Mode,
		Environment:           cfg.Environment.Name,
		Middleware:            mw,
		TaskHandler:           taskHTTP.New(logger, tasks),
		ScheduleHandler:       scheduleHTTP.New(logger, schedules),
		DocumentHandler:       documentHTTP.New(logger, documents, cfg.Upload.MaxSize()),
		RecommendationHandler: recommendationHTTP.New(logger, recommendations),
		AdvisoryHandler:       advisoryHTTP.New(logger, bus),
		OnShutdown: []httpserver.ShutdownFunc{
			documents.Shutdown,
			func(context.Context) error { bus.Close(); return nil },
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
