package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bpo-website/internal/cms"
	"bpo-website/internal/config"
	"bpo-website/internal/content"
	"bpo-website/internal/database"
	"bpo-website/internal/handlers"
	"bpo-website/internal/logger"
	"bpo-website/internal/middleware"
	"bpo-website/internal/pages"
	"bpo-website/internal/repository"
	"bpo-website/internal/router"
	"bpo-website/internal/services"
	"bpo-website/internal/websocket"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Initialize Logger ────
	log, err := logger.New(cfg.LogLevel, !cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("starting BPO website", zap.String("env", cfg.Env))

	// ──── Step 3: Initialize PostgreSQL (optional) ────
	repo := repository.NewEnrollmentRepo(nil)
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("postgres connection failed", zap.Error(err))
		}
		defer pool.Close()
		log.Info("postgres connected")

		if err := database.RunMigrations(pool, "migrations", log); err != nil {
			log.Fatal("database migration failed", zap.Error(err))
		}
		repo = repository.NewEnrollmentRepo(pool)
	} else {
		log.Warn("DATABASE_URL not set, enrollments are disabled")
	}

	// ──── Step 4: Initialize Redis (optional) ────
	var (
		mainRedis   *redis.Client
		alertsRedis *redis.Client
		cache       cms.Cache
	)
	if cfg.RedisURL != "" {
		redisClients, err := database.ConnectRedis(context.Background(), cfg.RedisURL, log)
		if err != nil {
			log.Fatal("redis connection failed", zap.Error(err))
		}
		defer redisClients.Close()
		mainRedis, alertsRedis = redisClients.Main, redisClients.Alerts
		cache = cms.NewRedisCache(mainRedis)
	} else {
		log.Warn("REDIS_URL not set, content cache and lead alerts are disabled")
	}

	// ──── Step 5: Initialize Content Service Client ────
	cmsClient := cms.NewClient(cms.Config{
		BaseURL:    cfg.CMSURL,
		Token:      cfg.CMSToken,
		Timeout:    cfg.CMSTimeout,
		Revalidate: cfg.CMSRevalidate,
	}, cache, log)
	resolver := content.NewResolver(cmsClient, cmsClient.PublicURL(), log)
	if cmsClient.Configured() {
		log.Info("content service client ready", zap.String("url", cfg.CMSURL), zap.Duration("timeout", cfg.CMSTimeout))
	} else {
		log.Warn("CMS_URL not set, pages show bundled content and CMS-backed forms answer 503")
	}

	// ──── Step 6: Initialize Chat Completion Provider ────
	var completer services.Completer
	switch cfg.ChatProvider {
	case "gemini":
		if cfg.GeminiAPIKey != "" {
			gc, err := services.NewGeminiCompleter(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				log.Error("gemini client initialization failed", zap.Error(err))
			} else {
				defer gc.Close()
				completer = gc
			}
		}
	default:
		if cfg.OpenAIAPIKey != "" {
			completer = services.NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		}
	}
	if completer == nil {
		log.Warn("no chat provider key configured, chat answers 503", zap.String("provider", cfg.ChatProvider))
	} else {
		log.Info("chat provider ready", zap.String("provider", cfg.ChatProvider))
	}

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	alerts := services.NewRedisAlertPublisher(mainRedis, log)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, log)

	var sinks []services.LeadSink
	if mainRedis != nil {
		sinks = append(sinks, services.NewRedisInboxSink(mainRedis))
	}
	sinks = append(sinks, services.NewLogSink(log))
	if cfg.SalesEmail != "" {
		sinks = append(sinks, services.NewEmailSink(emailService, cfg.SalesEmail))
	}

	leadService := services.NewLeadService(log, alerts, sinks...)
	submissionService := services.NewSubmissionService(cmsClient, log)
	enrollmentService := services.NewEnrollmentService(repo, log)
	chatService := services.NewChatService(completer, alerts, log)
	authService := services.NewAuthService(jwtAuth, cfg.AdminEmail, cfg.AdminPasswordHash)
	if !authService.Configured() {
		log.Warn("operator login is not configured")
	}

	// ──── Initialize Handlers ────
	renderer, err := pages.NewRenderer(log)
	if err != nil {
		log.Fatal("template parsing failed", zap.Error(err))
	}
	pageHandler := pages.NewHandler(resolver, renderer, cfg.IsProduction())
	contentHandler := handlers.NewContentHandler(resolver)
	leadHandler := handlers.NewLeadHandler(leadService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	chatHandler := handlers.NewChatHandler(chatService)
	authHandler := handlers.NewAuthHandler(authService)

	// ──── Step 7: Start WebSocket Hub ────
	wsHub := websocket.NewHub(alertsRedis, services.LeadAlertChannel, jwtAuth, middleware.ParseOrigins(cfg.FrontendURL), log)

	// ──── Step 8: Start HTTP Server ────
	r, stopLimiters := router.New(
		log,
		jwtAuth,
		pageHandler,
		contentHandler,
		leadHandler,
		submissionHandler,
		enrollmentHandler,
		chatHandler,
		authHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down")
		wsHub.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}
		stopLimiters()
	}()

	log.Info("BPO website ready", zap.String("addr", "http://localhost:"+cfg.Port))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
	<-done
}
