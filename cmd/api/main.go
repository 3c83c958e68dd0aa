package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-site/config"
	_ "portfolio-site/docs" // Important for Swagger
	v1 "portfolio-site/internal/delivery/http/v1"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/repository/file"
	s3repo "portfolio-site/internal/repository/s3"
	"portfolio-site/internal/usecase"
	"portfolio-site/pkg/email"
	"portfolio-site/pkg/logger"
	"portfolio-site/pkg/ratelimit"
	"portfolio-site/pkg/redis"
	"portfolio-site/pkg/security"
	"portfolio-site/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Site API
// @version         1.0
// @description     Contact form and portfolio content API.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio site", "port", cfg.Port)

	env := "development"
	if cfg.IsProduction() {
		env = "production"
	}
	audit := security.InitSecurityLogger("portfolio-site", env)
	defer audit.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 3. Setup Content Repository
	var contentRepo domain.ContentRepository
	switch cfg.ContentSource {
	case "s3":
		client, err := s3repo.NewClient(ctx, s3repo.ClientConfig{
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			logger.Log.Error("Failed to create S3 client", "error", err)
			os.Exit(1)
		}
		contentRepo = s3repo.NewContentRepository(client, cfg.S3Bucket, cfg.S3Prefix, s3repo.DefaultTTL)
		logger.Log.Info("Serving content from S3", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
	default:
		fileRepo := file.NewContentRepository(cfg.DataDir, logger.Log)
		if err := fileRepo.Watch(ctx, cfg.ReloadDebounce); err != nil {
			logger.Log.Warn("Content hot reload disabled", "error", err)
		}
		defer fileRepo.Close()
		contentRepo = fileRepo
	}

	// 4. Setup Mail Delivery
	var mailer usecase.Mailer
	mailProbe := func(context.Context) error { return nil }
	switch cfg.MailDriver {
	case "log":
		mailer = email.NewLogMailer(logger.Log)
		mailProbe = func(context.Context) error { return usecase.ErrProbeDisabled }
		logger.Log.Warn("MAIL_DRIVER=log - contact messages are logged, not emailed")
	default:
		emailService := email.NewEmailService(cfg)
		if !emailService.IsConfigured() {
			logger.Log.Warn("Email service not fully configured - contact form will report delivery failures")
			mailProbe = func(context.Context) error { return errors.New("smtp not configured") }
		}
		mailer = emailService
	}

	// 5. Setup Rate Limiter (disabled unless CONTACT_RATE_LIMIT_ENABLED)
	var limiter domain.RateLimiter
	redisProbe := func(context.Context) error { return usecase.ErrProbeDisabled }
	if cfg.RateLimitEnabled {
		policy := ratelimit.Policy{MaxAttempts: cfg.RateLimitMaxAttempts, Window: cfg.RateLimitWindow()}
		switch cfg.RateLimitStore {
		case "redis":
			if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
				logger.Log.Warn("Redis unavailable, using in-memory rate limiter", "error", err)
				limiter = ratelimit.NewMemoryLimiter(policy)
			} else {
				defer redis.Close()
				limiter = ratelimit.NewRedisLimiter(redis.Client(), "rl:contact:", policy)
				redisProbe = redis.HealthCheck
			}
		case "memory":
			limiter = ratelimit.NewMemoryLimiter(policy)
		default:
			limiter = ratelimit.NewFileLimiter(cfg.RateLimitFile, policy)
		}
		logger.Log.Info("Contact rate limiting enabled",
			"store", cfg.RateLimitStore,
			"max_attempts", policy.MaxAttempts,
			"window", policy.Window.String())
	}

	// 6. Setup Submission Log
	var submissions domain.SubmissionLogger
	if cfg.ContactLogFile != "" {
		submissions = file.NewSubmissionLog(cfg.ContactLogFile)
	}

	// 7. Setup UseCases
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(validate, mailer, limiter, submissions, audit)
	contentUC := usecase.NewContentUsecase(contentRepo)
	healthUC := usecase.NewHealthUsecase(map[string]usecase.HealthProbe{
		"content": func(ctx context.Context) error {
			if _, err := contentUC.ProjectDocument(ctx); err != nil {
				return err
			}
			_, err := contentUC.GalleryDocument(ctx)
			return err
		},
		"mail":  mailProbe,
		"redis": redisProbe,
	})

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		ContentUC:      contentUC,
		HealthUC:       healthUC,
		SecurityLogger: audit,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
