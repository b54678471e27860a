package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"bizmatch/internal/catalog"
	"bizmatch/internal/config"
	"bizmatch/internal/db"
	"bizmatch/internal/email"
	apihttp "bizmatch/internal/http"
	"bizmatch/internal/repository"
	"bizmatch/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("catalog load", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	attemptRepo := repository.NewPgAttemptRepository(pool)
	scoreRepo := repository.NewPgScoreRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var limiter service.SubmitRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisSubmitRateLimiter(
				redisClient,
				time.Duration(cfg.SubmitRateWindowMinutes)*time.Minute,
				cfg.SubmitRateMax,
			)
		}
		cancel()
	}

	scoringSvc := service.NewScoringService(cat, scoreRepo, logger)
	tokenSvc := service.NewResultTokenService(cfg.ResultTokenSecret, time.Duration(cfg.ResultTokenTTLDays)*24*time.Hour)
	reportSvc := service.NewReportService(scoringSvc, emailSender, cfg.PublicBaseURL, logger)
	quizSvc := service.NewQuizService(attemptRepo, scoringSvc, tokenSvc, reportSvc, limiter, logger)

	quizHandler := apihttp.NewQuizHandler(logger, quizSvc)
	resultsHandler := apihttp.NewResultsHandler(logger, scoringSvc, quizSvc, tokenSvc, cfg.AdminKey)
	router := apihttp.NewRouter(logger, quizHandler, resultsHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
