package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	"portfolio-api/internal/email"
	apihttp "portfolio-api/internal/http"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"

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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgAdminUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)
	sectionRepo := repository.NewPgSectionRepository(pool)
	skillRepo := repository.NewPgSkillRepository(pool)
	technologyRepo := repository.NewPgTechnologyRepository(pool)
	statRepo := repository.NewPgStatRepository(pool)
	socialLinkRepo := repository.NewPgSocialLinkRepository(pool)
	experienceRepo := repository.NewPgExperienceRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		contactLimiter service.RateLimiter
		sessionCache   service.SessionCache
		redisClient    *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			contactLimiter = service.NewRedisRateLimiter(redisClient, 10*time.Minute, 3)
			sessionCache = service.NewRedisSessionCache(redisClient)
		}
		cancel()
	}

	authSvc := service.NewAuthService(logger, userRepo, sessionRepo, sessionCache)
	messageSvc := service.NewMessageService(logger, messageRepo, emailSender, contactLimiter, cfg.ContactNotify)

	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	projectHandler := apihttp.NewProjectHandler(logger, projectRepo)
	messageHandler := apihttp.NewMessageHandler(logger, messageSvc, messageRepo)
	sectionHandler := apihttp.NewSectionHandler(logger, sectionRepo)
	collectionHandler := apihttp.NewCollectionHandler(logger, skillRepo, technologyRepo, statRepo, socialLinkRepo, experienceRepo)
	router := apihttp.NewRouter(logger, authSvc, authHandler, projectHandler, messageHandler, sectionHandler, collectionHandler)

	// Barrido opcional de sesiones vencidas: higiene de almacenamiento, la
	// validacion ya las ignora.
	if cfg.SessionSweep > 0 {
		go func() {
			ticker := time.NewTicker(cfg.SessionSweep)
			defer ticker.Stop()
			for range ticker.C {
				n, err := authSvc.SweepExpiredSessions(ctx)
				if err != nil {
					logger.Warn("session sweep failed", zap.Error(err))
					continue
				}
				if n > 0 {
					logger.Info("session sweep", zap.Int64("deleted", n))
				}
			}
		}()
	}

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
