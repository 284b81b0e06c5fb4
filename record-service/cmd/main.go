package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/socialmedia/records/record-service/internal/config"
	"github.com/socialmedia/records/record-service/internal/handler"
	"github.com/socialmedia/records/record-service/internal/service"
	"github.com/socialmedia/records/record-service/internal/store"
	"github.com/socialmedia/records/shared/cqrs"
	"github.com/socialmedia/records/shared/events"
	"github.com/socialmedia/records/shared/logging"
	"github.com/socialmedia/records/shared/middleware"
	redisClient "github.com/socialmedia/records/shared/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("record service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hasher, err := store.NewPasswordHasher(cfg.PasswordHashing)
	if err != nil {
		return err
	}

	// Redis is optional; without it mutations are not published.
	var publisher events.Emitter = events.NopPublisher{}
	if cfg.RedisAddr != "" {
		redis, err := redisClient.NewClient(ctx, redisClient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client)
		log.Info("publishing record events", "redis", redis.Addr(), "stream", cfg.EventStream)
	}

	// --- CQRS wiring ---
	svc := service.New(service.Options{
		Hasher:    hasher,
		Publisher: publisher,
		Stream:    cfg.EventStream,
		Logger:    log,
	})

	// Without a secret, login answers without a token and /accounts/me is closed.
	var tokens handler.TokenIssuer
	auth := middleware.DisabledAuth()
	if cfg.JWTSecret != "" {
		tm, err := middleware.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			return err
		}
		tokens, auth = tm, tm.AuthMiddleware()
	} else {
		log.Warn("JWT_SECRET is empty; login tokens are disabled")
	}

	if cfg.SeedDemoData {
		if err := seed(ctx, svc, log); err != nil {
			return err
		}
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.LoggingMiddleware(log))
	handler.RegisterRoutes(router, handler.NewRecordHandler(svc, svc, tokens), auth)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("record service starting", "port", cfg.Port, "hashing", cfg.PasswordHashing)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// seed registers the demo account and its first message.
func seed(ctx context.Context, svc *service.RecordService, log *slog.Logger) error {
	account, err := svc.Register(ctx, cqrs.RegisterAccountCommand{Username: "jason", Password: "password"})
	if err != nil {
		return fmt.Errorf("seed account: %w", err)
	}
	message, err := svc.PostMessage(ctx, cqrs.PostMessageCommand{Text: "Hello, world!", PostedBy: account.ID})
	if err != nil {
		return fmt.Errorf("seed message: %w", err)
	}
	log.Info("seeded demo data", "account_id", account.ID, "message_id", message.ID)
	return nil
}
