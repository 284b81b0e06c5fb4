package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/socialmedia/records/audit-service/internal/config"
	"github.com/socialmedia/records/audit-service/internal/consumer"
	"github.com/socialmedia/records/shared/events"
	"github.com/socialmedia/records/shared/logging"
	redisClient "github.com/socialmedia/records/shared/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("audit service failed", "error", err)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redis, err := redisClient.NewClient(ctx, redisClient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return err
	}
	defer redis.Close()

	log.Info("auditing record events", "redis", redis.Addr(), "stream", cfg.EventStream)
	audit := consumer.New(log)
	subscriber := events.NewSubscriber(redis.Client, log, events.SubscriberConfig{
		Group:    cfg.ConsumerGroup,
		Consumer: cfg.ConsumerName,
		Stream:   cfg.EventStream,
		Handler:  audit.Handle,
	})

	err = subscriber.Start(ctx)
	log.Info("audit summary", "counts", audit.Counts())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
