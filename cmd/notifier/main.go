package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/escrow-desk/backend/internal/config"
	"github.com/escrow-desk/backend/internal/db"
	"github.com/escrow-desk/backend/internal/events"
	"go.uber.org/zap"
)

// Notifier subscribes to deal events and forwards each one to an external
// webhook for auditing/UI purposes. Without a webhook configured it just
// logs the stream.

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	subscriber := events.NewRedisSubscriber(rdb, log)

	log.Info("notifier started", zap.String("webhook", cfg.NotifyWebhookURL))

	_ = subscriber.Subscribe(ctx, events.StreamDeals, func(event events.Event) {
		log.Info("deal event",
			zap.String("type", event.Type),
			zap.Any("payload", event.Payload),
		)
		if cfg.NotifyWebhookURL != "" {
			forward(cfg.NotifyWebhookURL, event, log)
		}
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down notifier")
	cancel()
}

func forward(url string, event events.Event, log *zap.Logger) {
	body, err := json.Marshal(event)
	if err != nil {
		return
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(string(body)))
	if err != nil {
		log.Warn("failed to forward event", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("webhook returned non-200", zap.Int("status", resp.StatusCode))
	}
}
