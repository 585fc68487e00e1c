package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/bootstrap"
	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/clients/kafka_client"
	"github.com/spacesedan/reviewlens/internal/consumers"
	"github.com/spacesedan/reviewlens/internal/db"
	"github.com/spacesedan/reviewlens/internal/logging"
	"github.com/spacesedan/reviewlens/internal/monitoring"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	settings, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(settings.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(settings.CatalogPath)
	if err != nil {
		slog.Error("[Main] Failed to load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline, err := bootstrap.NewPipeline(settings, cat)
	if err != nil {
		slog.Error("[Main] Failed to build annotator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pipeline.Close()

	dynamo, err := clients.GetDynamoDBClient(ctx)
	if err != nil {
		slog.Error("[Main] Failed to create DynamoDB client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	store := db.NewAnnotationStore(dynamo, settings.DynamoDBTable)

	cfg := kafka_client.GetKafkaConfig(settings)
	var producer *kafka_client.Producer
	for {
		producer, err = kafka_client.NewProducer(cfg)
		if err == nil {
			break
		}
		slog.Warn("[Main] Kafka init failed, retrying...", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
	defer producer.Close()

	reviewConsumer := consumers.NewReviewConsumer(consumers.ReviewConsumerConfig{
		ResultsTopic:    settings.ResultsTopic,
		BatchSize:       settings.BatchSize,
		BatchTimeout:    settings.BatchTimeout,
		AnnotateTimeout: settings.AnnotateTimeout,
		Parallelism:     settings.Parallelism,
	}, pipeline.Annotator, store, producer)

	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		valkey, err := clients.InitValkey(settings.DedupeTTL)
		if err != nil {
			slog.Warn("[Main] Valkey unavailable, de-duplication disabled", slog.String("error", err.Error()))
		} else {
			defer clients.CloseValkey()
			reviewConsumer.WithDeduper(valkey)
		}
	}

	if pipeline.Health != nil {
		healthy := &atomic.Bool{}
		healthy.Store(true)
		go monitoring.MonitorClassifierHealth(ctx, pipeline.HealthName, pipeline.Health, healthy, monitoring.HEALTHCHECK_INTERVAL)
		reviewConsumer.WithHealthCheck(healthy)
	}

	if settings.MetricsAddr != "" {
		go serveMetrics(ctx, settings.MetricsAddr)
	}

	kafka_client.RegisterConsumer(cfg.Topic, reviewConsumer.Handler())
	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}

func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("[Metrics] Serving metrics", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("[Metrics] Metrics server stopped", slog.String("error", err.Error()))
	}
}
