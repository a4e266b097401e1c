package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/warblehq/warble/config"
	"github.com/warblehq/warble/internal/adapters/primary/httpapi"
	"github.com/warblehq/warble/internal/adapters/secondary/eventbroker"
	"github.com/warblehq/warble/internal/adapters/secondary/repository"
	"github.com/warblehq/warble/internal/adapters/secondary/security"
	"github.com/warblehq/warble/internal/core/ports"
	"github.com/warblehq/warble/internal/core/services"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg := config.Load()
	initLogger(cfg)
	slog.Info("🚀 Starting warble", "env", cfg.Env, "port", cfg.HTTPPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := initTracer(ctx, cfg)
	if err != nil {
		slog.Error("Failed to init tracer", "error", err)
	} else {
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	// Storage
	var (
		users  ports.UserRepository
		tweets ports.TweetRepository
		edges  ports.EngagementRepository
	)
	if cfg.DBUrl == "memory" {
		slog.Warn("Using in-memory store, data will not survive restarts")
		store := repository.NewMemoryStore()
		users, tweets, edges = store, store, store
	} else {
		dbConfig, err := pgxpool.ParseConfig(cfg.DBUrl)
		if err != nil {
			slog.Error("Unable to parse DB config", "error", err)
			os.Exit(1)
		}
		dbConfig.ConnConfig.Tracer = otelpgx.NewTracer()

		dbPool, err := pgxpool.NewWithConfig(ctx, dbConfig)
		if err != nil {
			slog.Error("Unable to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		slog.Info("✅ Connected to Postgres")

		store := repository.NewPostgresStore(dbPool)
		users, tweets, edges = store, store, store
	}

	// Events
	var publisher ports.EventPublisher = eventbroker.NewNoopPublisher()
	if cfg.NatsUrl != "" {
		nc, err := nats.Connect(cfg.NatsUrl)
		if err != nil {
			slog.Error("Unable to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer nc.Close()
		slog.Info("✅ Connected to NATS")
		publisher = eventbroker.NewNatsPublisher(nc)
	}

	// Core
	hasher := security.NewArgon2Hasher(nil)
	tokens := security.NewJWTProvider([]byte(cfg.JWTSecret), "warble", tokenTTL)

	identity := services.NewIdentityService(users, hasher, tokens, publisher)
	tweetSvc := services.NewTweetService(tweets, users, publisher)
	engagement := services.NewEngagementService(edges, publisher)
	feed := services.NewFeedService(tweets, users, edges)
	profiles := services.NewProfileService(users, tweets, edges)

	api := httpapi.NewServer(identity, tweetSvc, engagement, feed, profiles)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("📡 HTTP server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
	slog.Info("👋 Server exited")
}

func initLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Env == "local" {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler
	if cfg.Env == "local" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func initTracer(ctx context.Context, cfg config.Config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OtelEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, _ := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String("warble"),
			semconv.DeploymentEnvironmentKey.String(cfg.Env),
		),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
