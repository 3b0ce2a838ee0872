package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	auth_service "circle-backend/internal/application/service/auth"
	follow_service "circle-backend/internal/application/service/follow"
	like_service "circle-backend/internal/application/service/like"
	reply_service "circle-backend/internal/application/service/reply"
	thread_service "circle-backend/internal/application/service/thread"
	user_service "circle-backend/internal/application/service/user"
	"circle-backend/internal/infrastructure/config"
	delivery_http "circle-backend/internal/infrastructure/inbound/http"
	metrics_server "circle-backend/internal/infrastructure/inbound/metrics"
	"circle-backend/internal/infrastructure/inbound/ws"
	"circle-backend/internal/infrastructure/logger"
	redis_cache "circle-backend/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "circle-backend/internal/infrastructure/outbound/metrics/prometheus"
	follow_postgres "circle-backend/internal/infrastructure/outbound/repository/follow/postgres"
	like_postgres "circle-backend/internal/infrastructure/outbound/repository/like/postgres"
	"circle-backend/internal/infrastructure/outbound/repository/postgres"
	reply_postgres "circle-backend/internal/infrastructure/outbound/repository/reply/postgres"
	thread_postgres "circle-backend/internal/infrastructure/outbound/repository/thread/postgres"
	user_postgres "circle-backend/internal/infrastructure/outbound/repository/user/postgres"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := postgres.RunMigrations(dsn, cfg.Database.MigrationsPath, log); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	feedCache := redis_cache.NewFeedCache(redisClient, log)
	profileCache := redis_cache.NewProfileCache(redisClient, log)

	unitOfWork := postgres.NewPostgresUOW(pool, log)
	threadRepo := thread_postgres.NewThreadRepository(pool, log)
	replyRepo := reply_postgres.NewReplyRepository(pool, log)
	likeRepo := like_postgres.NewLikeRepository(pool, log)
	followRepo := follow_postgres.NewFollowRepository(pool, log)
	userRepo := user_postgres.NewUserRepository(pool, log)

	hub := ws.NewHub(log, metrics)
	go hub.Run()

	threadService := thread_service.NewThreadServiceCacheDecorator(
		thread_service.NewThreadService(threadRepo, unitOfWork, hub, log, metrics, cfg.Feed.Window),
		feedCache,
		log,
		metrics,
	)
	replyService := reply_service.NewReplyServiceCacheDecorator(
		reply_service.NewReplyService(replyRepo, threadRepo, userRepo, hub, log, metrics),
		feedCache,
		log,
	)
	likeService := like_service.NewLikeServiceCacheDecorator(
		like_service.NewLikeService(likeRepo, threadRepo, userRepo, hub, log, metrics),
		feedCache,
		log,
	)
	userService := user_service.NewUserServiceCacheDecorator(
		user_service.NewUserService(userRepo, followRepo, log),
		profileCache,
		feedCache,
		log,
		metrics,
	)
	followService := follow_service.NewFollowServiceCacheDecorator(
		follow_service.NewFollowService(followRepo, userRepo, hub, log, metrics),
		profileCache,
		log,
	)
	authService := auth_service.NewAuthService(
		userRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMin)*time.Minute,
		log,
	)

	router := delivery_http.NewRouter(delivery_http.Services{
		Thread: threadService,
		Reply:  replyService,
		Like:   likeService,
		User:   userService,
		Follow: followService,
		Auth:   authService,
	}, hub, log, metrics)

	httpServer := delivery_http.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
