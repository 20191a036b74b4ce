package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/road_intelligence/internal/config"
	v1 "github.com/shenikar/road_intelligence/internal/handler/http/v1"
	"github.com/shenikar/road_intelligence/internal/metrics"
	"github.com/shenikar/road_intelligence/internal/repository"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/shenikar/road_intelligence/internal/status"
	"github.com/shenikar/road_intelligence/internal/webhook"
	"github.com/shenikar/road_intelligence/pkg/logger"
	"github.com/shenikar/road_intelligence/pkg/postgres"
	redisclient "github.com/shenikar/road_intelligence/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/road_intelligence/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Road Intelligence API
// @version 1.0
// @description Operational dashboards for road networks: emergency response, network monitoring, asset maintenance and traffic hotspots.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Источник снимков: фикстуры или PostgreSQL
	var source service.RecordSource
	if cfg.DataSource == config.SourcePostgres {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		source = repository.NewPostgresSource(dbpool)
	} else {
		source = repository.NewFixtureSource(time.Now)
		log.Info("Using built-in fixture datasets")
	}

	// Redis опционален: кеш снимков и очередь вебхуков
	var publisher webhook.WebhookPublisher = webhook.NopPublisher{}
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		source = repository.NewCachedSource(source, repository.NewRedisCache(redisClient), cfg.CacheTTL, log)
		publisher = webhook.NewRedisWebhookPublisher(redisClient)

		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	appMetrics := metrics.New()
	stores := service.NewStores()

	// Первичная загрузка снимков
	loader := service.NewLoader(source, stores, appMetrics, time.Now, log)
	loadedAt, err := loader.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Initial snapshot load failed, serving empty datasets")
	}

	// Монитор подключения и периодическое обновление
	monitor := status.NewMonitor(
		status.NewRandomProvider(uint64(time.Now().UnixNano())),
		cfg.ConnectionPollInterval,
		cfg.AlertPollInterval,
		log,
	)
	monitor.Start(ctx)
	if err == nil {
		monitor.MarkUpdated(loadedAt)
	}

	refresher := service.NewRefresher(loader, cfg.RefreshInterval, monitor, appMetrics, log)
	refresher.Start(ctx)

	// Инициализация сервисов
	emergencyService := service.NewEmergencyService(stores, publisher, appMetrics, time.Now, log)
	networkService := service.NewNetworkService(stores, appMetrics, time.Now, log)
	assetService := service.NewAssetService(stores, appMetrics, log)
	trafficService := service.NewTrafficService(stores, appMetrics, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(emergencyService, networkService, assetService, trafficService, monitor, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), appMetrics.Middleware(), v1.RequestLogger(log))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	handler.RegisterFallbacks(router)

	router.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	cancel()
	<-monitor.Done()
	<-refresher.Done()

	log.Info("Server gracefully stopped")
}
