package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xela07ax/mrfashion-backend/internal/infra"
	"github.com/xela07ax/mrfashion-backend/internal/infra/auth"
	"github.com/xela07ax/mrfashion-backend/internal/repository/postgres"
	"github.com/xela07ax/mrfashion-backend/internal/storefront/handler"
	"github.com/xela07ax/mrfashion-backend/internal/storefront/server"
	"github.com/xela07ax/mrfashion-backend/internal/storefront/service"
)

func main() {
	// 1. Конфигурация и логгер
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := infra.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Контекст жизненного цикла: SIGTERM/SIGINT инициируют graceful shutdown
	appCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Инфраструктура и ресурсы
	store, err := postgres.NewStore(appCtx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to init postgres pool", zap.Error(err))
	}
	defer store.Close()

	// Пингуем с ретраями: при старте в docker-compose база
	// может подниматься дольше сервиса
	r := retry.New(
		retry.Context(appCtx),
		retry.Attempts(5),
	)
	if err := r.Do(func() error {
		pingCtx, cancel := context.WithTimeout(appCtx, 5*time.Second)
		defer cancel()
		return store.Ping(pingCtx)
	}); err != nil {
		logger.Fatal("database unreachable", zap.Error(err))
	}

	// Redis опционален: без него фасеты агрегируются напрямую из БД
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}

	// Метрики
	reg := prometheus.NewRegistry()
	metrics := infra.NewMetrics(reg)

	// 3. Инициализация слоев (Dependency Injection)
	signer := auth.NewSigner(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	verifier := auth.NewVerifier(cfg.Auth.Secret)

	authService := service.NewAuthService(store, signer)
	userService := service.NewUserService(store)
	facetCache := service.NewFacetCache(rdb, cfg.Redis.FacetTTL, logger, metrics)
	productService := service.NewProductService(store, facetCache)
	wishlistService := service.NewWishlistService(store)

	srv := server.NewServer(
		cfg,
		logger,
		metrics,
		reg,
		verifier,
		authService,
		handler.NewAuthHandler(authService, logger),
		handler.NewUserHandler(userService, logger),
		handler.NewProductHandler(productService, logger),
		handler.NewWishlistHandler(wishlistService, logger),
	)

	// 4. Запуск сервера
	httpSrv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      srv,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Mr. Fashion server started", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-appCtx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
