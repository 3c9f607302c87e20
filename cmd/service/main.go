package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "storefront/internal/app"
	"storefront/internal/gateway/nominatim"
	"storefront/internal/handlers/kafka-consumer/order_status_changed"
	"storefront/internal/handlers/rest/checkout_preflight_post"
	"storefront/internal/handlers/rest/coupon_validate_post"
	"storefront/internal/handlers/rest/delivery_validate_post"
	"storefront/internal/handlers/rest/geocode_get"
	"storefront/internal/handlers/rest/geocode_reverse_get"
	"storefront/internal/handlers/rest/healthcheck_head"
	"storefront/internal/handlers/rest/hours_get"
	"storefront/internal/handlers/rest/order_tracking_get"
	"storefront/internal/handlers/rest/order_tracking_ws"
	"storefront/internal/handlers/rest/ping_get"
	"storefront/internal/handlers/rest/zone_delete"
	"storefront/internal/handlers/rest/zone_post"
	"storefront/internal/handlers/rest/zone_put"
	"storefront/internal/handlers/rest/zones_get"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/dotenv"
	"storefront/internal/pkg/kafka"
	metrics_system "storefront/internal/pkg/metrics"
	"storefront/internal/pkg/middlewares/admin_auth"
	"storefront/internal/pkg/middlewares/graceful_shutdown"
	"storefront/internal/pkg/middlewares/metrics"
	"storefront/internal/pkg/middlewares/rate_limiter"
	"storefront/internal/pkg/middlewares/timeout"
	"storefront/internal/pkg/postgres"
	"storefront/internal/pkg/redisclient"
	"storefront/internal/repository/geocache"
	"storefront/pkg/logger"
	"storefront/pkg/logger/zap_adapter"
	"storefront/pkg/token_bucket"
)

func main() {
	envLoaded, err := dotenv.Load()
	if err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{
		Level:    cfg.Log.Level,
		FilePath: cfg.Log.FilePath,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting storefront application")
	if !envLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	err = postgres.Migrate(ctx, log, pool)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	// без Redis геокодинг работает, просто без кэша
	var geocodeCache nominatim.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := redisclient.New(ctx, log, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				runLog.Error("failed to close redis client", logger.NewField("error", err))
			}
		}()
		geocodeCache = geocache.New(redisClient)
	} else {
		runLog.Warn("REDIS_ADDR is empty, geocode cache disabled")
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, geocodeCache, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.ServiceTracker.Close()

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	// kafka consumer, пересев трекера по order.status.changed
	var consumer *kafka.Consumer
	var consumerErr chan error
	if cfg.Kafka.Enabled() {
		kafkaHandler := order_status_changed.New(log, businessApp.ServiceTracker)

		consumer, err = kafka.NewConsumer(ctx, log, &cfg.Kafka, kafkaHandler)
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}

		consumerErr = make(chan error, 1)
		go func() {
			defer close(consumerErr)
			if err := consumer.Start(ongoingCtx); err != nil && !errors.Is(err, context.Canceled) {
				consumerErr <- err
			}
		}()
	} else {
		runLog.Warn("KAFKA_BROKERS is empty, tracking relies on polling only")
	}
	// kafka consumer

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	case err := <-consumerErr: // nil, если kafka выключена
		return fmt.Errorf("consumer: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	// websocket-соединения Shutdown не ждёт: закрытие трекера отправляет клиентам close frame
	businessApp.ServiceTracker.Close()
	businessApp.BackgroundWorkers.Wait()

	stopOngoingGracefully()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			runLog.With(logger.NewField("error", err)).Error("Failed to close Kafka consumer")
		}
	}

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, db healthcheck_head.Pinger, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/delivery/validate", delivery_validate_post.New(log, app.ServiceZone)).Methods("POST")
	router.Handle("/geocode", geocode_get.New(log, app.ServiceGeocoder)).Methods("GET")
	router.Handle("/geocode/reverse", geocode_reverse_get.New(log, app.ServiceGeocoder)).Methods("GET")
	router.Handle("/hours", hours_get.New(log, app.ServiceHours, app.Clock)).Methods("GET")

	router.Handle("/checkout/preflight", checkout_preflight_post.New(log, app.ServiceCheckout)).Methods("POST")
	router.Handle("/coupons/validate", coupon_validate_post.New(log, app.ServiceCheckout)).Methods("POST")

	router.Handle("/orders/{id}/tracking", order_tracking_get.New(log, app.ServiceTracker)).Methods("GET")
	router.Handle("/orders/{id}/tracking/ws", order_tracking_ws.New(log, app.ServiceTracker, order_tracking_ws.Options{})).Methods("GET")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(admin_auth.Middleware(log, []byte(cfg.Admin.JWTSecret)))
	admin.Handle("/zones", zones_get.New(log, app.ServiceZone)).Methods("GET")
	admin.Handle("/zones", zone_post.New(log, app.ServiceZone)).Methods("POST")
	admin.Handle("/zones/{id}", zone_put.New(log, app.ServiceZone)).Methods("PUT")
	admin.Handle("/zones/{id}", zone_delete.New(log, app.ServiceZone)).Methods("DELETE")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
