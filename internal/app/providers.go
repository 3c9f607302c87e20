package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"storefront/internal/gateway/nominatim"
	"storefront/internal/gateway/orderapi"
	"storefront/internal/handlers/tasks/hours_refresh"
	"storefront/internal/handlers/tasks/tracking_sync"
	"storefront/internal/pkg/config"
	branchRepo "storefront/internal/repository/branch"
	zoneRepo "storefront/internal/repository/zone"
	checkoutService "storefront/internal/service/checkout"
	hoursService "storefront/internal/service/hours"
	"storefront/internal/service/tracking"
	zoneService "storefront/internal/service/zone"
	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/scheduler"
	"storefront/pkg/token_bucket"
	"storefront/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() scheduler.System {
	return scheduler.NewSystem()
}

// provideNominatimLimiter политика публичного Nominatim: не больше RPS запросов в секунду
func provideNominatimLimiter(cfg *config.Config) nominatim.Limiter {
	return token_bucket.NewTokenBucket(cfg.Nominatim.RPS, float64(cfg.Nominatim.RPS))
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideBranchRepository(querier *querier.Querier) *branchRepo.Repository {
	return branchRepo.New(querier)
}

func provideNominatimGateway(
	cfg *config.Config,
	limiter nominatim.Limiter,
	cache nominatim.Cache,
	log logger.Logger,
) *nominatim.Gateway {
	return nominatim.New(nominatim.Config{
		BaseURL:   cfg.Nominatim.BaseURL,
		UserAgent: cfg.Nominatim.UserAgent,
		Referer:   cfg.Nominatim.Referer,
		Timeout:   cfg.Nominatim.Timeout,
		CacheTTL:  cfg.Nominatim.CacheTTL,
	}, limiter, cache, log)
}

func provideOrderAPIGateway(cfg *config.Config) *orderapi.Gateway {
	return orderapi.New(orderapi.Config{
		BaseURL: cfg.OrderAPI.BaseURL,
		Timeout: cfg.OrderAPI.Timeout,
	})
}

func provideServiceZone(
	repository zoneService.Repository,
	geocoder zoneService.Geocoder,
	txManager zoneService.TxManager,
	cfg *config.Config,
) *zoneService.Zone {
	return zoneService.New(repository, geocoder, txManager, cfg.Store.BranchID)
}

func provideServiceHours(repository hoursService.Repository, cfg *config.Config) *hoursService.Service {
	return hoursService.New(repository, cfg.Store.BranchID)
}

func provideServiceCheckout(
	hours checkoutService.HoursService,
	zones checkoutService.ZoneService,
	coupons checkoutService.CouponGateway,
	clock checkoutService.Clock,
) *checkoutService.Service {
	return checkoutService.New(hours, zones, coupons, clock)
}

func provideTracker(gateway tracking.OrderGateway, clock scheduler.Scheduler) *tracking.Tracker {
	return tracking.NewTracker(gateway, clock)
}

func provideTrackingSyncTask(
	log logger.Logger,
	tracker tracking_sync.Tracker,
	cfg *config.Config,
) *tracking_sync.TrackingSync {
	return tracking_sync.NewTrackingSync(log, tracker, cfg.Tasks.TrackingSyncInterval, cfg.Tasks.TrackingIdleTTL)
}

func provideHoursRefreshTask(
	log logger.Logger,
	service hours_refresh.Service,
	cfg *config.Config,
) *hours_refresh.HoursRefresh {
	return hours_refresh.NewHoursRefresh(log, service, cfg.Tasks.HoursRefreshInterval)
}

func provideTaskList(
	trackingSyncTask *tracking_sync.TrackingSync,
	hoursRefreshTask *hours_refresh.HoursRefresh,
) []background.Task {
	return []background.Task{
		hoursRefreshTask,
		trackingSyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
