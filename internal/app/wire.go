//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
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
	"storefront/pkg/logger"
	"storefront/pkg/scheduler"
	"storefront/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service).
// cache может быть nil: тогда геокодинг идёт без кэша.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cache nominatim.Cache,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		provideNominatimLimiter,

		provideZoneRepository,
		provideBranchRepository,

		provideNominatimGateway,
		provideOrderAPIGateway,

		provideServiceZone,
		provideServiceHours,
		provideServiceCheckout,
		provideTracker,

		provideTrackingSyncTask,
		provideHoursRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceZone), new(*zoneService.Zone)),
		wire.Bind(new(ServiceHours), new(*hoursService.Service)),
		wire.Bind(new(ServiceCheckout), new(*checkoutService.Service)),
		wire.Bind(new(ServiceTracker), new(*tracking.Tracker)),
		wire.Bind(new(ServiceGeocoder), new(*nominatim.Gateway)),

		wire.Bind(new(zoneService.Repository), new(*zoneRepo.Repository)),
		wire.Bind(new(zoneService.Geocoder), new(*nominatim.Gateway)),
		wire.Bind(new(zoneService.TxManager), new(*tx.Manager)),
		wire.Bind(new(hoursService.Repository), new(*branchRepo.Repository)),
		wire.Bind(new(checkoutService.HoursService), new(*hoursService.Service)),
		wire.Bind(new(checkoutService.ZoneService), new(*zoneService.Zone)),
		wire.Bind(new(checkoutService.CouponGateway), new(*orderapi.Gateway)),
		wire.Bind(new(checkoutService.Clock), new(scheduler.System)),
		wire.Bind(new(scheduler.Scheduler), new(scheduler.System)),
		wire.Bind(new(tracking.OrderGateway), new(*orderapi.Gateway)),

		wire.Bind(new(tracking_sync.Tracker), new(*tracking.Tracker)),
		wire.Bind(new(hours_refresh.Service), new(*hoursService.Service)),
	)
	return &Application{}, nil
}
