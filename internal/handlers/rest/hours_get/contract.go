//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=hours_get_test
package hours_get

import (
	"time"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Status(at time.Time) entities.OpenStatus
	Display() string
	Schedule() *entities.WeeklyOperatingHours
	// RefreshedAt время последней успешной загрузки расписания, zero если не загружалось
	RefreshedAt() time.Time
}

type Clock interface {
	Now() time.Time
}
