package admin_auth

import "storefront/pkg/logger"

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}
