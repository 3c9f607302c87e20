package zone_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/handlers/rest/response"
	"storefront/internal/service/zone"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "zone_delete"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.service.DeleteZone(r.Context(), id)
	if err != nil {
		var status int
		var message string
		switch {
		case errors.Is(err, zone.ErrInvalidZoneID):
			status, message = http.StatusBadRequest, "invalid zone id"
		case errors.Is(err, zone.ErrZoneNotFound):
			status, message = http.StatusNotFound, "zone not found"
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("zone_id", id),
			).Error("delete zone")
			status, message = http.StatusInternalServerError, "internal error"
		}

		if err := response.WriteError(w, status, message); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode JSON response")
		}
		return
	}

	h.log.Info("zone deleted", logger.NewField("zone_id", id))
	w.WriteHeader(http.StatusNoContent)
}
