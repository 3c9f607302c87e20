package zones_get

import (
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converter"
	"storefront/internal/handlers/rest/response"
	"storefront/internal/service/zone"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "zones_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP GET /admin/zones[?status=active|inactive]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var status *entities.ZoneStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := entities.ZoneStatusType(raw)
		status = &s
	}

	zones, err := h.service.GetZones(r.Context(), status)
	if err != nil {
		if errors.Is(err, zone.ErrInvalidStatus) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Error("get zones")
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, converter.ToZoneList(zones))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	err := response.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, dto.ErrorResponse{Error: message})
}
