package zone_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	handlerLog := log.With(logger.NewField("handler", "zone_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var zoneCreateDTO dto.ZoneCreate
	err := json.NewDecoder(r.Body).Decode(&zoneCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreateZone(r.Context(), converter.ZoneModifyToEntity(zoneCreateDTO))
	if err != nil {
		switch {
		case errors.Is(err, zone.ErrMissingRequiredFields),
			errors.Is(err, zone.ErrInvalidName),
			errors.Is(err, zone.ErrInvalidCoordinates),
			errors.Is(err, zone.ErrInvalidAmount),
			errors.Is(err, zone.ErrInvalidStatus):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, zone.ErrConflict):
			h.writeError(w, http.StatusConflict, "zone with this name already exists")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create zone")
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("zone created",
		logger.NewField("zone_id", created.ID),
		logger.NewField("name", created.Name),
	)
	h.writeJSON(w, http.StatusCreated, converter.ToZone(*created))
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
