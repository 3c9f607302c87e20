package zone_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	handlerLog := log.With(logger.NewField("handler", "zone_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var zoneUpdateDTO dto.ZoneUpdate
	err := json.NewDecoder(r.Body).Decode(&zoneUpdateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	zoneModify := converter.ZoneModifyToEntity(zoneUpdateDTO)
	zoneModify.ID = &id

	updated, err := h.service.UpdateZone(r.Context(), zoneModify)
	if err != nil {
		switch {
		case errors.Is(err, zone.ErrInvalidZoneID),
			errors.Is(err, zone.ErrMissingRequiredFields),
			errors.Is(err, zone.ErrInvalidName),
			errors.Is(err, zone.ErrInvalidCoordinates),
			errors.Is(err, zone.ErrInvalidAmount),
			errors.Is(err, zone.ErrInvalidStatus):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, zone.ErrZoneNotFound):
			h.writeError(w, http.StatusNotFound, "zone not found")
		case errors.Is(err, zone.ErrConflict):
			h.writeError(w, http.StatusConflict, "zone with this name already exists")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("zone_id", id),
			).Error("update zone")
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, converter.ToZone(*updated))
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
