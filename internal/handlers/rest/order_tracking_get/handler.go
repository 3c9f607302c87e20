package order_tracking_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converter"
	"storefront/internal/handlers/rest/response"
	"storefront/internal/service/tracking"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	tracker Tracker
}

func New(log handlerLogger, tracker Tracker) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_tracking_get"))

	return &Handler{
		log:     handlerLog,
		tracker: tracker,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	snapshot, err := h.tracker.Track(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidOrderID):
			h.writeError(w, http.StatusBadRequest, "invalid order id")
		case errors.Is(err, tracking.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, tracking.ErrTrackerClosed):
			h.writeError(w, http.StatusServiceUnavailable, "service is shutting down")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", orderID),
			).Error("track order")
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, converter.ToTracking(snapshot))
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
