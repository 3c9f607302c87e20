package hours_get

import (
	"net/http"

	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converter"
	"storefront/internal/handlers/rest/response"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	clock   Clock
}

func New(log handlerLogger, service Service, clock Clock) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "hours_get")),
		service: service,
		clock:   clock,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	status := h.service.Status(h.clock.Now())

	body := dto.HoursResponse{
		IsOpen:    status.IsOpen,
		Message:   status.Message,
		LocalTime: status.LocalTime,
		Display:   h.service.Display(),
		Schedule:  converter.ToSchedule(h.service.Schedule()),
	}
	if refreshed := h.service.RefreshedAt(); !refreshed.IsZero() {
		body.RefreshedAt = &refreshed
	}

	err := response.WriteJSON(w, http.StatusOK, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
