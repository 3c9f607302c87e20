package ping_get

import (
	"net/http"

	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/response"
	"storefront/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	err := response.WriteJSON(w, http.StatusOK, dto.PingResponse{Message: &message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
