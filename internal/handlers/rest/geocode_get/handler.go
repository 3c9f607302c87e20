package geocode_get

import (
	"net/http"
	"strings"

	"storefront/internal/entities"
	"storefront/internal/gateway/nominatim"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converter"
	"storefront/internal/handlers/rest/response"
	"storefront/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	geocoder Geocoder
}

func New(log handlerLogger, geocoder Geocoder) *Handler {
	handlerLog := log.With(logger.NewField("handler", "geocode_get"))

	return &Handler{
		log:      handlerLog,
		geocoder: geocoder,
	}
}

// ServeHTTP GET /geocode?area=&block=&street=&building=
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	address := entities.StructuredAddress{
		Area:     strings.TrimSpace(query.Get("area")),
		Block:    strings.TrimSpace(query.Get("block")),
		Street:   strings.TrimSpace(query.Get("street")),
		Building: strings.TrimSpace(query.Get("building")),
	}
	if address.IsEmpty() {
		h.writeError(w, http.StatusBadRequest, "address is empty")
		return
	}

	point, err := h.geocoder.Geocode(r.Context(), address)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("geocode address")
		h.writeError(w, http.StatusBadGateway, "geocoding service unavailable")
		return
	}
	if point == nil {
		h.writeError(w, http.StatusNotFound, "address not found")
		return
	}

	h.writeJSON(w, http.StatusOK, dto.GeocodeResponse{
		Point: *converter.ToGeoPoint(point),
		Query: nominatim.BuildQuery(address),
	})
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
