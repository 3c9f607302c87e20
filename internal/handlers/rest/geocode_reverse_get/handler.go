package geocode_reverse_get

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converter"
	"storefront/internal/handlers/rest/response"
	"storefront/pkg/logger"
)

var errInvalidCoordinate = errors.New("invalid coordinate")

type Handler struct {
	log      handlerLogger
	geocoder Geocoder
}

func New(log handlerLogger, geocoder Geocoder) *Handler {
	handlerLog := log.With(logger.NewField("handler", "geocode_reverse_get"))

	return &Handler{
		log:      handlerLog,
		geocoder: geocoder,
	}
}

// ServeHTTP GET /geocode/reverse?lat=&lng=
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lat, err := parseCoordinate(query.Get("lat"), 90)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid lat")
		return
	}
	lng, err := parseCoordinate(query.Get("lng"), 180)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid lng")
		return
	}

	address, err := h.geocoder.ReverseGeocode(r.Context(), entities.GeoPoint{Lat: lat, Lng: lng})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("reverse geocode")
		h.writeError(w, http.StatusBadGateway, "geocoding service unavailable")
		return
	}

	h.writeJSON(w, http.StatusOK, converter.ToAddress(*address))
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.Abs(value) > limit {
		return 0, errInvalidCoordinate
	}
	return value, nil
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
