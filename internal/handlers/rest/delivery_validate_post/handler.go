package delivery_validate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converter"
	"storefront/internal/handlers/rest/response"
	"storefront/internal/service/checkout"
	"storefront/internal/service/zone"
	"storefront/pkg/logger"
)

const msgAddressNotFound = "Could not find address. Please check details."

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "delivery_validate_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.DeliveryValidateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var result *entities.MatchResult
	switch {
	case request.Point != nil:
		result, err = h.service.ValidateLocation(r.Context(), converter.GeoPointToEntity(*request.Point))
	case request.Address != nil:
		result, err = h.service.ValidateAddress(r.Context(), converter.AddressToEntity(request.Address))
	default:
		h.writeError(w, http.StatusBadRequest, "point or address is required")
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, zone.ErrInvalidPoint):
			h.writeError(w, http.StatusBadRequest, "invalid point")
		case errors.Is(err, zone.ErrEmptyAddress):
			h.writeError(w, http.StatusBadRequest, "address is empty")
		case zone.IsNotResolved(err):
			h.log.With(
				logger.NewField("error", err),
			).Info("address not resolved")
			h.writeJSON(w, http.StatusOK, dto.DeliveryValidateResponse{
				Valid:   false,
				Message: msgAddressNotFound,
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("validate delivery location")
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	if len(result.Skipped) > 0 {
		h.log.Warn("zones with invalid geometry skipped",
			logger.NewField("zone_ids", result.Skipped),
		)
	}

	fee := checkout.DefaultDeliveryFee
	if result.Zone != nil {
		fee = result.Zone.DeliveryFee
	}

	h.writeJSON(w, http.StatusOK, converter.ToDeliveryValidate(result, fee))
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
