package checkout_preflight_post

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

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "checkout_preflight_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.CheckoutPreflightRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	checkoutRequest := entities.CheckoutRequest{
		OrderType:  entities.OrderType(request.OrderType),
		Address:    converter.AddressToEntity(request.Address),
		Subtotal:   request.Subtotal.Decimal,
		CouponCode: request.CouponCode,
	}
	if request.Point != nil {
		point := converter.GeoPointToEntity(*request.Point)
		checkoutRequest.Point = &point
	}

	quote, err := h.service.Preflight(r.Context(), checkoutRequest)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidOrderType):
			h.writeError(w, http.StatusBadRequest, "order_type must be delivery or pickup")
		case errors.Is(err, checkout.ErrInvalidSubtotal):
			h.writeError(w, http.StatusBadRequest, "invalid subtotal")
		case errors.Is(err, zone.ErrInvalidPoint):
			h.writeError(w, http.StatusBadRequest, "invalid point")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("checkout preflight")
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	if len(quote.SkippedZoneIDs) > 0 {
		h.log.Warn("zones with invalid geometry skipped",
			logger.NewField("zone_ids", quote.SkippedZoneIDs),
		)
	}

	if !quote.Accepted {
		h.log.Info("checkout rejected",
			logger.NewField("order_type", request.OrderType),
			logger.NewField("reason", quote.Reason),
		)
	}

	h.writeJSON(w, http.StatusOK, converter.ToCheckoutQuote(quote))
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
