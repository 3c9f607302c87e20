package coupon_validate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/generated/dto"
	"storefront/internal/handlers/rest/converter"
	"storefront/internal/handlers/rest/response"
	"storefront/internal/service/checkout"
	"storefront/pkg/logger"
)

const msgCouponNotFound = "Coupon not found"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "coupon_validate_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.CouponValidateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	coupon, err := h.service.ValidateCoupon(r.Context(), request.Code, request.Subtotal.Decimal)
	if err != nil {
		var couponErr *checkout.CouponError
		switch {
		case errors.Is(err, checkout.ErrInvalidCoupon):
			h.writeError(w, http.StatusBadRequest, "code is required")
		case errors.Is(err, checkout.ErrInvalidSubtotal):
			h.writeError(w, http.StatusBadRequest, "invalid subtotal")
		case errors.Is(err, checkout.ErrCouponNotFound):
			h.writeJSON(w, http.StatusNotFound, dto.CouponValidateResponse{
				Valid:   false,
				Message: msgCouponNotFound,
			})
		case errors.As(err, &couponErr):
			h.writeJSON(w, http.StatusBadRequest, dto.CouponValidateResponse{
				Valid:   false,
				Message: couponErr.Detail,
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("validate coupon")
			h.writeError(w, http.StatusBadGateway, "coupon service unavailable")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.CouponValidateResponse{
		Valid:  true,
		Coupon: converter.ToCoupon(coupon),
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
