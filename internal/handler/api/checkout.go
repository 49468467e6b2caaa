package api

import (
	"errors"
	"net/http"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/domain/coupon"
	reqdto "lessence-checkout/internal/handler/dto/request"
	resdto "lessence-checkout/internal/handler/dto/response"
	"lessence-checkout/internal/handler/httperr"
	"lessence-checkout/internal/handler/middleware"
	"lessence-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func optionalUserID(c *gin.Context) *uuid.UUID {
	if id, ok := middleware.GetUserID(c); ok {
		return &id
	}
	return nil
}

// @Summary Place cash-on-delivery order
// @Description Validate the cart, apply an optional coupon, and create the order immediately
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CODOrderResponse
// @Failure 400 {object} httperr.Response
// @Router /create-cod-order [post]
func (h *CheckoutHandler) CreateCODOrder(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.checkout.PlaceCODOrder(c.Request.Context(), req.ToInput(optionalUserID(c)))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	resp, err := resdto.FromCODOrder(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create payment intention
// @Description Validate the cart and open a payment intention with the gateway; the order is created by the success webhook
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.PaymentIntentionResponse
// @Failure 400 {object} httperr.Response
// @Router /create-paymob-order [post]
func (h *CheckoutHandler) CreatePaymobOrder(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	intention, err := h.checkout.CreatePaymentIntention(c.Request.Context(), req.ToInput(optionalUserID(c)))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntention(intention))
}

// The storefront shows these messages verbatim, so every rejection a
// customer can cause maps to a 400 with a human-readable reason.
func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrAmbiguousLine),
		errors.Is(err, cart.ErrMissingTarget):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart contents")
	case errors.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Product not found")
	case errors.Is(err, commands.ErrVariantNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Product variant not found")
	case errors.Is(err, commands.ErrBundleNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bundle not found or inactive")
	case errors.Is(err, commands.ErrInsufficientStock):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Insufficient stock")
	case errors.Is(err, commands.ErrCouponNotFound), errors.Is(err, coupon.ErrInactive):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired coupon code")
	case errors.Is(err, coupon.ErrExpired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon has expired")
	case errors.Is(err, coupon.ErrUsageLimitReached):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon usage limit reached")
	case errors.Is(err, coupon.ErrMinOrderNotMet):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Order subtotal does not meet the coupon minimum")
	case errors.Is(err, coupon.ErrAuthRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please log in to use this coupon")
	case errors.Is(err, coupon.ErrFirstOrderOnly):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "This coupon is only valid for your first order")
	case errors.Is(err, coupon.ErrPerUserLimitReached):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "You have reached the usage limit for this coupon")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
