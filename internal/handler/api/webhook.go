package api

import (
	"errors"
	"net/http"

	resdto "lessence-checkout/internal/handler/dto/response"
	"lessence-checkout/internal/handler/httperr"
	"lessence-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhook commands.WebhookCommands
}

func NewWebhookHandler(webhook commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{webhook: webhook}
}

// @Summary Paymob payment webhook
// @Description Handle a payment-success callback from the gateway; idempotent across redeliveries
// @Tags webhooks
// @Accept json
// @Produce json
// @Param hmac header string true "Hex HMAC-SHA512 signature of the raw body"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /paymob-webhook [post]
func (h *WebhookHandler) HandlePaymobWebhook(c *gin.Context) {
	// The signature covers the exact bytes on the wire; a re-serialized
	// parse would not verify.
	body, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read request body")
		return
	}

	signature := c.GetHeader("hmac")

	result, err := h.webhook.ConfirmGatewayOrder(c.Request.Context(), body, signature)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSignature):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid signature")
		case errors.Is(err, commands.ErrMissingMetadata):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing metadata")
		default:
			// 5xx tells the provider to redeliver.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	if result.Duplicate || result.Ignored {
		c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true})
		return
	}

	orderID := result.OrderID
	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true, OrderID: &orderID})
}
