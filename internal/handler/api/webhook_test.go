//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lessence-checkout/internal/handler/api"
	resdto "lessence-checkout/internal/handler/dto/response"
	"lessence-checkout/internal/usecase/commands"
	"lessence-checkout/tests/common/httptest"
	commandsmock "lessence-checkout/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockWebhook *commandsmock.MockWebhookCommands
	handler     *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWebhook = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockWebhook)

	s.router.POST("/paymob-webhook", s.handler.HandlePaymobWebhook)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHandlePaymobWebhook() {
	url := "/paymob-webhook"
	body := []byte(`{"obj":{"id":311042287,"success":true}}`)

	s.Run("success: returns 200 with the created order id", func() {
		orderID := uuid.New()
		s.mockWebhook.EXPECT().ConfirmGatewayOrder(gomock.Any(), body, "valid-sig").
			Return(&commands.WebhookResult{OrderID: orderID}, nil).Times(1)

		rec := httptest.PerformSignedRequest(s.T(), s.router, http.MethodPost, url, body, "valid-sig")

		var resp resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Received)
		s.Equal(orderID, *resp.OrderID)
	})

	s.Run("success: duplicate delivery acknowledges without an order id", func() {
		s.mockWebhook.EXPECT().ConfirmGatewayOrder(gomock.Any(), body, gomock.Any()).
			Return(&commands.WebhookResult{Duplicate: true}, nil).Times(1)

		rec := httptest.PerformSignedRequest(s.T(), s.router, http.MethodPost, url, body, "valid-sig")

		var resp resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Received)
		s.Nil(resp.OrderID)
	})

	s.Run("success: failed transaction events are acknowledged", func() {
		s.mockWebhook.EXPECT().ConfirmGatewayOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.WebhookResult{Ignored: true}, nil).Times(1)

		rec := httptest.PerformSignedRequest(s.T(), s.router, http.MethodPost, url, body, "valid-sig")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: invalid signature maps to 401", func() {
		s.mockWebhook.EXPECT().ConfirmGatewayOrder(gomock.Any(), body, "bad-sig").
			Return(nil, commands.ErrInvalidSignature).Times(1)

		rec := httptest.PerformSignedRequest(s.T(), s.router, http.MethodPost, url, body, "bad-sig")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid signature")
	})

	s.Run("error: missing metadata maps to 400", func() {
		s.mockWebhook.EXPECT().ConfirmGatewayOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrMissingMetadata).Times(1)

		rec := httptest.PerformSignedRequest(s.T(), s.router, http.MethodPost, url, body, "valid-sig")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing metadata")
	})

	s.Run("error: assembly failure maps to 500 so the provider retries", func() {
		s.mockWebhook.EXPECT().ConfirmGatewayOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrOrderCreationFailed).Times(1)

		rec := httptest.PerformSignedRequest(s.T(), s.router, http.MethodPost, url, body, "valid-sig")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
