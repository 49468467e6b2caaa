package response

import (
	"time"

	"lessence-checkout/internal/infra/gateway/paymob"
	"lessence-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	ProductID    *uuid.UUID `json:"productId,omitempty"`
	BundleID     *uuid.UUID `json:"bundleId,omitempty"`
	VariantID    *uuid.UUID `json:"variantId,omitempty"`
	Name         string     `json:"name"`
	SelectedSize *string    `json:"selectedSize,omitempty"`
	PriceCents   int64      `json:"priceCents"`
	Quantity     int        `json:"quantity"`
}

type PaymentResponse struct {
	Provider      string `json:"provider"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	AmountCents   int64  `json:"amountCents"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	Status        string              `json:"status"`
	SubtotalCents int64               `json:"subtotalCents"`
	DiscountCents int64               `json:"discountCents"`
	TotalCents    int64               `json:"totalCents"`
	IsGift        bool                `json:"isGift"`
	GiftWrap      bool                `json:"giftWrap"`
	GiftMessage   *string             `json:"giftMessage,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []OrderItemResponse `json:"items"`
	Payment       *PaymentResponse    `json:"payment,omitempty"`
}

func FromOrderView(view *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CODOrderResponse is the storefront's checkout confirmation envelope;
// the full order view rides along for the confirmation page.
type CODOrderResponse struct {
	Success     bool           `json:"success"`
	OrderID     uuid.UUID      `json:"orderId"`
	OrderNumber string         `json:"orderNumber"`
	Order       *OrderResponse `json:"order,omitempty"`
}

func FromCODOrder(view *queries.OrderView) (*CODOrderResponse, error) {
	order, err := FromOrderView(view)
	if err != nil {
		return nil, err
	}
	return &CODOrderResponse{
		Success:     true,
		OrderID:     view.ID,
		OrderNumber: view.OrderNumber,
		Order:       order,
	}, nil
}

// PaymentIntentionResponse is what the storefront needs to open the
// embedded payment widget.
type PaymentIntentionResponse struct {
	ClientSecret string `json:"clientSecret"`
	PublicKey    string `json:"publicKey"`
}

func FromIntention(i *paymob.Intention) *PaymentIntentionResponse {
	return &PaymentIntentionResponse{
		ClientSecret: i.ClientSecret,
		PublicKey:    i.PublicKey,
	}
}

// WebhookAckResponse acknowledges a gateway callback.
type WebhookAckResponse struct {
	Received bool       `json:"received"`
	OrderID  *uuid.UUID `json:"orderId,omitempty"`
}
