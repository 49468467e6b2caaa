package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderItemView struct {
	ProductID    *uuid.UUID `json:"productId,omitempty"`
	BundleID     *uuid.UUID `json:"bundleId,omitempty"`
	VariantID    *uuid.UUID `json:"variantId,omitempty"`
	Name         string     `json:"name"`
	SelectedSize *string    `json:"selectedSize,omitempty"`
	PriceCents   int64      `json:"priceCents"`
	Quantity     int        `json:"quantity"`
}

type PaymentView struct {
	Provider      string `json:"provider"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	AmountCents   int64  `json:"amountCents"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	UserID        *uuid.UUID      `json:"userId,omitempty"`
	Status        string          `json:"status"`
	SubtotalCents int64           `json:"subtotalCents"`
	DiscountCents int64           `json:"discountCents"`
	TotalCents    int64           `json:"totalCents"`
	IsGift        bool            `json:"isGift"`
	GiftWrap      bool            `json:"giftWrap"`
	GiftMessage   *string         `json:"giftMessage,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	Items         []OrderItemView `json:"items"`
	Payment       *PaymentView    `json:"payment,omitempty"`
}

type OrderReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.store.GetByID(ctx, id)
}
