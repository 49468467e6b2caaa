package order

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems         = errors.New("order must have at least one item")
	ErrNegativeAmounts = errors.New("order amounts cannot be negative")
	ErrInvalidStatus   = errors.New("invalid order status")
)

type Status string

const (
	// StatusPending is assigned to cash-collect orders awaiting delivery.
	StatusPending Status = "pending"
	// StatusPaid is assigned when the gateway already confirmed capture.
	StatusPaid Status = "paid"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPaid:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Order is the aggregate produced exactly once per successful checkout.
// Status transitions after creation belong to the admin console, not here.
type Order struct {
	id                uuid.UUID
	userID            *uuid.UUID
	orderNumber       string
	status            Status
	subtotalCents     int64
	discountCents     int64
	totalCents        int64
	appliedCouponID   *uuid.UUID
	shippingAddressID *uuid.UUID
	isGift            bool
	giftWrap          bool
	giftMessage       *string
	createdAt         time.Time
}

func NewOrder(
	userID *uuid.UUID,
	orderNumber string,
	status Status,
	subtotalCents, discountCents int64,
	appliedCouponID, shippingAddressID *uuid.UUID,
	isGift, giftWrap bool,
	giftMessage *string,
) (*Order, error) {
	if subtotalCents < 0 || discountCents < 0 {
		return nil, ErrNegativeAmounts
	}

	total := subtotalCents - discountCents
	if total < 0 {
		total = 0
	}

	return &Order{
		id:                uuid.New(),
		userID:            userID,
		orderNumber:       orderNumber,
		status:            status,
		subtotalCents:     subtotalCents,
		discountCents:     discountCents,
		totalCents:        total,
		appliedCouponID:   appliedCouponID,
		shippingAddressID: shippingAddressID,
		isGift:            isGift,
		giftWrap:          giftWrap,
		giftMessage:       giftMessage,
	}, nil
}

// NewOrderNumber builds the human-readable reference shown to customers.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%d", now.UnixMilli(), rand.Intn(1000))
}

func (o *Order) ID() uuid.UUID               { return o.id }
func (o *Order) UserID() *uuid.UUID          { return o.userID }
func (o *Order) OrderNumber() string         { return o.orderNumber }
func (o *Order) Status() Status              { return o.status }
func (o *Order) SubtotalCents() int64        { return o.subtotalCents }
func (o *Order) DiscountCents() int64        { return o.discountCents }
func (o *Order) TotalCents() int64           { return o.totalCents }
func (o *Order) AppliedCouponID() *uuid.UUID { return o.appliedCouponID }
func (o *Order) ShippingAddressID() *uuid.UUID {
	return o.shippingAddressID
}
func (o *Order) IsGift() bool         { return o.isGift }
func (o *Order) GiftWrap() bool       { return o.giftWrap }
func (o *Order) GiftMessage() *string { return o.giftMessage }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) IsGuestOrder() bool   { return o.userID == nil }
