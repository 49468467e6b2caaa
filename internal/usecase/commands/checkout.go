package commands

import (
	"context"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/domain/order"
	"lessence-checkout/internal/infra/gateway/paymob"
	"lessence-checkout/internal/usecase/queries"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// CheckoutInput is a checkout request after transport decoding: untrusted
// cart lines plus shipping and gifting details. UserID is nil for guests.
type CheckoutInput struct {
	UserID      *uuid.UUID
	Lines       []cart.Line
	Address     shared.AddressInput
	CouponCode  *string
	IsGift      bool
	GiftWrap    bool
	GiftMessage *string
}

type CheckoutCommands interface {
	// PlaceCODOrder validates, prices, and durably creates a
	// cash-on-delivery order in one shot.
	PlaceCODOrder(ctx context.Context, in CheckoutInput) (*queries.OrderView, error)
	// CreatePaymentIntention validates and prices the cart, then opens a
	// payment intention with the gateway. No order exists until the
	// success webhook arrives.
	CreatePaymentIntention(ctx context.Context, in CheckoutInput) (*paymob.Intention, error)
}

type checkoutUseCaseImpl struct {
	validator    *CartValidator
	pricing      *PricingEngine
	assembler    *OrderAssembler
	gateway      PaymentGateway
	orderQueries queries.OrderQueries
}

func NewCheckoutUseCase(
	validator *CartValidator,
	pricing *PricingEngine,
	assembler *OrderAssembler,
	gateway PaymentGateway,
	orderQueries queries.OrderQueries,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		validator:    validator,
		pricing:      pricing,
		assembler:    assembler,
		gateway:      gateway,
		orderQueries: orderQueries,
	}
}

func (c *checkoutUseCaseImpl) PlaceCODOrder(ctx context.Context, in CheckoutInput) (*queries.OrderView, error) {
	lines, err := c.validator.Validate(ctx, in.Lines)
	if err != nil {
		return nil, err
	}
	subtotal := cart.Subtotal(lines)

	priced, err := c.pricing.Price(ctx, in.CouponCode, subtotal, in.UserID)
	if err != nil {
		return nil, err
	}

	orderID, err := c.assembler.Assemble(ctx, AssemblyInput{
		UserID:        in.UserID,
		Lines:         lines,
		Address:       in.Address,
		CouponID:      priced.CouponID,
		SubtotalCents: subtotal,
		DiscountCents: priced.DiscountCents,
		Status:        order.StatusPending,
		IsGift:        in.IsGift,
		GiftWrap:      in.GiftWrap,
		GiftMessage:   in.GiftMessage,
	})
	if err != nil {
		return nil, err
	}

	c.assembler.FinishCheckout(ctx, in.UserID, orderID)

	return c.orderQueries.GetByID(ctx, orderID)
}

func (c *checkoutUseCaseImpl) CreatePaymentIntention(ctx context.Context, in CheckoutInput) (*paymob.Intention, error) {
	lines, err := c.validator.Validate(ctx, in.Lines)
	if err != nil {
		return nil, err
	}
	subtotal := cart.Subtotal(lines)

	priced, err := c.pricing.Price(ctx, in.CouponCode, subtotal, in.UserID)
	if err != nil {
		return nil, err
	}

	total := subtotal - priced.DiscountCents
	if total < 0 {
		total = 0
	}

	meta := paymob.CheckoutMetadata{
		UserID:          in.UserID,
		AppliedCouponID: priced.CouponID,
		DiscountCents:   priced.DiscountCents,
		SubtotalCents:   subtotal,
		TotalCents:      total,
		IsGift:          in.IsGift,
		GiftWrap:        in.GiftWrap,
		GiftMessage:     in.GiftMessage,
		Address:         in.Address,
		Lines:           lines,
	}

	return c.gateway.CreateIntention(ctx, total, meta)
}
