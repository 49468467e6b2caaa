package commands

import (
	"context"

	"lessence-checkout/internal/domain/coupon"
	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/pkg/clock"
	"lessence-checkout/internal/pkg/errs"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("invalid or expired coupon code")

// PricingResult is what a successful coupon application contributes to
// the order.
type PricingResult struct {
	CouponID      *uuid.UUID
	DiscountCents int64
	FreeShipping  bool
}

// PricingEngine resolves a coupon code against the eligibility rules and
// computes the discount. It never writes: usage counters move only after
// the order is durably created.
type PricingEngine struct {
	reads shared.CommandReads
	clock clock.Clock
}

func NewPricingEngine(reads shared.CommandReads, clock clock.Clock) *PricingEngine {
	return &PricingEngine{reads: reads, clock: clock}
}

// Price applies the optional coupon code to a subtotal. A nil code prices
// the order with no discount.
func (p *PricingEngine) Price(ctx context.Context, code *string, subtotalCents int64, userID *uuid.UUID) (*PricingResult, error) {
	if code == nil || *code == "" {
		return &PricingResult{}, nil
	}

	snap, err := p.reads.CouponByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	discount, err := coupon.NewDiscount(coupon.DiscountType(snap.DiscountType), snap.DiscountValue)
	if err != nil {
		return nil, err
	}
	c, err := coupon.NewCoupon(
		snap.ID,
		snap.Code,
		discount,
		snap.ValidFrom,
		snap.ValidUntil,
		snap.UsageLimit,
		snap.TimesUsed,
		snap.MinOrderCents,
		snap.FirstOrderOnly,
		snap.PerUserLimit,
		snap.IsActive,
	)
	if err != nil {
		return nil, err
	}

	redemption := coupon.Redemption{Authenticated: userID != nil}
	if c.RequiresIdentity() && userID != nil {
		priorOrders, err := p.reads.CountOrdersByUser(ctx, *userID)
		if err != nil {
			return nil, err
		}
		timesRedeemed, err := p.reads.CountRedemptions(ctx, c.ID(), *userID)
		if err != nil {
			return nil, err
		}
		redemption.PriorOrders = priorOrders
		redemption.TimesRedeemed = timesRedeemed
	}

	if err := c.ValidateRedemption(p.clock.Now(), subtotalCents, redemption); err != nil {
		return nil, err
	}

	id := c.ID()
	return &PricingResult{
		CouponID:      &id,
		DiscountCents: c.DiscountCents(subtotalCents),
		FreeShipping:  c.IsFreeShipping(),
	}, nil
}
