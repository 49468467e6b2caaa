package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInactive            = errors.New("coupon is not active")
	ErrExpired             = errors.New("coupon has expired")
	ErrUsageLimitReached   = errors.New("coupon usage limit reached")
	ErrMinOrderNotMet      = errors.New("order subtotal below coupon minimum")
	ErrAuthRequired        = errors.New("coupon requires an authenticated customer")
	ErrFirstOrderOnly      = errors.New("coupon is valid for first orders only")
	ErrPerUserLimitReached = errors.New("per-user coupon limit reached")
)

type Coupon struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	validFrom      *time.Time
	validUntil     *time.Time
	usageLimit     *int32
	timesUsed      int32
	minOrderCents  *int64
	firstOrderOnly bool
	perUserLimit   *int32
	isActive       bool
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discount Discount,
	validFrom, validUntil *time.Time,
	usageLimit *int32,
	timesUsed int32,
	minOrderCents *int64,
	firstOrderOnly bool,
	perUserLimit *int32,
	isActive bool,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:             id,
		code:           couponCode,
		discount:       discount,
		validFrom:      validFrom,
		validUntil:     validUntil,
		usageLimit:     usageLimit,
		timesUsed:      timesUsed,
		minOrderCents:  minOrderCents,
		firstOrderOnly: firstOrderOnly,
		perUserLimit:   perUserLimit,
		isActive:       isActive,
	}, nil
}

// Redemption is what the caller knows about the customer attempting to
// redeem. Counts are only meaningful when Authenticated is true.
type Redemption struct {
	Authenticated bool
	PriorOrders   int64
	TimesRedeemed int64
}

// RequiresIdentity reports whether eligibility depends on who is redeeming,
// so callers know to fetch order/redemption counts first.
func (c *Coupon) RequiresIdentity() bool {
	return c.firstOrderOnly || c.perUserLimit != nil
}

// ValidateRedemption evaluates the eligibility rules in order; the first
// violated rule wins.
func (c *Coupon) ValidateRedemption(now time.Time, subtotalCents int64, r Redemption) error {
	if !c.isActive {
		return ErrInactive
	}
	if c.validUntil != nil && now.After(*c.validUntil) {
		return ErrExpired
	}
	if c.usageLimit != nil && c.timesUsed >= *c.usageLimit {
		return ErrUsageLimitReached
	}
	if c.minOrderCents != nil && subtotalCents < *c.minOrderCents {
		return ErrMinOrderNotMet
	}
	if c.RequiresIdentity() {
		if !r.Authenticated {
			return ErrAuthRequired
		}
		if c.firstOrderOnly && r.PriorOrders > 0 {
			return ErrFirstOrderOnly
		}
		if c.perUserLimit != nil && r.TimesRedeemed >= int64(*c.perUserLimit) {
			return ErrPerUserLimitReached
		}
	}
	return nil
}

func (c *Coupon) DiscountCents(subtotalCents int64) int64 {
	return c.discount.AmountCents(subtotalCents)
}

func (c *Coupon) IsFreeShipping() bool {
	return c.discount.IsFreeShipping()
}

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) Code() Code             { return c.code }
func (c *Coupon) Discount() Discount     { return c.discount }
func (c *Coupon) ValidFrom() *time.Time  { return c.validFrom }
func (c *Coupon) ValidUntil() *time.Time { return c.validUntil }
func (c *Coupon) TimesUsed() int32       { return c.timesUsed }
func (c *Coupon) IsActive() bool         { return c.isActive }
