//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "lessence-checkout/internal/domain/coupon"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID             uuid.UUID
	Code           string
	DiscountType   domcoupon.DiscountType
	DiscountValue  float64
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	UsageLimit     *int32
	TimesUsed      int32
	MinOrderCents  *int64
	FirstOrderOnly bool
	PerUserLimit   *int32
	IsActive       bool
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:            uuid.New(),
		Code:          "WELCOME10",
		DiscountType:  domcoupon.TypePercentage,
		DiscountValue: 10,
		IsActive:      true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithUsageLimit(limit, used int32) *CouponBuilder {
	b.UsageLimit = &limit
	b.TimesUsed = used
	return b
}

func (b *CouponBuilder) WithMinOrder(cents int64) *CouponBuilder {
	b.MinOrderCents = &cents
	return b
}

func (b *CouponBuilder) WithPerUserLimit(limit int32) *CouponBuilder {
	b.PerUserLimit = &limit
	return b
}

func (b *CouponBuilder) WithValidUntil(t time.Time) *CouponBuilder {
	b.ValidUntil = &t
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	discount, err := domcoupon.NewDiscount(b.DiscountType, b.DiscountValue)
	if err != nil {
		return nil, err
	}
	return domcoupon.NewCoupon(
		b.ID,
		b.Code,
		discount,
		b.ValidFrom,
		b.ValidUntil,
		b.UsageLimit,
		b.TimesUsed,
		b.MinOrderCents,
		b.FirstOrderOnly,
		b.PerUserLimit,
		b.IsActive,
	)
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:             b.ID,
		Code:           b.Code,
		DiscountType:   string(b.DiscountType),
		DiscountValue:  b.DiscountValue,
		ValidFrom:      b.ValidFrom,
		ValidUntil:     b.ValidUntil,
		UsageLimit:     b.UsageLimit,
		TimesUsed:      b.TimesUsed,
		MinOrderCents:  b.MinOrderCents,
		FirstOrderOnly: b.FirstOrderOnly,
		PerUserLimit:   b.PerUserLimit,
		IsActive:       b.IsActive,
	}
}
