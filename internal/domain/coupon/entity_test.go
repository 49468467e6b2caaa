//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"lessence-checkout/internal/domain/coupon"
	"lessence-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestValidateRedemption(t *testing.T) {
	anon := coupon.Redemption{}
	authed := coupon.Redemption{Authenticated: true}

	t.Run("active coupon with no restrictions passes", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, c.ValidateRedemption(now, 10_000, anon))
	})

	t.Run("inactive coupon is rejected first", func(t *testing.T) {
		// Inactive and expired at once: inactivity must win.
		expired := now.Add(-time.Hour)
		c, err := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.IsActive = false }).
			WithValidUntil(expired).
			BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateRedemption(now, 10_000, anon), coupon.ErrInactive)
	})

	t.Run("expired coupon", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithValidUntil(now.Add(-time.Minute)).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateRedemption(now, 10_000, anon), coupon.ErrExpired)
	})

	t.Run("coupon valid until a future date", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithValidUntil(now.Add(time.Hour)).BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, c.ValidateRedemption(now, 10_000, anon))
	})

	t.Run("usage limit reached", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithUsageLimit(5, 5).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateRedemption(now, 10_000, anon), coupon.ErrUsageLimitReached)
	})

	t.Run("usage limit with one use left", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithUsageLimit(5, 4).BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, c.ValidateRedemption(now, 10_000, anon))
	})

	t.Run("minimum order not met", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithMinOrder(20_000).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateRedemption(now, 19_999, anon), coupon.ErrMinOrderNotMet)
		assert.NoError(t, c.ValidateRedemption(now, 20_000, anon))
	})

	t.Run("first-order coupon requires authentication", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.FirstOrderOnly = true }).
			BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateRedemption(now, 10_000, anon), coupon.ErrAuthRequired)
	})

	t.Run("first-order coupon rejects returning customers", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.FirstOrderOnly = true }).
			BuildDomain()
		require.NoError(t, err)

		returning := coupon.Redemption{Authenticated: true, PriorOrders: 1}
		assert.ErrorIs(t, c.ValidateRedemption(now, 10_000, returning), coupon.ErrFirstOrderOnly)
		assert.NoError(t, c.ValidateRedemption(now, 10_000, authed))
	})

	t.Run("per-user limit", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPerUserLimit(2).BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, c.ValidateRedemption(now, 10_000, anon), coupon.ErrAuthRequired)

		exhausted := coupon.Redemption{Authenticated: true, TimesRedeemed: 2}
		assert.ErrorIs(t, c.ValidateRedemption(now, 10_000, exhausted), coupon.ErrPerUserLimitReached)

		oneLeft := coupon.Redemption{Authenticated: true, TimesRedeemed: 1}
		assert.NoError(t, c.ValidateRedemption(now, 10_000, oneLeft))
	})

	t.Run("rule order: expiry beats usage limit", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			WithValidUntil(now.Add(-time.Minute)).
			WithUsageLimit(1, 1).
			BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateRedemption(now, 10_000, anon), coupon.ErrExpired)
	})
}

func TestDiscountCents(t *testing.T) {
	t.Run("percentage discount", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain() // 10%
		require.NoError(t, err)
		assert.Equal(t, int64(2_000), c.DiscountCents(20_000))
	})

	t.Run("percentage rounds to nearest cent", func(t *testing.T) {
		discount, err := coupon.NewDiscount(coupon.TypePercentage, 15)
		require.NoError(t, err)
		c, err := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.DiscountType = coupon.TypePercentage; b.DiscountValue = 15 }).
			BuildDomain()
		require.NoError(t, err)
		// 15% of 333 cents = 49.95, rounds to 50.
		assert.Equal(t, int64(50), discount.AmountCents(333))
		assert.Equal(t, int64(50), c.DiscountCents(333))
	})

	t.Run("fixed discount is clamped to subtotal", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) {
				b.DiscountType = coupon.TypeFixed
				b.DiscountValue = 100 // 100.00 in currency units
			}).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(10_000), c.DiscountCents(25_000))
		assert.Equal(t, int64(5_000), c.DiscountCents(5_000))
	})

	t.Run("free shipping contributes no discount", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.DiscountType = coupon.TypeFreeShipping; b.DiscountValue = 0 }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(0), c.DiscountCents(25_000))
		assert.True(t, c.IsFreeShipping())
	})
}

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		code  string
		want  string
		valid bool
	}{
		{"uppercase alphanumeric", "SUMMER25", "SUMMER25", true},
		{"lowercase is normalized", "summer25", "SUMMER25", true},
		{"surrounding whitespace trimmed", "  WELCOME10 ", "WELCOME10", true},
		{"minimum length", "ABC", "ABC", true},
		{"too short", "AB", "", false},
		{"inner spaces rejected", "SUMMER 25", "", false},
		{"empty rejected", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.code)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.want, code.String())
			} else {
				assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)
			}
		})
	}
}
