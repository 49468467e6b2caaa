//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lessence-checkout/internal/domain/coupon"
	"lessence-checkout/internal/pkg/clock"
	"lessence-checkout/internal/usecase/commands"
	"lessence-checkout/tests/common/builder"
	sharedmock "lessence-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pricingNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestPricingEngine_Price(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(pricingNow)

	t.Run("no code means no discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)

		engine := commands.NewPricingEngine(reads, clk)

		result, err := engine.Price(ctx, nil, 20_000, nil)
		require.NoError(t, err)
		assert.Nil(t, result.CouponID)
		assert.Zero(t, result.DiscountCents)

		result, err = engine.Price(ctx, strPtr(""), 20_000, nil)
		require.NoError(t, err)
		assert.Zero(t, result.DiscountCents)
	})

	t.Run("percentage coupon prices the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)

		snap := builder.NewCouponBuilder().BuildSnapshot() // WELCOME10, 10%
		reads.EXPECT().CouponByCode(ctx, "WELCOME10").Return(snap, nil)

		result, err := commands.NewPricingEngine(reads, clk).Price(ctx, strPtr("WELCOME10"), 20_000, nil)
		require.NoError(t, err)
		assert.Equal(t, snap.ID, *result.CouponID)
		assert.Equal(t, int64(2_000), result.DiscountCents)
		assert.False(t, result.FreeShipping)
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)

		reads.EXPECT().CouponByCode(ctx, "NOPE99").Return(nil, notFound())

		_, err := commands.NewPricingEngine(reads, clk).Price(ctx, strPtr("NOPE99"), 20_000, nil)
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("expired coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)

		snap := builder.NewCouponBuilder().WithValidUntil(pricingNow.Add(-time.Hour)).BuildSnapshot()
		reads.EXPECT().CouponByCode(ctx, "WELCOME10").Return(snap, nil)

		_, err := commands.NewPricingEngine(reads, clk).Price(ctx, strPtr("WELCOME10"), 20_000, nil)
		assert.ErrorIs(t, err, coupon.ErrExpired)
	})

	t.Run("identity-gated coupon with anonymous customer skips count reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)

		snap := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.FirstOrderOnly = true }).
			BuildSnapshot()
		reads.EXPECT().CouponByCode(ctx, "WELCOME10").Return(snap, nil)
		// No CountOrdersByUser / CountRedemptions expectations: the engine
		// must fail on authentication before fetching counts.

		_, err := commands.NewPricingEngine(reads, clk).Price(ctx, strPtr("WELCOME10"), 20_000, nil)
		assert.ErrorIs(t, err, coupon.ErrAuthRequired)
	})

	t.Run("first-order coupon rejects a returning customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)
		userID := uuid.New()

		snap := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) { b.FirstOrderOnly = true }).
			BuildSnapshot()
		reads.EXPECT().CouponByCode(ctx, "WELCOME10").Return(snap, nil)
		reads.EXPECT().CountOrdersByUser(ctx, userID).Return(int64(3), nil)
		reads.EXPECT().CountRedemptions(ctx, snap.ID, userID).Return(int64(0), nil)

		_, err := commands.NewPricingEngine(reads, clk).Price(ctx, strPtr("WELCOME10"), 20_000, &userID)
		assert.ErrorIs(t, err, coupon.ErrFirstOrderOnly)
	})

	t.Run("per-user limit consumed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)
		userID := uuid.New()

		snap := builder.NewCouponBuilder().WithPerUserLimit(1).BuildSnapshot()
		reads.EXPECT().CouponByCode(ctx, "WELCOME10").Return(snap, nil)
		reads.EXPECT().CountOrdersByUser(ctx, userID).Return(int64(1), nil)
		reads.EXPECT().CountRedemptions(ctx, snap.ID, userID).Return(int64(1), nil)

		_, err := commands.NewPricingEngine(reads, clk).Price(ctx, strPtr("WELCOME10"), 20_000, &userID)
		assert.ErrorIs(t, err, coupon.ErrPerUserLimitReached)
	})

	t.Run("free shipping coupon discounts nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reads := sharedmock.NewMockCommandReads(ctrl)

		snap := builder.NewCouponBuilder().
			With(func(b *builder.CouponBuilder) {
				b.DiscountType = coupon.TypeFreeShipping
				b.DiscountValue = 0
			}).
			BuildSnapshot()
		reads.EXPECT().CouponByCode(ctx, "WELCOME10").Return(snap, nil)

		result, err := commands.NewPricingEngine(reads, clk).Price(ctx, strPtr("WELCOME10"), 20_000, nil)
		require.NoError(t, err)
		assert.Zero(t, result.DiscountCents)
		assert.True(t, result.FreeShipping)
	})
}
