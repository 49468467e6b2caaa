//go:build unit

package order_test

import (
	"regexp"
	"testing"
	"time"

	"lessence-checkout/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	userID := uuid.New()
	couponID := uuid.New()

	t.Run("total is subtotal minus discount", func(t *testing.T) {
		o, err := order.NewOrder(&userID, "ORD-1-1", order.StatusPending, 45_000, 4_500, &couponID, nil, false, false, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(40_500), o.TotalCents())
		assert.Equal(t, int64(45_000), o.SubtotalCents())
		assert.Equal(t, int64(4_500), o.DiscountCents())
		assert.Equal(t, couponID, *o.AppliedCouponID())
	})

	t.Run("total floors at zero when discount exceeds subtotal", func(t *testing.T) {
		o, err := order.NewOrder(&userID, "ORD-1-2", order.StatusPending, 5_000, 10_000, &couponID, nil, false, false, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), o.TotalCents())
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		_, err := order.NewOrder(&userID, "ORD-1-3", order.StatusPending, -1, 0, nil, nil, false, false, nil)
		assert.ErrorIs(t, err, order.ErrNegativeAmounts)

		_, err = order.NewOrder(&userID, "ORD-1-4", order.StatusPending, 1_000, -1, nil, nil, false, false, nil)
		assert.ErrorIs(t, err, order.ErrNegativeAmounts)
	})

	t.Run("guest order carries no user", func(t *testing.T) {
		o, err := order.NewOrder(nil, "ORD-1-5", order.StatusPaid, 20_000, 0, nil, nil, false, false, nil)
		require.NoError(t, err)
		assert.True(t, o.IsGuestOrder())
		assert.Nil(t, o.UserID())
	})

	t.Run("gift fields survive", func(t *testing.T) {
		msg := "Happy birthday"
		o, err := order.NewOrder(&userID, "ORD-1-6", order.StatusPending, 20_000, 0, nil, nil, true, true, &msg)
		require.NoError(t, err)
		assert.True(t, o.IsGift())
		assert.True(t, o.GiftWrap())
		assert.Equal(t, "Happy birthday", *o.GiftMessage())
	})
}

func TestNewStatus(t *testing.T) {
	s, err := order.NewStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, s)

	s, err = order.NewStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, s)

	_, err = order.NewStatus("shipped")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	num := order.NewOrderNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^ORD-1772366400000-\d{1,3}$`), num)
}

func TestPayments(t *testing.T) {
	t.Run("cash on delivery starts pending with a synthetic tx id", func(t *testing.T) {
		p := order.NewCODPayment("ORD-1772366400000-42", 40_500)
		assert.Equal(t, order.ProviderCOD, p.Provider)
		assert.Equal(t, order.PaymentPending, p.Status)
		assert.Equal(t, "cod_ORD-1772366400000-42", p.TransactionID)
		assert.Equal(t, int64(40_500), p.AmountCents)
	})

	t.Run("gateway payment is already captured", func(t *testing.T) {
		p := order.NewGatewayPayment("311042287", 40_500)
		assert.Equal(t, order.ProviderPaymob, p.Provider)
		assert.Equal(t, order.PaymentCompleted, p.Status)
		assert.Equal(t, "311042287", p.TransactionID)
	})
}
