//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/domain/order"
	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/pkg/clock"
	"lessence-checkout/internal/usecase/commands"
	"lessence-checkout/internal/usecase/shared"
	commandsmock "lessence-checkout/tests/mock/commands"
	sharedmock "lessence-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type assemblerFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	orders    *sharedmock.MockOrderRepository
	inventory *sharedmock.MockInventoryRepository
	coupons   *sharedmock.MockCouponRepository
	addresses *sharedmock.MockAddressRepository
	carts     *sharedmock.MockCartRepository
	webhooks  *sharedmock.MockWebhookEventRepository
	loyalty   *commandsmock.MockLoyaltyService
	assembler *commands.OrderAssembler
}

func newAssemblerFixture(ctrl *gomock.Controller) *assemblerFixture {
	f := &assemblerFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		orders:    sharedmock.NewMockOrderRepository(ctrl),
		inventory: sharedmock.NewMockInventoryRepository(ctrl),
		coupons:   sharedmock.NewMockCouponRepository(ctrl),
		addresses: sharedmock.NewMockAddressRepository(ctrl),
		carts:     sharedmock.NewMockCartRepository(ctrl),
		webhooks:  sharedmock.NewMockWebhookEventRepository(ctrl),
		loyalty:   commandsmock.NewMockLoyaltyService(ctrl),
	}

	f.tx.EXPECT().Orders().Return(f.orders).AnyTimes()
	f.tx.EXPECT().Inventory().Return(f.inventory).AnyTimes()
	f.tx.EXPECT().Coupons().Return(f.coupons).AnyTimes()
	f.tx.EXPECT().Addresses().Return(f.addresses).AnyTimes()
	f.tx.EXPECT().Carts().Return(f.carts).AnyTimes()
	f.tx.EXPECT().WebhookEvents().Return(f.webhooks).AnyTimes()

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()

	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	f.assembler = commands.NewOrderAssembler(f.uow, f.loyalty, clk)
	return f
}

func productLine(priceCents int64, qty int) cart.ValidatedLine {
	productID := uuid.New()
	return cart.ValidatedLine{
		ProductID:      &productID,
		Quantity:       qty,
		UnitPriceCents: priceCents,
		Name:           "Oud Royale",
	}
}

func TestOrderAssembler_Assemble(t *testing.T) {
	ctx := context.Background()

	t.Run("cash order persists everything in one pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		userID := uuid.New()
		couponID := uuid.New()
		addressID := uuid.New()
		orderID := uuid.New()
		line := productLine(45_000, 2)

		f.addresses.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(addressID, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *order.Order) (uuid.UUID, error) {
				assert.Equal(t, order.StatusPending, o.Status())
				assert.Equal(t, int64(81_000), o.TotalCents())
				assert.Equal(t, addressID, *o.ShippingAddressID())
				return orderID, nil
			})
		f.orders.EXPECT().AddItems(gomock.Any(), orderID, gomock.Len(1)).Return(nil)
		f.inventory.EXPECT().Decrement(gomock.Any(), gomock.Any(), 2).Return(nil)
		f.orders.EXPECT().AddPayment(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, p order.Payment) error {
				assert.Equal(t, order.ProviderCOD, p.Provider)
				assert.Equal(t, order.PaymentPending, p.Status)
				assert.Equal(t, int64(81_000), p.AmountCents)
				return nil
			})
		f.coupons.EXPECT().IncrementUsage(gomock.Any(), couponID).Return(nil)
		f.coupons.EXPECT().RecordRedemption(gomock.Any(), couponID, userID, orderID).Return(nil)

		got, err := f.assembler.Assemble(ctx, commands.AssemblyInput{
			UserID:        &userID,
			Lines:         []cart.ValidatedLine{line},
			CouponID:      &couponID,
			SubtotalCents: 90_000,
			DiscountCents: 9_000,
			Status:        order.StatusPending,
		})
		require.NoError(t, err)
		assert.Equal(t, orderID, got)
	})

	t.Run("guest order skips address and redemption rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		orderID := uuid.New()
		line := productLine(20_000, 1)
		txID := "311042287"

		// No Addresses().Create expectation: guests have no account to
		// attach an address row to.
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *order.Order) (uuid.UUID, error) {
				assert.True(t, o.IsGuestOrder())
				assert.Nil(t, o.ShippingAddressID())
				return orderID, nil
			})
		f.orders.EXPECT().AddItems(gomock.Any(), orderID, gomock.Any()).Return(nil)
		f.inventory.EXPECT().Decrement(gomock.Any(), gomock.Any(), 1).Return(nil)
		f.orders.EXPECT().AddPayment(gomock.Any(), orderID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, p order.Payment) error {
				assert.Equal(t, order.ProviderPaymob, p.Provider)
				assert.Equal(t, order.PaymentCompleted, p.Status)
				assert.Equal(t, txID, p.TransactionID)
				return nil
			})

		_, err := f.assembler.Assemble(ctx, commands.AssemblyInput{
			Lines:         []cart.ValidatedLine{line},
			SubtotalCents: 20_000,
			Status:        order.StatusPaid,
			GatewayTxID:   &txID,
		})
		require.NoError(t, err)
	})

	t.Run("duplicate event id aborts before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		eventID := "311042287"
		f.webhooks.EXPECT().TryInsert(gomock.Any(), "paymob", eventID).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := f.assembler.Assemble(ctx, commands.AssemblyInput{
			Lines:         []cart.ValidatedLine{productLine(20_000, 1)},
			SubtotalCents: 20_000,
			Status:        order.StatusPaid,
			EventID:       &eventID,
		})
		assert.ErrorIs(t, err, commands.ErrDuplicateEvent)
	})

	t.Run("zero lines never open a transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		_, err := f.assembler.Assemble(ctx, commands.AssemblyInput{
			Status: order.StatusPaid,
		})
		assert.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("insufficient stock rolls the order back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		orderID := uuid.New()
		line := productLine(45_000, 3)

		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(orderID, nil)
		f.orders.EXPECT().AddItems(gomock.Any(), orderID, gomock.Any()).Return(nil)
		f.inventory.EXPECT().Decrement(gomock.Any(), gomock.Any(), 3).Return(shared.ErrInsufficientStock)
		// No AddPayment, no coupon bookkeeping after the failed decrement.

		_, err := f.assembler.Assemble(ctx, commands.AssemblyInput{
			Lines:         []cart.ValidatedLine{line},
			SubtotalCents: 135_000,
			Status:        order.StatusPending,
		})
		assert.ErrorIs(t, err, commands.ErrInsufficientStock)
	})

	t.Run("bundle line decrements every component", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		bundleID := uuid.New()
		edpID := uuid.New()
		travelID := uuid.New()
		orderID := uuid.New()

		line := cart.ValidatedLine{
			BundleID:       &bundleID,
			Quantity:       2,
			UnitPriceCents: 120_000,
			Name:           "Signature Duo",
			Components: []cart.Component{
				{ProductID: edpID, Multiplier: 2},
				{ProductID: travelID, Multiplier: 1},
			},
		}

		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(orderID, nil)
		f.orders.EXPECT().AddItems(gomock.Any(), orderID, gomock.Len(1)).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, items []order.Item) error {
				// The bundle collapses to one row at the bundle price.
				assert.Equal(t, "Signature Duo", items[0].Name)
				assert.Equal(t, int64(120_000), items[0].PriceCents)
				return nil
			})
		f.inventory.EXPECT().Decrement(gomock.Any(), cart.StockRef{ProductID: edpID}, 4).Return(nil)
		f.inventory.EXPECT().Decrement(gomock.Any(), cart.StockRef{ProductID: travelID}, 2).Return(nil)
		f.orders.EXPECT().AddPayment(gomock.Any(), orderID, gomock.Any()).Return(nil)

		_, err := f.assembler.Assemble(ctx, commands.AssemblyInput{
			Lines:         []cart.ValidatedLine{line},
			SubtotalCents: 240_000,
			Status:        order.StatusPending,
		})
		require.NoError(t, err)
	})
}

func TestOrderAssembler_FinishCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the cart and awards points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		userID := uuid.New()
		orderID := uuid.New()

		f.carts.EXPECT().ClearByUser(gomock.Any(), userID).Return(nil)
		f.loyalty.EXPECT().AwardPoints(gomock.Any(), orderID).Return(nil)

		f.assembler.FinishCheckout(ctx, &userID, orderID)
	})

	t.Run("guest checkout is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		f.assembler.FinishCheckout(ctx, nil, uuid.New())
	})

	t.Run("loyalty failure never propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newAssemblerFixture(ctrl)

		userID := uuid.New()
		orderID := uuid.New()

		f.carts.EXPECT().ClearByUser(gomock.Any(), userID).Return(nil)
		f.loyalty.EXPECT().AwardPoints(gomock.Any(), orderID).Return(assert.AnError)

		f.assembler.FinishCheckout(ctx, &userID, orderID)
	})
}
