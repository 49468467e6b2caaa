package commands

import (
	"context"
	"errors"
	"log/slog"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/domain/order"
	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/pkg/clock"
	"lessence-checkout/internal/pkg/errs"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderCreationFailed = errs.New("failed to create order")
	ErrDuplicateEvent      = errs.New("event already processed")
)

const webhookProvider = "paymob"

// AssemblyInput is everything needed to persist one order. Lines must
// already be validated and priced; the assembler trusts them.
type AssemblyInput struct {
	UserID        *uuid.UUID
	Lines         []cart.ValidatedLine
	Address       shared.AddressInput
	CouponID      *uuid.UUID
	SubtotalCents int64
	DiscountCents int64
	Status        order.Status
	IsGift        bool
	GiftWrap      bool
	GiftMessage   *string

	// GatewayTxID set means the gateway already captured payment; nil
	// means cash on delivery.
	GatewayTxID *string

	// EventID guards webhook-driven assembly against duplicate delivery.
	// When set, the whole assembly aborts with ErrDuplicateEvent if the
	// id was seen before.
	EventID *string
}

// OrderAssembler persists a validated checkout as one atomic transaction:
// address, order, items, stock decrements, payment, coupon bookkeeping.
// Any failure rolls the whole thing back, including the replay-guard row,
// so a provider retry after a crash starts clean.
type OrderAssembler struct {
	uow     shared.UnitOfWork
	loyalty LoyaltyService
	clock   clock.Clock
}

func NewOrderAssembler(uow shared.UnitOfWork, loyalty LoyaltyService, clock clock.Clock) *OrderAssembler {
	return &OrderAssembler{uow: uow, loyalty: loyalty, clock: clock}
}

func (a *OrderAssembler) Assemble(ctx context.Context, in AssemblyInput) (uuid.UUID, error) {
	// The sync path cannot reach this with an empty cart, but webhook
	// metadata can legally decode to zero lines.
	if len(in.Lines) == 0 {
		return uuid.Nil, order.ErrNoItems
	}

	var orderID uuid.UUID

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.EventID != nil {
			if err := tx.WebhookEvents().TryInsert(ctx, webhookProvider, *in.EventID); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return ErrDuplicateEvent
				}
				return err
			}
		}

		var addressID *uuid.UUID
		if in.UserID != nil {
			id, err := tx.Addresses().Create(ctx, *in.UserID, in.Address)
			if err != nil {
				return err
			}
			addressID = &id
		}

		orderNumber := order.NewOrderNumber(a.clock.Now())
		o, err := order.NewOrder(
			in.UserID,
			orderNumber,
			in.Status,
			in.SubtotalCents,
			in.DiscountCents,
			in.CouponID,
			addressID,
			in.IsGift,
			in.GiftWrap,
			in.GiftMessage,
		)
		if err != nil {
			return err
		}

		orderID, err = tx.Orders().Create(ctx, o)
		if err != nil {
			return errs.Mark(err, ErrOrderCreationFailed)
		}

		items := make([]order.Item, 0, len(in.Lines))
		for _, line := range in.Lines {
			items = append(items, order.Item{
				ProductID:    line.ProductID,
				BundleID:     line.BundleID,
				VariantID:    line.VariantID,
				Name:         line.Name,
				SelectedSize: line.SelectedSize,
				PriceCents:   line.UnitPriceCents,
				Quantity:     line.Quantity,
			})
		}
		if err := tx.Orders().AddItems(ctx, orderID, items); err != nil {
			return errs.Mark(err, ErrOrderCreationFailed)
		}

		for _, line := range in.Lines {
			for _, req := range line.StockRequirements() {
				if err := tx.Inventory().Decrement(ctx, req.Ref, req.Qty); err != nil {
					if errors.Is(err, shared.ErrInsufficientStock) {
						return errs.Mark(errs.Newf("insufficient stock for %s", line.Name), ErrInsufficientStock)
					}
					return err
				}
			}
		}

		payment := order.NewCODPayment(orderNumber, o.TotalCents())
		if in.GatewayTxID != nil {
			payment = order.NewGatewayPayment(*in.GatewayTxID, o.TotalCents())
		}
		if err := tx.Orders().AddPayment(ctx, orderID, payment); err != nil {
			return errs.Mark(err, ErrOrderCreationFailed)
		}

		if in.CouponID != nil {
			if err := tx.Coupons().IncrementUsage(ctx, *in.CouponID); err != nil {
				return err
			}
			if in.UserID != nil {
				if err := tx.Coupons().RecordRedemption(ctx, *in.CouponID, *in.UserID, orderID); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return orderID, nil
}

// FinishCheckout runs the post-commit side effects that must never fail a
// checkout: clearing the customer's persisted cart and awarding points.
func (a *OrderAssembler) FinishCheckout(ctx context.Context, userID *uuid.UUID, orderID uuid.UUID) {
	if userID == nil {
		return
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().ClearByUser(ctx, *userID)
	})
	if err != nil {
		slog.Warn("failed to clear cart after checkout",
			"user_id", userID.String(),
			"order_id", orderID.String(),
			"error", err.Error())
	}

	if err := a.loyalty.AwardPoints(ctx, orderID); err != nil {
		slog.Warn("failed to award loyalty points",
			"order_id", orderID.String(),
			"error", err.Error())
	}
}
