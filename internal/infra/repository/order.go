package repository

import (
	"context"

	"lessence-checkout/internal/domain/order"
	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	const query = `
		INSERT INTO orders (
			id, order_number, user_id, status, subtotal_cents, discount_cents,
			total_cents, applied_coupon_id, shipping_address_id, is_gift,
			gift_wrap, gift_message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		o.ID(),
		o.OrderNumber(),
		o.UserID(),
		string(o.Status()),
		o.SubtotalCents(),
		o.DiscountCents(),
		o.TotalCents(),
		o.AppliedCouponID(),
		o.ShippingAddressID(),
		o.IsGift(),
		o.GiftWrap(),
		o.GiftMessage(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return id, nil
}

func (r *OrderRepository) AddItems(ctx context.Context, orderID uuid.UUID, items []order.Item) error {
	const query = `
		INSERT INTO order_items (
			order_id, product_id, bundle_id, variant_id, name, selected_size,
			price_cents, quantity
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, item := range items {
		_, err := r.db.Exec(ctx, query,
			orderID,
			item.ProductID,
			item.BundleID,
			item.VariantID,
			item.Name,
			item.SelectedSize,
			item.PriceCents,
			item.Quantity,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to add order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) AddPayment(ctx context.Context, orderID uuid.UUID, p order.Payment) error {
	const query = `
		INSERT INTO payments (order_id, provider, status, transaction_id, amount_cents)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		orderID,
		string(p.Provider),
		string(p.Status),
		p.TransactionID,
		p.AmountCents,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record payment", err)
	}
	return nil
}
