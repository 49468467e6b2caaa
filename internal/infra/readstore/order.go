package readstore

import (
	"context"

	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"
	"lessence-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	const orderQuery = `
		SELECT id, order_number, user_id, status, subtotal_cents, discount_cents,
		       total_cents, is_gift, gift_wrap, gift_message, created_at
		FROM orders
		WHERE id = $1`

	var view queries.OrderView
	err := r.db.QueryRow(ctx, orderQuery, id).Scan(
		&view.ID,
		&view.OrderNumber,
		&view.UserID,
		&view.Status,
		&view.SubtotalCents,
		&view.DiscountCents,
		&view.TotalCents,
		&view.IsGift,
		&view.GiftWrap,
		&view.GiftMessage,
		&view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	const itemsQuery = `
		SELECT product_id, bundle_id, variant_id, name, selected_size, price_cents, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at, name`

	rows, err := r.db.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.ProductID, &item.BundleID, &item.VariantID, &item.Name, &item.SelectedSize, &item.PriceCents, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}

	const paymentQuery = `
		SELECT provider, status, transaction_id, amount_cents
		FROM payments
		WHERE order_id = $1`

	var payment queries.PaymentView
	err = r.db.QueryRow(ctx, paymentQuery, id).Scan(&payment.Provider, &payment.Status, &payment.TransactionID, &payment.AmountCents)
	if err != nil {
		if !infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to load payment", err)
		}
	} else {
		view.Payment = &payment
	}

	return &view, nil
}
