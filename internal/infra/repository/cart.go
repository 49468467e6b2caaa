package repository

import (
	"context"

	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"

	"github.com/google/uuid"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(dbtx db.DBTX) *CartRepository {
	return &CartRepository{db: dbtx}
}

// ClearByUser empties the server-side cart after checkout. Clearing zero
// rows is not an error: guests and clients with local-only carts have none.
func (r *CartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM cart_items WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
