package repository

import (
	"context"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"
	"lessence-checkout/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
)

// InventoryRepository decrements stock with a single conditional UPDATE.
// The WHERE clause carries the availability check, so two concurrent
// checkouts can never drive a row negative: the loser's UPDATE matches
// zero rows and the transaction is aborted.
type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

func (r *InventoryRepository) Decrement(ctx context.Context, ref cart.StockRef, qty int) error {
	if ref.UsesVariant() {
		return r.decrementVariant(ctx, ref, qty)
	}
	return r.decrementLegacy(ctx, ref, qty)
}

func (r *InventoryRepository) decrementVariant(ctx context.Context, ref cart.StockRef, qty int) error {
	const query = `
		UPDATE product_variants
		SET stock_qty = stock_qty - $2
		WHERE id = $1 AND stock_qty >= $2`

	tag, err := r.db.Exec(ctx, query, ref.VariantID, qty)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement variant stock", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyVariantMiss(ctx, ref)
	}
	return nil
}

func (r *InventoryRepository) classifyVariantMiss(ctx context.Context, ref cart.StockRef) error {
	const query = `SELECT 1 FROM product_variants WHERE id = $1`

	var one int
	err := r.db.QueryRow(ctx, query, ref.VariantID).Scan(&one)
	if err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("variant not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to check variant", err)
	}
	return shared.ErrInsufficientStock
}

// decrementLegacy targets the size-keyed inventory table. A sizeless ref
// resolves the product's first row however it is keyed, the same row the
// validation read sees. A missing row means the product's stock is
// untracked and the decrement is a no-op.
func (r *InventoryRepository) decrementLegacy(ctx context.Context, ref cart.StockRef, qty int) error {
	const withSize = `
		UPDATE inventory
		SET quantity_available = quantity_available - $3
		WHERE product_id = $1 AND size = $2 AND quantity_available >= $3`
	const withoutSize = `
		UPDATE inventory
		SET quantity_available = quantity_available - $2
		WHERE id = (
			SELECT id FROM inventory
			WHERE product_id = $1
			ORDER BY size NULLS FIRST
			LIMIT 1
		) AND quantity_available >= $2`

	var (
		tag pgconn.CommandTag
		err error
	)
	if ref.Size != nil {
		tag, err = r.db.Exec(ctx, withSize, ref.ProductID, *ref.Size, qty)
	} else {
		tag, err = r.db.Exec(ctx, withoutSize, ref.ProductID, qty)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to decrement inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyLegacyMiss(ctx, ref)
	}
	return nil
}

func (r *InventoryRepository) classifyLegacyMiss(ctx context.Context, ref cart.StockRef) error {
	const withSize = `SELECT 1 FROM inventory WHERE product_id = $1 AND size = $2`
	const withoutSize = `SELECT 1 FROM inventory WHERE product_id = $1 LIMIT 1`

	var (
		one int
		err error
	)
	if ref.Size != nil {
		err = r.db.QueryRow(ctx, withSize, ref.ProductID, *ref.Size).Scan(&one)
	} else {
		err = r.db.QueryRow(ctx, withoutSize, ref.ProductID).Scan(&one)
	}
	if err != nil {
		if infra.IsNoRows(err) {
			// Untracked product: nothing to decrement.
			return nil
		}
		return infra.WrapRepoErr("failed to check inventory", err)
	}
	return shared.ErrInsufficientStock
}
