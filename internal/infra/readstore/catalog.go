package readstore

import (
	"context"
	"encoding/json"

	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// CatalogReadStore serves the command side's product/variant/bundle
// lookups. Size options live as a jsonb column on products, mirroring how
// the storefront admin writes them.
type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

type sizeOptionRow struct {
	Size       string `json:"size"`
	PriceCents int64  `json:"price_cents"`
}

func (r *CatalogReadStore) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	const query = `
		SELECT id, name, price_cents, is_active, COALESCE(size_options, '[]'::jsonb)
		FROM products
		WHERE id = $1`

	var (
		snap    shared.ProductSnapshot
		rawOpts []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.PriceCents, &snap.IsActive, &rawOpts)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}

	var opts []sizeOptionRow
	if err := json.Unmarshal(rawOpts, &opts); err != nil {
		return nil, infra.WrapRepoErr("failed to decode size options", err)
	}
	for _, o := range opts {
		snap.SizeOptions = append(snap.SizeOptions, shared.SizeOptionSnapshot{Size: o.Size, PriceCents: o.PriceCents})
	}

	return &snap, nil
}

func (r *CatalogReadStore) VariantByID(ctx context.Context, id uuid.UUID) (*shared.VariantSnapshot, error) {
	const query = `
		SELECT id, product_id, price_cents, stock_qty
		FROM product_variants
		WHERE id = $1`

	var snap shared.VariantSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.ProductID, &snap.PriceCents, &snap.StockQty)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product variant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product variant", err)
	}

	return &snap, nil
}

func (r *CatalogReadStore) BundleByID(ctx context.Context, id uuid.UUID) (*shared.BundleSnapshot, error) {
	const query = `
		SELECT id, name, price_cents, is_active
		FROM bundles
		WHERE id = $1`

	var snap shared.BundleSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.PriceCents, &snap.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bundle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bundle", err)
	}

	return &snap, nil
}

func (r *CatalogReadStore) BundleComponents(ctx context.Context, bundleID uuid.UUID) ([]shared.BundleComponentSnapshot, error) {
	const query = `
		SELECT product_id, variant_id, quantity
		FROM bundle_items
		WHERE bundle_id = $1
		ORDER BY product_id`

	rows, err := r.db.Query(ctx, query, bundleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bundle components", err)
	}
	defer rows.Close()

	var components []shared.BundleComponentSnapshot
	for rows.Next() {
		var c shared.BundleComponentSnapshot
		if err := rows.Scan(&c.ProductID, &c.VariantID, &c.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bundle component", err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bundle components", err)
	}

	return components, nil
}

// InventoryLevel resolves the legacy ledger row backing a cart line. A
// sizeless lookup falls back to the product's first row whichever way it
// is keyed; the assembly-time decrement resolves the same row.
func (r *CatalogReadStore) InventoryLevel(ctx context.Context, productID uuid.UUID, size *string) (*shared.InventoryLevel, error) {
	const bySize = `
		SELECT quantity_available FROM inventory
		WHERE product_id = $1 AND size = $2`
	const byProduct = `
		SELECT quantity_available FROM inventory
		WHERE product_id = $1
		ORDER BY size NULLS FIRST
		LIMIT 1`

	query := byProduct
	args := []any{productID}
	if size != nil {
		query = bySize
		args = append(args, *size)
	}

	var qty int
	err := r.db.QueryRow(ctx, query, args...).Scan(&qty)
	if err != nil {
		if infra.IsNoRows(err) {
			// No row means the product's stock is not tracked in the
			// legacy schema; it never blocks a checkout.
			return &shared.InventoryLevel{Tracked: false}, nil
		}
		return nil, infra.WrapRepoErr("failed to read inventory level", err)
	}

	return &shared.InventoryLevel{Tracked: true, QuantityAvailable: qty}, nil
}
