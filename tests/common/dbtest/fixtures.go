//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProduct(t *testing.T, db DBLike, name string, priceCents int64, sizeOptions string) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	var opts any
	if sizeOptions != "" {
		opts = sizeOptions
	}
	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, price_cents, size_options, is_active) VALUES ($1, $2, $3, $4, true)",
		productID, name, priceCents, opts)
	require.NoError(t, err)

	return productID
}

func CreateTestVariant(t *testing.T, db DBLike, productID uuid.UUID, priceCents int64, stockQty int) uuid.UUID {
	t.Helper()

	variantID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO product_variants (id, product_id, price_cents, stock_qty) VALUES ($1, $2, $3, $4)",
		variantID, productID, priceCents, stockQty)
	require.NoError(t, err)

	return variantID
}

func CreateTestInventory(t *testing.T, db DBLike, productID uuid.UUID, size *string, quantity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO inventory (product_id, size, quantity_available) VALUES ($1, $2, $3)",
		productID, size, quantity)
	require.NoError(t, err)
}

func CreateTestBundle(t *testing.T, db DBLike, name string, priceCents int64, components map[uuid.UUID]int) uuid.UUID {
	t.Helper()

	bundleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bundles (id, name, price_cents, is_active) VALUES ($1, $2, $3, true)",
		bundleID, name, priceCents)
	require.NoError(t, err)

	for productID, qty := range components {
		_, err := db.Exec(ctx,
			"INSERT INTO bundle_items (bundle_id, product_id, quantity) VALUES ($1, $2, $3)",
			bundleID, productID, qty)
		require.NoError(t, err)
	}

	return bundleID
}

func CreateTestCoupon(t *testing.T, db DBLike, code, discountType string, discountValue float64) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, code, discount_type, discount_value, is_active) VALUES ($1, $2, $3, $4, true)",
		couponID, code, discountType, discountValue)
	require.NoError(t, err)

	return couponID
}

func VariantStock(t *testing.T, db DBLike, variantID uuid.UUID) int {
	t.Helper()

	var qty int
	err := db.QueryRow(context.Background(),
		"SELECT stock_qty FROM product_variants WHERE id = $1", variantID).Scan(&qty)
	require.NoError(t, err)
	return qty
}

func InventoryQuantity(t *testing.T, db DBLike, productID uuid.UUID, size *string) int {
	t.Helper()

	var qty int
	err := db.QueryRow(context.Background(),
		"SELECT quantity_available FROM inventory WHERE product_id = $1 AND COALESCE(size, '') = COALESCE($2, '')",
		productID, size).Scan(&qty)
	require.NoError(t, err)
	return qty
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&count)
	require.NoError(t, err)
	return count
}

// SeedReferenceData exists for parity with ResetDB; the catalog has no
// global reference rows, every test creates its own products.
func SeedReferenceData(pool *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
