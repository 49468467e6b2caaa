//go:build unit

package repository_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/infra/readstore"
	"lessence-checkout/internal/infra/repository"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invRow struct {
	productID uuid.UUID
	size      *string
	qty       int
}

// invTable stands in for the legacy inventory table. It applies the
// statements' size filters the way postgres would, so the validation
// read and the assembly decrement can be checked against the same rows.
type invTable struct {
	rows []*invRow
}

func (t *invTable) selectRows(sql string, args []any) []*invRow {
	productID := args[0].(uuid.UUID)

	var matched []*invRow
	for _, row := range t.rows {
		if row.productID != productID {
			continue
		}
		switch {
		case strings.Contains(sql, "size = $2"):
			if row.size != nil && *row.size == args[1].(string) {
				matched = append(matched, row)
			}
		case strings.Contains(sql, "size IS NULL"):
			if row.size == nil {
				matched = append(matched, row)
			}
		default:
			matched = append(matched, row)
		}
	}

	// ORDER BY size NULLS FIRST
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].size == nil {
			return matched[j].size != nil
		}
		if matched[j].size == nil {
			return false
		}
		return *matched[i].size < *matched[j].size
	})
	if strings.Contains(sql, "LIMIT 1") && len(matched) > 1 {
		matched = matched[:1]
	}
	return matched
}

func (t *invTable) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	qty := args[len(args)-1].(int)

	affected := 0
	for _, row := range t.selectRows(sql, args) {
		if row.qty >= qty {
			row.qty -= qty
			affected++
		}
	}
	if affected == 0 {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (t *invTable) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	matched := t.selectRows(sql, args)
	if len(matched) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	if strings.Contains(sql, "SELECT 1") {
		return fakeRow{val: 1}
	}
	return fakeRow{val: matched[0].qty}
}

func (t *invTable) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}

type fakeRow struct {
	val int
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.val
	return nil
}

func strPtr(s string) *string { return &s }

func TestInventoryRepository_DecrementLegacy(t *testing.T) {
	ctx := context.Background()

	t.Run("size-keyed row serves a sizeless ref", func(t *testing.T) {
		productID := uuid.New()
		table := &invTable{rows: []*invRow{
			{productID: productID, size: strPtr("50ml"), qty: 10},
		}}

		level, err := readstore.NewCatalogReadStore(table).InventoryLevel(ctx, productID, nil)
		require.NoError(t, err)
		assert.True(t, level.Tracked)
		assert.Equal(t, 10, level.QuantityAvailable)

		repo := repository.NewInventoryRepository(table)
		err = repo.Decrement(ctx, cart.StockRef{ProductID: productID}, 6)
		require.NoError(t, err)
		assert.Equal(t, 4, table.rows[0].qty, "the row validation saw must be the one decremented")
	})

	t.Run("sizeless ref with a short size-keyed row is rejected", func(t *testing.T) {
		productID := uuid.New()
		table := &invTable{rows: []*invRow{
			{productID: productID, size: strPtr("50ml"), qty: 4},
		}}

		repo := repository.NewInventoryRepository(table)
		err := repo.Decrement(ctx, cart.StockRef{ProductID: productID}, 6)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
		assert.Equal(t, 4, table.rows[0].qty)
	})

	t.Run("untracked product is a no-op", func(t *testing.T) {
		productID := uuid.New()
		table := &invTable{}

		level, err := readstore.NewCatalogReadStore(table).InventoryLevel(ctx, productID, nil)
		require.NoError(t, err)
		assert.False(t, level.Tracked)

		repo := repository.NewInventoryRepository(table)
		require.NoError(t, repo.Decrement(ctx, cart.StockRef{ProductID: productID}, 3))
	})

	t.Run("sized ref only touches its own row", func(t *testing.T) {
		productID := uuid.New()
		table := &invTable{rows: []*invRow{
			{productID: productID, size: strPtr("50ml"), qty: 10},
			{productID: productID, size: strPtr("100ml"), qty: 7},
		}}

		repo := repository.NewInventoryRepository(table)
		err := repo.Decrement(ctx, cart.StockRef{ProductID: productID, Size: strPtr("100ml")}, 3)
		require.NoError(t, err)
		assert.Equal(t, 10, table.rows[0].qty)
		assert.Equal(t, 4, table.rows[1].qty)
	})

	t.Run("null-size row wins when both shapes exist", func(t *testing.T) {
		productID := uuid.New()
		table := &invTable{rows: []*invRow{
			{productID: productID, size: nil, qty: 5},
			{productID: productID, size: strPtr("50ml"), qty: 10},
		}}

		level, err := readstore.NewCatalogReadStore(table).InventoryLevel(ctx, productID, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, level.QuantityAvailable)

		repo := repository.NewInventoryRepository(table)
		require.NoError(t, repo.Decrement(ctx, cart.StockRef{ProductID: productID}, 3))
		assert.Equal(t, 2, table.rows[0].qty)
		assert.Equal(t, 10, table.rows[1].qty)
	})
}
