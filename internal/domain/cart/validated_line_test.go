//go:build unit

package cart_test

import (
	"testing"

	"lessence-checkout/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockRequirements(t *testing.T) {
	t.Run("bundle components scale with line quantity", func(t *testing.T) {
		bundleID := uuid.New()
		edpID := uuid.New()
		travelID := uuid.New()
		travelVariantID := uuid.New()

		line := cart.ValidatedLine{
			BundleID: &bundleID,
			Quantity: 3,
			Components: []cart.Component{
				{ProductID: edpID, Multiplier: 2},
				{ProductID: travelID, VariantID: &travelVariantID, Multiplier: 1},
			},
		}

		reqs := line.StockRequirements()
		require.Len(t, reqs, 2)

		assert.Equal(t, edpID, reqs[0].Ref.ProductID)
		assert.Nil(t, reqs[0].Ref.VariantID)
		assert.Equal(t, 6, reqs[0].Qty)

		assert.Equal(t, travelVariantID, *reqs[1].Ref.VariantID)
		assert.Equal(t, 3, reqs[1].Qty)
	})

	t.Run("product line yields a single requirement", func(t *testing.T) {
		productID := uuid.New()
		size := "100ml"

		line := cart.ValidatedLine{
			ProductID:    &productID,
			SelectedSize: &size,
			Quantity:     4,
		}

		reqs := line.StockRequirements()
		require.Len(t, reqs, 1)
		assert.Equal(t, productID, reqs[0].Ref.ProductID)
		assert.Equal(t, "100ml", *reqs[0].Ref.Size)
		assert.False(t, reqs[0].Ref.UsesVariant())
		assert.Equal(t, 4, reqs[0].Qty)
	})

	t.Run("variant line draws from the variant row", func(t *testing.T) {
		productID := uuid.New()
		variantID := uuid.New()

		line := cart.ValidatedLine{
			ProductID: &productID,
			VariantID: &variantID,
			Quantity:  1,
		}

		reqs := line.StockRequirements()
		require.Len(t, reqs, 1)
		assert.True(t, reqs[0].Ref.UsesVariant())
		assert.Equal(t, variantID, *reqs[0].Ref.VariantID)
	})
}

func TestSubtotal(t *testing.T) {
	productID := uuid.New()
	bundleID := uuid.New()

	lines := []cart.ValidatedLine{
		{ProductID: &productID, Quantity: 2, UnitPriceCents: 45_000}, // 2 x 450.00
		{BundleID: &bundleID, Quantity: 1, UnitPriceCents: 120_000},
	}

	assert.Equal(t, int64(210_000), cart.Subtotal(lines))
	assert.Equal(t, int64(0), cart.Subtotal(nil))
}
