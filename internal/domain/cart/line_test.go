//go:build unit

package cart_test

import (
	"testing"

	"lessence-checkout/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLineValidate(t *testing.T) {
	productID := uuid.New()
	bundleID := uuid.New()

	cases := []struct {
		name string
		line cart.Line
		want error
	}{
		{
			name: "product line",
			line: cart.Line{ProductID: &productID, Quantity: 1},
		},
		{
			name: "bundle line",
			line: cart.Line{BundleID: &bundleID, Quantity: 2},
		},
		{
			name: "zero quantity",
			line: cart.Line{ProductID: &productID, Quantity: 0},
			want: cart.ErrInvalidQuantity,
		},
		{
			name: "negative quantity",
			line: cart.Line{ProductID: &productID, Quantity: -3},
			want: cart.ErrInvalidQuantity,
		},
		{
			name: "product and bundle at once",
			line: cart.Line{ProductID: &productID, BundleID: &bundleID, Quantity: 1},
			want: cart.ErrAmbiguousLine,
		},
		{
			name: "neither product nor bundle",
			line: cart.Line{Quantity: 1},
			want: cart.ErrMissingTarget,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.line.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestValidateLines(t *testing.T) {
	productID := uuid.New()

	t.Run("empty cart", func(t *testing.T) {
		assert.ErrorIs(t, cart.ValidateLines(nil), cart.ErrEmptyCart)
		assert.ErrorIs(t, cart.ValidateLines([]cart.Line{}), cart.ErrEmptyCart)
	})

	t.Run("one bad line fails the whole cart", func(t *testing.T) {
		lines := []cart.Line{
			{ProductID: &productID, Quantity: 1},
			{Quantity: 1},
		}
		assert.ErrorIs(t, cart.ValidateLines(lines), cart.ErrMissingTarget)
	})

	t.Run("all lines valid", func(t *testing.T) {
		lines := []cart.Line{{ProductID: &productID, Quantity: 2}}
		assert.NoError(t, cart.ValidateLines(lines))
	})
}
