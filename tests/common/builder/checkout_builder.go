//go:build unit || e2e

package builder

import (
	"lessence-checkout/internal/domain/cart"
	reqdto "lessence-checkout/internal/handler/dto/request"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	ProductID    uuid.UUID
	SelectedSize string
	Quantity     int
	CouponCode   *string
	IsGift       bool
	GiftWrap     bool
	GiftMessage  *string
	Address      shared.AddressInput
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		ProductID:    uuid.New(),
		SelectedSize: "50ml",
		Quantity:     1,
		Address: shared.AddressInput{
			FullName:   "Nour El-Sayed",
			Line1:      "12 Tahrir Square",
			City:       "Cairo",
			State:      "Cairo",
			PostalCode: "11511",
			Country:    "EG",
			Phone:      "+201000000001",
			Email:      "nour@example.com",
		},
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) WithCoupon(code string) *CheckoutBuilder {
	b.CouponCode = &code
	return b
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.CheckoutRequest {
	size := b.SelectedSize
	return reqdto.CheckoutRequest{
		CartItems: []reqdto.CartItemRequest{
			{
				ProductID:    &b.ProductID,
				SelectedSize: &size,
				Quantity:     b.Quantity,
			},
		},
		Address: reqdto.AddressRequest{
			FullName:   b.Address.FullName,
			Line1:      b.Address.Line1,
			Line2:      b.Address.Line2,
			City:       b.Address.City,
			State:      b.Address.State,
			PostalCode: b.Address.PostalCode,
			Country:    b.Address.Country,
			Phone:      b.Address.Phone,
			Email:      b.Address.Email,
		},
		CouponCode:  b.CouponCode,
		IsGift:      b.IsGift,
		GiftWrap:    b.GiftWrap,
		GiftMessage: b.GiftMessage,
	}
}

func (b *CheckoutBuilder) BuildLine() cart.Line {
	size := b.SelectedSize
	return cart.Line{
		ProductID:    &b.ProductID,
		SelectedSize: &size,
		Quantity:     b.Quantity,
	}
}

// BuildValidatedLine returns a line as the validator would emit it for a
// simple size-priced product.
func (b *CheckoutBuilder) BuildValidatedLine(priceCents int64, name string) cart.ValidatedLine {
	size := b.SelectedSize
	return cart.ValidatedLine{
		ProductID:      &b.ProductID,
		SelectedSize:   &size,
		Quantity:       b.Quantity,
		UnitPriceCents: priceCents,
		Name:           name,
	}
}
