package request

import (
	"strings"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/usecase/commands"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartItemRequest struct {
	ProductID    *uuid.UUID `json:"product_id,omitempty"`
	BundleID     *uuid.UUID `json:"bundle_id,omitempty"`
	VariantID    *uuid.UUID `json:"variant_id,omitempty"`
	SelectedSize *string    `json:"selected_size,omitempty"`
	Quantity     int        `json:"quantity" binding:"required,gt=0"`
}

type AddressRequest struct {
	FullName   string  `json:"full_name" binding:"required"`
	Line1      string  `json:"line1" binding:"required"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city" binding:"required"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email" binding:"omitempty,email"`
}

type CheckoutRequest struct {
	CartItems   []CartItemRequest `json:"cart_items" binding:"required,min=1,dive"`
	Address     AddressRequest    `json:"address" binding:"required"`
	CouponCode  *string           `json:"coupon_code,omitempty"`
	IsGift      bool              `json:"is_gift"`
	GiftWrap    bool              `json:"gift_wrap"`
	GiftMessage *string           `json:"gift_message,omitempty"`
}

func (r CheckoutRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CheckoutRequest) ToInput(userID *uuid.UUID) commands.CheckoutInput {
	lines := make([]cart.Line, 0, len(r.CartItems))
	for _, item := range r.CartItems {
		lines = append(lines, cart.Line{
			ProductID:    item.ProductID,
			BundleID:     item.BundleID,
			VariantID:    item.VariantID,
			SelectedSize: item.SelectedSize,
			Quantity:     item.Quantity,
		})
	}

	return commands.CheckoutInput{
		UserID: userID,
		Lines:  lines,
		Address: shared.AddressInput{
			FullName:   r.Address.FullName,
			Line1:      r.Address.Line1,
			Line2:      r.Address.Line2,
			City:       r.Address.City,
			State:      r.Address.State,
			PostalCode: r.Address.PostalCode,
			Country:    r.Address.Country,
			Phone:      r.Address.Phone,
			Email:      r.Address.Email,
		},
		CouponCode:  r.GetCouponCode(),
		IsGift:      r.IsGift,
		GiftWrap:    r.GiftWrap,
		GiftMessage: r.GiftMessage,
	}
}
