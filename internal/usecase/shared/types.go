package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal read models for command-side validation. Prices are cents.

type SizeOptionSnapshot struct {
	Size       string
	PriceCents int64
}

type ProductSnapshot struct {
	ID          uuid.UUID
	Name        string
	PriceCents  int64
	IsActive    bool
	SizeOptions []SizeOptionSnapshot
}

func (p *ProductSnapshot) SizeOption(size string) (SizeOptionSnapshot, bool) {
	for _, opt := range p.SizeOptions {
		if opt.Size == size {
			return opt, true
		}
	}
	return SizeOptionSnapshot{}, false
}

type VariantSnapshot struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	PriceCents int64
	StockQty   int
}

type BundleSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	IsActive   bool
}

type BundleComponentSnapshot struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
}

// InventoryLevel reports a legacy inventory row. Products without a row
// are not stock-tracked and never block a checkout.
type InventoryLevel struct {
	Tracked           bool
	QuantityAvailable int
}

type CouponSnapshot struct {
	ID             uuid.UUID
	Code           string
	DiscountType   string
	DiscountValue  float64
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	UsageLimit     *int32
	TimesUsed      int32
	MinOrderCents  *int64
	FirstOrderOnly bool
	PerUserLimit   *int32
	IsActive       bool
}

// AddressInput is the shipping address as submitted at checkout. Each
// order gets its own snapshot row; addresses are never shared.
type AddressInput struct {
	FullName   string
	Line1      string
	Line2      *string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	Email      string
}
