package cart

import (
	"github.com/google/uuid"
)

// StockRef identifies which inventory row a component draws from: a
// product variant (new schema) or a legacy size-keyed inventory row.
type StockRef struct {
	VariantID *uuid.UUID
	ProductID uuid.UUID
	Size      *string
}

func (r StockRef) UsesVariant() bool {
	return r.VariantID != nil
}

// Component is one constituent of a bundle. Multiplier scales with the
// bundle line quantity: a cart quantity of 3 against a multiplier of 2
// requires 6 units.
type Component struct {
	ProductID  uuid.UUID
	VariantID  *uuid.UUID
	Multiplier int
}

func (c Component) RequiredQty(lineQty int) int {
	return lineQty * c.Multiplier
}

func (c Component) StockRef() StockRef {
	return StockRef{VariantID: c.VariantID, ProductID: c.ProductID}
}

// Requirement is a resolved stock demand against a single inventory row.
type Requirement struct {
	Ref StockRef
	Qty int
}

// ValidatedLine is a trusted line: identity resolved, price and name taken
// from the catalog, bundle components expanded with stock confirmed.
type ValidatedLine struct {
	ProductID      *uuid.UUID
	BundleID       *uuid.UUID
	VariantID      *uuid.UUID
	SelectedSize   *string
	Quantity       int
	UnitPriceCents int64
	Name           string
	Components     []Component
}

func (v ValidatedLine) IsBundle() bool {
	return v.BundleID != nil
}

func (v ValidatedLine) SubtotalCents() int64 {
	return v.UnitPriceCents * int64(v.Quantity)
}

// StockRequirements expands the line into per-row stock demands: each
// bundle component scaled by the line quantity, or the line itself.
func (v ValidatedLine) StockRequirements() []Requirement {
	if v.IsBundle() {
		reqs := make([]Requirement, 0, len(v.Components))
		for _, c := range v.Components {
			reqs = append(reqs, Requirement{Ref: c.StockRef(), Qty: c.RequiredQty(v.Quantity)})
		}
		return reqs
	}

	ref := StockRef{VariantID: v.VariantID, Size: v.SelectedSize}
	if v.ProductID != nil {
		ref.ProductID = *v.ProductID
	}
	return []Requirement{{Ref: ref, Qty: v.Quantity}}
}

func Subtotal(lines []ValidatedLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.SubtotalCents()
	}
	return total
}
