package cart

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("line quantity must be positive")
	ErrAmbiguousLine   = errors.New("line must reference a product or a bundle, not both")
	ErrMissingTarget   = errors.New("line references neither product nor bundle")
)

// Line is a client-submitted cart entry. Nothing in it is trusted: prices
// and names are always re-resolved from the catalog.
type Line struct {
	ProductID    *uuid.UUID
	BundleID     *uuid.UUID
	VariantID    *uuid.UUID
	SelectedSize *string
	Quantity     int
}

func (l Line) IsBundle() bool {
	return l.BundleID != nil
}

func (l Line) Validate() error {
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if l.ProductID != nil && l.BundleID != nil {
		return ErrAmbiguousLine
	}
	if l.ProductID == nil && l.BundleID == nil {
		return ErrMissingTarget
	}
	return nil
}

func ValidateLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}
