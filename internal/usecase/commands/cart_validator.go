package commands

import (
	"context"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/pkg/errs"
	"lessence-checkout/internal/usecase/shared"
)

var (
	ErrProductNotFound   = errs.New("product not found")
	ErrVariantNotFound   = errs.New("variant not found")
	ErrBundleNotFound    = errs.New("bundle not found or inactive")
	ErrInsufficientStock = errs.New("insufficient stock")
)

// CartValidator turns untrusted cart lines into catalog-priced validated
// lines. Validation is all-or-nothing: the first failing line rejects the
// whole cart, and nothing is written anywhere.
type CartValidator struct {
	reads shared.CommandReads
}

func NewCartValidator(reads shared.CommandReads) *CartValidator {
	return &CartValidator{reads: reads}
}

func (v *CartValidator) Validate(ctx context.Context, lines []cart.Line) ([]cart.ValidatedLine, error) {
	if err := cart.ValidateLines(lines); err != nil {
		return nil, err
	}

	validated := make([]cart.ValidatedLine, 0, len(lines))
	for _, line := range lines {
		var (
			vl  *cart.ValidatedLine
			err error
		)
		if line.IsBundle() {
			vl, err = v.validateBundleLine(ctx, line)
		} else {
			vl, err = v.validateProductLine(ctx, line)
		}
		if err != nil {
			return nil, err
		}
		validated = append(validated, *vl)
	}
	return validated, nil
}

func (v *CartValidator) validateBundleLine(ctx context.Context, line cart.Line) (*cart.ValidatedLine, error) {
	bundle, err := v.reads.BundleByID(ctx, *line.BundleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("bundle %s", line.BundleID), ErrBundleNotFound)
		}
		return nil, err
	}
	if !bundle.IsActive {
		return nil, errs.Mark(errs.Newf("bundle %s is inactive", bundle.Name), ErrBundleNotFound)
	}

	componentRows, err := v.reads.BundleComponents(ctx, bundle.ID)
	if err != nil {
		return nil, err
	}
	if len(componentRows) == 0 {
		return nil, errs.Mark(errs.Newf("bundle %s has no components", bundle.Name), ErrBundleNotFound)
	}

	components := make([]cart.Component, 0, len(componentRows))
	for _, row := range componentRows {
		c := cart.Component{
			ProductID:  row.ProductID,
			VariantID:  row.VariantID,
			Multiplier: row.Quantity,
		}
		required := c.RequiredQty(line.Quantity)
		if err := v.checkStock(ctx, c.StockRef(), required, bundle.Name); err != nil {
			return nil, err
		}
		components = append(components, c)
	}

	return &cart.ValidatedLine{
		BundleID:       &bundle.ID,
		Quantity:       line.Quantity,
		UnitPriceCents: bundle.PriceCents,
		Name:           bundle.Name,
		Components:     components,
	}, nil
}

func (v *CartValidator) validateProductLine(ctx context.Context, line cart.Line) (*cart.ValidatedLine, error) {
	product, err := v.reads.ProductByID(ctx, *line.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("product %s", line.ProductID), ErrProductNotFound)
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, errs.Mark(errs.Newf("product %s is inactive", product.Name), ErrProductNotFound)
	}

	// Price priority: size option, then variant, then the base price.
	price := product.PriceCents
	sized := false
	if line.SelectedSize != nil {
		if opt, ok := product.SizeOption(*line.SelectedSize); ok {
			price = opt.PriceCents
			sized = true
		}
	}
	if !sized && line.VariantID != nil {
		variant, err := v.reads.VariantByID(ctx, *line.VariantID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(errs.Newf("variant %s", line.VariantID), ErrVariantNotFound)
			}
			return nil, err
		}
		price = variant.PriceCents
	}

	ref := cart.StockRef{VariantID: line.VariantID, ProductID: product.ID, Size: line.SelectedSize}
	if err := v.checkStock(ctx, ref, line.Quantity, product.Name); err != nil {
		return nil, err
	}

	return &cart.ValidatedLine{
		ProductID:      &product.ID,
		VariantID:      line.VariantID,
		SelectedSize:   line.SelectedSize,
		Quantity:       line.Quantity,
		UnitPriceCents: price,
		Name:           product.Name,
	}, nil
}

// checkStock is advisory: the authoritative check is the conditional
// decrement at assembly time. Rejecting here just fails fast before the
// customer reaches payment.
func (v *CartValidator) checkStock(ctx context.Context, ref cart.StockRef, qty int, name string) error {
	if ref.UsesVariant() {
		variant, err := v.reads.VariantByID(ctx, *ref.VariantID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("variant for %s", name), ErrVariantNotFound)
			}
			return err
		}
		if variant.StockQty < qty {
			return errs.Mark(errs.Newf("insufficient stock for %s", name), ErrInsufficientStock)
		}
		return nil
	}

	level, err := v.reads.InventoryLevel(ctx, ref.ProductID, ref.Size)
	if err != nil {
		return err
	}
	// Untracked products never block checkout.
	if level.Tracked && level.QuantityAvailable < qty {
		return errs.Mark(errs.Newf("insufficient stock for %s", name), ErrInsufficientStock)
	}
	return nil
}
