package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode     = errors.New("invalid coupon code format")
	ErrInvalidDiscountType   = errors.New("unknown discount type")
	ErrInvalidDiscountAmount = errors.New("discount amount cannot be negative")
	ErrInvalidPercentage     = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	TypePercentage   DiscountType = "percentage"
	TypeFixed        DiscountType = "fixed"
	TypeFreeShipping DiscountType = "free_shipping"
)

// Discount is the monetary effect of a coupon. Percentage discounts keep
// the raw percent; fixed discounts keep an amount in cents; free shipping
// carries no monetary value at all.
type Discount struct {
	kind           DiscountType
	percentOff     float64
	amountOffCents int64
}

func NewDiscount(kind DiscountType, value float64) (Discount, error) {
	switch kind {
	case TypePercentage:
		if value < 0 || value > 100 {
			return Discount{}, ErrInvalidPercentage
		}
		return Discount{kind: kind, percentOff: value}, nil
	case TypeFixed:
		if value < 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
		return Discount{kind: kind, amountOffCents: int64(math.Round(value * 100))}, nil
	case TypeFreeShipping:
		return Discount{kind: kind}, nil
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType { return d.kind }

func (d Discount) IsFreeShipping() bool { return d.kind == TypeFreeShipping }

// AmountCents computes the discount against a subtotal, never exceeding it.
// Percentage amounts round to the nearest cent.
func (d Discount) AmountCents(subtotalCents int64) int64 {
	var amount int64
	switch d.kind {
	case TypePercentage:
		amount = int64(math.Round(float64(subtotalCents) * d.percentOff / 100))
	case TypeFixed:
		amount = d.amountOffCents
	case TypeFreeShipping:
		return 0
	}

	if amount > subtotalCents {
		return subtotalCents
	}
	if amount < 0 {
		return 0
	}
	return amount
}
