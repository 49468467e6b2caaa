package paymob

import (
	"encoding/json"
	"strconv"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/pkg/errs"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// guestUserID marks an unauthenticated checkout in the extras. Paymob
// round-trips extras as strings, so absence cannot be expressed as null.
const guestUserID = "guest"

var (
	ErrMissingMetadata = errs.New("webhook payload is missing checkout metadata")
	ErrBadMetadata     = errs.New("webhook metadata failed to decode")
)

// Extras is the checkout snapshot attached to a payment intention and
// returned verbatim in the success callback. Every field is a string: the
// gateway does not preserve JSON types through the round trip.
type Extras struct {
	UserID          string `json:"user_id,omitempty"`
	AppliedCouponID string `json:"applied_coupon_id,omitempty"`
	DiscountAmount  string `json:"discount_amount,omitempty"`
	Subtotal        string `json:"subtotal,omitempty"`
	TotalAmount     string `json:"total_amount,omitempty"`
	IsGift          string `json:"is_gift,omitempty"`
	GiftWrap        string `json:"gift_wrap,omitempty"`
	GiftMessage     string `json:"gift_message,omitempty"`
	Address         string `json:"address,omitempty"`
	CartItems       string `json:"cart_items,omitempty"`
}

type metaBundleItem struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id"`
	Quantity  int        `json:"quantity"`
}

type metaCartItem struct {
	ProductID    *uuid.UUID       `json:"product_id"`
	BundleID     *uuid.UUID       `json:"bundle_id"`
	SelectedSize *string          `json:"selected_size"`
	Quantity     int              `json:"quantity"`
	PriceCents   int64            `json:"price_cents"`
	Name         string           `json:"name"`
	VariantID    *uuid.UUID       `json:"variant_id"`
	IsBundle     bool             `json:"is_bundle"`
	BundleItems  []metaBundleItem `json:"bundle_items,omitempty"`
}

// CheckoutMetadata is the decoded, typed form of Extras.
type CheckoutMetadata struct {
	UserID          *uuid.UUID
	AppliedCouponID *uuid.UUID
	DiscountCents   int64
	SubtotalCents   int64
	TotalCents      int64
	IsGift          bool
	GiftWrap        bool
	GiftMessage     *string
	Address         shared.AddressInput
	Lines           []cart.ValidatedLine
}

func EncodeExtras(m CheckoutMetadata) (Extras, error) {
	addrJSON, err := json.Marshal(m.Address)
	if err != nil {
		return Extras{}, errs.Wrap(err, "failed to encode address")
	}

	items := make([]metaCartItem, 0, len(m.Lines))
	for _, line := range m.Lines {
		item := metaCartItem{
			ProductID:    line.ProductID,
			BundleID:     line.BundleID,
			SelectedSize: line.SelectedSize,
			Quantity:     line.Quantity,
			PriceCents:   line.UnitPriceCents,
			Name:         line.Name,
			VariantID:    line.VariantID,
			IsBundle:     line.IsBundle(),
		}
		for _, c := range line.Components {
			item.BundleItems = append(item.BundleItems, metaBundleItem{
				ProductID: c.ProductID,
				VariantID: c.VariantID,
				Quantity:  c.Multiplier,
			})
		}
		items = append(items, item)
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return Extras{}, errs.Wrap(err, "failed to encode cart items")
	}

	userID := guestUserID
	if m.UserID != nil {
		userID = m.UserID.String()
	}
	couponID := ""
	if m.AppliedCouponID != nil {
		couponID = m.AppliedCouponID.String()
	}
	giftMessage := ""
	if m.GiftMessage != nil {
		giftMessage = *m.GiftMessage
	}

	return Extras{
		UserID:          userID,
		AppliedCouponID: couponID,
		DiscountAmount:  strconv.FormatInt(m.DiscountCents, 10),
		Subtotal:        strconv.FormatInt(m.SubtotalCents, 10),
		TotalAmount:     strconv.FormatInt(m.TotalCents, 10),
		IsGift:          strconv.FormatBool(m.IsGift),
		GiftWrap:        strconv.FormatBool(m.GiftWrap),
		GiftMessage:     giftMessage,
		Address:         string(addrJSON),
		CartItems:       string(itemsJSON),
	}, nil
}

func DecodeExtras(e Extras) (*CheckoutMetadata, error) {
	if e.CartItems == "" || e.Address == "" {
		return nil, ErrMissingMetadata
	}

	var m CheckoutMetadata

	if e.UserID != "" && e.UserID != guestUserID {
		id, err := uuid.Parse(e.UserID)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "bad user id"), ErrBadMetadata)
		}
		m.UserID = &id
	}
	if e.AppliedCouponID != "" {
		id, err := uuid.Parse(e.AppliedCouponID)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "bad coupon id"), ErrBadMetadata)
		}
		m.AppliedCouponID = &id
	}

	var err error
	if m.DiscountCents, err = parseCents(e.DiscountAmount); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "bad discount amount"), ErrBadMetadata)
	}
	if m.SubtotalCents, err = parseCents(e.Subtotal); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "bad subtotal"), ErrBadMetadata)
	}
	if m.TotalCents, err = parseCents(e.TotalAmount); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "bad total amount"), ErrBadMetadata)
	}

	m.IsGift = e.IsGift == "true"
	m.GiftWrap = e.GiftWrap == "true"
	if e.GiftMessage != "" {
		msg := e.GiftMessage
		m.GiftMessage = &msg
	}

	if err := json.Unmarshal([]byte(e.Address), &m.Address); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "bad address"), ErrBadMetadata)
	}

	var items []metaCartItem
	if err := json.Unmarshal([]byte(e.CartItems), &items); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "bad cart items"), ErrBadMetadata)
	}
	for _, item := range items {
		line := cart.ValidatedLine{
			ProductID:      item.ProductID,
			BundleID:       item.BundleID,
			VariantID:      item.VariantID,
			SelectedSize:   item.SelectedSize,
			Quantity:       item.Quantity,
			UnitPriceCents: item.PriceCents,
			Name:           item.Name,
		}
		for _, b := range item.BundleItems {
			line.Components = append(line.Components, cart.Component{
				ProductID:  b.ProductID,
				VariantID:  b.VariantID,
				Multiplier: b.Quantity,
			})
		}
		m.Lines = append(m.Lines, line)
	}

	return &m, nil
}

func parseCents(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// Transaction is the part of a Paymob callback the pipeline consumes.
// Depending on the integration generation the extras surface in different
// places, so all known carriers are mapped.
type Transaction struct {
	ID               int64  `json:"id"`
	Success          bool   `json:"success"`
	PaymentKeyClaims *struct {
		Extra *Extras `json:"extra"`
	} `json:"payment_key_claims"`
	Intention *struct {
		Extras *struct {
			CreationExtras *Extras `json:"creation_extras"`
		} `json:"extras"`
	} `json:"intention"`
	Extras *Extras `json:"extras"`
}

type CallbackPayload struct {
	Type   string       `json:"type"`
	Obj    *Transaction `json:"obj"`
	Extras *Extras      `json:"extras"`
}

// ExtrasOf walks the fallback chain: payment key claims, then the
// intention's creation extras, then flat extras on the transaction or the
// payload itself.
func (p *CallbackPayload) ExtrasOf(t *Transaction) Extras {
	if t.PaymentKeyClaims != nil && t.PaymentKeyClaims.Extra != nil {
		return *t.PaymentKeyClaims.Extra
	}
	if t.Intention != nil && t.Intention.Extras != nil && t.Intention.Extras.CreationExtras != nil {
		return *t.Intention.Extras.CreationExtras
	}
	if t.Extras != nil {
		return *t.Extras
	}
	if p.Extras != nil {
		return *p.Extras
	}
	return Extras{}
}

func ParseCallback(body []byte) (*CallbackPayload, error) {
	var payload CallbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errs.Wrap(err, "failed to parse callback payload")
	}
	return &payload, nil
}
