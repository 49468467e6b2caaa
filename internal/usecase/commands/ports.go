package commands

import (
	"context"

	"lessence-checkout/internal/infra/gateway/paymob"

	"github.com/google/uuid"
)

// PaymentGateway opens payment intentions with the card processor. The
// checkout snapshot rides along as metadata and comes back in the webhook.
type PaymentGateway interface {
	CreateIntention(ctx context.Context, amountCents int64, meta paymob.CheckoutMetadata) (*paymob.Intention, error)
}

// SignatureVerifier authenticates a webhook body against its header
// signature.
type SignatureVerifier interface {
	Verify(body []byte, signature string) bool
}

// LoyaltyService awards points for a settled order. Best-effort only.
type LoyaltyService interface {
	AwardPoints(ctx context.Context, orderID uuid.UUID) error
}
