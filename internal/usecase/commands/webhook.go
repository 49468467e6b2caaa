package commands

import (
	"context"
	"errors"
	"strconv"

	"lessence-checkout/internal/domain/order"
	"lessence-checkout/internal/infra/gateway/paymob"
	"lessence-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errs.New("invalid webhook signature")
	ErrMissingMetadata  = errs.New("webhook is missing checkout metadata")
)

// WebhookResult reports what a callback delivery did.
type WebhookResult struct {
	OrderID   uuid.UUID
	Duplicate bool
	Ignored   bool
}

type WebhookCommands interface {
	// ConfirmGatewayOrder processes one callback delivery: authenticate,
	// parse, dedupe, assemble. Safe to call any number of times with the
	// same payload.
	ConfirmGatewayOrder(ctx context.Context, body []byte, signature string) (*WebhookResult, error)
}

type webhookUseCaseImpl struct {
	verifier  SignatureVerifier
	assembler *OrderAssembler
}

func NewWebhookUseCase(verifier SignatureVerifier, assembler *OrderAssembler) WebhookCommands {
	return &webhookUseCaseImpl{verifier: verifier, assembler: assembler}
}

// The signature covers the raw body bytes, so verification happens before
// any parsing. The transaction id is extracted next, because the replay
// guard cannot run without it. Only then is state touched.
func (w *webhookUseCaseImpl) ConfirmGatewayOrder(ctx context.Context, body []byte, signature string) (*WebhookResult, error) {
	if !w.verifier.Verify(body, signature) {
		return nil, ErrInvalidSignature
	}

	payload, err := paymob.ParseCallback(body)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingMetadata)
	}

	tx := payload.Obj
	if tx == nil || !tx.Success {
		// Failed or irrelevant transaction events are acknowledged and
		// dropped; the provider retries only on error responses.
		return &WebhookResult{Ignored: true}, nil
	}

	eventID := strconv.FormatInt(tx.ID, 10)

	meta, err := paymob.DecodeExtras(payload.ExtrasOf(tx))
	if err != nil {
		return nil, errs.Mark(err, ErrMissingMetadata)
	}

	orderID, err := w.assembler.Assemble(ctx, AssemblyInput{
		UserID:        meta.UserID,
		Lines:         meta.Lines,
		Address:       meta.Address,
		CouponID:      meta.AppliedCouponID,
		SubtotalCents: meta.SubtotalCents,
		DiscountCents: meta.DiscountCents,
		Status:        order.StatusPaid,
		IsGift:        meta.IsGift,
		GiftWrap:      meta.GiftWrap,
		GiftMessage:   meta.GiftMessage,
		GatewayTxID:   &eventID,
		EventID:       &eventID,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEvent) {
			return &WebhookResult{Duplicate: true}, nil
		}
		return nil, err
	}

	w.assembler.FinishCheckout(ctx, meta.UserID, orderID)

	return &WebhookResult{OrderID: orderID}, nil
}
