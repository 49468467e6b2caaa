package repository

import (
	"context"

	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"
)

// WebhookEventRepository is the replay guard for gateway callbacks. The
// (provider, event_id) pair is unique; a second delivery of the same event
// fails the insert with KindDuplicateKey and the caller treats the whole
// callback as already processed.
type WebhookEventRepository struct {
	db db.DBTX
}

func NewWebhookEventRepository(dbtx db.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{db: dbtx}
}

func (r *WebhookEventRepository) TryInsert(ctx context.Context, provider, eventID string) error {
	const query = `
		INSERT INTO webhook_events (provider, event_id)
		VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, query, provider, eventID); err != nil {
		return infra.WrapRepoErr("failed to record webhook event", err)
	}
	return nil
}
