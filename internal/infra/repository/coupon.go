package repository

import (
	"context"

	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"

	"github.com/google/uuid"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

// IncrementUsage bumps the global redemption counter. Callers invoke this
// only after the order insert has succeeded in the same transaction, so an
// aborted checkout never burns a use.
func (r *CouponRepository) IncrementUsage(ctx context.Context, couponID uuid.UUID) error {
	const query = `
		UPDATE coupons
		SET times_used = times_used + 1
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, couponID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) RecordRedemption(ctx context.Context, couponID, userID, orderID uuid.UUID) error {
	const query = `
		INSERT INTO coupon_redemptions (coupon_id, user_id, order_id)
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, couponID, userID, orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to record coupon redemption", err)
	}
	return nil
}
