package readstore

import (
	"context"
	"strings"

	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

func (r *CouponReadStore) CouponByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	const query = `
		SELECT id, code, discount_type, discount_value, valid_from, valid_until,
		       usage_limit, times_used, min_order_cents, first_order_only,
		       per_user_limit, is_active
		FROM coupons
		WHERE code = $1`

	normalizedCode := strings.ToUpper(strings.TrimSpace(code))

	var snap shared.CouponSnapshot
	err := r.db.QueryRow(ctx, query, normalizedCode).Scan(
		&snap.ID,
		&snap.Code,
		&snap.DiscountType,
		&snap.DiscountValue,
		&snap.ValidFrom,
		&snap.ValidUntil,
		&snap.UsageLimit,
		&snap.TimesUsed,
		&snap.MinOrderCents,
		&snap.FirstOrderOnly,
		&snap.PerUserLimit,
		&snap.IsActive,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	return &snap, nil
}

// CountOrdersByUser counts the caller's non-cancelled orders, backing the
// first-order-only coupon rule.
func (r *CouponReadStore) CountOrdersByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM orders
		WHERE user_id = $1 AND status <> 'cancelled'`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count user orders", err)
	}

	return count, nil
}

func (r *CouponReadStore) CountRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM coupon_redemptions
		WHERE coupon_id = $1 AND user_id = $2`

	var count int64
	if err := r.db.QueryRow(ctx, query, couponID, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count coupon redemptions", err)
	}

	return count, nil
}
