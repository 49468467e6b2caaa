package shared

import (
	"context"
	"errors"

	"lessence-checkout/internal/domain/cart"
	"lessence-checkout/internal/domain/order"
	"lessence-checkout/internal/infra/db"

	"github.com/google/uuid"
)

// ErrInsufficientStock is returned by the stock ledger when a tracked row
// holds fewer units than a decrement requests.
var ErrInsufficientStock = errors.New("insufficient stock")

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Inventory() InventoryRepository
	Coupons() CouponRepository
	Addresses() AddressRepository
	Carts() CartRepository
	WebhookEvents() WebhookEventRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	VariantByID(ctx context.Context, id uuid.UUID) (*VariantSnapshot, error)
	BundleByID(ctx context.Context, id uuid.UUID) (*BundleSnapshot, error)
	BundleComponents(ctx context.Context, bundleID uuid.UUID) ([]BundleComponentSnapshot, error)
	InventoryLevel(ctx context.Context, productID uuid.UUID, size *string) (*InventoryLevel, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	CountOrdersByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	AddItems(ctx context.Context, orderID uuid.UUID, items []order.Item) error
	AddPayment(ctx context.Context, orderID uuid.UUID, p order.Payment) error
}

// InventoryRepository is the stock ledger. Decrement is a single
// conditional UPDATE guarded by the row itself: when the row holds fewer
// units than requested nothing is written and the call reports
// insufficient stock. Untracked legacy rows decrement to nothing.
type InventoryRepository interface {
	Decrement(ctx context.Context, ref cart.StockRef, qty int) error
}

type CouponRepository interface {
	IncrementUsage(ctx context.Context, couponID uuid.UUID) error
	RecordRedemption(ctx context.Context, couponID, userID, orderID uuid.UUID) error
}

type AddressRepository interface {
	Create(ctx context.Context, userID uuid.UUID, addr AddressInput) (uuid.UUID, error)
}

type CartRepository interface {
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}

// WebhookEventRepository persists provider event ids under a uniqueness
// constraint; the insert is the entire duplicate-delivery guard.
type WebhookEventRepository interface {
	TryInsert(ctx context.Context, provider, eventID string) error
}
