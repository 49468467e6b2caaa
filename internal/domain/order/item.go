package order

import (
	"github.com/google/uuid"
)

// Item is an immutable snapshot of one validated cart line. A bundle
// collapses to a single row carrying the bundle's own name and price; its
// components never appear as rows of their own.
type Item struct {
	ProductID    *uuid.UUID
	BundleID     *uuid.UUID
	VariantID    *uuid.UUID
	Name         string
	SelectedSize *string
	PriceCents   int64
	Quantity     int
}

func (i Item) IsBundle() bool {
	return i.BundleID != nil
}

type PaymentProvider string

const (
	ProviderCOD    PaymentProvider = "cod"
	ProviderPaymob PaymentProvider = "paymob"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Payment records how the order was (or will be) settled. COD orders get a
// synthetic transaction id; gateway orders carry the provider's.
type Payment struct {
	Provider      PaymentProvider
	Status        PaymentStatus
	TransactionID string
	AmountCents   int64
}

func NewCODPayment(orderNumber string, amountCents int64) Payment {
	return Payment{
		Provider:      ProviderCOD,
		Status:        PaymentPending,
		TransactionID: "cod_" + orderNumber,
		AmountCents:   amountCents,
	}
}

func NewGatewayPayment(transactionID string, amountCents int64) Payment {
	return Payment{
		Provider:      ProviderPaymob,
		Status:        PaymentCompleted,
		TransactionID: transactionID,
		AmountCents:   amountCents,
	}
}
