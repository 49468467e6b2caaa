package repository

import (
	"context"

	"lessence-checkout/internal/infra"
	"lessence-checkout/internal/infra/db"
	"lessence-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddressRepository struct {
	db db.DBTX
}

func NewAddressRepository(dbtx db.DBTX) *AddressRepository {
	return &AddressRepository{db: dbtx}
}

func (r *AddressRepository) Create(ctx context.Context, userID uuid.UUID, addr shared.AddressInput) (uuid.UUID, error) {
	const query = `
		INSERT INTO addresses (
			user_id, full_name, line1, line2, city, state, postal_code,
			country, phone, email
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		userID,
		addr.FullName,
		addr.Line1,
		addr.Line2,
		addr.City,
		addr.State,
		addr.PostalCode,
		addr.Country,
		addr.Phone,
		addr.Email,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create address", err)
	}
	return id, nil
}
