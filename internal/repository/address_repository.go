package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// AddressRepository defines persistence access for delivery addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.Address, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.Address, error)
}

type addressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository returns a Postgres-backed implementation.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO addresses (customer_id, street, city, state, zip_code, address_type)
         VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		address.CustomerID,
		address.Street,
		address.City,
		address.State,
		address.ZipCode,
		address.AddressType,
	).Scan(&address.ID)
}

func (r *addressRepository) Update(ctx context.Context, address *domain.Address) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE addresses SET street=$1, city=$2, state=$3, zip_code=$4, address_type=$5
         WHERE id=$6 AND customer_id=$7`,
		address.Street,
		address.City,
		address.State,
		address.ZipCode,
		address.AddressType,
		address.ID,
		address.CustomerID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *addressRepository) GetByID(ctx context.Context, id int) (*domain.Address, error) {
	var a domain.Address
	err := r.pool.QueryRow(ctx,
		`SELECT id, customer_id, street, city, state, zip_code, address_type
         FROM addresses WHERE id=$1`, id,
	).Scan(&a.ID, &a.CustomerID, &a.Street, &a.City, &a.State, &a.ZipCode, &a.AddressType)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) ListByCustomer(ctx context.Context, customerID int) ([]domain.Address, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, customer_id, street, city, state, zip_code, address_type
         FROM addresses WHERE customer_id=$1 ORDER BY id`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Street, &a.City, &a.State, &a.ZipCode, &a.AddressType); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}
