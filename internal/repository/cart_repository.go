package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// CartRepository defines persistence access for carts and their items.
type CartRepository interface {
	Create(ctx context.Context, customerID int) (*domain.Cart, error)
	GetByCustomer(ctx context.Context, customerID int) (*domain.Cart, error)
	AddItem(ctx context.Context, item *domain.CartItem) error
	GetItem(ctx context.Context, itemID int) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID, quantity int) error
	DeleteItem(ctx context.Context, itemID int) error
	ClearByCustomer(ctx context.Context, customerID int) error
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) Create(ctx context.Context, customerID int) (*domain.Cart, error) {
	cart := &domain.Cart{CustomerID: customerID}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO carts (customer_id) VALUES ($1) RETURNING id, created_at`,
		customerID,
	).Scan(&cart.ID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) GetByCustomer(ctx context.Context, customerID int) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.pool.QueryRow(ctx,
		`SELECT id, customer_id, created_at FROM carts WHERE customer_id=$1`,
		customerID,
	).Scan(&cart.ID, &cart.CustomerID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ci.id, ci.cart_id, ci.food_id, f.name, ci.quantity, ci.price_at_addition
         FROM cart_items ci JOIN foods f ON f.id = ci.food_id
         WHERE ci.cart_id=$1 ORDER BY ci.id`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.FoodID, &item.FoodName, &item.Quantity, &item.PriceAtAddition); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	// merge with an existing line for the same food instead of duplicating it
	const query = `
        INSERT INTO cart_items (cart_id, food_id, quantity, price_at_addition)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (cart_id, food_id)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
        RETURNING id, quantity`

	return r.pool.QueryRow(ctx, query,
		item.CartID,
		item.FoodID,
		item.Quantity,
		item.PriceAtAddition,
	).Scan(&item.ID, &item.Quantity)
}

func (r *cartRepository) GetItem(ctx context.Context, itemID int) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.pool.QueryRow(ctx,
		`SELECT ci.id, ci.cart_id, ci.food_id, f.name, ci.quantity, ci.price_at_addition
         FROM cart_items ci JOIN foods f ON f.id = ci.food_id
         WHERE ci.id=$1`, itemID,
	).Scan(&item.ID, &item.CartID, &item.FoodID, &item.FoodName, &item.Quantity, &item.PriceAtAddition)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID, quantity int) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE cart_items SET quantity=$1 WHERE id=$2`, quantity, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cartRepository) ClearByCustomer(ctx context.Context, customerID int) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id IN (SELECT id FROM carts WHERE customer_id=$1)`,
		customerID)
	return err
}
