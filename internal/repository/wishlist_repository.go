package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// WishlistRepository defines persistence access for wishlists.
type WishlistRepository interface {
	Add(ctx context.Context, customerID, foodID int) (*domain.WishlistEntry, error)
	Remove(ctx context.Context, customerID, foodID int) error
	GetByID(ctx context.Context, id int) (*domain.WishlistEntry, error)
	Delete(ctx context.Context, id int) error
	ListByCustomer(ctx context.Context, customerID int) ([]domain.WishlistEntry, error)
}

type wishlistRepository struct {
	pool *pgxpool.Pool
}

// NewWishlistRepository returns a Postgres-backed implementation.
func NewWishlistRepository(pool *pgxpool.Pool) WishlistRepository {
	return &wishlistRepository{pool: pool}
}

func (r *wishlistRepository) Add(ctx context.Context, customerID, foodID int) (*domain.WishlistEntry, error) {
	entry := &domain.WishlistEntry{CustomerID: customerID, FoodID: foodID}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO wishlists (customer_id, food_id) VALUES ($1, $2)
         ON CONFLICT (customer_id, food_id) DO UPDATE SET food_id=EXCLUDED.food_id
         RETURNING id`,
		customerID, foodID,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *wishlistRepository) Remove(ctx context.Context, customerID, foodID int) error {
	cmd, err := r.pool.Exec(ctx,
		`DELETE FROM wishlists WHERE customer_id=$1 AND food_id=$2`, customerID, foodID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *wishlistRepository) GetByID(ctx context.Context, id int) (*domain.WishlistEntry, error) {
	var entry domain.WishlistEntry
	err := r.pool.QueryRow(ctx,
		`SELECT id, customer_id, food_id FROM wishlists WHERE id=$1`, id,
	).Scan(&entry.ID, &entry.CustomerID, &entry.FoodID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM wishlists WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *wishlistRepository) ListByCustomer(ctx context.Context, customerID int) ([]domain.WishlistEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT w.id, w.customer_id, w.food_id,
                f.id, f.name, f.description, f.price, f.veg, f.ingredients, f.calories,
                f.preparation_mins, f.spiciness, f.available, f.category, f.image_name, f.image_type
         FROM wishlists w JOIN foods f ON f.id = w.food_id
         WHERE w.customer_id=$1 ORDER BY w.id`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WishlistEntry
	for rows.Next() {
		var entry domain.WishlistEntry
		var food domain.Food
		if err := rows.Scan(
			&entry.ID, &entry.CustomerID, &entry.FoodID,
			&food.ID, &food.Name, &food.Description, &food.Price, &food.Veg, &food.Ingredients,
			&food.Calories, &food.PreparationMins, &food.Spiciness, &food.Available, &food.Category,
			&food.ImageName, &food.ImageType,
		); err != nil {
			return nil, err
		}
		entry.Food = &food
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
