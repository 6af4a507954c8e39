package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// FoodRepository defines persistence access for the catalog.
type FoodRepository interface {
	Create(ctx context.Context, food *domain.Food) error
	Update(ctx context.Context, food *domain.Food) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.Food, error)
	List(ctx context.Context) ([]domain.Food, error)
	Search(ctx context.Context, keyword string) ([]domain.Food, error)
}

type foodRepository struct {
	pool *pgxpool.Pool
}

// NewFoodRepository returns a Postgres-backed implementation.
func NewFoodRepository(pool *pgxpool.Pool) FoodRepository {
	return &foodRepository{pool: pool}
}

const foodColumns = `id, name, description, price, veg, ingredients, calories, preparation_mins, spiciness, available, category, image_name, image_type, image_data`

func scanFood(row pgx.Row) (*domain.Food, error) {
	var f domain.Food
	if err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Description,
		&f.Price,
		&f.Veg,
		&f.Ingredients,
		&f.Calories,
		&f.PreparationMins,
		&f.Spiciness,
		&f.Available,
		&f.Category,
		&f.ImageName,
		&f.ImageType,
		&f.ImageData,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *foodRepository) Create(ctx context.Context, food *domain.Food) error {
	const query = `
        INSERT INTO foods (name, description, price, veg, ingredients, calories, preparation_mins, spiciness, available, category, image_name, image_type, image_data)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		food.Name,
		food.Description,
		food.Price,
		food.Veg,
		food.Ingredients,
		food.Calories,
		food.PreparationMins,
		food.Spiciness,
		food.Available,
		food.Category,
		food.ImageName,
		food.ImageType,
		food.ImageData,
	).Scan(&food.ID)
}

func (r *foodRepository) Update(ctx context.Context, food *domain.Food) error {
	const query = `
        UPDATE foods
        SET name=$1, description=$2, price=$3, veg=$4, ingredients=$5, calories=$6, preparation_mins=$7,
            spiciness=$8, available=$9, category=$10, image_name=$11, image_type=$12, image_data=$13
        WHERE id=$14`

	cmd, err := r.pool.Exec(ctx, query,
		food.Name,
		food.Description,
		food.Price,
		food.Veg,
		food.Ingredients,
		food.Calories,
		food.PreparationMins,
		food.Spiciness,
		food.Available,
		food.Category,
		food.ImageName,
		food.ImageType,
		food.ImageData,
		food.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *foodRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM foods WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *foodRepository) GetByID(ctx context.Context, id int) (*domain.Food, error) {
	return scanFood(r.pool.QueryRow(ctx, `SELECT `+foodColumns+` FROM foods WHERE id=$1`, id))
}

func (r *foodRepository) List(ctx context.Context) ([]domain.Food, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+foodColumns+` FROM foods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFoods(rows)
}

func (r *foodRepository) Search(ctx context.Context, keyword string) ([]domain.Food, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+foodColumns+` FROM foods
         WHERE name ILIKE '%'||$1||'%' OR description ILIKE '%'||$1||'%' OR ingredients ILIKE '%'||$1||'%'
         ORDER BY id`, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFoods(rows)
}

func collectFoods(rows pgx.Rows) ([]domain.Food, error) {
	var foods []domain.Food
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, *f)
	}
	return foods, rows.Err()
}
