package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// LookupRepository reads the reference data that orders, assignments and
// expenses point at. Employees and food items are managed elsewhere.
type LookupRepository struct {
	db *pgxpool.Pool
}

// NewLookupRepository constructs a LookupRepository.
func NewLookupRepository(db *pgxpool.Pool) *LookupRepository {
	return &LookupRepository{db: db}
}

// Employee returns a single employee or ErrNotFound.
func (r *LookupRepository) Employee(ctx context.Context, id int64) (*model.Employee, error) {
	var e model.Employee
	err := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(role, '') FROM employees WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.Role)
	if err != nil {
		return nil, notFound(err, "get employee")
	}
	return &e, nil
}

// FoodItemExists reports whether a food item with id exists.
func (r *LookupRepository) FoodItemExists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM food_items WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check food item: %w", err)
	}
	return ok, nil
}
