package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// ExpenseRepository handles persistence for expenses.
type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository constructs an ExpenseRepository.
func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create inserts an expense. An empty ImagePath is stored as NULL.
func (r *ExpenseRepository) Create(ctx context.Context, e *model.Expense) error {
	e.CreatedAt = time.Now().UTC()

	var image *string
	if e.ImagePath != "" {
		image = &e.ImagePath
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO expenses (category, amount, date, description, employee_id, image, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		e.Category, e.Amount, e.Date, e.Description, e.EmployeeID, image, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List returns expenses newest first, each with the name of the employee who
// filed it or "N/A" when that employee is gone.
func (r *ExpenseRepository) List(ctx context.Context, skip, limit int) ([]model.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT x.id, x.category, x.amount, x.date, COALESCE(x.description, ''), x.employee_id,
		        COALESCE(e.name, 'N/A'), COALESCE(x.image, ''), x.created_at
		 FROM expenses x
		 LEFT JOIN employees e ON e.id = x.employee_id
		 ORDER BY x.id DESC
		 OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &e.Date, &e.Description, &e.EmployeeID,
			&e.EmployeeName, &e.ImagePath, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
