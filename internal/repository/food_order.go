package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// FoodOrderRepository handles persistence for room-service orders.
type FoodOrderRepository struct {
	db *pgxpool.Pool
}

// NewFoodOrderRepository constructs a FoodOrderRepository.
func NewFoodOrderRepository(db *pgxpool.Pool) *FoodOrderRepository {
	return &FoodOrderRepository{db: db}
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []model.FoodOrderItem) error {
	for i := range items {
		err := tx.QueryRow(ctx,
			`INSERT INTO food_order_items (order_id, food_item_id, quantity)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			orderID, items[i].FoodItemID, items[i].Quantity,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("insert food order item: %w", err)
		}
	}
	return nil
}

// Create inserts an order and its items in one transaction.
func (r *FoodOrderRepository) Create(ctx context.Context, o *model.FoodOrder) error {
	o.CreatedAt = time.Now().UTC()

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO food_orders (room_id, amount, assigned_employee_id, status, billing_status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			o.RoomID, o.Amount, o.AssignedEmployeeID, o.Status, o.BillingStatus, o.CreatedAt,
		).Scan(&o.ID)
		if err != nil {
			return fmt.Errorf("insert food order: %w", err)
		}
		return insertItems(ctx, tx, o.ID, o.Items)
	})
}

// List returns orders in id order with their items.
func (r *FoodOrderRepository) List(ctx context.Context, skip, limit int) ([]model.FoodOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, room_id, amount, assigned_employee_id, status, billing_status, created_at
		 FROM food_orders
		 ORDER BY id
		 OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list food orders: %w", err)
	}
	defer rows.Close()

	var orders []model.FoodOrder
	for rows.Next() {
		var o model.FoodOrder
		if err := rows.Scan(&o.ID, &o.RoomID, &o.Amount, &o.AssignedEmployeeID, &o.Status, &o.BillingStatus, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list food orders: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns a single order with its items, or ErrNotFound.
func (r *FoodOrderRepository) GetByID(ctx context.Context, id int64) (*model.FoodOrder, error) {
	var o model.FoodOrder
	err := r.db.QueryRow(ctx,
		`SELECT id, room_id, amount, assigned_employee_id, status, billing_status, created_at
		 FROM food_orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.RoomID, &o.Amount, &o.AssignedEmployeeID, &o.Status, &o.BillingStatus, &o.CreatedAt)
	if err != nil {
		return nil, notFound(err, "get food order")
	}
	orders := []model.FoodOrder{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// orderIndex returns the ids of orders and each id's position. Every order's
// Items is reset to an empty slice.
func orderIndex(orders []model.FoodOrder) ([]int64, map[int64]int) {
	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		orders[i].Items = []model.FoodOrderItem{}
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
	}
	return ids, index
}

// attachItems loads the items of every order in one query. Items whose food
// item has been removed are named "Unknown".
func (r *FoodOrderRepository) attachItems(ctx context.Context, orders []model.FoodOrder) error {
	ids, index := orderIndex(orders)
	if len(ids) == 0 {
		return nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT i.order_id, i.id, i.food_item_id, i.quantity, COALESCE(f.name, 'Unknown')
		 FROM food_order_items i
		 LEFT JOIN food_items f ON f.id = i.food_item_id
		 WHERE i.order_id = ANY($1)
		 ORDER BY i.id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("list food order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var item model.FoodOrderItem
		if err := rows.Scan(&orderID, &item.ID, &item.FoodItemID, &item.Quantity, &item.FoodItemName); err != nil {
			return fmt.Errorf("scan food order item: %w", err)
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}

// Update writes every scalar field of o. When replaceItems is set the order's
// items are replaced by o.Items in the same transaction.
func (r *FoodOrderRepository) Update(ctx context.Context, o *model.FoodOrder, replaceItems bool) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE food_orders
			 SET room_id = $1, amount = $2, assigned_employee_id = $3, status = $4, billing_status = $5
			 WHERE id = $6`,
			o.RoomID, o.Amount, o.AssignedEmployeeID, o.Status, o.BillingStatus, o.ID,
		)
		if err != nil {
			return fmt.Errorf("update food order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		if !replaceItems {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM food_order_items WHERE order_id = $1`, o.ID); err != nil {
			return fmt.Errorf("delete food order items: %w", err)
		}
		return insertItems(ctx, tx, o.ID, o.Items)
	})
}

// UpdateStatus sets the fulfilment status of an order.
func (r *FoodOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE food_orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update food order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an order and its items.
func (r *FoodOrderRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM food_order_items WHERE order_id = $1`, id); err != nil {
			return fmt.Errorf("delete food order items: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM food_orders WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete food order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
