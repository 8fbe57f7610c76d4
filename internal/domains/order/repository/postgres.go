package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pcstore-backend/internal/domains/order/model"
)

const orderColumns = `id, user_id, status, items, total, shipping_address, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Status, &o.Items, &o.Total,
		&o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]*model.Order, error) {
	defer rows.Close()

	orders := []*model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return orders, nil
}

func (r *postgresRepository) CreateFromCart(ctx context.Context, order *model.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin checkout tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Step 1: decrement stock per line; the guard in the WHERE clause makes
	// oversell impossible under concurrent checkouts
	for _, item := range order.Items {
		result, err := tx.Exec(ctx, `
			UPDATE products SET stock = stock - $1, updated_at = NOW()
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrInsufficientStock
		}
	}

	// Step 2: insert the order
	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, status, items, total, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, order.ID, order.UserID, order.Status, order.Items, order.Total,
		order.ShippingAddress, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	// Step 3: empty the cart
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, order.UserID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit checkout tx: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, orderColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	return collectOrders(rows)
}

func (r *postgresRepository) List(ctx context.Context, filter *model.OrderFilter) ([]*model.Order, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM orders WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM orders
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, orderColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}
