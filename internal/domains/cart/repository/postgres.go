package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pcstore-backend/internal/domains/cart/model"
)

const cartItemColumns = `ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
	p.name, p.slug, p.image_url, p.price, p.sale_price, p.stock`

const cartItemJoin = `cart_items ci JOIN products p ON p.id = ci.product_id`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanCartItem(row pgx.Row) (*model.CartItem, error) {
	var i model.CartItem
	err := row.Scan(
		&i.ID, &i.UserID, &i.ProductID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt,
		&i.ProductName, &i.ProductSlug, &i.ImageURL, &i.Price, &i.SalePrice, &i.Stock,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE ci.user_id = $1
		ORDER BY ci.created_at ASC
	`, cartItemColumns, cartItemJoin)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		i, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*model.CartItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE ci.id = $1 AND ci.user_id = $2
	`, cartItemColumns, cartItemJoin)

	i, err := scanCartItem(r.pool.QueryRow(ctx, query, itemID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return i, nil
}

func (r *postgresRepository) GetItemByProduct(ctx context.Context, userID, productID uuid.UUID) (*model.CartItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE ci.user_id = $1 AND ci.product_id = $2
	`, cartItemColumns, cartItemJoin)

	i, err := scanCartItem(r.pool.QueryRow(ctx, query, userID, productID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cart item by product: %w", err)
	}
	return i, nil
}

// Upsert inserts a line or adds to the quantity of an existing one
func (r *postgresRepository) Upsert(ctx context.Context, item *model.CartItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
	`, item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

func (r *postgresRepository) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE cart_items SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, quantity, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *postgresRepository) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *postgresRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
