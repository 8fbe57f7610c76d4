package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pcstore-backend/internal/domains/product/model"
	"pcstore-backend/pkg/cache"
)

const productColumns = `id, name, slug, description, category, price, sale_price,
	stock, specs, image_url, featured, created_at, updated_at`

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// scanProduct maps a row onto a Product and parses the spec bag once.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Category, &p.Price, &p.SalePrice,
		&p.Stock, &p.SpecsRaw, &p.ImageURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ParseSpecs()
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return products, nil
}

// buildWhereClause constructs the WHERE clause dynamically
func buildWhereClause(filter *model.ProductFilter) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if len(filter.Categories) > 0 {
		cats := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			cats[i] = string(c)
		}
		conditions = append(conditions, fmt.Sprintf("category = ANY($%d)", argIndex))
		args = append(args, cats)
		argIndex++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if filter.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("featured = $%d", argIndex))
		args = append(args, *filter.Featured)
		argIndex++
	}

	if filter.OnSale != nil {
		if *filter.OnSale {
			conditions = append(conditions, "sale_price IS NOT NULL")
		} else {
			conditions = append(conditions, "sale_price IS NULL")
		}
	}

	if filter.PriceMin > 0 {
		conditions = append(conditions, fmt.Sprintf("COALESCE(sale_price, price) >= $%d", argIndex))
		args = append(args, filter.PriceMin)
		argIndex++
	}

	if filter.PriceMax > 0 {
		conditions = append(conditions, fmt.Sprintf("COALESCE(sale_price, price) <= $%d", argIndex))
		args = append(args, filter.PriceMax)
		argIndex++
	}

	return strings.Join(conditions, " AND "), args
}

func orderClause(sort string) string {
	switch sort {
	case "price_asc":
		return "ORDER BY COALESCE(sale_price, price) ASC"
	case "price_desc":
		return "ORDER BY COALESCE(sale_price, price) DESC"
	case "name":
		return "ORDER BY name ASC"
	default:
		return "ORDER BY created_at DESC"
	}
}

func (r *postgresRepository) List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int, error) {
	whereClause, args := buildWhereClause(filter)

	// Total count for pagination
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM products WHERE %s`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE %s
		%s
		LIMIT $%d OFFSET $%d
	`, productColumns, whereClause, orderClause(filter.Sort), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products query failed: %w", err)
	}

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *postgresRepository) ListByCategories(ctx context.Context, categories []model.Category) ([]model.Product, error) {
	cats := make([]string, len(categories))
	for i, c := range categories {
		cats[i] = string(c)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE category = ANY($1) AND stock > 0
		ORDER BY category, name
	`, productColumns)

	rows, err := r.pool.Query(ctx, query, cats)
	if err != nil {
		return nil, fmt.Errorf("list by categories failed: %w", err)
	}
	return collectProducts(rows)
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE featured = true
		ORDER BY created_at DESC
		LIMIT $1
	`, productColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured failed: %w", err)
	}
	return collectProducts(rows)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = ANY($1)`, productColumns)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	return collectProducts(rows)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE slug = $1`, productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (
			id, name, slug, description, category, price, sale_price,
			stock, specs, image_url, featured, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Category, p.Price, p.SalePrice,
		p.Stock, p.SpecsRaw, p.ImageURL, p.Featured, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET name = $1, slug = $2, description = $3, category = $4, price = $5,
		    sale_price = $6, stock = $7, specs = $8, image_url = $9,
		    featured = $10, updated_at = $11
		WHERE id = $12
	`

	result, err := r.pool.Exec(ctx, query,
		p.Name, p.Slug, p.Description, p.Category, p.Price,
		p.SalePrice, p.Stock, p.SpecsRaw, p.ImageURL,
		p.Featured, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1 AND id != $2)`,
			slug, *excludeID).Scan(&exists)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1)`,
			slug).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}
