package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pcstore-backend/internal/domains/blog/model"
)

const postColumns = `id, title, slug, excerpt, content, cover_url, author_id,
	published, published_at, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverURL, &p.AuthorID,
		&p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) list(ctx context.Context, filter *model.PostFilter, publishedOnly bool) ([]*model.Post, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if publishedOnly {
		conditions = append(conditions, "published = true")
	}
	if filter.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	order := "ORDER BY created_at DESC"
	if publishedOnly {
		order = "ORDER BY published_at DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s FROM posts
		WHERE %s
		%s
		LIMIT $%d OFFSET $%d
	`, postColumns, where, order, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}
	return posts, total, nil
}

func (r *postgresRepository) ListPublished(ctx context.Context, filter *model.PostFilter) ([]*model.Post, int64, error) {
	return r.list(ctx, filter, true)
}

func (r *postgresRepository) List(ctx context.Context, filter *model.PostFilter) ([]*model.Post, int64, error) {
	return r.list(ctx, filter, false)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE slug = $1`, postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, post *model.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, slug, excerpt, content, cover_url, author_id,
			published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.CoverURL,
		post.AuthorID, post.Published, post.PublishedAt, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, post *model.Post) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, cover_url = $5,
		    published = $6, published_at = $7, updated_at = $8
		WHERE id = $9
	`, post.Title, post.Slug, post.Excerpt, post.Content, post.CoverURL,
		post.Published, post.PublishedAt, post.UpdatedAt, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1 AND id != $2)`,
			slug, *excludeID).Scan(&exists)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`, slug).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}
