package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pcstore-backend/internal/domains/build/model"
)

const buildColumns = `id, user_id, name, description, components, total_price,
	is_public, likes_count, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanBuild(row pgx.Row) (*model.Build, error) {
	var b model.Build
	err := row.Scan(
		&b.ID, &b.UserID, &b.Name, &b.Description, &b.Components, &b.TotalPrice,
		&b.IsPublic, &b.LikesCount, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBuilds(rows pgx.Rows) ([]*model.Build, error) {
	defer rows.Close()

	builds := []*model.Build{}
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return builds, nil
}

func (r *postgresRepository) Create(ctx context.Context, build *model.Build) error {
	query := `
		INSERT INTO builds (
			id, user_id, name, description, components, total_price,
			is_public, likes_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		build.ID, build.UserID, build.Name, build.Description, build.Components,
		build.TotalPrice, build.IsPublic, build.LikesCount, build.CreatedAt, build.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert build: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Build, error) {
	query := fmt.Sprintf(`SELECT %s FROM builds WHERE id = $1`, buildColumns)

	b, err := scanBuild(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBuildNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get build: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) ListPublic(ctx context.Context, filter *model.BuildFilter) ([]*model.Build, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM builds WHERE is_public = true`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count public builds: %w", err)
	}

	order := "ORDER BY created_at DESC"
	if filter.Sort == model.SortMostLiked {
		order = "ORDER BY likes_count DESC, created_at DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM builds
		WHERE is_public = true
		%s
		LIMIT $1 OFFSET $2
	`, buildColumns, order)

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list public builds: %w", err)
	}

	builds, err := collectBuilds(rows)
	if err != nil {
		return nil, 0, err
	}
	return builds, total, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Build, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM builds
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, buildColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list builds by user: %w", err)
	}
	return collectBuilds(rows)
}

func (r *postgresRepository) Update(ctx context.Context, build *model.Build) error {
	query := `
		UPDATE builds
		SET name = $1, description = $2, is_public = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(ctx, query,
		build.Name, build.Description, build.IsPublic, build.UpdatedAt, build.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update build: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrBuildNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM builds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete build: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrBuildNotFound
	}
	return nil
}

func (r *postgresRepository) Like(ctx context.Context, buildID, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `
		INSERT INTO build_likes (build_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (build_id, user_id) DO NOTHING
	`, buildID, userID)
	if err != nil {
		return fmt.Errorf("failed to like build: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrAlreadyLiked
	}
	return nil
}

func (r *postgresRepository) Unlike(ctx context.Context, buildID, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM build_likes WHERE build_id = $1 AND user_id = $2`,
		buildID, userID)
	if err != nil {
		return fmt.Errorf("failed to unlike build: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrNotLiked
	}
	return nil
}

func (r *postgresRepository) HasLiked(ctx context.Context, buildID, userID uuid.UUID) (bool, error) {
	var liked bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM build_likes WHERE build_id = $1 AND user_id = $2)`,
		buildID, userID).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return liked, nil
}

func (r *postgresRepository) CountLikes(ctx context.Context, buildID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM build_likes WHERE build_id = $1`, buildID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) SetLikesCount(ctx context.Context, buildID uuid.UUID, count int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE builds SET likes_count = $1 WHERE id = $2`, count, buildID)
	if err != nil {
		return fmt.Errorf("failed to set likes count: %w", err)
	}
	return nil
}

// ListStaleLikeCounts finds builds whose denormalized counter has drifted
// from the likes table. Used by the periodic reconciliation job.
func (r *postgresRepository) ListStaleLikeCounts(ctx context.Context, limit int) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id
		FROM builds b
		LEFT JOIN (
			SELECT build_id, COUNT(*) AS actual
			FROM build_likes
			GROUP BY build_id
		) l ON l.build_id = b.id
		WHERE b.likes_count != COALESCE(l.actual, 0)
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale like counts: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan build id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return ids, nil
}

func (r *postgresRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO build_comments (id, build_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, comment.ID, comment.BuildID, comment.UserID, comment.Content, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListComments(ctx context.Context, buildID uuid.UUID) ([]*model.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.build_id, c.user_id, u.full_name, c.content, c.created_at
		FROM build_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.build_id = $1
		ORDER BY c.created_at ASC
	`, buildID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []*model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.BuildID, &c.UserID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return comments, nil
}

func (r *postgresRepository) GetComment(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var c model.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT c.id, c.build_id, c.user_id, u.full_name, c.content, c.created_at
		FROM build_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`, id).Scan(&c.ID, &c.BuildID, &c.UserID, &c.AuthorName, &c.Content, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM build_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
