package favorites

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, f models.Favorite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, news_id, title, slug, image)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, news_id) DO UPDATE
		SET title = EXCLUDED.title, slug = EXCLUDED.slug, image = EXCLUDED.image
	`, f.UserID, f.NewsID, f.Title, f.Slug, f.Image)
	if err != nil {
		return fmt.Errorf("failed to add favorite[%d/%d]: %w", f.UserID, f.NewsID, err)
	}
	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, newsID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = $1 AND news_id = $2`, userID, newsID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite[%d/%d]: %w", userID, newsID, err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, userID int64, limit, offset int) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, news_id, title, slug, image, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, news_id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites[%d]: %w", userID, err)
	}
	defer rows.Close()

	result := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.UserID, &f.NewsID, &f.Title, &f.Slug, &f.Image, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorite rows: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Contains(ctx context.Context, userID, newsID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND news_id = $2)`,
		userID, newsID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite[%d/%d]: %w", userID, newsID, err)
	}
	return exists, nil
}
