package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/photocategory"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) photocategory.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *photocategory.Category) (int64, error) {
	query := `INSERT INTO photo_categories (category) VALUES ($1) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, c.Category).Scan(&c.ID); err != nil {
		return 0, fmt.Errorf("insert photo category: %w", err)
	}
	return c.ID, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*photocategory.Category, error) {
	var c photocategory.Category
	err := r.pool.QueryRow(ctx, `SELECT id, category FROM photo_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, photocategory.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find photo category: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]photocategory.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, category FROM photo_categories ORDER BY category ASC`)
	if err != nil {
		return nil, fmt.Errorf("list photo categories: %w", err)
	}
	defer rows.Close()

	categories := make([]photocategory.Category, 0)
	for rows.Next() {
		var c photocategory.Category
		if err := rows.Scan(&c.ID, &c.Category); err != nil {
			return nil, fmt.Errorf("scan photo category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photo categories: %w", err)
	}
	return categories, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *photocategory.Category) error {
	tag, err := r.pool.Exec(ctx, `UPDATE photo_categories SET category = $1 WHERE id = $2`, c.Category, c.ID)
	if err != nil {
		return fmt.Errorf("update photo category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return photocategory.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category; the photos FK is ON DELETE CASCADE, so the
// category's photo rows go with it.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM photo_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete photo category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return photocategory.ErrCategoryNotFound
	}
	return nil
}

func (r *postgresRepository) PhotoImageKeys(ctx context.Context, categoryID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT image_key FROM photos WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list category image keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan image key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image keys: %w", err)
	}
	return keys, nil
}
