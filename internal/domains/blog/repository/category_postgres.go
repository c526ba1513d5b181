package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/blog"
)

type categoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) blog.CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, c *blog.Category) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO post_categories (category) VALUES ($1) RETURNING id`,
		c.Category,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create post category: %w", err)
	}
	return id, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*blog.Category, error) {
	var c blog.Category
	err := r.pool.QueryRow(ctx,
		`SELECT id, category FROM post_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find post category: %w", err)
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]blog.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, category FROM post_categories ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list post categories: %w", err)
	}
	defer rows.Close()

	categories := []blog.Category{}
	for rows.Next() {
		var c blog.Category
		if err := rows.Scan(&c.ID, &c.Category); err != nil {
			return nil, fmt.Errorf("scan post category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, c *blog.Category) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE post_categories SET category = $2 WHERE id = $1`,
		c.ID, c.Category,
	)
	if err != nil {
		return fmt.Errorf("update post category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return blog.ErrCategoryNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM post_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return blog.ErrCategoryNotFound
	}
	return nil
}
