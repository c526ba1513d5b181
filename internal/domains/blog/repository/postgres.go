package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/blog"
	"brashfox-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, post *blog.BlogPost, categoryIDs []int64) (int64, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		query := `
			INSERT INTO blog_posts (author_id, title, post, slug, created, edited)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		var id int64
		err := tx.QueryRow(ctx, query,
			post.AuthorID, post.Title, post.Post, post.Slug, post.Created, post.Edited,
		).Scan(&id)
		if err != nil {
			return 0, err
		}

		for _, categoryID := range categoryIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO blog_post_categories (blog_post_id, category_id) VALUES ($1, $2)`,
				id, categoryID,
			)
			if err != nil {
				return 0, err
			}
		}

		return id, nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return 0, blog.ErrSlugAlreadyExists
			case "23503":
				return 0, blog.ErrCategoryNotFound
			}
		}
		return 0, fmt.Errorf("create blog post: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	query := `
		SELECT p.id, p.author_id, u.username, p.title, p.post, p.slug, p.created, p.edited
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.slug = $1
	`

	var p blog.BlogPost
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&p.ID, &p.AuthorID, &p.AuthorUsername, &p.Title, &p.Post, &p.Slug, &p.Created, &p.Edited,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}
		return nil, fmt.Errorf("find blog post: %w", err)
	}

	categories, err := r.loadCategories(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Categories = categories

	return &p, nil
}

func (r *postgresRepository) loadCategories(ctx context.Context, postID int64) ([]blog.Category, error) {
	query := `
		SELECT c.id, c.category
		FROM post_categories c
		JOIN blog_post_categories pc ON pc.category_id = c.id
		WHERE pc.blog_post_id = $1
		ORDER BY c.category
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("load post categories: %w", err)
	}
	defer rows.Close()

	categories := []blog.Category{}
	for rows.Next() {
		var c blog.Category
		if err := rows.Scan(&c.ID, &c.Category); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]blog.BlogPost, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count blog posts: %w", err)
	}

	// The list variant skips the body and categories; the author is joined
	// in to avoid a round trip per row.
	query := `
		SELECT p.id, p.author_id, u.username, p.title, p.slug, p.created, p.edited
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]blog.BlogPost, 0, limit)
	for rows.Next() {
		var p blog.BlogPost
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorUsername, &p.Title, &p.Slug, &p.Created, &p.Edited); err != nil {
			return nil, 0, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, post *blog.BlogPost, categoryIDs *[]int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE blog_posts
			SET title = $2, post = $3, edited = NOW()
			WHERE id = $1
			RETURNING edited
		`

		if err := tx.QueryRow(ctx, query, post.ID, post.Title, post.Post).Scan(&post.Edited); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return blog.ErrPostNotFound
			}
			return err
		}

		if categoryIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM blog_post_categories WHERE blog_post_id = $1`, post.ID); err != nil {
				return err
			}
			for _, categoryID := range *categoryIDs {
				_, err := tx.Exec(ctx,
					`INSERT INTO blog_post_categories (blog_post_id, category_id) VALUES ($1, $2)`,
					post.ID, categoryID,
				)
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return blog.ErrCategoryNotFound
		}
		if errors.Is(err, blog.ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("update blog post: %w", err)
	}

	return nil
}

// Delete removes the post; comments and category links go with it via the
// ON DELETE CASCADE referential actions.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug exists: %w", err)
	}
	return exists, nil
}
