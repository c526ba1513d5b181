package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.PostComment) (int64, error) {
	query := `
		INSERT INTO post_comments (post_id, author, comment, created, edited)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created, edited`

	err := r.pool.QueryRow(ctx, query, c.PostID, c.Author, c.Comment).
		Scan(&c.ID, &c.Created, &c.Edited)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, comment.ErrPostNotFound
		}
		return 0, fmt.Errorf("insert comment: %w", err)
	}
	return c.ID, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*comment.PostComment, error) {
	query := `
		SELECT id, post_id, author, comment, created, edited
		FROM post_comments
		WHERE id = $1`

	var c comment.PostComment
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.PostID, &c.Author, &c.Comment, &c.Created, &c.Edited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) List(ctx context.Context, postID *int64, limit, offset int) ([]comment.PostComment, int, error) {
	where := ""
	args := []any{}
	if postID != nil {
		where = "WHERE post_id = $1"
		args = append(args, *postID)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM post_comments %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, post_id, author, comment, created, edited
		FROM post_comments
		%s
		ORDER BY created ASC, id ASC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments, err := scanComments(rows)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *postgresRepository) ListForPostSlug(ctx context.Context, slug string) ([]comment.PostComment, error) {
	var postID int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM blog_posts WHERE slug = $1`, slug).Scan(&postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post by slug: %w", err)
	}

	query := `
		SELECT id, post_id, author, comment, created, edited
		FROM post_comments
		WHERE post_id = $1
		ORDER BY created ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list post comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *postgresRepository) Update(ctx context.Context, c *comment.PostComment) error {
	query := `
		UPDATE post_comments
		SET comment = $1, edited = NOW()
		WHERE id = $2
		RETURNING edited`

	err := r.pool.QueryRow(ctx, query, c.Comment, c.ID).Scan(&c.Edited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return comment.ErrCommentNotFound
		}
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM post_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func scanComments(rows pgx.Rows) ([]comment.PostComment, error) {
	comments := make([]comment.PostComment, 0)
	for rows.Next() {
		var c comment.PostComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Author, &c.Comment, &c.Created, &c.Edited); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}
