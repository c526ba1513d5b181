package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, is_staff, date_joined, updated_at`

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, is_staff, date_joined, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.IsStaff, u.DateJoined, u.UpdatedAt,
	).Scan(&id)
	if err != nil {
		// The unique constraint is the authoritative duplicate guard; the
		// service-level existence check is only a fast path.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return 0, user.ErrEmailAlreadyExists
			}
			return 0, user.ErrUsernameAlreadyExists
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, username))
}

func (r *postgresRepository) scanOne(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.IsStaff, &u.DateJoined, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]user.User, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY date_joined DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0, limit)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.IsStaff, &u.DateJoined, &u.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, first_name = $4, last_name = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

// GetStatistics aggregates activity counts. Blog posts record the author by
// id; comments and photos only keep a display name, so those are matched on
// the username.
func (r *postgresRepository) GetStatistics(ctx context.Context, u *user.User) (*user.Statistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM blog_posts WHERE author_id = $1),
			(SELECT COUNT(*) FROM post_comments WHERE author = $2),
			(SELECT COUNT(*) FROM photos WHERE author = $2)
	`

	var stats user.Statistics
	err := r.pool.QueryRow(ctx, query, u.ID, u.Username).Scan(
		&stats.BlogPostsCount, &stats.CommentsCount, &stats.PhotosCount,
	)
	if err != nil {
		return nil, fmt.Errorf("get user statistics: %w", err)
	}
	return &stats, nil
}
