package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/phototag"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) phototag.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, t *phototag.Tag) (int64, error) {
	query := `INSERT INTO photo_tags (tag) VALUES ($1) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, t.Tag).Scan(&t.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, phototag.ErrTagAlreadyExists
		}
		return 0, fmt.Errorf("insert photo tag: %w", err)
	}
	return t.ID, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*phototag.Tag, error) {
	var t phototag.Tag
	err := r.pool.QueryRow(ctx, `SELECT id, tag FROM photo_tags WHERE id = $1`, id).
		Scan(&t.ID, &t.Tag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, phototag.ErrTagNotFound
		}
		return nil, fmt.Errorf("find photo tag: %w", err)
	}
	return &t, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]phototag.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, tag FROM photo_tags ORDER BY tag ASC`)
	if err != nil {
		return nil, fmt.Errorf("list photo tags: %w", err)
	}
	defer rows.Close()

	tags := make([]phototag.Tag, 0)
	for rows.Next() {
		var t phototag.Tag
		if err := rows.Scan(&t.ID, &t.Tag); err != nil {
			return nil, fmt.Errorf("scan photo tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photo tags: %w", err)
	}
	return tags, nil
}

func (r *postgresRepository) Update(ctx context.Context, t *phototag.Tag) error {
	tag, err := r.pool.Exec(ctx, `UPDATE photo_tags SET tag = $1 WHERE id = $2`, t.Tag, t.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return phototag.ErrTagAlreadyExists
		}
		return fmt.Errorf("update photo tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return phototag.ErrTagNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM photo_tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete photo tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return phototag.ErrTagNotFound
	}
	return nil
}
