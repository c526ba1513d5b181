package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/about"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) about.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Get(ctx context.Context) (*about.AboutMe, error) {
	query := `
		SELECT id, title, name, bio, profile_image_key, specializations,
		       email, phone, social_links, created, updated
		FROM about_me
		LIMIT 1`

	var a about.AboutMe
	var specializations, socialLinks []byte
	err := r.pool.QueryRow(ctx, query).Scan(
		&a.ID, &a.Title, &a.Name, &a.Bio, &a.ProfileImageKey, &specializations,
		&a.Email, &a.Phone, &socialLinks, &a.Created, &a.Updated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, about.ErrNotConfigured
		}
		return nil, fmt.Errorf("get about: %w", err)
	}

	if err := unmarshalJSONColumns(&a, specializations, socialLinks); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *about.AboutMe) (int64, error) {
	specializations, socialLinks, err := marshalJSONColumns(a)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO about_me (title, name, bio, profile_image_key, specializations,
		                      email, phone, social_links, created, updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created, updated`

	err = r.pool.QueryRow(ctx, query,
		a.Title, a.Name, a.Bio, a.ProfileImageKey, specializations,
		a.Email, a.Phone, socialLinks,
	).Scan(&a.ID, &a.Created, &a.Updated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, about.ErrAlreadyConfigured
		}
		return 0, fmt.Errorf("insert about: %w", err)
	}
	return a.ID, nil
}

// Replace overwrites the single row in place, keeping its id and created
// timestamp.
func (r *postgresRepository) Replace(ctx context.Context, a *about.AboutMe) error {
	specializations, socialLinks, err := marshalJSONColumns(a)
	if err != nil {
		return err
	}

	query := `
		UPDATE about_me
		SET title = $1, name = $2, bio = $3, profile_image_key = $4,
		    specializations = $5, email = $6, phone = $7, social_links = $8,
		    updated = NOW()
		WHERE id = $9
		RETURNING created, updated`

	err = r.pool.QueryRow(ctx, query,
		a.Title, a.Name, a.Bio, a.ProfileImageKey, specializations,
		a.Email, a.Phone, socialLinks, a.ID,
	).Scan(&a.Created, &a.Updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return about.ErrNotConfigured
		}
		return fmt.Errorf("replace about: %w", err)
	}
	return nil
}

func marshalJSONColumns(a *about.AboutMe) (specializations, socialLinks []byte, err error) {
	if a.Specializations == nil {
		a.Specializations = []string{}
	}
	if a.SocialLinks == nil {
		a.SocialLinks = map[string]string{}
	}

	specializations, err = json.Marshal(a.Specializations)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal specializations: %w", err)
	}
	socialLinks, err = json.Marshal(a.SocialLinks)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal social links: %w", err)
	}
	return specializations, socialLinks, nil
}

func unmarshalJSONColumns(a *about.AboutMe, specializations, socialLinks []byte) error {
	if err := json.Unmarshal(specializations, &a.Specializations); err != nil {
		return fmt.Errorf("unmarshal specializations: %w", err)
	}
	if err := json.Unmarshal(socialLinks, &a.SocialLinks); err != nil {
		return fmt.Errorf("unmarshal social links: %w", err)
	}
	return nil
}
