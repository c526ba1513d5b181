package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/photo"
	"brashfox-backend/internal/domains/phototag"
	"brashfox-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) photo.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, p *photo.Photo, tagIDs []int64) (int64, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		query := `
			INSERT INTO photos (name, author, event, category_id, image_key, thumbnail_key, created, edited)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING id, created, edited
		`

		var id int64
		err := tx.QueryRow(ctx, query,
			p.Name, p.Author, p.Event, p.CategoryID, p.ImageKey, p.ThumbnailKey,
		).Scan(&id, &p.Created, &p.Edited)
		if err != nil {
			return 0, err
		}

		for _, tagID := range tagIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO photo_tag_links (photo_id, tag_id) VALUES ($1, $2)`,
				id, tagID,
			)
			if err != nil {
				return 0, err
			}
		}

		return id, nil
	})
	if err != nil {
		return 0, mapFKError(err, "create photo")
	}

	p.ID = id
	return id, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*photo.Photo, error) {
	query := `
		SELECT p.id, p.name, p.author, p.event, p.category_id, c.category,
		       p.image_key, p.thumbnail_key, p.created, p.edited
		FROM photos p
		JOIN photo_categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	var p photo.Photo
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Author, &p.Event, &p.CategoryID, &p.CategoryName,
		&p.ImageKey, &p.ThumbnailKey, &p.Created, &p.Edited,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, photo.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("find photo: %w", err)
	}

	tags, err := r.loadTags(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return &p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter photo.ListFilter, limit, offset int) ([]photo.Photo, int, error) {
	where := ""
	args := []any{}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = fmt.Sprintf("WHERE p.category_id = $%d", len(args))
	}
	if filter.TagID != nil {
		args = append(args, *filter.TagID)
		clause := fmt.Sprintf(
			"p.id IN (SELECT photo_id FROM photo_tag_links WHERE tag_id = $%d)", len(args))
		if where == "" {
			where = "WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM photos p %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count photos: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.author, p.event, p.category_id, c.category,
		       p.image_key, p.thumbnail_key, p.created, p.edited
		FROM photos p
		JOIN photo_categories c ON c.id = p.category_id
		%s
		ORDER BY p.created DESC, p.id DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	photos := make([]photo.Photo, 0)
	for rows.Next() {
		var p photo.Photo
		err := rows.Scan(
			&p.ID, &p.Name, &p.Author, &p.Event, &p.CategoryID, &p.CategoryName,
			&p.ImageKey, &p.ThumbnailKey, &p.Created, &p.Edited,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *photo.Photo, tagIDs *[]int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE photos
			SET name = $1, event = $2, category_id = $3, image_key = $4,
			    thumbnail_key = $5, edited = NOW()
			WHERE id = $6
			RETURNING edited
		`

		err := tx.QueryRow(ctx, query,
			p.Name, p.Event, p.CategoryID, p.ImageKey, p.ThumbnailKey, p.ID,
		).Scan(&p.Edited)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return photo.ErrPhotoNotFound
			}
			return err
		}

		if tagIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM photo_tag_links WHERE photo_id = $1`, p.ID); err != nil {
				return err
			}
			for _, tagID := range *tagIDs {
				_, err := tx.Exec(ctx,
					`INSERT INTO photo_tag_links (photo_id, tag_id) VALUES ($1, $2)`,
					p.ID, tagID,
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, photo.ErrPhotoNotFound) {
			return err
		}
		return mapFKError(err, "update photo")
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return photo.ErrPhotoNotFound
	}
	return nil
}

func (r *postgresRepository) loadTags(ctx context.Context, photoID int64) ([]phototag.Tag, error) {
	query := `
		SELECT t.id, t.tag
		FROM photo_tags t
		JOIN photo_tag_links l ON l.tag_id = t.id
		WHERE l.photo_id = $1
		ORDER BY t.tag ASC
	`

	rows, err := r.pool.Query(ctx, query, photoID)
	if err != nil {
		return nil, fmt.Errorf("load photo tags: %w", err)
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

// mapFKError translates FK violations to the sentinel for whichever side of
// the link broke, by constraint name.
func mapFKError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		switch pgErr.ConstraintName {
		case "photos_category_id_fkey":
			return photo.ErrCategoryNotFound
		case "photo_tag_links_tag_id_fkey":
			return photo.ErrTagNotFound
		}
		return photo.ErrCategoryNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
