package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brashfox-backend/internal/domains/message"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) message.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, m *message.Message) (int64, error) {
	query := `
		INSERT INTO messages (name, email, topic, message, created)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created`

	err := r.pool.QueryRow(ctx, query, m.Name, m.Email, m.Topic, m.Message).
		Scan(&m.ID, &m.Created)
	if err != nil {
		return 0, fmt.Errorf("insert message: %w", err)
	}
	return m.ID, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*message.Message, error) {
	query := `
		SELECT id, name, email, topic, message, created
		FROM messages
		WHERE id = $1`

	var m message.Message
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Topic, &m.Message, &m.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, message.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return &m, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]message.Message, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM messages`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	query := `
		SELECT id, name, email, topic, message, created
		FROM messages
		ORDER BY created DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]message.Message, 0)
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Topic, &m.Message, &m.Created); err != nil {
			return nil, 0, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, total, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return message.ErrMessageNotFound
	}
	return nil
}
