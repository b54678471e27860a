package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"bizmatch/internal/domain"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt domain.QuizAttempt) error
	GetByID(ctx context.Context, id string) (domain.QuizAttempt, error)
}

type PgAttemptRepository struct {
	pool *pgxpool.Pool
}

func NewPgAttemptRepository(pool *pgxpool.Pool) *PgAttemptRepository {
	return &PgAttemptRepository{pool: pool}
}

func (r *PgAttemptRepository) Create(ctx context.Context, attempt domain.QuizAttempt) error {
	payload, err := json.Marshal(attempt.Response)
	if err != nil {
		return fmt.Errorf("marshal quiz response: %w", err)
	}

	const query = `
		INSERT INTO quiz_attempts (id, email, response, submitted_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = r.pool.Exec(ctx, query, attempt.ID, attempt.Email, payload, attempt.SubmittedAt)
	return err
}

func (r *PgAttemptRepository) GetByID(ctx context.Context, id string) (domain.QuizAttempt, error) {
	const query = `
		SELECT id, email, response, submitted_at
		FROM quiz_attempts
		WHERE id = $1
	`

	var attempt domain.QuizAttempt
	var payload []byte
	row := r.pool.QueryRow(ctx, query, id)
	if err := row.Scan(&attempt.ID, &attempt.Email, &payload, &attempt.SubmittedAt); err != nil {
		return domain.QuizAttempt{}, err
	}
	if err := json.Unmarshal(payload, &attempt.Response); err != nil {
		return domain.QuizAttempt{}, fmt.Errorf("unmarshal quiz response: %w", err)
	}
	return attempt, nil
}
