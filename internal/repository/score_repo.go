package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"bizmatch/internal/domain"
)

// SimilarAttempt es un vecino de una busqueda por vector de rasgos.
type SimilarAttempt struct {
	AttemptID string  `json:"attempt_id"`
	Distance  float64 `json:"distance"`
}

// ScoreRepository es el store por clave de los registros de scoring. El
// servicio de scoring es su unico escritor.
type ScoreRepository interface {
	// Get devuelve el registro persistido, o pgx.ErrNoRows si el intento
	// nunca fue puntuado.
	Get(ctx context.Context, attemptID string) (domain.ScoredAttemptRecord, error)
	// InsertIfAbsent guarda el registro de forma atomica salvo que ya exista
	// uno para el attempt id, y devuelve el registro canonico en ambos casos.
	// El primer escritor gana; los siguientes reciben el original.
	InsertIfAbsent(ctx context.Context, record domain.ScoredAttemptRecord) (domain.ScoredAttemptRecord, error)
	// Replace sobrescribe el registro persistido. Solo el camino explicito de
	// recompute puede usarlo.
	Replace(ctx context.Context, record domain.ScoredAttemptRecord) error
	// FindSimilar devuelve los k intentos cuyos vectores de rasgos quedan mas
	// cerca del dado, excluyendo el propio intento.
	FindSimilar(ctx context.Context, attemptID string, vec pgvector.Vector, k int) ([]SimilarAttempt, error)
}

type PgScoreRepository struct {
	pool *pgxpool.Pool
}

func NewPgScoreRepository(pool *pgxpool.Pool) *PgScoreRepository {
	return &PgScoreRepository{pool: pool}
}

func (r *PgScoreRepository) Get(ctx context.Context, attemptID string) (domain.ScoredAttemptRecord, error) {
	const query = `
		SELECT attempt_id, personality, scores, computed_at
		FROM attempt_scores
		WHERE attempt_id = $1
	`

	var record domain.ScoredAttemptRecord
	var personality, scores []byte
	row := r.pool.QueryRow(ctx, query, attemptID)
	if err := row.Scan(&record.AttemptID, &personality, &scores, &record.ComputedAt); err != nil {
		return domain.ScoredAttemptRecord{}, err
	}
	if err := json.Unmarshal(personality, &record.Personality); err != nil {
		return domain.ScoredAttemptRecord{}, fmt.Errorf("unmarshal personality: %w", err)
	}
	if err := json.Unmarshal(scores, &record.Scores); err != nil {
		return domain.ScoredAttemptRecord{}, fmt.Errorf("unmarshal scores: %w", err)
	}
	return record, nil
}

func (r *PgScoreRepository) InsertIfAbsent(ctx context.Context, record domain.ScoredAttemptRecord) (domain.ScoredAttemptRecord, error) {
	personality, scores, err := marshalRecord(record)
	if err != nil {
		return domain.ScoredAttemptRecord{}, err
	}

	const query = `
		INSERT INTO attempt_scores (attempt_id, personality, scores, trait_vector, computed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (attempt_id) DO NOTHING
	`
	_, err = r.pool.Exec(ctx, query,
		record.AttemptID,
		personality,
		scores,
		pgvector.NewVector(record.Personality.Vector()),
		record.ComputedAt,
	)
	if err != nil {
		return domain.ScoredAttemptRecord{}, err
	}

	// Releer la fila canonica: ante conflicto un escritor concurrente llego
	// primero y su registro es el que todos los callers deben ver.
	return r.Get(ctx, record.AttemptID)
}

func (r *PgScoreRepository) Replace(ctx context.Context, record domain.ScoredAttemptRecord) error {
	personality, scores, err := marshalRecord(record)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO attempt_scores (attempt_id, personality, scores, trait_vector, computed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (attempt_id)
		DO UPDATE SET
			personality = EXCLUDED.personality,
			scores = EXCLUDED.scores,
			trait_vector = EXCLUDED.trait_vector,
			computed_at = EXCLUDED.computed_at
	`
	_, err = r.pool.Exec(ctx, query,
		record.AttemptID,
		personality,
		scores,
		pgvector.NewVector(record.Personality.Vector()),
		record.ComputedAt,
	)
	return err
}

func (r *PgScoreRepository) FindSimilar(ctx context.Context, attemptID string, vec pgvector.Vector, k int) ([]SimilarAttempt, error) {
	const query = `
		SELECT attempt_id, trait_vector <-> $2 AS distance
		FROM attempt_scores
		WHERE attempt_id <> $1
		ORDER BY trait_vector <-> $2
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, attemptID, vec, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SimilarAttempt
	for rows.Next() {
		var s SimilarAttempt
		if err := rows.Scan(&s.AttemptID, &s.Distance); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func marshalRecord(record domain.ScoredAttemptRecord) (personality, scores []byte, err error) {
	personality, err = json.Marshal(record.Personality)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal personality: %w", err)
	}
	scores, err = json.Marshal(record.Scores)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal scores: %w", err)
	}
	return personality, scores, nil
}
