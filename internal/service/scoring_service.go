package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"bizmatch/internal/catalog"
	"bizmatch/internal/domain"
	"bizmatch/internal/repository"
	"bizmatch/internal/scoring"
)

var (
	ErrAttemptIDRequired = errors.New("attempt id required")
	ErrResponseRequired  = errors.New("quiz response required")
	// ErrNotScored significa que no existe registro puntuado para el intento.
	// El camino de solo lectura lo reporta en vez de computar en silencio.
	ErrNotScored = errors.New("attempt not scored")
)

// ScoringService es la unica puerta por la que los consumidores obtienen
// resultados de scoring. Es dueño del invariante de computo unico: el scoring
// de un attempt id corre a lo sumo una vez y todos los callers leen el mismo
// registro persistido.
type ScoringService struct {
	catalog *catalog.Catalog
	scores  repository.ScoreRepository
	logger  *zap.Logger

	// matchFn es intercambiable en tests para contar invocaciones.
	matchFn func(*domain.QuizResponse, domain.PersonalityScores, []domain.BusinessModelDefinition) ([]domain.BusinessModelScore, error)

	mu       sync.Mutex
	inflight map[string]*inflightScore
}

// inflightScore serializa computos concurrentes para un attempt id. La
// entrada vive solo mientras corre el computo y se desaloja al completar,
// asi que el mapa nunca crece con la vida del proceso.
type inflightScore struct {
	done   chan struct{}
	record domain.ScoredAttemptRecord
	err    error
}

func NewScoringService(cat *catalog.Catalog, scores repository.ScoreRepository, logger *zap.Logger) *ScoringService {
	return &ScoringService{
		catalog:  cat,
		scores:   scores,
		logger:   logger,
		matchFn:  scoring.MatchModels,
		inflight: make(map[string]*inflightScore),
	}
}

// GetOrCompute devuelve el registro puntuado del intento, computando y
// persistiendo solo si todavia no existe. Seguro bajo llamadas concurrentes
// para el mismo attempt id: el segundo caller espera al primero en vez de
// recomputar, y el insert-if-absent del store respalda carreras entre
// procesos.
func (s *ScoringService) GetOrCompute(ctx context.Context, attemptID string, resp *domain.QuizResponse) (domain.ScoredAttemptRecord, error) {
	if attemptID == "" {
		return domain.ScoredAttemptRecord{}, ErrAttemptIDRequired
	}
	if resp == nil {
		return domain.ScoredAttemptRecord{}, ErrResponseRequired
	}

	record, err := s.scores.Get(ctx, attemptID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.ScoredAttemptRecord{}, fmt.Errorf("read scored attempt %s: %w", attemptID, err)
	}

	s.mu.Lock()
	if entry, ok := s.inflight[attemptID]; ok {
		s.mu.Unlock()
		select {
		case <-entry.done:
			return entry.record, entry.err
		case <-ctx.Done():
			return domain.ScoredAttemptRecord{}, ctx.Err()
		}
	}
	entry := &inflightScore{done: make(chan struct{})}
	s.inflight[attemptID] = entry
	s.mu.Unlock()

	entry.record, entry.err = s.computeAndStore(ctx, attemptID, resp)
	close(entry.done)

	s.mu.Lock()
	delete(s.inflight, attemptID)
	s.mu.Unlock()

	return entry.record, entry.err
}

// GetStored devuelve el registro persistido sin disparar jamas un computo.
// Lo usan los consumidores que no deben enmascarar datos faltantes.
func (s *ScoringService) GetStored(ctx context.Context, attemptID string) (domain.ScoredAttemptRecord, error) {
	if attemptID == "" {
		return domain.ScoredAttemptRecord{}, ErrAttemptIDRequired
	}
	record, err := s.scores.Get(ctx, attemptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ScoredAttemptRecord{}, ErrNotScored
		}
		return domain.ScoredAttemptRecord{}, fmt.Errorf("read scored attempt %s: %w", attemptID, err)
	}
	return record, nil
}

// Recompute vuelve a puntuar un intento y sobrescribe el registro. Es una
// valvula de escape rara (migraciones de esquema, arreglos de calibracion),
// no parte del flujo normal, y cada uso queda logueado.
func (s *ScoringService) Recompute(ctx context.Context, attemptID string, resp *domain.QuizResponse) (domain.ScoredAttemptRecord, error) {
	if attemptID == "" {
		return domain.ScoredAttemptRecord{}, ErrAttemptIDRequired
	}
	if resp == nil {
		return domain.ScoredAttemptRecord{}, ErrResponseRequired
	}

	s.logger.Warn("recomputing attempt scores", zap.String("attempt_id", attemptID))

	record, err := s.compute(attemptID, resp)
	if err != nil {
		return domain.ScoredAttemptRecord{}, err
	}
	if err := s.scores.Replace(ctx, record); err != nil {
		return domain.ScoredAttemptRecord{}, fmt.Errorf("replace scored attempt %s: %w", attemptID, err)
	}
	return record, nil
}

// Ranked devuelve los puntajes del registro ordenados por encaje
// descendente, con empates en orden de catalogo.
func (s *ScoringService) Ranked(record domain.ScoredAttemptRecord) []domain.BusinessModelScore {
	return scoring.Rank(record.Scores)
}

// Similar devuelve los intentos cuyos vectores de rasgos quedan mas cerca
// del intento dado. Requiere que el intento ya este puntuado.
func (s *ScoringService) Similar(ctx context.Context, attemptID string, k int) ([]repository.SimilarAttempt, error) {
	record, err := s.GetStored(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		k = 5
	}
	return s.scores.FindSimilar(ctx, attemptID, pgvector.NewVector(record.Personality.Vector()), k)
}

func (s *ScoringService) computeAndStore(ctx context.Context, attemptID string, resp *domain.QuizResponse) (domain.ScoredAttemptRecord, error) {
	record, err := s.compute(attemptID, resp)
	if err != nil {
		return domain.ScoredAttemptRecord{}, err
	}

	stored, err := s.scores.InsertIfAbsent(ctx, record)
	if err != nil {
		return domain.ScoredAttemptRecord{}, fmt.Errorf("persist scored attempt %s: %w", attemptID, err)
	}

	s.logger.Info("attempt scored",
		zap.String("attempt_id", attemptID),
		zap.Int("models", len(stored.Scores)),
	)
	return stored, nil
}

func (s *ScoringService) compute(attemptID string, resp *domain.QuizResponse) (domain.ScoredAttemptRecord, error) {
	personality, err := scoring.ScoreTraits(resp)
	if err != nil {
		return domain.ScoredAttemptRecord{}, fmt.Errorf("score traits for attempt %s: %w", attemptID, err)
	}
	scores, err := s.matchFn(resp, personality, s.catalog.All())
	if err != nil {
		return domain.ScoredAttemptRecord{}, fmt.Errorf("match models for attempt %s: %w", attemptID, err)
	}
	return domain.ScoredAttemptRecord{
		AttemptID:   attemptID,
		Personality: personality,
		Scores:      scores,
		ComputedAt:  time.Now().UTC(),
	}, nil
}
