package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"bizmatch/internal/catalog"
	"bizmatch/internal/domain"
	"bizmatch/internal/repository"
)

// memScoreRepo es un ScoreRepository en memoria con contadores de llamadas.
type memScoreRepo struct {
	mu       sync.Mutex
	records  map[string]domain.ScoredAttemptRecord
	inserts  int
	replaces int
	getErr   error
}

func newMemScoreRepo() *memScoreRepo {
	return &memScoreRepo{records: make(map[string]domain.ScoredAttemptRecord)}
}

func (m *memScoreRepo) Get(_ context.Context, attemptID string) (domain.ScoredAttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return domain.ScoredAttemptRecord{}, m.getErr
	}
	record, ok := m.records[attemptID]
	if !ok {
		return domain.ScoredAttemptRecord{}, pgx.ErrNoRows
	}
	return record, nil
}

func (m *memScoreRepo) InsertIfAbsent(_ context.Context, record domain.ScoredAttemptRecord) (domain.ScoredAttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts++
	if existing, ok := m.records[record.AttemptID]; ok {
		return existing, nil
	}
	m.records[record.AttemptID] = record
	return record, nil
}

func (m *memScoreRepo) Replace(_ context.Context, record domain.ScoredAttemptRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaces++
	m.records[record.AttemptID] = record
	return nil
}

func (m *memScoreRepo) FindSimilar(_ context.Context, attemptID string, _ pgvector.Vector, k int) ([]repository.SimilarAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []repository.SimilarAttempt
	for id := range m.records {
		if id == attemptID {
			continue
		}
		out = append(out, repository.SimilarAttempt{AttemptID: id})
		if len(out) == k {
			break
		}
	}
	return out, nil
}

func newTestScoringService(t *testing.T, repo repository.ScoreRepository) *ScoringService {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog load: %v", err)
	}
	return NewScoringService(cat, repo, zap.NewNop())
}

func testResponse() *domain.QuizResponse {
	return &domain.QuizResponse{
		WorkCollaborationPreference: domain.CollabSoloOnly,
		RiskComfortLevel:            4,
		TechSkillsRating:            4,
		SelfMotivationLevel:         4,
	}
}

func TestGetOrComputeValidation(t *testing.T) {
	svc := newTestScoringService(t, newMemScoreRepo())
	ctx := context.Background()

	if _, err := svc.GetOrCompute(ctx, "", testResponse()); !errors.Is(err, ErrAttemptIDRequired) {
		t.Fatalf("empty attempt id: got %v", err)
	}
	if _, err := svc.GetOrCompute(ctx, "attempt-1", nil); !errors.Is(err, ErrResponseRequired) {
		t.Fatalf("nil response: got %v", err)
	}
}

func TestGetOrComputeComputesOnce(t *testing.T) {
	repo := newMemScoreRepo()
	svc := newTestScoringService(t, repo)

	var calls int
	inner := svc.matchFn
	svc.matchFn = func(r *domain.QuizResponse, p domain.PersonalityScores, m []domain.BusinessModelDefinition) ([]domain.BusinessModelScore, error) {
		calls++
		return inner(r, p, m)
	}

	ctx := context.Background()
	resp := testResponse()

	first, err := svc.GetOrCompute(ctx, "attempt-1", resp)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	for i := 0; i < 4; i++ {
		again, err := svc.GetOrCompute(ctx, "attempt-1", resp)
		if err != nil {
			t.Fatalf("repeat call %d: %v", i, err)
		}
		if !again.ComputedAt.Equal(first.ComputedAt) {
			t.Fatalf("repeat call returned a different record: %v vs %v", again.ComputedAt, first.ComputedAt)
		}
	}

	if calls != 1 {
		t.Fatalf("matching ran %d times, want 1", calls)
	}
	if repo.inserts != 1 {
		t.Fatalf("store saw %d inserts, want 1", repo.inserts)
	}
}

func TestGetOrComputeConcurrent(t *testing.T) {
	repo := newMemScoreRepo()
	svc := newTestScoringService(t, repo)

	var mu sync.Mutex
	var calls int
	inner := svc.matchFn
	svc.matchFn = func(r *domain.QuizResponse, p domain.PersonalityScores, m []domain.BusinessModelDefinition) ([]domain.BusinessModelScore, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		// Mantener el computo abierto para que el segundo caller lo espere.
		time.Sleep(50 * time.Millisecond)
		return inner(r, p, m)
	}

	ctx := context.Background()
	resp := testResponse()

	var wg sync.WaitGroup
	results := make([]domain.ScoredAttemptRecord, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.GetOrCompute(ctx, "attempt-1", resp)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("matching ran %d times under contention, want 1", calls)
	}
	if repo.inserts != 1 {
		t.Fatalf("store saw %d inserts under contention, want 1", repo.inserts)
	}
	if !results[0].ComputedAt.Equal(results[1].ComputedAt) {
		t.Fatalf("callers saw different records: %v vs %v", results[0].ComputedAt, results[1].ComputedAt)
	}
	if len(svc.inflight) != 0 {
		t.Fatalf("in-flight map not evicted: %d entries", len(svc.inflight))
	}
}

func TestGetOrComputeInsertRace(t *testing.T) {
	repo := newMemScoreRepo()
	svc := newTestScoringService(t, repo)

	// Simular que otro proceso escribio primero: el registro canonico del
	// store debe ganarle al computo local.
	canonical := domain.ScoredAttemptRecord{
		AttemptID:  "attempt-1",
		ComputedAt: time.Now().Add(-time.Hour).UTC(),
	}
	svc.matchFn = func(r *domain.QuizResponse, p domain.PersonalityScores, m []domain.BusinessModelDefinition) ([]domain.BusinessModelScore, error) {
		repo.mu.Lock()
		repo.records[canonical.AttemptID] = canonical
		repo.mu.Unlock()
		return nil, nil
	}

	got, err := svc.GetOrCompute(context.Background(), "attempt-1", testResponse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.ComputedAt.Equal(canonical.ComputedAt) {
		t.Fatalf("local computation shadowed the canonical record")
	}
}

func TestGetOrComputeStoreReadError(t *testing.T) {
	repo := newMemScoreRepo()
	repo.getErr = errors.New("connection refused")
	svc := newTestScoringService(t, repo)

	svc.matchFn = func(*domain.QuizResponse, domain.PersonalityScores, []domain.BusinessModelDefinition) ([]domain.BusinessModelScore, error) {
		t.Fatal("store errors must not trigger a computation")
		return nil, nil
	}

	if _, err := svc.GetOrCompute(context.Background(), "attempt-1", testResponse()); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestGetStored(t *testing.T) {
	repo := newMemScoreRepo()
	svc := newTestScoringService(t, repo)
	ctx := context.Background()

	if _, err := svc.GetStored(ctx, "attempt-1"); !errors.Is(err, ErrNotScored) {
		t.Fatalf("unscored attempt: got %v, want ErrNotScored", err)
	}
	if repo.inserts != 0 {
		t.Fatalf("read-only path wrote to the store: %d inserts", repo.inserts)
	}

	record, err := svc.GetOrCompute(ctx, "attempt-1", testResponse())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	stored, err := svc.GetStored(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("stored read: %v", err)
	}
	if !stored.ComputedAt.Equal(record.ComputedAt) {
		t.Fatalf("stored read returned a different record")
	}
}

func TestRecomputeReplaces(t *testing.T) {
	repo := newMemScoreRepo()
	svc := newTestScoringService(t, repo)
	ctx := context.Background()
	resp := testResponse()

	first, err := svc.GetOrCompute(ctx, "attempt-1", resp)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	second, err := svc.Recompute(ctx, "attempt-1", resp)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if repo.replaces != 1 {
		t.Fatalf("store saw %d replaces, want 1", repo.replaces)
	}
	if !second.ComputedAt.After(first.ComputedAt) {
		t.Fatalf("recompute did not refresh the record timestamp")
	}

	stored, err := svc.GetStored(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("stored read: %v", err)
	}
	if !stored.ComputedAt.Equal(second.ComputedAt) {
		t.Fatalf("store does not hold the recomputed record")
	}
}

func TestPresentationRankingHappyPath(t *testing.T) {
	repo := newMemScoreRepo()
	svc := newTestScoringService(t, repo)

	result, err := svc.PresentationRanking(context.Background(), "attempt-1", testResponse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Fallback {
		t.Fatal("healthy path must not be tagged as fallback")
	}
	if len(result.Scores) != svc.catalog.Len() {
		t.Fatalf("got %d ranked scores for %d catalog entries", len(result.Scores), svc.catalog.Len())
	}
	for i := 1; i < len(result.Scores); i++ {
		if result.Scores[i].Score > result.Scores[i-1].Score {
			t.Fatalf("presentation scores not ranked at position %d", i)
		}
	}
}

func TestPresentationRankingFallback(t *testing.T) {
	repo := newMemScoreRepo()
	svc := newTestScoringService(t, repo)
	svc.matchFn = func(*domain.QuizResponse, domain.PersonalityScores, []domain.BusinessModelDefinition) ([]domain.BusinessModelScore, error) {
		return nil, errors.New("matching blew up")
	}

	result, err := svc.PresentationRanking(context.Background(), "attempt-1", testResponse())
	if err != nil {
		t.Fatalf("fallback path returned error: %v", err)
	}
	if !result.Fallback {
		t.Fatal("degraded result not tagged as fallback")
	}
	if result.FallbackReason == "" {
		t.Fatal("fallback result carries no reason")
	}
	if len(result.Scores) != len(fallbackModelIDs) {
		t.Fatalf("fallback has %d entries, want %d", len(result.Scores), len(fallbackModelIDs))
	}
	for i, id := range fallbackModelIDs {
		if result.Scores[i].ID != id {
			t.Fatalf("fallback position %d: got %s, want %s", i, result.Scores[i].ID, id)
		}
		if result.Scores[i].Name == "" {
			t.Fatalf("fallback entry %s missing catalog name", id)
		}
	}

	// El resultado degradado nunca debe llegar al store.
	if repo.inserts != 0 || repo.replaces != 0 || len(repo.records) != 0 {
		t.Fatalf("fallback ranking was persisted: %d inserts, %d replaces", repo.inserts, repo.replaces)
	}
	if _, err := svc.GetStored(context.Background(), "attempt-1"); !errors.Is(err, ErrNotScored) {
		t.Fatalf("store unexpectedly holds a record: %v", err)
	}
}

func TestSimilarRequiresScoredAttempt(t *testing.T) {
	svc := newTestScoringService(t, newMemScoreRepo())
	if _, err := svc.Similar(context.Background(), "attempt-1", 5); !errors.Is(err, ErrNotScored) {
		t.Fatalf("got %v, want ErrNotScored", err)
	}
}
