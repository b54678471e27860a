package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bizmatch/internal/domain"
)

type memAttemptRepo struct {
	mu       sync.Mutex
	attempts map[string]domain.QuizAttempt
	creates  int
	err      error
}

func newMemAttemptRepo() *memAttemptRepo {
	return &memAttemptRepo{attempts: make(map[string]domain.QuizAttempt)}
}

func (m *memAttemptRepo) Create(_ context.Context, attempt domain.QuizAttempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.creates++
	m.attempts[attempt.ID] = attempt
	return nil
}

func (m *memAttemptRepo) GetByID(_ context.Context, id string) (domain.QuizAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	attempt, ok := m.attempts[id]
	if !ok {
		return domain.QuizAttempt{}, pgx.ErrNoRows
	}
	return attempt, nil
}

type stubLimiter struct {
	allow bool
	keys  []string
}

func (l *stubLimiter) Allow(key string) bool {
	l.keys = append(l.keys, key)
	return l.allow
}

type captureSender struct {
	mu    sync.Mutex
	calls int
	to    string
	top   []domain.BusinessModelScore
	url   string
	err   error
}

func (s *captureSender) SendQuizResults(_ context.Context, toEmail string, top []domain.BusinessModelScore, resultsURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.calls++
	s.to = toEmail
	s.top = top
	s.url = resultsURL
	return nil
}

type quizFixture struct {
	svc      *QuizService
	attempts *memAttemptRepo
	scores   *memScoreRepo
	sender   *captureSender
	limiter  *stubLimiter
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()
	attempts := newMemAttemptRepo()
	scores := newMemScoreRepo()
	sender := &captureSender{}
	limiter := &stubLimiter{allow: true}

	scoringSvc := newTestScoringService(t, scores)
	tokens := NewResultTokenService("test-secret", time.Hour)
	reports := NewReportService(scoringSvc, sender, "https://quiz.example.com", zap.NewNop())
	svc := NewQuizService(attempts, scoringSvc, tokens, reports, limiter, zap.NewNop())

	return &quizFixture{svc: svc, attempts: attempts, scores: scores, sender: sender, limiter: limiter}
}

func TestSubmitHappyPath(t *testing.T) {
	f := newQuizFixture(t)

	result, err := f.svc.Submit(context.Background(), "User@Example.COM", testResponse())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.AttemptID == "" {
		t.Fatal("submission returned no attempt id")
	}
	if result.Token == "" {
		t.Fatal("submission returned no result token")
	}
	if len(result.Ranked) == 0 {
		t.Fatal("submission returned no ranked scores")
	}
	for i := 1; i < len(result.Ranked); i++ {
		if result.Ranked[i].Score > result.Ranked[i-1].Score {
			t.Fatalf("ranked scores out of order at position %d", i)
		}
	}

	attempt, err := f.svc.Attempt(context.Background(), result.AttemptID)
	if err != nil {
		t.Fatalf("attempt lookup: %v", err)
	}
	if attempt.Email != "user@example.com" {
		t.Fatalf("submitter email not normalized: %q", attempt.Email)
	}

	if f.sender.calls != 1 {
		t.Fatalf("results email sent %d times, want 1", f.sender.calls)
	}
	if f.sender.to != "user@example.com" {
		t.Fatalf("results email sent to %q", f.sender.to)
	}
	if len(f.sender.top) != 3 {
		t.Fatalf("results email carries %d models, want the top 3", len(f.sender.top))
	}
	if f.sender.url == "" {
		t.Fatal("results email carries no results link")
	}

	// El envio y el email renderizan la misma corrida de scoring.
	if f.scores.inserts != 1 {
		t.Fatalf("store saw %d inserts for one submission, want 1", f.scores.inserts)
	}
}

func TestSubmitNilResponse(t *testing.T) {
	f := newQuizFixture(t)
	if _, err := f.svc.Submit(context.Background(), "user@example.com", nil); !errors.Is(err, ErrResponseRequired) {
		t.Fatalf("got %v, want ErrResponseRequired", err)
	}
	if f.attempts.creates != 0 {
		t.Fatal("invalid submission was persisted")
	}
}

func TestSubmitInvalidEmail(t *testing.T) {
	f := newQuizFixture(t)
	if _, err := f.svc.Submit(context.Background(), "not-an-email", testResponse()); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("got %v, want ErrEmailInvalid", err)
	}
	if f.attempts.creates != 0 {
		t.Fatal("invalid submission was persisted")
	}
}

func TestSubmitWithoutEmail(t *testing.T) {
	f := newQuizFixture(t)

	result, err := f.svc.Submit(context.Background(), "", testResponse())
	if err != nil {
		t.Fatalf("anonymous submit: %v", err)
	}
	if result.AttemptID == "" {
		t.Fatal("anonymous submission returned no attempt id")
	}
	if f.sender.calls != 0 {
		t.Fatal("results email sent without a submitter address")
	}
	if len(f.limiter.keys) != 0 {
		t.Fatal("rate limiter consulted without a submitter address")
	}
}

func TestSubmitRateLimited(t *testing.T) {
	f := newQuizFixture(t)
	f.limiter.allow = false

	if _, err := f.svc.Submit(context.Background(), "user@example.com", testResponse()); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("got %v, want ErrRateLimited", err)
	}
	if f.attempts.creates != 0 {
		t.Fatal("rate-limited submission was persisted")
	}
	if f.scores.inserts != 0 {
		t.Fatal("rate-limited submission was scored")
	}
}

func TestSubmitEmailFailureDoesNotFailSubmission(t *testing.T) {
	f := newQuizFixture(t)
	f.sender.err = errors.New("smtp unreachable")

	result, err := f.svc.Submit(context.Background(), "user@example.com", testResponse())
	if err != nil {
		t.Fatalf("submit failed on email error: %v", err)
	}
	if result.AttemptID == "" || result.Token == "" {
		t.Fatal("submission result incomplete despite successful scoring")
	}
	if f.scores.inserts != 1 {
		t.Fatalf("store saw %d inserts, want 1", f.scores.inserts)
	}
}

func TestSubmitAttemptStoreFailure(t *testing.T) {
	f := newQuizFixture(t)
	f.attempts.err = errors.New("insert failed")

	if _, err := f.svc.Submit(context.Background(), "user@example.com", testResponse()); err == nil {
		t.Fatal("expected store error to fail the submission")
	}
	if f.scores.inserts != 0 {
		t.Fatal("scoring ran for an unpersisted attempt")
	}
}

func TestAttemptValidation(t *testing.T) {
	f := newQuizFixture(t)
	if _, err := f.svc.Attempt(context.Background(), ""); !errors.Is(err, ErrAttemptIDRequired) {
		t.Fatalf("got %v, want ErrAttemptIDRequired", err)
	}
	if _, err := f.svc.Attempt(context.Background(), "missing"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("got %v, want pgx.ErrNoRows", err)
	}
}
