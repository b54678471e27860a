package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bizmatch/internal/domain"
	"bizmatch/internal/repository"
)

var (
	ErrRateLimited  = errors.New("too many quiz submissions")
	ErrEmailInvalid = errors.New("submitter email invalid")
)

// QuizService maneja los envios del quiz: persiste el intento inmutable,
// dispara la unica corrida de scoring via el servicio de scoring y devuelve
// un token de acceso a resultados.
type QuizService struct {
	attempts   repository.AttemptRepository
	scoringSvc *ScoringService
	tokens     *ResultTokenService
	reports    *ReportService
	limiter    SubmitRateLimiter
	logger     *zap.Logger
}

func NewQuizService(
	attempts repository.AttemptRepository,
	scoringSvc *ScoringService,
	tokens *ResultTokenService,
	reports *ReportService,
	limiter SubmitRateLimiter,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		attempts:   attempts,
		scoringSvc: scoringSvc,
		tokens:     tokens,
		reports:    reports,
		limiter:    limiter,
		logger:     logger,
	}
}

// SubmitResult es lo que el endpoint de envio devuelve a la UI.
type SubmitResult struct {
	AttemptID   string                      `json:"attempt_id"`
	Token       string                      `json:"token"`
	Personality domain.PersonalityScores    `json:"personality"`
	Ranked      []domain.BusinessModelScore `json:"ranked"`
}

// Submit guarda el intento, lo puntua y envia el email de resultados cuando
// hay direccion del remitente. La entrega es best effort; una falla de
// entrega nunca hace fallar el envio.
func (s *QuizService) Submit(ctx context.Context, submitterEmail string, resp *domain.QuizResponse) (SubmitResult, error) {
	if resp == nil {
		return SubmitResult{}, ErrResponseRequired
	}
	submitterEmail = strings.TrimSpace(strings.ToLower(submitterEmail))
	if submitterEmail != "" && !strings.Contains(submitterEmail, "@") {
		return SubmitResult{}, ErrEmailInvalid
	}
	if s.limiter != nil && submitterEmail != "" && !s.limiter.Allow(submitterEmail) {
		return SubmitResult{}, ErrRateLimited
	}

	attempt := domain.QuizAttempt{
		ID:          uuid.NewString(),
		Email:       submitterEmail,
		Response:    *resp,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return SubmitResult{}, fmt.Errorf("store quiz attempt: %w", err)
	}

	record, err := s.scoringSvc.GetOrCompute(ctx, attempt.ID, resp)
	if err != nil {
		return SubmitResult{}, err
	}

	token, err := s.tokens.Generate(attempt.ID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("mint result token: %w", err)
	}

	if submitterEmail != "" && s.reports != nil {
		if err := s.reports.SendResultsEmail(ctx, attempt.ID, submitterEmail, resp, token); err != nil {
			s.logger.Warn("results email failed",
				zap.String("attempt_id", attempt.ID),
				zap.Error(err),
			)
		}
	}

	return SubmitResult{
		AttemptID:   attempt.ID,
		Token:       token,
		Personality: record.Personality,
		Ranked:      s.scoringSvc.Ranked(record),
	}, nil
}

// Attempt devuelve el envio guardado para un attempt id.
func (s *QuizService) Attempt(ctx context.Context, attemptID string) (domain.QuizAttempt, error) {
	if attemptID == "" {
		return domain.QuizAttempt{}, ErrAttemptIDRequired
	}
	return s.attempts.GetByID(ctx, attemptID)
}
