package service

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"bizmatch/internal/domain"
	"bizmatch/internal/email"
	"bizmatch/internal/scoring"
)

// ReportService renderiza resultados de scoring en el email transaccional.
// Es un consumidor puro: toda lectura pasa por el servicio de scoring, y si
// el scoring falla usa el fallback etiquetado de presentacion para que el
// email igual renderice. El contenido fallback no se persiste en ningun lado.
type ReportService struct {
	scoringSvc *ScoringService
	sender     email.Sender
	baseURL    string
	logger     *zap.Logger
}

func NewReportService(scoringSvc *ScoringService, sender email.Sender, baseURL string, logger *zap.Logger) *ReportService {
	return &ReportService{
		scoringSvc: scoringSvc,
		sender:     sender,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// SendResultsEmail envia por email los tres mejores encajes de un intento.
func (r *ReportService) SendResultsEmail(ctx context.Context, attemptID, toEmail string, resp *domain.QuizResponse, token string) error {
	result, err := r.scoringSvc.PresentationRanking(ctx, attemptID, resp)
	if err != nil {
		return fmt.Errorf("ranking for results email: %w", err)
	}
	if result.Fallback {
		r.logger.Warn("results email using fallback ranking",
			zap.String("attempt_id", attemptID),
			zap.String("reason", result.FallbackReason),
		)
	}

	top := scoring.TopN(result.Scores, 3)
	if err := r.sender.SendQuizResults(ctx, toEmail, top, r.resultsURL(attemptID, token)); err != nil {
		return fmt.Errorf("send results email: %w", err)
	}

	r.logger.Info("results email sent",
		zap.String("attempt_id", attemptID),
		zap.Bool("fallback", result.Fallback),
	)
	return nil
}

func (r *ReportService) resultsURL(attemptID, token string) string {
	if r.baseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/results/%s?token=%s", r.baseURL, attemptID, url.QueryEscape(token))
}
