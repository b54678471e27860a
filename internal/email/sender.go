package email

import (
	"context"
	"errors"

	"bizmatch/internal/domain"
)

// Sender entrega el email transaccional de resultados de un intento puntuado.
type Sender interface {
	SendQuizResults(ctx context.Context, toEmail string, top []domain.BusinessModelScore, resultsURL string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendQuizResults(_ context.Context, _ string, _ []domain.BusinessModelScore, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
