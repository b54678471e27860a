package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bizmatch/internal/domain"
	"bizmatch/internal/scoring"
)

// RankedResult es la variante etiquetada de presentacion de un resultado de
// scoring. Los resultados fallback existen solo para que una superficie
// externa (email, reporte) pueda renderizar algo cuando el scoring falla;
// nunca se escriben al store.
type RankedResult struct {
	AttemptID      string                      `json:"attempt_id"`
	Personality    domain.PersonalityScores    `json:"personality"`
	Scores         []domain.BusinessModelScore `json:"scores"`
	Fallback       bool                        `json:"fallback"`
	FallbackReason string                      `json:"fallback_reason,omitempty"`
}

// fallbackModelIDs es el ranking placeholder fijo para contextos de
// presentacion. Los tres son modelos de barrera baja que se leen razonables
// para cualquier perfil.
var fallbackModelIDs = []string{"freelance-writing", "print-on-demand", "virtual-assistant"}

const fallbackScore = 70.0

// PresentationRanking devuelve un resultado rankeado para superficies de
// presentacion. Si el scoring falla degrada al ranking placeholder,
// etiquetado como tal y logueado aparte para que operaciones detecte la
// degradacion. El fallback nunca llega al store de scores.
func (s *ScoringService) PresentationRanking(ctx context.Context, attemptID string, resp *domain.QuizResponse) (RankedResult, error) {
	record, err := s.GetOrCompute(ctx, attemptID, resp)
	if err == nil {
		return RankedResult{
			AttemptID:   attemptID,
			Personality: record.Personality,
			Scores:      scoring.Rank(record.Scores),
		}, nil
	}

	s.logger.Warn("serving fallback ranking",
		zap.String("attempt_id", attemptID),
		zap.Error(err),
	)

	placeholder, fbErr := s.fallbackRanking()
	if fbErr != nil {
		return RankedResult{}, fbErr
	}
	return RankedResult{
		AttemptID:      attemptID,
		Scores:         placeholder,
		Fallback:       true,
		FallbackReason: err.Error(),
	}, nil
}

// fallbackRanking arma el placeholder desde el catalogo vivo para que
// nombres y categorias nunca se desvien de los datos de referencia. Un id
// faltante es un bug de integridad de datos y falla fuerte en vez de
// sustituir un parecido.
func (s *ScoringService) fallbackRanking() ([]domain.BusinessModelScore, error) {
	out := make([]domain.BusinessModelScore, 0, len(fallbackModelIDs))
	for i, id := range fallbackModelIDs {
		def := s.catalog.ByID(id)
		if def == nil {
			return nil, fmt.Errorf("fallback model %q missing from catalog", id)
		}
		out = append(out, domain.BusinessModelScore{
			ID:       def.ID,
			Name:     def.Name,
			Score:    fallbackScore - float64(i*5),
			Category: def.Category,
		})
	}
	return out, nil
}
