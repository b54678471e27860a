// Package scoring implementa el nucleo puro del quiz: la funcion de scoring
// de rasgos y la funcion de matching de modelos de negocio. Ambas son
// deterministas y sin efectos; la persistencia y las garantias de reuso viven
// en la capa de servicio.
package scoring

import (
	"errors"
	"math"

	"bizmatch/internal/domain"
)

// ErrInvalidResponse se devuelve cuando el input es estructuralmente
// inutilizable (nil). Respuestas individuales faltantes nunca son error.
var ErrInvalidResponse = errors.New("scoring: invalid quiz response")

// accumulator es la suma cruda transitoria por computo. Existe solo durante
// una llamada a ScoreTraits y nunca se persiste.
type accumulator map[domain.TraitName]int

func (a accumulator) add(e effect) {
	for trait, delta := range e {
		a[trait] += delta
	}
}

// ScoreTraits convierte una respuesta del quiz en los doce rasgos
// normalizados. Cada puntaje cae en [1.0, 5.0] redondeado a un decimal.
func ScoreTraits(resp *domain.QuizResponse) (domain.PersonalityScores, error) {
	if resp == nil {
		return domain.PersonalityScores{}, ErrInvalidResponse
	}

	acc := make(accumulator, len(domain.TraitOrder))
	for _, trait := range domain.TraitOrder {
		acc[trait] = 0
	}
	for _, rule := range questionRules {
		rule.apply(resp, acc)
	}

	var scores domain.PersonalityScores
	assign := map[domain.TraitName]*float64{
		domain.TraitSocialComfort:       &scores.SocialComfort,
		domain.TraitDiscipline:          &scores.Discipline,
		domain.TraitRiskTolerance:       &scores.RiskTolerance,
		domain.TraitTechComfort:         &scores.TechComfort,
		domain.TraitStructurePreference: &scores.StructurePreference,
		domain.TraitMotivation:          &scores.Motivation,
		domain.TraitFeedbackResilience:  &scores.FeedbackResilience,
		domain.TraitCreativity:          &scores.Creativity,
		domain.TraitConfidence:          &scores.Confidence,
		domain.TraitAdaptability:        &scores.Adaptability,
		domain.TraitFocusPreference:     &scores.FocusPreference,
		domain.TraitResilience:          &scores.Resilience,
	}
	for _, trait := range domain.TraitOrder {
		*assign[trait] = normalize(acc[trait], traitCalibration[trait])
	}
	return scores, nil
}

// normalize mapea un valor crudo del acumulador a [1.0, 5.0] contra la
// ventana fija de calibracion del rasgo. Los valores fuera de la ventana se
// recortan; esa es la politica documentada para respuestas fuera de
// calibracion.
func normalize(raw int, cal calibration) float64 {
	span := float64(cal.max - cal.min)
	v := 1 + (float64(raw-cal.min)/span)*4
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return round1(v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
