package scoring

import (
	"sort"

	"bizmatch/internal/domain"
)

// Constantes de tuning del matching. La similitud ponderada de rasgos aporta
// el grueso del puntaje; los ajustes categoricos lo mueven a lo sumo unos
// pocos niveles.
const (
	similaritySpan = 75.0
	baseFloor      = 10.0

	interestBonus    = 4.0
	interestBonusCap = 8.0

	lowBudgetThreshold  = 500
	highBudgetThreshold = 5000
)

// MatchModels computa un puntaje de encaje en [0, 100] para cada definicion
// del catalogo. El resultado cubre todos los modelos en orden de catalogo;
// aca no se ordena ni deduplica. Rankear es trabajo del caller (ver Rank).
func MatchModels(resp *domain.QuizResponse, personality domain.PersonalityScores, models []domain.BusinessModelDefinition) ([]domain.BusinessModelScore, error) {
	if resp == nil {
		return nil, ErrInvalidResponse
	}

	out := make([]domain.BusinessModelScore, 0, len(models))
	for i := range models {
		m := &models[i]
		score := baseFloor + similaritySpan*traitSimilarity(personality, m.Ideal)
		score += adjustments(resp, m)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		out = append(out, domain.BusinessModelScore{
			ID:       m.ID,
			Name:     m.Name,
			Score:    round1(score),
			Category: m.Category,
		})
	}
	return out, nil
}

// traitSimilarity es la cercania ponderada del vector de rasgos del usuario
// al perfil ideal del modelo, en [0, 1]. Un modelo con perfil vacio puntua un
// 0.5 neutro.
func traitSimilarity(p domain.PersonalityScores, ideal domain.IdealProfile) float64 {
	var sum, weightSum float64
	for trait, target := range ideal.Targets {
		w := ideal.Weights[trait]
		if w <= 0 {
			continue
		}
		dist := p.Get(trait) - target
		if dist < 0 {
			dist = -dist
		}
		// Los rasgos van de 1 a 5, asi que 4 es la distancia maxima posible.
		sum += w * (1 - dist/4)
		weightSum += w
	}
	if weightSum == 0 {
		return 0.5
	}
	return sum / weightSum
}

// adjustments aplica bonos/penalidades de las respuestas categoricas directas
// contra los flags de requisito del modelo. Preguntas sin responder no
// ajustan nada.
func adjustments(resp *domain.QuizResponse, m *domain.BusinessModelDefinition) float64 {
	var adj float64

	if m.RequiresVideo {
		switch resp.ComfortableWithVideo {
		case domain.AnswerYes:
			adj += 5
		case domain.AnswerNo:
			adj -= 12
		}
	}
	if m.RequiresWriting {
		switch resp.ComfortableWithWriting {
		case domain.AnswerYes:
			adj += 4
		case domain.AnswerNo:
			adj -= 10
		}
	}
	if m.RequiresPublicPersona {
		switch resp.OnlinePresenceComfort {
		case domain.AnswerYes:
			adj += 5
		case domain.AnswerNo:
			adj -= 12
		}
		switch resp.ExistingAudience {
		case domain.AudienceMedium:
			adj += 3
		case domain.AudienceLarge:
			adj += 5
		}
	}
	if m.RequiresPhysicalGoods {
		switch resp.WillingToShipPhysicalGoods {
		case domain.AnswerYes:
			adj += 4
		case domain.AnswerNo:
			adj -= 15
		}
	}
	if m.RequiresDirectSales {
		switch resp.ComfortableSellingToStrangers {
		case domain.AnswerYes:
			adj += 5
		case domain.AnswerNo:
			adj -= 10
		}
	}
	if m.RequiresHighBudget && resp.InvestmentBudget > 0 {
		if resp.InvestmentBudget < lowBudgetThreshold {
			adj -= 12
		} else if resp.InvestmentBudget >= highBudgetThreshold {
			adj += 4
		}
	}

	var interest float64
	for _, tag := range m.InterestTags {
		if resp.HasInterest(tag) {
			interest += interestBonus
		}
	}
	if interest > interestBonusCap {
		interest = interestBonusCap
	}
	return adj + interest
}

// Rank devuelve una copia de scores ordenada por encaje descendente. Los
// empates conservan el orden de insercion del catalogo, que es el desempate
// documentado.
func Rank(scores []domain.BusinessModelScore) []domain.BusinessModelScore {
	ranked := make([]domain.BusinessModelScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopN devuelve las mejores n entradas de un slice ya rankeado.
func TopN(ranked []domain.BusinessModelScore, n int) []domain.BusinessModelScore {
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
