package domain

// TraitName identifica una de las doce dimensiones de personalidad.
type TraitName string

const (
	TraitSocialComfort       TraitName = "socialComfort"
	TraitDiscipline          TraitName = "discipline"
	TraitRiskTolerance       TraitName = "riskTolerance"
	TraitTechComfort         TraitName = "techComfort"
	TraitStructurePreference TraitName = "structurePreference"
	TraitMotivation          TraitName = "motivation"
	TraitFeedbackResilience  TraitName = "feedbackResilience"
	TraitCreativity          TraitName = "creativity"
	TraitConfidence          TraitName = "confidence"
	TraitAdaptability        TraitName = "adaptability"
	TraitFocusPreference     TraitName = "focusPreference"
	TraitResilience          TraitName = "resilience"
)

// TraitOrder es el orden canonico de los rasgos. El vector persistido y toda
// iteracion por rasgo usan este orden, asi que nunca debe reordenarse.
var TraitOrder = []TraitName{
	TraitSocialComfort,
	TraitDiscipline,
	TraitRiskTolerance,
	TraitTechComfort,
	TraitStructurePreference,
	TraitMotivation,
	TraitFeedbackResilience,
	TraitCreativity,
	TraitConfidence,
	TraitAdaptability,
	TraitFocusPreference,
	TraitResilience,
}

// PersonalityScores contiene los doce rasgos normalizados. Cada valor esta
// en [1.0, 5.0], redondeado a un decimal.
type PersonalityScores struct {
	SocialComfort       float64 `json:"socialComfort"`
	Discipline          float64 `json:"discipline"`
	RiskTolerance       float64 `json:"riskTolerance"`
	TechComfort         float64 `json:"techComfort"`
	StructurePreference float64 `json:"structurePreference"`
	Motivation          float64 `json:"motivation"`
	FeedbackResilience  float64 `json:"feedbackResilience"`
	Creativity          float64 `json:"creativity"`
	Confidence          float64 `json:"confidence"`
	Adaptability        float64 `json:"adaptability"`
	FocusPreference     float64 `json:"focusPreference"`
	Resilience          float64 `json:"resilience"`
}

// Get devuelve el puntaje del rasgo, cero para nombres desconocidos.
func (p PersonalityScores) Get(name TraitName) float64 {
	switch name {
	case TraitSocialComfort:
		return p.SocialComfort
	case TraitDiscipline:
		return p.Discipline
	case TraitRiskTolerance:
		return p.RiskTolerance
	case TraitTechComfort:
		return p.TechComfort
	case TraitStructurePreference:
		return p.StructurePreference
	case TraitMotivation:
		return p.Motivation
	case TraitFeedbackResilience:
		return p.FeedbackResilience
	case TraitCreativity:
		return p.Creativity
	case TraitConfidence:
		return p.Confidence
	case TraitAdaptability:
		return p.Adaptability
	case TraitFocusPreference:
		return p.FocusPreference
	case TraitResilience:
		return p.Resilience
	}
	return 0
}

// Vector devuelve los puntajes como slice de float32 en TraitOrder, apto
// para la columna pgvector y las busquedas por vecindad.
func (p PersonalityScores) Vector() []float32 {
	out := make([]float32, 0, len(TraitOrder))
	for _, name := range TraitOrder {
		out = append(out, float32(p.Get(name)))
	}
	return out
}
