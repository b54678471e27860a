package domain

import "time"

// Categorias de modelos de negocio usadas para agrupar en la UI y el reporte.
const (
	CategoryContent    = "content"
	CategoryCommerce   = "commerce"
	CategoryServices   = "services"
	CategoryTech       = "tech"
	CategoryEducation  = "education"
	CategoryInvestment = "investment"
)

// ActionPlanPhase es una fase del plan de arranque de un modelo.
type ActionPlanPhase struct {
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Steps    []string `json:"steps"`
}

// IdealProfile describe las afinidades de rasgos de un modelo de negocio.
// Targets usa la misma escala 1-5 de PersonalityScores; Weights expresa
// cuanto pesa desviarse del target para ese modelo.
type IdealProfile struct {
	Targets map[TraitName]float64 `json:"targets"`
	Weights map[TraitName]float64 `json:"weights"`
}

// BusinessModelDefinition es una entrada estatica del catalogo. Las
// definiciones se cargan una vez por proceso y nunca se mutan en runtime.
type BusinessModelDefinition struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Pros        []string          `json:"pros"`
	Cons        []string          `json:"cons"`
	Difficulty  string            `json:"difficulty"`
	StartupCost string            `json:"startup_cost"`
	ActionPlan  []ActionPlanPhase `json:"action_plan"`
	Ideal       IdealProfile      `json:"-"`

	// Areas de interes que hacen este modelo un encaje mas natural.
	InterestTags []string `json:"-"`

	// Flags de requisito duro que consultan los ajustes del matching.
	RequiresVideo         bool `json:"-"`
	RequiresWriting       bool `json:"-"`
	RequiresPublicPersona bool `json:"-"`
	RequiresPhysicalGoods bool `json:"-"`
	RequiresDirectSales   bool `json:"-"`
	RequiresHighBudget    bool `json:"-"`
}

// BusinessModelScore es el resultado de encaje para una entrada del catalogo.
type BusinessModelScore struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Category string  `json:"category"`
}

// ScoredAttemptRecord es el resultado de scoring persistido de un intento.
// Se escribe exactamente una vez por attempt id (salvo recompute explicito)
// y es propiedad exclusiva del servicio de scoring.
type ScoredAttemptRecord struct {
	AttemptID   string               `json:"attempt_id"`
	Personality PersonalityScores    `json:"personality"`
	Scores      []BusinessModelScore `json:"scores"`
	ComputedAt  time.Time            `json:"computed_at"`
}
