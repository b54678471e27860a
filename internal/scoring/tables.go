package scoring

import "bizmatch/internal/domain"

// effect es un conjunto de deltas con signo aplicados al acumulador crudo.
type effect map[domain.TraitName]int

// questionRule es la tabla de contribucion de una pregunta. Las reglas se
// aplican de forma independiente e incondicional; la acumulacion es una suma
// simple, asi que el orden no tiene significado.
type questionRule interface {
	apply(r *domain.QuizResponse, acc accumulator)
}

// choiceRule mapea una respuesta de opcion unica a deltas de rasgos. Una
// respuesta ausente de la tabla (incluida la cadena vacia) no aporta nada.
type choiceRule struct {
	id      string
	answer  func(*domain.QuizResponse) string
	effects map[string]effect
}

func (q choiceRule) apply(r *domain.QuizResponse, acc accumulator) {
	acc.add(q.effects[q.answer(r)])
}

// likertRule escala (valor - 3) por un multiplicador por rasgo. Un valor cero
// significa pregunta salteada y no aporta nada.
type likertRule struct {
	id      string
	value   func(*domain.QuizResponse) int
	weights effect
}

func (q likertRule) apply(r *domain.QuizResponse, acc accumulator) {
	v := q.value(r)
	if v < 1 || v > 5 {
		return
	}
	for trait, w := range q.weights {
		acc[trait] += (v - 3) * w
	}
}

// multiRule aplica deltas por cada opcion seleccionada de una pregunta de
// seleccion multiple. Opciones desconocidas no aportan nada.
type multiRule struct {
	id      string
	values  func(*domain.QuizResponse) []string
	effects map[string]effect
}

func (q multiRule) apply(r *domain.QuizResponse, acc accumulator) {
	for _, v := range q.values(r) {
		acc.add(q.effects[v])
	}
}

// bandRule mapea un monto a la primera banda cuyo tope lo cubre. Montos cero
// o negativos significan pregunta salteada.
type bandRule struct {
	id    string
	value func(*domain.QuizResponse) int
	bands []amountBand
}

type amountBand struct {
	upTo int // tope inclusivo en USD; 0 significa sin tope
	eff  effect
}

func (q bandRule) apply(r *domain.QuizResponse, acc accumulator) {
	v := q.value(r)
	if v <= 0 {
		return
	}
	for _, b := range q.bands {
		if b.upTo == 0 || v <= b.upTo {
			acc.add(b.eff)
			return
		}
	}
}

// questionRules contiene la tabla de contribucion de cada pregunta del quiz.
// Las tablas son datos, no logica: los tests las ejercitan por separado del
// codigo de suma y normalizacion.
var questionRules = []questionRule{
	choiceRule{
		id:     "workCollaborationPreference",
		answer: func(r *domain.QuizResponse) string { return r.WorkCollaborationPreference },
		effects: map[string]effect{
			domain.CollabSoloOnly:     {domain.TraitSocialComfort: -4, domain.TraitFocusPreference: 2},
			domain.CollabMostlySolo:   {domain.TraitSocialComfort: -2, domain.TraitFocusPreference: 1},
			domain.CollabMixed:        {domain.TraitSocialComfort: 1, domain.TraitAdaptability: 1},
			domain.CollabTeamOriented: {domain.TraitSocialComfort: 4, domain.TraitStructurePreference: 1},
		},
	},
	choiceRule{
		id:     "workStylePreference",
		answer: func(r *domain.QuizResponse) string { return r.WorkStylePreference },
		effects: map[string]effect{
			domain.WorkStyleStructured:  {domain.TraitStructurePreference: 3, domain.TraitDiscipline: 2},
			domain.WorkStyleFlexible:    {domain.TraitStructurePreference: -1, domain.TraitAdaptability: 2},
			domain.WorkStyleSpontaneous: {domain.TraitStructurePreference: -3, domain.TraitAdaptability: 3, domain.TraitDiscipline: -1},
		},
	},
	choiceRule{
		id:     "learningStyle",
		answer: func(r *domain.QuizResponse) string { return r.LearningStyle },
		effects: map[string]effect{
			domain.LearningReading:    {domain.TraitFocusPreference: 2, domain.TraitDiscipline: 1},
			domain.LearningVideo:      {domain.TraitCreativity: 1},
			domain.LearningHandsOn:    {domain.TraitAdaptability: 2, domain.TraitTechComfort: 1},
			domain.LearningMentorship: {domain.TraitSocialComfort: 2, domain.TraitFeedbackResilience: 2},
		},
	},
	choiceRule{
		id:     "incomeTimeline",
		answer: func(r *domain.QuizResponse) string { return r.IncomeTimeline },
		effects: map[string]effect{
			domain.TimelineASAP:       {domain.TraitMotivation: 2, domain.TraitResilience: -1},
			domain.TimelineThreeSix:   {domain.TraitMotivation: 1},
			domain.TimelineSixTwelve:  {domain.TraitDiscipline: 1},
			domain.TimelineOneTwoYear: {domain.TraitDiscipline: 2, domain.TraitFocusPreference: 1},
		},
	},
	choiceRule{
		id:     "onlinePresenceComfort",
		answer: func(r *domain.QuizResponse) string { return r.OnlinePresenceComfort },
		effects: map[string]effect{
			domain.AnswerYes:   {domain.TraitSocialComfort: 3, domain.TraitConfidence: 2},
			domain.AnswerMaybe: {domain.TraitSocialComfort: 1},
			domain.AnswerNo:    {domain.TraitSocialComfort: -3, domain.TraitConfidence: -1},
		},
	},
	choiceRule{
		id:     "comfortableWithVideo",
		answer: func(r *domain.QuizResponse) string { return r.ComfortableWithVideo },
		effects: map[string]effect{
			domain.AnswerYes:   {domain.TraitConfidence: 2, domain.TraitSocialComfort: 2},
			domain.AnswerMaybe: {domain.TraitConfidence: 1},
			domain.AnswerNo:    {domain.TraitSocialComfort: -2, domain.TraitConfidence: -1},
		},
	},
	choiceRule{
		id:     "comfortableWithWriting",
		answer: func(r *domain.QuizResponse) string { return r.ComfortableWithWriting },
		effects: map[string]effect{
			domain.AnswerYes: {domain.TraitCreativity: 2, domain.TraitFocusPreference: 1},
			domain.AnswerNo:  {domain.TraitCreativity: -1},
		},
	},
	choiceRule{
		id:     "comfortableSellingToStrangers",
		answer: func(r *domain.QuizResponse) string { return r.ComfortableSellingToStrangers },
		effects: map[string]effect{
			domain.AnswerYes:   {domain.TraitConfidence: 3, domain.TraitSocialComfort: 2},
			domain.AnswerMaybe: {domain.TraitConfidence: 1},
			domain.AnswerNo:    {domain.TraitConfidence: -2, domain.TraitSocialComfort: -2},
		},
	},
	choiceRule{
		id:     "willingToShipPhysicalGoods",
		answer: func(r *domain.QuizResponse) string { return r.WillingToShipPhysicalGoods },
		effects: map[string]effect{
			domain.AnswerYes: {domain.TraitStructurePreference: 1, domain.TraitDiscipline: 1},
		},
	},
	choiceRule{
		id:     "preferredCustomerType",
		answer: func(r *domain.QuizResponse) string { return r.PreferredCustomerType },
		effects: map[string]effect{
			domain.CustomersBusinesses: {domain.TraitStructurePreference: 1, domain.TraitConfidence: 1},
			domain.CustomersConsumers:  {domain.TraitCreativity: 1, domain.TraitSocialComfort: 1},
			domain.CustomersEither:     {domain.TraitAdaptability: 2},
		},
	},
	choiceRule{
		id:     "decisionMakingStyle",
		answer: func(r *domain.QuizResponse) string { return r.DecisionMakingStyle },
		effects: map[string]effect{
			domain.DecisionQuickGut:      {domain.TraitRiskTolerance: 3, domain.TraitAdaptability: 1},
			domain.DecisionResearchFirst: {domain.TraitRiskTolerance: -2, domain.TraitDiscipline: 2, domain.TraitStructurePreference: 1},
			domain.DecisionConsultOthers: {domain.TraitSocialComfort: 2, domain.TraitRiskTolerance: -1},
		},
	},
	choiceRule{
		id:     "failureResponse",
		answer: func(r *domain.QuizResponse) string { return r.FailureResponse },
		effects: map[string]effect{
			domain.FailureTryAgain:     {domain.TraitResilience: 4, domain.TraitMotivation: 2},
			domain.FailureAnalyzeFirst: {domain.TraitResilience: 2, domain.TraitDiscipline: 1},
			domain.FailureStepBack:     {domain.TraitResilience: -1, domain.TraitAdaptability: 1},
			domain.FailureDiscouraged:  {domain.TraitResilience: -4, domain.TraitConfidence: -2},
		},
	},
	choiceRule{
		id:     "feedbackHandling",
		answer: func(r *domain.QuizResponse) string { return r.FeedbackHandling },
		effects: map[string]effect{
			domain.FeedbackSeekItOut:      {domain.TraitFeedbackResilience: 4, domain.TraitMotivation: 1},
			domain.FeedbackAcceptIt:       {domain.TraitFeedbackResilience: 2},
			domain.FeedbackPreferPositive: {domain.TraitFeedbackResilience: -2},
			domain.FeedbackAvoidIt:        {domain.TraitFeedbackResilience: -4, domain.TraitConfidence: -1},
		},
	},
	choiceRule{
		id:     "competitiveEnvironment",
		answer: func(r *domain.QuizResponse) string { return r.CompetitiveEnvironment },
		effects: map[string]effect{
			domain.CompetitionThrive:   {domain.TraitConfidence: 2, domain.TraitRiskTolerance: 2, domain.TraitResilience: 1},
			domain.CompetitionTolerate: {domain.TraitResilience: 1},
			domain.CompetitionAvoid:    {domain.TraitRiskTolerance: -2, domain.TraitConfidence: -1},
		},
	},
	choiceRule{
		id:     "publicSpeakingComfort",
		answer: func(r *domain.QuizResponse) string { return r.PublicSpeakingComfort },
		effects: map[string]effect{
			domain.SpeakingLoveIt:  {domain.TraitSocialComfort: 3, domain.TraitConfidence: 3},
			domain.SpeakingCanDo:   {domain.TraitSocialComfort: 1, domain.TraitConfidence: 1},
			domain.SpeakingNervous: {domain.TraitSocialComfort: -1, domain.TraitConfidence: -1},
			domain.SpeakingAvoid:   {domain.TraitSocialComfort: -3, domain.TraitConfidence: -2},
		},
	},
	choiceRule{
		id:     "existingAudience",
		answer: func(r *domain.QuizResponse) string { return r.ExistingAudience },
		effects: map[string]effect{
			domain.AudienceSmall:  {domain.TraitSocialComfort: 1, domain.TraitConfidence: 1},
			domain.AudienceMedium: {domain.TraitSocialComfort: 1, domain.TraitConfidence: 2},
			domain.AudienceLarge:  {domain.TraitSocialComfort: 2, domain.TraitConfidence: 3},
		},
	},
	choiceRule{
		id:     "priorBusinessExperience",
		answer: func(r *domain.QuizResponse) string { return r.PriorBusinessExperience },
		effects: map[string]effect{
			domain.ExperienceSide:     {domain.TraitMotivation: 2, domain.TraitRiskTolerance: 1},
			domain.ExperienceRanOne:   {domain.TraitConfidence: 2, domain.TraitRiskTolerance: 2, domain.TraitResilience: 2},
			domain.ExperienceMultiple: {domain.TraitConfidence: 2, domain.TraitRiskTolerance: 3, domain.TraitResilience: 3},
		},
	},
	choiceRule{
		id:     "weeklyTimeCommitment",
		answer: func(r *domain.QuizResponse) string { return r.WeeklyTimeCommitment },
		effects: map[string]effect{
			domain.TimeUnderFive:  {domain.TraitMotivation: -2},
			domain.TimeFiveTen:    {domain.TraitMotivation: -1},
			domain.TimeTenTwenty:  {domain.TraitMotivation: 1, domain.TraitDiscipline: 1},
			domain.TimeTwentyPlus: {domain.TraitMotivation: 2, domain.TraitDiscipline: 1},
			domain.TimeFullTime:   {domain.TraitMotivation: 3, domain.TraitRiskTolerance: 2},
		},
	},

	likertRule{
		id:      "riskComfortLevel",
		value:   func(r *domain.QuizResponse) int { return r.RiskComfortLevel },
		weights: effect{domain.TraitRiskTolerance: 3},
	},
	likertRule{
		id:      "techSkillsRating",
		value:   func(r *domain.QuizResponse) int { return r.TechSkillsRating },
		weights: effect{domain.TraitTechComfort: 3},
	},
	likertRule{
		id:      "selfMotivationLevel",
		value:   func(r *domain.QuizResponse) int { return r.SelfMotivationLevel },
		weights: effect{domain.TraitMotivation: 3},
	},
	likertRule{
		id:      "creativityRating",
		value:   func(r *domain.QuizResponse) int { return r.CreativityRating },
		weights: effect{domain.TraitCreativity: 3},
	},
	likertRule{
		id:      "organizationSkills",
		value:   func(r *domain.QuizResponse) int { return r.OrganizationSkills },
		weights: effect{domain.TraitDiscipline: 2, domain.TraitStructurePreference: 2},
	},
	likertRule{
		id:      "communicationSkills",
		value:   func(r *domain.QuizResponse) int { return r.CommunicationSkills },
		weights: effect{domain.TraitSocialComfort: 2},
	},
	likertRule{
		id:      "salesAptitude",
		value:   func(r *domain.QuizResponse) int { return r.SalesAptitude },
		weights: effect{domain.TraitConfidence: 2, domain.TraitSocialComfort: 1},
	},
	likertRule{
		id:      "analyticalThinking",
		value:   func(r *domain.QuizResponse) int { return r.AnalyticalThinking },
		weights: effect{domain.TraitTechComfort: 1, domain.TraitStructurePreference: 1},
	},
	likertRule{
		id:      "attentionToDetail",
		value:   func(r *domain.QuizResponse) int { return r.AttentionToDetail },
		weights: effect{domain.TraitDiscipline: 2, domain.TraitFocusPreference: 1},
	},
	likertRule{
		id:      "stressTolerance",
		value:   func(r *domain.QuizResponse) int { return r.StressTolerance },
		weights: effect{domain.TraitResilience: 2, domain.TraitRiskTolerance: 1},
	},
	likertRule{
		id:      "persistenceLevel",
		value:   func(r *domain.QuizResponse) int { return r.PersistenceLevel },
		weights: effect{domain.TraitResilience: 2, domain.TraitMotivation: 1, domain.TraitDiscipline: 1},
	},
	likertRule{
		id:      "adaptabilityRating",
		value:   func(r *domain.QuizResponse) int { return r.AdaptabilityRating },
		weights: effect{domain.TraitAdaptability: 3},
	},
	likertRule{
		id:      "independenceLevel",
		value:   func(r *domain.QuizResponse) int { return r.IndependenceLevel },
		weights: effect{domain.TraitMotivation: 1, domain.TraitConfidence: 1, domain.TraitSocialComfort: -1},
	},
	likertRule{
		id:      "focusDuration",
		value:   func(r *domain.QuizResponse) int { return r.FocusDuration },
		weights: effect{domain.TraitFocusPreference: 3},
	},
	likertRule{
		id:      "socialEnergyLevel",
		value:   func(r *domain.QuizResponse) int { return r.SocialEnergyLevel },
		weights: effect{domain.TraitSocialComfort: 3},
	},
	likertRule{
		id:      "noveltySeeking",
		value:   func(r *domain.QuizResponse) int { return r.NoveltySeeking },
		weights: effect{domain.TraitAdaptability: 2, domain.TraitRiskTolerance: 1, domain.TraitCreativity: 1, domain.TraitFocusPreference: -1},
	},

	bandRule{
		id:    "monthlyIncomeGoal",
		value: func(r *domain.QuizResponse) int { return r.MonthlyIncomeGoal },
		bands: []amountBand{
			{upTo: 1000, eff: effect{domain.TraitRiskTolerance: -1}},
			{upTo: 5000, eff: effect{domain.TraitMotivation: 1}},
			{upTo: 20000, eff: effect{domain.TraitMotivation: 2, domain.TraitRiskTolerance: 1}},
			{eff: effect{domain.TraitMotivation: 2, domain.TraitRiskTolerance: 2, domain.TraitConfidence: 1}},
		},
	},
	bandRule{
		id:    "investmentBudget",
		value: func(r *domain.QuizResponse) int { return r.InvestmentBudget },
		bands: []amountBand{
			{upTo: 100, eff: effect{domain.TraitRiskTolerance: -2}},
			{upTo: 1000, eff: effect{}},
			{upTo: 5000, eff: effect{domain.TraitRiskTolerance: 1}},
			{eff: effect{domain.TraitRiskTolerance: 2, domain.TraitConfidence: 1}},
		},
	},

	multiRule{
		id:     "familiarTools",
		values: func(r *domain.QuizResponse) []string { return r.FamiliarTools },
		effects: map[string]effect{
			"coding":          {domain.TraitTechComfort: 3},
			"spreadsheets":    {domain.TraitTechComfort: 1, domain.TraitStructurePreference: 1},
			"design-software": {domain.TraitCreativity: 2, domain.TraitTechComfort: 1},
			"video-editing":   {domain.TraitCreativity: 1, domain.TraitTechComfort: 1},
			"analytics":       {domain.TraitTechComfort: 2, domain.TraitStructurePreference: 1},
			"email-marketing": {domain.TraitTechComfort: 1},
			"crm":             {domain.TraitStructurePreference: 1},
			"social-media":    {domain.TraitSocialComfort: 1},
		},
	},
	multiRule{
		id:     "interestAreas",
		values: func(r *domain.QuizResponse) []string { return r.InterestAreas },
		effects: map[string]effect{
			"technology": {domain.TraitTechComfort: 2},
			"writing":    {domain.TraitCreativity: 1, domain.TraitFocusPreference: 1},
			"teaching":   {domain.TraitSocialComfort: 1},
			"finance":    {domain.TraitStructurePreference: 1, domain.TraitRiskTolerance: 1},
			"fitness":    {domain.TraitDiscipline: 1},
			"gaming":     {domain.TraitTechComfort: 1},
			"diy":        {domain.TraitCreativity: 1},
			"travel":     {domain.TraitAdaptability: 1},
			"fashion":    {domain.TraitCreativity: 1},
			"food":       {domain.TraitCreativity: 1},
		},
	},
}

// calibration es la ventana fija de normalizacion por rasgo. Los limites
// estan calibrados a mano contra los rangos acumulados de las tablas de
// arriba, no derivados del rango combinatorio completo, asi que la
// normalizacion recorta lo que caiga afuera.
type calibration struct {
	min, max int
}

var traitCalibration = map[domain.TraitName]calibration{
	domain.TraitSocialComfort:       {min: -20, max: 22},
	domain.TraitDiscipline:          {min: -10, max: 16},
	domain.TraitRiskTolerance:       {min: -16, max: 20},
	domain.TraitTechComfort:         {min: -8, max: 16},
	domain.TraitStructurePreference: {min: -8, max: 14},
	domain.TraitMotivation:          {min: -10, max: 18},
	domain.TraitFeedbackResilience:  {min: -6, max: 6},
	domain.TraitCreativity:          {min: -8, max: 14},
	domain.TraitConfidence:          {min: -12, max: 18},
	domain.TraitAdaptability:        {min: -10, max: 16},
	domain.TraitFocusPreference:     {min: -8, max: 12},
	domain.TraitResilience:          {min: -12, max: 14},
}
