package domain

import "time"

// Valores enumerados de las preguntas de opcion unica. La UI envia estas
// cadenas exactas; cualquier otra cosa se trata como "sin respuesta".
const (
	CollabSoloOnly     = "solo-only"
	CollabMostlySolo   = "mostly-solo"
	CollabMixed        = "mixed"
	CollabTeamOriented = "team-oriented"

	WorkStyleStructured  = "structured-routine"
	WorkStyleFlexible    = "flexible-routine"
	WorkStyleSpontaneous = "spontaneous"

	LearningReading    = "reading"
	LearningVideo      = "video"
	LearningHandsOn    = "hands-on"
	LearningMentorship = "mentorship"

	TimelineASAP       = "asap"
	TimelineThreeSix   = "3-6-months"
	TimelineSixTwelve  = "6-12-months"
	TimelineOneTwoYear = "1-2-years"

	AnswerYes   = "yes"
	AnswerNo    = "no"
	AnswerMaybe = "maybe"

	CustomersBusinesses = "businesses"
	CustomersConsumers  = "consumers"
	CustomersEither     = "either"

	DecisionQuickGut      = "quick-gut"
	DecisionResearchFirst = "research-first"
	DecisionConsultOthers = "consult-others"

	FailureTryAgain     = "try-again"
	FailureAnalyzeFirst = "analyze-first"
	FailureStepBack     = "step-back"
	FailureDiscouraged  = "discouraged"

	FeedbackSeekItOut      = "seek-it-out"
	FeedbackAcceptIt       = "accept-it"
	FeedbackPreferPositive = "prefer-positive"
	FeedbackAvoidIt        = "avoid-it"

	CompetitionThrive   = "thrive"
	CompetitionTolerate = "tolerate"
	CompetitionAvoid    = "avoid"

	SpeakingLoveIt  = "love-it"
	SpeakingCanDo   = "can-do"
	SpeakingNervous = "nervous"
	SpeakingAvoid   = "avoid"

	AudienceNone   = "none"
	AudienceSmall  = "small"
	AudienceMedium = "medium"
	AudienceLarge  = "large"

	ExperienceNone     = "none"
	ExperienceSide     = "side-projects"
	ExperienceRanOne   = "ran-business"
	ExperienceMultiple = "multiple-businesses"

	TimeUnderFive  = "under-5"
	TimeFiveTen    = "5-10"
	TimeTenTwenty  = "10-20"
	TimeTwentyPlus = "20-40"
	TimeFullTime   = "full-time"
)

// QuizResponse es un cuestionario completado. Es inmutable despues del
// envio; todos los campos son opcionales a nivel de esquema y un campo vacio
// simplemente no aporta nada al scoring.
type QuizResponse struct {
	// Preguntas de opcion unica.
	WorkCollaborationPreference   string `json:"workCollaborationPreference,omitempty"`
	WorkStylePreference           string `json:"workStylePreference,omitempty"`
	LearningStyle                 string `json:"learningStyle,omitempty"`
	IncomeTimeline                string `json:"incomeTimeline,omitempty"`
	OnlinePresenceComfort         string `json:"onlinePresenceComfort,omitempty"`
	ComfortableWithVideo          string `json:"comfortableWithVideo,omitempty"`
	ComfortableWithWriting        string `json:"comfortableWithWriting,omitempty"`
	ComfortableSellingToStrangers string `json:"comfortableSellingToStrangers,omitempty"`
	WillingToShipPhysicalGoods    string `json:"willingToShipPhysicalGoods,omitempty"`
	PreferredCustomerType         string `json:"preferredCustomerType,omitempty"`
	DecisionMakingStyle           string `json:"decisionMakingStyle,omitempty"`
	FailureResponse               string `json:"failureResponse,omitempty"`
	FeedbackHandling              string `json:"feedbackHandling,omitempty"`
	CompetitiveEnvironment        string `json:"competitiveEnvironment,omitempty"`
	PublicSpeakingComfort         string `json:"publicSpeakingComfort,omitempty"`
	ExistingAudience              string `json:"existingAudience,omitempty"`
	PriorBusinessExperience       string `json:"priorBusinessExperience,omitempty"`
	WeeklyTimeCommitment          string `json:"weeklyTimeCommitment,omitempty"`

	// Escalas Likert, 1 (bajo) a 5 (alto). Cero significa sin responder.
	RiskComfortLevel    int `json:"riskComfortLevel,omitempty"`
	TechSkillsRating    int `json:"techSkillsRating,omitempty"`
	SelfMotivationLevel int `json:"selfMotivationLevel,omitempty"`
	CreativityRating    int `json:"creativityRating,omitempty"`
	OrganizationSkills  int `json:"organizationSkills,omitempty"`
	CommunicationSkills int `json:"communicationSkills,omitempty"`
	SalesAptitude       int `json:"salesAptitude,omitempty"`
	AnalyticalThinking  int `json:"analyticalThinking,omitempty"`
	AttentionToDetail   int `json:"attentionToDetail,omitempty"`
	StressTolerance     int `json:"stressTolerance,omitempty"`
	PersistenceLevel    int `json:"persistenceLevel,omitempty"`
	AdaptabilityRating  int `json:"adaptabilityRating,omitempty"`
	IndependenceLevel   int `json:"independenceLevel,omitempty"`
	FocusDuration       int `json:"focusDuration,omitempty"`
	SocialEnergyLevel   int `json:"socialEnergyLevel,omitempty"`
	NoveltySeeking      int `json:"noveltySeeking,omitempty"`

	// Montos en USD enteros.
	MonthlyIncomeGoal int `json:"monthlyIncomeGoal,omitempty"`
	InvestmentBudget  int `json:"investmentBudget,omitempty"`

	// Preguntas de seleccion multiple.
	FamiliarTools []string `json:"familiarTools,omitempty"`
	InterestAreas []string `json:"interestAreas,omitempty"`
}

// HasTool indica si la herramienta dada fue seleccionada.
func (r *QuizResponse) HasTool(tool string) bool {
	for _, t := range r.FamiliarTools {
		if t == tool {
			return true
		}
	}
	return false
}

// HasInterest indica si el area de interes dada fue seleccionada.
func (r *QuizResponse) HasInterest(area string) bool {
	for _, a := range r.InterestAreas {
		if a == area {
			return true
		}
	}
	return false
}

// QuizAttempt es el registro persistido de un envio.
type QuizAttempt struct {
	ID          string       `json:"id"`
	Email       string       `json:"email,omitempty"`
	Response    QuizResponse `json:"response"`
	SubmittedAt time.Time    `json:"submitted_at"`
}
