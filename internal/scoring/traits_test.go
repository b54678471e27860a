package scoring

import (
	"errors"
	"math"
	"testing"

	"bizmatch/internal/domain"
)

func allMinResponse() *domain.QuizResponse {
	return &domain.QuizResponse{
		WorkCollaborationPreference:   domain.CollabSoloOnly,
		WorkStylePreference:           domain.WorkStyleSpontaneous,
		OnlinePresenceComfort:         domain.AnswerNo,
		ComfortableWithVideo:          domain.AnswerNo,
		ComfortableWithWriting:        domain.AnswerNo,
		ComfortableSellingToStrangers: domain.AnswerNo,
		DecisionMakingStyle:           domain.DecisionResearchFirst,
		FailureResponse:               domain.FailureDiscouraged,
		FeedbackHandling:              domain.FeedbackAvoidIt,
		CompetitiveEnvironment:        domain.CompetitionAvoid,
		PublicSpeakingComfort:         domain.SpeakingAvoid,
		WeeklyTimeCommitment:          domain.TimeUnderFive,
		RiskComfortLevel:              1,
		TechSkillsRating:              1,
		SelfMotivationLevel:           1,
		CreativityRating:              1,
		OrganizationSkills:            1,
		CommunicationSkills:           1,
		SalesAptitude:                 1,
		AnalyticalThinking:            1,
		AttentionToDetail:             1,
		StressTolerance:               1,
		PersistenceLevel:              1,
		AdaptabilityRating:            1,
		IndependenceLevel:             1,
		FocusDuration:                 1,
		SocialEnergyLevel:             1,
		NoveltySeeking:                1,
		MonthlyIncomeGoal:             500,
		InvestmentBudget:              50,
	}
}

func allMaxResponse() *domain.QuizResponse {
	return &domain.QuizResponse{
		WorkCollaborationPreference:   domain.CollabTeamOriented,
		WorkStylePreference:           domain.WorkStyleStructured,
		LearningStyle:                 domain.LearningHandsOn,
		IncomeTimeline:                domain.TimelineOneTwoYear,
		OnlinePresenceComfort:         domain.AnswerYes,
		ComfortableWithVideo:          domain.AnswerYes,
		ComfortableWithWriting:        domain.AnswerYes,
		ComfortableSellingToStrangers: domain.AnswerYes,
		WillingToShipPhysicalGoods:    domain.AnswerYes,
		PreferredCustomerType:         domain.CustomersEither,
		DecisionMakingStyle:           domain.DecisionQuickGut,
		FailureResponse:               domain.FailureTryAgain,
		FeedbackHandling:              domain.FeedbackSeekItOut,
		CompetitiveEnvironment:        domain.CompetitionThrive,
		PublicSpeakingComfort:         domain.SpeakingLoveIt,
		ExistingAudience:              domain.AudienceLarge,
		PriorBusinessExperience:       domain.ExperienceMultiple,
		WeeklyTimeCommitment:          domain.TimeFullTime,
		RiskComfortLevel:              5,
		TechSkillsRating:              5,
		SelfMotivationLevel:           5,
		CreativityRating:              5,
		OrganizationSkills:            5,
		CommunicationSkills:           5,
		SalesAptitude:                 5,
		AnalyticalThinking:            5,
		AttentionToDetail:             5,
		StressTolerance:               5,
		PersistenceLevel:              5,
		AdaptabilityRating:            5,
		IndependenceLevel:             5,
		FocusDuration:                 5,
		SocialEnergyLevel:             5,
		NoveltySeeking:                5,
		MonthlyIncomeGoal:             50000,
		InvestmentBudget:              25000,
		FamiliarTools:                 []string{"coding", "spreadsheets", "design-software", "video-editing", "analytics", "email-marketing", "crm", "social-media"},
		InterestAreas:                 []string{"technology", "writing", "teaching", "finance", "fitness", "gaming", "diy", "travel", "fashion", "food"},
	}
}

func assertTraitBounds(t *testing.T, scores domain.PersonalityScores) {
	t.Helper()
	for _, trait := range domain.TraitOrder {
		v := scores.Get(trait)
		if v < 1.0 || v > 5.0 {
			t.Fatalf("trait %s = %v out of [1.0, 5.0]", trait, v)
		}
		if math.Abs(v*10-math.Round(v*10)) > 1e-9 {
			t.Fatalf("trait %s = %v not rounded to one decimal", trait, v)
		}
	}
}

func TestScoreTraitsNilResponse(t *testing.T) {
	if _, err := ScoreTraits(nil); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestScoreTraitsDeterministic(t *testing.T) {
	resp := allMaxResponse()
	first, err := ScoreTraits(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ScoreTraits(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("scoring is not deterministic: %+v vs %+v", first, second)
	}
}

func TestScoreTraitsBounds(t *testing.T) {
	cases := map[string]*domain.QuizResponse{
		"empty":   {},
		"all-min": allMinResponse(),
		"all-max": allMaxResponse(),
	}
	for name, resp := range cases {
		scores, err := ScoreTraits(resp)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		assertTraitBounds(t, scores)
	}
}

func TestScoreTraitsEmptyResponseNeutral(t *testing.T) {
	scores, err := ScoreTraits(&domain.QuizResponse{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Sin contribuciones, cada rasgo debe caer a mitad de escala, no pegado
	// a ninguno de los extremos del rango.
	for _, trait := range domain.TraitOrder {
		v := scores.Get(trait)
		if v < 2.0 || v > 4.0 {
			t.Fatalf("trait %s = %v, expected a mid-scale value for an empty response", trait, v)
		}
	}
}

func TestScoreTraitsSoloTechProfile(t *testing.T) {
	resp := &domain.QuizResponse{
		WorkCollaborationPreference: domain.CollabSoloOnly,
		RiskComfortLevel:            5,
		TechSkillsRating:            5,
		SelfMotivationLevel:         5,
	}
	scores, err := ScoreTraits(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTraitBounds(t, scores)

	if scores.SocialComfort >= 3.0 {
		t.Fatalf("socialComfort = %v, expected below the 3.0 midpoint for a solo-only answer", scores.SocialComfort)
	}
	if scores.RiskTolerance <= 3.0 {
		t.Fatalf("riskTolerance = %v, expected above the 3.0 midpoint", scores.RiskTolerance)
	}
	if scores.TechComfort <= 3.0 {
		t.Fatalf("techComfort = %v, expected above the 3.0 midpoint", scores.TechComfort)
	}
	if scores.Motivation <= 3.0 {
		t.Fatalf("motivation = %v, expected above the 3.0 midpoint", scores.Motivation)
	}
}

func TestScoreTraitsExtremesSpread(t *testing.T) {
	low, err := ScoreTraits(allMinResponse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	high, err := ScoreTraits(allMaxResponse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Los extremos deben separarse de verdad en los rasgos primarios o las
	// ventanas de calibracion estan rotas.
	for _, trait := range []domain.TraitName{
		domain.TraitRiskTolerance,
		domain.TraitTechComfort,
		domain.TraitMotivation,
		domain.TraitResilience,
	} {
		if high.Get(trait)-low.Get(trait) < 1.0 {
			t.Fatalf("trait %s barely moves between extremes: low=%v high=%v", trait, low.Get(trait), high.Get(trait))
		}
	}
}
