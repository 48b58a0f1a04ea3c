// internal/services/feasibility-scorer/config.go
package feasibilityscorer

const (
	FieldBusinessName       = "businessName"
	FieldBusinessType       = "businessType"
	FieldBusinessGoals      = "businessGoals"
	FieldAccommodationNeeds = "accommodationNeeds"
	FieldTargetMarket       = "targetMarket"
	FieldEstimatedBudget    = "estimatedBudget"
	FieldTimeline           = "timeline"
	FieldExpectedOutcomes   = "expectedOutcomes"
)

const (
	RecommendationHigh     = "High feasibility"
	RecommendationModerate = "Moderate feasibility"
	RecommendationRefine   = "Needs refinement"
)

// Rubric holds the weights and thresholds of the five scoring dimensions.
type Rubric struct {
	CompletenessWeight float64
	DetailWeight       float64
	BudgetWeight       float64
	MarketWeight       float64
	// ReadinessStep is awarded once for timeline and once for expected outcomes.
	ReadinessStep float64

	RequiredFields []string
	MarketKeywords []string

	AccommodationDetailChars int
	GoalsDetailChars         int
	TargetMarketDetailChars  int

	HighThreshold     float64
	ModerateThreshold float64
}

func DefaultRubric() *Rubric {
	return &Rubric{
		CompletenessWeight: 30,
		DetailWeight:       25,
		BudgetWeight:       20,
		MarketWeight:       15,
		ReadinessStep:      5,

		RequiredFields: []string{
			FieldBusinessName,
			FieldBusinessType,
			FieldBusinessGoals,
			FieldAccommodationNeeds,
		},
		MarketKeywords: []string{"texas", "local", "community", "market", "customer"},

		AccommodationDetailChars: 100,
		GoalsDetailChars:         100,
		TargetMarketDetailChars:  50,

		HighThreshold:     80,
		ModerateThreshold: 60,
	}
}
