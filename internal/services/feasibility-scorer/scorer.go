// internal/services/feasibility-scorer/scorer.go
package feasibilityscorer

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scorer applies a fixed Rubric. It holds no mutable state.
type Scorer struct {
	rubric Rubric
}

// NewScorer copies rubric; nil selects DefaultRubric.
func NewScorer(rubric *Rubric) *Scorer {
	if rubric == nil {
		rubric = DefaultRubric()
	}
	r := *rubric
	r.RequiredFields = append([]string(nil), rubric.RequiredFields...)
	r.MarketKeywords = append([]string(nil), rubric.MarketKeywords...)
	return &Scorer{rubric: r}
}

// Calculate scores input. It never fails; an empty input yields 0.
func (s *Scorer) Calculate(input Input) Result {
	if input == nil {
		input = Input{}
	}

	factors := make([]string, 0, 5)
	var score float64

	completeness := s.calculateCompleteness(input)
	score += float64(completeness * s.rubric.CompletenessWeight)
	factors = append(factors, fmt.Sprintf("Completeness: %s", percent(completeness)))

	detail := s.calculateDetail(input)
	score += float64(detail * s.rubric.DetailWeight)
	factors = append(factors, fmt.Sprintf("Detail Level: %s", percent(detail)))

	if hasDigit(input.Text(FieldEstimatedBudget)) {
		score += s.rubric.BudgetWeight
		factors = append(factors, "Budget: Well-defined")
	} else {
		factors = append(factors, "Budget: Needs specification")
	}

	market := s.calculateMarketAlignment(input)
	score += float64(market * s.rubric.MarketWeight)
	factors = append(factors, fmt.Sprintf("Market Alignment: %s", percent(market)))

	steps := 0
	if input.Present(FieldTimeline) {
		score += s.rubric.ReadinessStep
		steps++
	}
	if input.Present(FieldExpectedOutcomes) {
		score += s.rubric.ReadinessStep
		steps++
	}
	factors = append(factors, "Implementation Readiness: "+classifyReadiness(steps))

	return Result{
		Score:          clamp(int(math.RoundToEven(math.Min(score, 100))), 0, 100),
		Factors:        factors,
		Recommendation: s.classifyRecommendation(score),
	}
}

// Rubric returns a copy of the active rubric.
func (s *Scorer) Rubric() Rubric {
	r := s.rubric
	r.RequiredFields = append([]string(nil), s.rubric.RequiredFields...)
	r.MarketKeywords = append([]string(nil), s.rubric.MarketKeywords...)
	return r
}

func (s *Scorer) calculateCompleteness(input Input) float64 {
	if len(s.rubric.RequiredFields) == 0 {
		return 0
	}
	present := 0
	for _, field := range s.rubric.RequiredFields {
		if input.Present(field) {
			present++
		}
	}
	return float64(present) / float64(len(s.rubric.RequiredFields))
}

func (s *Scorer) calculateDetail(input Input) float64 {
	detail := 0.0
	if utf8.RuneCountInString(input.Text(FieldAccommodationNeeds)) > s.rubric.AccommodationDetailChars {
		detail += 0.4
	}
	if utf8.RuneCountInString(input.Text(FieldBusinessGoals)) > s.rubric.GoalsDetailChars {
		detail += 0.4
	}
	if utf8.RuneCountInString(input.Text(FieldTargetMarket)) > s.rubric.TargetMarketDetailChars {
		detail += 0.2
	}
	return detail
}

func (s *Scorer) calculateMarketAlignment(input Input) float64 {
	if len(s.rubric.MarketKeywords) == 0 {
		return 0
	}
	text := strings.ToLower(input.Text(FieldTargetMarket) + " " + input.Text(FieldBusinessGoals))

	matches := 0
	for _, kw := range s.rubric.MarketKeywords {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	return math.Min(float64(matches)/float64(len(s.rubric.MarketKeywords)), 1.0)
}

func (s *Scorer) classifyRecommendation(raw float64) string {
	switch {
	case raw >= s.rubric.HighThreshold:
		return RecommendationHigh
	case raw >= s.rubric.ModerateThreshold:
		return RecommendationModerate
	default:
		return RecommendationRefine
	}
}

func classifyReadiness(steps int) string {
	switch steps {
	case 2:
		return "Well-defined"
	case 1:
		return "Partially defined"
	default:
		return "Not defined"
	}
}

// percent renders a 0..1 ratio as a whole percentage.
func percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", float64(ratio*100))
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
