// internal/services/feasibility-scorer/scorer_test.go
package feasibilityscorer

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func repeatTo(seed string, n int) string {
	s := strings.Repeat(seed, n/len(seed)+1)
	return s[:n]
}

func createCompleteInput() Input {
	goals := repeatTo("Deliver sustainable service that keeps every customer coming back. ", 150)
	return Input{
		FieldBusinessName:       "Texas Tech Solutions",
		FieldBusinessType:       "Technology",
		FieldBusinessGoals:      goals,
		FieldAccommodationNeeds: repeatTo("Flexible schedule and remote work options. ", 150),
		FieldTargetMarket:       "Texas small businesses and local community organizations",
		FieldEstimatedBudget:    "$75,000",
		FieldTimeline:           "6 months",
		FieldExpectedOutcomes:   "Launch MVP and secure 10 clients",
	}
}

func newTestScorer() *Scorer {
	return NewScorer(nil)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestCalculate_EmptyInput(t *testing.T) {
	result := newTestScorer().Calculate(Input{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, RecommendationRefine, result.Recommendation)
	assert.Equal(t, []string{
		"Completeness: 0%",
		"Detail Level: 0%",
		"Budget: Needs specification",
		"Market Alignment: 0%",
		"Implementation Readiness: Not defined",
	}, result.Factors)

	nilResult := newTestScorer().Calculate(nil)
	assert.Equal(t, result, nilResult)
}

func TestCalculate_CompleteExample(t *testing.T) {
	input := createCompleteInput()
	require.Len(t, []rune(input.Text(FieldBusinessGoals)), 150)
	require.Contains(t, input.Text(FieldBusinessGoals), "sustainable")

	result := newTestScorer().Calculate(input)

	assert.Equal(t, 97, result.Score)
	assert.Equal(t, RecommendationHigh, result.Recommendation)
	assert.Equal(t, []string{
		"Completeness: 100%",
		"Detail Level: 100%",
		"Budget: Well-defined",
		"Market Alignment: 80%",
		"Implementation Readiness: Well-defined",
	}, result.Factors)
}

func TestCalculate_Dimensions(t *testing.T) {
	tests := []struct {
		name           string
		input          Input
		expectedScore  int
		expectedFactor string
		factorIndex    int
	}{
		{
			name:           "single required field rounds half to even",
			input:          Input{FieldBusinessName: "Acme"},
			expectedScore:  8,
			expectedFactor: "Completeness: 25%",
			factorIndex:    0,
		},
		{
			name:           "three required fields rounds half to even",
			input:          Input{FieldBusinessName: "Acme", FieldBusinessType: "Retail", FieldBusinessGoals: "Grow"},
			expectedScore:  22,
			expectedFactor: "Completeness: 75%",
			factorIndex:    0,
		},
		{
			name:           "long accommodation needs",
			input:          Input{FieldAccommodationNeeds: strings.Repeat("a", 101)},
			expectedScore:  18,
			expectedFactor: "Detail Level: 40%",
			factorIndex:    1,
		},
		{
			name:           "detail thresholds are exclusive",
			input:          Input{FieldBusinessGoals: strings.Repeat("g", 100), FieldTargetMarket: strings.Repeat("t", 50)},
			expectedScore:  8,
			expectedFactor: "Detail Level: 0%",
			factorIndex:    1,
		},
		{
			name:           "target market detail only",
			input:          Input{FieldTargetMarket: strings.Repeat("t", 51)},
			expectedScore:  5,
			expectedFactor: "Detail Level: 20%",
			factorIndex:    1,
		},
		{
			name:           "budget with digits",
			input:          Input{FieldEstimatedBudget: "about 5k"},
			expectedScore:  20,
			expectedFactor: "Budget: Well-defined",
			factorIndex:    2,
		},
		{
			name:           "budget without digits",
			input:          Input{FieldEstimatedBudget: "a lot"},
			expectedScore:  0,
			expectedFactor: "Budget: Needs specification",
			factorIndex:    2,
		},
		{
			name:           "market keywords are case-insensitive",
			input:          Input{FieldTargetMarket: "TEXAS Local"},
			expectedScore:  6,
			expectedFactor: "Market Alignment: 40%",
			factorIndex:    3,
		},
		{
			name:           "market keywords found across both fields",
			input:          Input{FieldTargetMarket: "community", FieldBusinessGoals: "customer"},
			expectedScore:  14,
			expectedFactor: "Market Alignment: 40%",
			factorIndex:    3,
		},
		{
			name:           "timeline only",
			input:          Input{FieldTimeline: "Q3"},
			expectedScore:  5,
			expectedFactor: "Implementation Readiness: Partially defined",
			factorIndex:    4,
		},
		{
			name:           "timeline and outcomes",
			input:          Input{FieldTimeline: "Q3", FieldExpectedOutcomes: "10 clients"},
			expectedScore:  10,
			expectedFactor: "Implementation Readiness: Well-defined",
			factorIndex:    4,
		},
	}

	scorer := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Calculate(tt.input)
			assert.Equal(t, tt.expectedScore, result.Score)
			require.Len(t, result.Factors, 5)
			assert.Equal(t, tt.expectedFactor, result.Factors[tt.factorIndex])
		})
	}
}

func TestCalculate_RecommendationUsesRawScore(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		score    int
		expected string
	}{
		{
			// 22.5 + 20 + 10 + 6 = 58.5
			name: "below moderate",
			input: Input{
				FieldBusinessName: "A", FieldBusinessType: "B", FieldBusinessGoals: "texas local",
				FieldEstimatedBudget: "1", FieldTimeline: "t", FieldExpectedOutcomes: "o",
			},
			score:    58,
			expected: RecommendationRefine,
		},
		{
			// 30 + 20 + 10 = 60
			name: "moderate boundary",
			input: Input{
				FieldBusinessName: "A", FieldBusinessType: "B", FieldBusinessGoals: "C", FieldAccommodationNeeds: "D",
				FieldEstimatedBudget: "1", FieldTimeline: "t", FieldExpectedOutcomes: "o",
			},
			score:    60,
			expected: RecommendationModerate,
		},
		{
			// 30 + 10 + 20 + 3 + 10 = 73
			name: "moderate",
			input: Input{
				FieldBusinessName: "A", FieldBusinessType: "B", FieldBusinessGoals: strings.Repeat("x", 101) + " texas",
				FieldAccommodationNeeds: "D", FieldEstimatedBudget: "1", FieldTimeline: "t", FieldExpectedOutcomes: "o",
			},
			score:    73,
			expected: RecommendationModerate,
		},
	}

	scorer := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Calculate(tt.input)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.expected, result.Recommendation)
		})
	}
}

func TestCalculate_AllKeywordsCapsAtHundred(t *testing.T) {
	input := createCompleteInput()
	input[FieldTargetMarket] = "Texas local community market customers across the region"

	result := newTestScorer().Calculate(input)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Market Alignment: 100%", result.Factors[3])
	assert.Equal(t, RecommendationHigh, result.Recommendation)
}

// ==========================
// Properties
// ==========================

func TestCalculate_ScoreAlwaysInRange(t *testing.T) {
	scorer := newTestScorer()
	inputs := []Input{
		{},
		createCompleteInput(),
		{FieldBusinessName: 42.0, FieldTimeline: true, FieldExpectedOutcomes: false},
		{FieldBusinessGoals: []interface{}{"texas"}, FieldTargetMarket: map[string]interface{}{"a": 1}},
		{"unknownField": "ignored", FieldEstimatedBudget: nil},
	}

	for _, in := range inputs {
		result := scorer.Calculate(in)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		assert.Len(t, result.Factors, 5)
	}
}

func TestCalculate_MonotonicInRequiredFields(t *testing.T) {
	scorer := newTestScorer()
	base := Input{FieldEstimatedBudget: "$10", FieldTargetMarket: "texas"}

	previous := scorer.Calculate(base).Score
	for _, field := range DefaultRubric().RequiredFields {
		base[field] = "value for " + field
		current := scorer.Calculate(base).Score
		assert.GreaterOrEqual(t, current, previous, "adding %s lowered the score", field)
		previous = current
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	scorer := newTestScorer()
	input := createCompleteInput()
	snapshot := Input{}
	for k, v := range input {
		snapshot[k] = v
	}

	first := scorer.Calculate(input)
	second := scorer.Calculate(input)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, input)
}

func TestCalculate_Concurrent(t *testing.T) {
	scorer := newTestScorer()
	input := createCompleteInput()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, 97, scorer.Calculate(input).Score)
			}
		}()
	}
	wg.Wait()
}

// ==========================
// Input Coercion
// ==========================

func TestInput_Text(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "string trimmed", value: "  hello  ", expected: "hello"},
		{name: "whitespace only", value: " \t\n ", expected: ""},
		{name: "json number", value: 75000.0, expected: "75000"},
		{name: "fractional number", value: 1.5, expected: "1.5"},
		{name: "int", value: 12, expected: "12"},
		{name: "true", value: true, expected: "true"},
		{name: "false", value: false, expected: ""},
		{name: "null", value: nil, expected: ""},
		{name: "array", value: []interface{}{"a"}, expected: ""},
		{name: "object", value: map[string]interface{}{"a": "b"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{"field": tt.value}
			assert.Equal(t, tt.expected, in.Text("field"))
			assert.Equal(t, tt.expected != "", in.Present("field"))
		})
	}

	assert.False(t, Input{}.Present("missing"))
}

func TestCalculate_NonStringValues(t *testing.T) {
	result := newTestScorer().Calculate(Input{
		FieldBusinessName:    "Acme",
		FieldBusinessType:    true,
		FieldBusinessGoals:   false,
		FieldEstimatedBudget: 50000.0,
		FieldTimeline:        nil,
	})

	assert.Equal(t, "Completeness: 50%", result.Factors[0])
	assert.Equal(t, "Budget: Well-defined", result.Factors[2])
	assert.Equal(t, "Implementation Readiness: Not defined", result.Factors[4])
	assert.Equal(t, 35, result.Score)
}

func TestCalculate_WhitespaceIsAbsent(t *testing.T) {
	result := newTestScorer().Calculate(Input{
		FieldBusinessName:     "   ",
		FieldTimeline:         "\t",
		FieldExpectedOutcomes: "\n",
	})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "Completeness: 0%", result.Factors[0])
}

func TestCalculate_DetailCountsCharactersNotBytes(t *testing.T) {
	// 60 two-byte runes: over 100 bytes but under 100 characters
	result := newTestScorer().Calculate(Input{FieldAccommodationNeeds: strings.Repeat("é", 60)})

	assert.Equal(t, "Detail Level: 0%", result.Factors[1])
}

func TestNewScorer_CopiesRubric(t *testing.T) {
	rubric := DefaultRubric()
	scorer := NewScorer(rubric)

	rubric.RequiredFields[0] = "mutated"
	rubric.CompletenessWeight = 0

	active := scorer.Rubric()
	assert.Equal(t, FieldBusinessName, active.RequiredFields[0])
	assert.Equal(t, 30.0, active.CompletenessWeight)
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkScorer_Calculate(b *testing.B) {
	scorer := newTestScorer()
	input := createCompleteInput()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		scorer.Calculate(input)
	}
}

func BenchmarkScorer_Calculate_Empty(b *testing.B) {
	scorer := newTestScorer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		scorer.Calculate(Input{})
	}
}
