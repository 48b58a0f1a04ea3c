// internal/benchmark/config.go
package benchmark

import (
	"fmt"
	"runtime"

	feasibilityscorer "idea-service/internal/services/feasibility-scorer"
)

type Config struct {
	Iterations     int
	QualitySamples int
	BatchSizes     []int
	Workers        int
	// Category is the one used for quality and scalability runs.
	Category string
}

func DefaultConfig() *Config {
	return &Config{
		Iterations:     1000,
		QualitySamples: 100,
		BatchSizes:     []int{10, 50, 100, 500, 1000},
		Workers:        runtime.GOMAXPROCS(0),
		Category:       "businesses",
	}
}

func (c *Config) validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.QualitySamples < 1 {
		return fmt.Errorf("quality samples must be positive, got %d", c.QualitySamples)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	for _, size := range c.BatchSizes {
		if size < 1 {
			return fmt.Errorf("batch sizes must be positive, got %d", size)
		}
	}
	return nil
}

// DataSet is one named validation input timed by the suite.
type DataSet struct {
	Name  string
	Input feasibilityscorer.Input
}

// ValidationDataSets are the inputs timed by the validation section, from empty to complete.
func ValidationDataSets() []DataSet {
	return []DataSet{
		{Name: "Empty Data", Input: feasibilityscorer.Input{}},
		{Name: "Minimal Data", Input: feasibilityscorer.Input{
			"businessName": "Test Business",
		}},
		{Name: "Partial Data", Input: feasibilityscorer.Input{
			"businessName":  "Test Business",
			"businessType":  "Technology",
			"businessGoals": "Create solutions",
		}},
		{Name: "Complete Data", Input: feasibilityscorer.Input{
			"businessName":       "Texas Tech Solutions",
			"businessType":       "Technology",
			"businessGoals":      "Create innovative software solutions for Texas businesses with a focus on sustainable growth and customer satisfaction",
			"accommodationNeeds": "Require accessible workspace with ergonomic equipment, flexible scheduling, and assistive technology for development work",
			"targetMarket":       "Texas small businesses and local community organizations",
			"estimatedBudget":    "$75,000",
			"timeline":           "6 months",
			"expectedOutcomes":   "Launch MVP and secure 10 clients",
		}},
	}
}

// consistencyInput is scored repeatedly to confirm the scorer is deterministic.
var consistencyInput = feasibilityscorer.Input{
	"businessName":       "Test Business",
	"businessType":       "Technology",
	"businessGoals":      "Create solutions",
	"accommodationNeeds": "Accessible workspace",
}

var benchmarkContext = map[string]string{
	"region":   "Austin",
	"industry": "technology",
}
