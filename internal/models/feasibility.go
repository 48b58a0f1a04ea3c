// internal/models/feasibility.go
package models

// ValidateResponse is returned by POST /api/validate. The request body is the raw
// field map, so it has no dedicated type.
type ValidateResponse struct {
	FeasibilityScore int      `json:"feasibility_score"`
	Factors          []string `json:"factors"`
	Recommendation   string   `json:"recommendation"`
	Timestamp        float64  `json:"timestamp"`
}
