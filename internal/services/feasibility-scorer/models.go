// internal/services/feasibility-scorer/models.go
package feasibilityscorer

import (
	"strconv"
	"strings"
)

// Input is the decoded validate request body. Unknown keys are ignored.
type Input map[string]interface{}

// Result is the outcome of one scoring call.
type Result struct {
	Score          int      `json:"score"`
	Factors        []string `json:"factors"`
	Recommendation string   `json:"recommendation"`
}

// Text returns field coerced to trimmed text. Numbers render in shortest
// decimal form, true renders as "true"; false, null, arrays and objects are empty.
func (in Input) Text(field string) string {
	raw, ok := in[field]
	if !ok {
		return ""
	}

	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		if v {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// Present reports whether field carries a non-blank value.
func (in Input) Present(field string) bool {
	return in.Text(field) != ""
}
