// internal/services/idea-enhancer/enhancer.go
package ideaenhancer

import "strings"

const (
	// Keyword switches /api/generate from generation to enhancement, case-insensitively.
	Keyword = "enhance"

	MarketAdvantagesHeading = "Texas Market Advantages:"
	BudgetRange             = "$25,000-$75,000"
	TargetDemographics      = "Texas professionals and entrepreneurs"
)

var marketAdvantages = []string{
	"Strong economic growth",
	"Business-friendly regulations",
	"Access to diverse markets",
}

// IsEnhanceRequest reports whether prompt asks for enhancement.
func IsEnhanceRequest(prompt string) bool {
	return strings.Contains(strings.ToLower(prompt), Keyword)
}

// ExtractBase returns the text between the first pair of double quotes. With a
// single quote it returns everything after it; with none it returns "".
func ExtractBase(prompt string) string {
	parts := strings.Split(prompt, `"`)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Enhance appends the Texas market block to the quoted idea in prompt.
func Enhance(prompt string) string {
	var b strings.Builder
	b.WriteString(ExtractBase(prompt))
	b.WriteString("\n\n")
	b.WriteString(MarketAdvantagesHeading)
	for _, adv := range marketAdvantages {
		b.WriteString("\n- ")
		b.WriteString(adv)
	}
	b.WriteString("\n\nEstimated Startup: ")
	b.WriteString(BudgetRange)
	b.WriteString("\nTarget Demographics: ")
	b.WriteString(TargetDemographics)
	return b.String()
}
