// internal/services/idea-enhancer/enhancer_test.go
package ideaenhancer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const marketBlock = "\n\nTexas Market Advantages:\n- Strong economic growth\n- Business-friendly regulations\n- Access to diverse markets\n\nEstimated Startup: $25,000-$75,000\nTarget Demographics: Texas professionals and entrepreneurs"

func TestIsEnhanceRequest(t *testing.T) {
	tests := []struct {
		prompt string
		want   bool
	}{
		{prompt: `enhance "Tech Startup in Austin"`, want: true},
		{prompt: `Please ENHANCE this idea`, want: true},
		{prompt: `an enhancement request`, want: true},
		{prompt: `Generate a business idea`, want: false},
		{prompt: ``, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEnhanceRequest(tt.prompt))
		})
	}
}

func TestExtractBase(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{name: "quoted idea", prompt: `enhance "Tech Startup in Austin"`, want: "Tech Startup in Austin"},
		{name: "first pair wins", prompt: `enhance "one" and "two"`, want: "one"},
		{name: "no quotes", prompt: `enhance my idea`, want: ""},
		{name: "unterminated quote", prompt: `enhance "open ended`, want: "open ended"},
		{name: "empty quotes", prompt: `enhance ""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBase(tt.prompt))
		})
	}
}

func TestEnhance(t *testing.T) {
	out := Enhance(`enhance "Tech Startup in Austin"`)

	assert.Equal(t, "Tech Startup in Austin"+marketBlock, out)
	assert.Contains(t, out, "Tech Startup in Austin")
	assert.Contains(t, out, "Texas Market Advantages")
	assert.Contains(t, out, "$25,000-$75,000")
}

func TestEnhance_NoQuotedBase(t *testing.T) {
	out := Enhance("enhance something")

	assert.Equal(t, marketBlock, out)
	assert.True(t, strings.HasPrefix(out, "\n\n"))
}

func BenchmarkEnhance(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Enhance(`enhance "Tech Startup in Austin"`)
	}
}
