// internal/services/idea-generator/generator.go
package ideagenerator

import (
	"errors"
	"fmt"
	"strings"
)

// NotFound is returned by Generate for categories outside the table.
const NotFound = "Category not found"

var ErrInvalidConfig = errors.New("invalid idea generator config")

// Generator produces templated idea sentences. Its tables are copied at
// construction and never written again, so one Generator serves all requests.
type Generator struct {
	order     []string
	templates map[string][]string
	patterns  map[string]string
	locations []string
	rnd       RandomSource
}

// NewGenerator validates cfg and copies its tables. A nil src uses the runtime generator.
func NewGenerator(cfg *Config, src RandomSource) (*Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if len(cfg.CategoryOrder) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidConfig)
	}
	if len(cfg.Locations) == 0 {
		return nil, fmt.Errorf("%w: no location keywords", ErrInvalidConfig)
	}
	if src == nil {
		src = runtimeSource{}
	}

	g := &Generator{
		order:     append([]string(nil), cfg.CategoryOrder...),
		templates: make(map[string][]string, len(cfg.CategoryOrder)),
		patterns:  make(map[string]string, len(cfg.CategoryOrder)),
		locations: append([]string(nil), cfg.Locations...),
		rnd:       src,
	}

	for _, category := range cfg.CategoryOrder {
		templates := cfg.Templates[category]
		if len(templates) == 0 {
			return nil, fmt.Errorf("%w: category %q has no templates", ErrInvalidConfig, category)
		}
		pattern, ok := cfg.Patterns[category]
		if !ok || strings.Count(pattern, "%s") != 2 {
			return nil, fmt.Errorf("%w: category %q needs a pattern with two %%s verbs", ErrInvalidConfig, category)
		}
		g.templates[category] = append([]string(nil), templates...)
		g.patterns[category] = pattern
	}

	return g, nil
}

// Generate returns one idea for category, or NotFound without drawing from the
// random source. context is accepted for forward compatibility and does not
// affect the sentence.
func (g *Generator) Generate(category string, context map[string]string) string {
	templates, ok := g.templates[category]
	if !ok {
		return NotFound
	}

	template := templates[g.rnd.IntN(len(templates))]
	location := g.locations[g.rnd.IntN(len(g.locations))]

	return fmt.Sprintf(g.patterns[category], template, location)
}

// Categories lists the known categories in table order.
func (g *Generator) Categories() []string {
	return append([]string(nil), g.order...)
}

// HasCategory reports whether category is in the table.
func (g *Generator) HasCategory(category string) bool {
	_, ok := g.templates[category]
	return ok
}

// Templates returns a copy of category's phrase list.
func (g *Generator) Templates(category string) []string {
	return append([]string(nil), g.templates[category]...)
}

// Locations returns a copy of the location keyword list.
func (g *Generator) Locations() []string {
	return append([]string(nil), g.locations...)
}
