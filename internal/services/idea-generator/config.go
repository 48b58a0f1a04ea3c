// internal/services/idea-generator/config.go
package ideagenerator

const (
	CategoryJobs           = "jobs"
	CategoryBusinesses     = "businesses"
	CategorySelfEmployment = "self-employment"
	CategoryContracts      = "contracts"
)

// Config holds the phrase tables the generator draws from. Category order is
// the order Categories reports.
type Config struct {
	CategoryOrder []string
	Templates     map[string][]string
	Locations     []string
	Patterns      map[string]string // fmt pattern per category: template, then location
}

// DefaultConfig returns the Texas phrase tables.
func DefaultConfig() *Config {
	return &Config{
		CategoryOrder: []string{CategoryJobs, CategoryBusinesses, CategorySelfEmployment, CategoryContracts},
		Templates: map[string][]string{
			CategoryJobs: {
				"technology sector",
				"energy industry",
				"healthcare field",
				"logistics and transportation",
				"agriculture and farming",
			},
			CategoryBusinesses: {
				"retail innovation",
				"service-based enterprise",
				"sustainable solutions",
				"food and beverage",
				"technology startup",
			},
			CategorySelfEmployment: {
				"freelance services",
				"consulting practice",
				"creative arts",
				"skilled trades",
				"digital services",
			},
			CategoryContracts: {
				"government contracting",
				"municipal services",
				"infrastructure projects",
				"public sector consulting",
				"community services",
			},
		},
		Locations: []string{
			"Texas", "Lone Star", "Dallas", "Houston", "Austin",
			"San Antonio", "border", "Gulf Coast", "Permian Basin",
		},
		Patterns: map[string]string{
			CategoryJobs:           "AI-optimized position in %s focusing on %s market opportunities with emphasis on innovation and growth",
			CategoryBusinesses:     "Launch a %s in %s leveraging Texas market advantages and sustainable business practices",
			CategorySelfEmployment: "Build a %s business serving the %s area with focus on flexible, scalable operations",
			CategoryContracts:      "Secure %s opportunities in %s region supporting public infrastructure and community development",
		},
	}
}
