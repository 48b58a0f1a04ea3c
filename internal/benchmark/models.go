// internal/benchmark/models.go
package benchmark

import "time"

type Report struct {
	GeneratedAt time.Time          `json:"generated_at" yaml:"generated_at"`
	GoVersion   string             `json:"go_version" yaml:"go_version"`
	Timings     []NamedTiming      `json:"timings" yaml:"timings"`
	IdeaQuality IdeaQuality        `json:"idea_quality" yaml:"idea_quality"`
	Scoring     ScoreQuality       `json:"score_quality" yaml:"score_quality"`
	Scalability []ScalabilityRun   `json:"scalability" yaml:"scalability"`
	Memory      []AllocationResult `json:"memory" yaml:"memory"`
}

type NamedTiming struct {
	Name        string `json:"name" yaml:"name"`
	TimingStats `yaml:",inline"`
}

type TimingStats struct {
	MeanMS     float64 `json:"mean_ms" yaml:"mean_ms"`
	MedianMS   float64 `json:"median_ms" yaml:"median_ms"`
	MinMS      float64 `json:"min_ms" yaml:"min_ms"`
	MaxMS      float64 `json:"max_ms" yaml:"max_ms"`
	StdDevMS   float64 `json:"std_dev_ms" yaml:"std_dev_ms"`
	Iterations int     `json:"iterations" yaml:"iterations"`
}

type IdeaQuality struct {
	TotalGenerated  int     `json:"total_generated" yaml:"total_generated"`
	UniqueIdeas     int     `json:"unique_ideas" yaml:"unique_ideas"`
	UniquenessRatio float64 `json:"uniqueness_ratio" yaml:"uniqueness_ratio"`
	AvgLengthChars  float64 `json:"avg_length_chars" yaml:"avg_length_chars"`
	MinLengthChars  int     `json:"min_length_chars" yaml:"min_length_chars"`
	MaxLengthChars  int     `json:"max_length_chars" yaml:"max_length_chars"`
}

type ScoreQuality struct {
	MeanScore   float64 `json:"mean_score" yaml:"mean_score"`
	StdDevScore float64 `json:"std_dev_score" yaml:"std_dev_score"`
	MinScore    int     `json:"min_score" yaml:"min_score"`
	MaxScore    int     `json:"max_score" yaml:"max_score"`
	Consistency string  `json:"consistency" yaml:"consistency"`
}

const (
	ModeSequential = "sequential"
	ModeConcurrent = "concurrent"
)

type ScalabilityRun struct {
	BatchSize        int     `json:"batch_size" yaml:"batch_size"`
	Mode             string  `json:"mode" yaml:"mode"`
	Workers          int     `json:"workers" yaml:"workers"`
	TotalTimeMS      float64 `json:"total_time_ms" yaml:"total_time_ms"`
	AvgPerItemMS     float64 `json:"avg_per_item_ms" yaml:"avg_per_item_ms"`
	ThroughputPerSec float64 `json:"throughput_per_sec" yaml:"throughput_per_sec"`
}

// AllocationResult is the average heap cost of one call.
type AllocationResult struct {
	Name        string  `json:"name" yaml:"name"`
	BytesPerOp  float64 `json:"bytes_per_op" yaml:"bytes_per_op"`
	AllocsPerOp float64 `json:"allocs_per_op" yaml:"allocs_per_op"`
}
