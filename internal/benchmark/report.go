// internal/benchmark/report.go
package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	DefaultReportPath = "benchmark_results.json"
)

var rule = strings.Repeat("=", 80)

// Print writes a human-readable table of the report.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "BENCHMARK RESULTS - Texas Idea Generator AI Service")
	fmt.Fprintln(w, rule)

	for _, t := range r.Timings {
		section(w, t.Name)
		floatRow(w, "mean_ms", t.MeanMS)
		floatRow(w, "median_ms", t.MedianMS)
		floatRow(w, "min_ms", t.MinMS)
		floatRow(w, "max_ms", t.MaxMS)
		floatRow(w, "std_dev_ms", t.StdDevMS)
		intRow(w, "iterations", t.Iterations)
	}

	section(w, "Content Quality - Ideas")
	intRow(w, "total_generated", r.IdeaQuality.TotalGenerated)
	intRow(w, "unique_ideas", r.IdeaQuality.UniqueIdeas)
	floatRow(w, "uniqueness_ratio", r.IdeaQuality.UniquenessRatio)
	floatRow(w, "avg_length_chars", r.IdeaQuality.AvgLengthChars)
	intRow(w, "min_length_chars", r.IdeaQuality.MinLengthChars)
	intRow(w, "max_length_chars", r.IdeaQuality.MaxLengthChars)

	section(w, "Content Quality - Validation")
	floatRow(w, "mean_score", r.Scoring.MeanScore)
	floatRow(w, "std_dev_score", r.Scoring.StdDevScore)
	intRow(w, "min_score", r.Scoring.MinScore)
	intRow(w, "max_score", r.Scoring.MaxScore)
	stringRow(w, "consistency", r.Scoring.Consistency)

	for _, s := range r.Scalability {
		section(w, fmt.Sprintf("Scalability - Batch %d (%s)", s.BatchSize, s.Mode))
		intRow(w, "batch_size", s.BatchSize)
		intRow(w, "workers", s.Workers)
		floatRow(w, "total_time_ms", s.TotalTimeMS)
		floatRow(w, "avg_per_item_ms", s.AvgPerItemMS)
		floatRow(w, "throughput_per_sec", s.ThroughputPerSec)
	}

	for _, m := range r.Memory {
		section(w, "Memory - "+m.Name)
		floatRow(w, "bytes_per_op", m.BytesPerOp)
		floatRow(w, "allocs_per_op", m.AllocsPerOp)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}

func section(w io.Writer, name string) {
	fmt.Fprintf(w, "\n%s:\n%s\n", name, strings.Repeat("-", 80))
}

func floatRow(w io.Writer, key string, v float64) {
	fmt.Fprintf(w, "  %-40s: %12.4f\n", key, v)
}

func intRow(w io.Writer, key string, v int) {
	fmt.Fprintf(w, "  %-40s: %12d\n", key, v)
}

func stringRow(w io.Writer, key, v string) {
	fmt.Fprintf(w, "  %-40s: %12s\n", key, v)
}

func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// FormatForPath picks the format from the file extension, defaulting to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Save writes the report to path in format; an empty format is inferred from path.
func (r *Report) Save(path, format string) error {
	if format == "" {
		format = FormatForPath(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		err = r.WriteJSON(f)
	case FormatYAML:
		err = r.WriteYAML(f)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}
	return f.Close()
}
