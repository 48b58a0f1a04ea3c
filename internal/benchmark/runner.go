// internal/benchmark/runner.go
package benchmark

import (
	"context"
	"fmt"
	"runtime"
	"time"
	"unicode/utf8"

	"idea-service/internal/common/logger"
	feasibilityscorer "idea-service/internal/services/feasibility-scorer"

	"golang.org/x/sync/errgroup"
)

type Generator interface {
	Generate(category string, context map[string]string) string
	Categories() []string
}

type Scorer interface {
	Calculate(input feasibilityscorer.Input) feasibilityscorer.Result
}

// Runner times the generator and scorer in-process.
type Runner struct {
	generator Generator
	scorer    Scorer
	config    *Config
	logger    logger.Logger
	now       func() time.Time
}

func NewRunner(generator Generator, scorer Scorer, config *Config, log logger.Logger) (*Runner, error) {
	if generator == nil || scorer == nil {
		return nil, fmt.Errorf("benchmark runner needs a generator and a scorer")
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid benchmark config: %w", err)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Runner{
		generator: generator,
		scorer:    scorer,
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"component": "benchmark"}),
		now:       time.Now,
	}, nil
}

// Run executes every section in order, stopping early when ctx is canceled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		GeneratedAt: r.now().UTC(),
		GoVersion:   runtime.Version(),
	}

	steps := []struct {
		name string
		fn   func(context.Context, *Report) error
	}{
		{name: "idea generation", fn: r.benchmarkGeneration},
		{name: "validation", fn: r.benchmarkValidation},
		{name: "content quality", fn: r.benchmarkQuality},
		{name: "scalability", fn: r.benchmarkScalability},
		{name: "memory", fn: r.benchmarkMemory},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("benchmark %s: %w", step.name, err)
		}
		r.logger.Info("running benchmark section", map[string]interface{}{"section": step.name})
		if err := step.fn(ctx, report); err != nil {
			return nil, fmt.Errorf("benchmark %s: %w", step.name, err)
		}
	}

	return report, nil
}

func (r *Runner) benchmarkGeneration(_ context.Context, report *Report) error {
	for _, category := range r.generator.Categories() {
		report.Timings = append(report.Timings, NamedTiming{
			Name:        "Idea Generation - " + category,
			TimingStats: r.timeFunc(func() { r.generator.Generate(category, nil) }),
		})
	}
	report.Timings = append(report.Timings, NamedTiming{
		Name:        "Idea Generation - With Context",
		TimingStats: r.timeFunc(func() { r.generator.Generate(r.config.Category, benchmarkContext) }),
	})
	return nil
}

func (r *Runner) benchmarkValidation(_ context.Context, report *Report) error {
	for _, ds := range ValidationDataSets() {
		input := ds.Input
		report.Timings = append(report.Timings, NamedTiming{
			Name:        "Validation - " + ds.Name,
			TimingStats: r.timeFunc(func() { r.scorer.Calculate(input) }),
		})
	}
	return nil
}

func (r *Runner) benchmarkQuality(_ context.Context, report *Report) error {
	n := r.config.QualitySamples

	seen := make(map[string]struct{}, n)
	lengths := make([]float64, 0, n)
	minLen, maxLen := 0, 0
	for i := 0; i < n; i++ {
		idea := r.generator.Generate(r.config.Category, nil)
		seen[idea] = struct{}{}

		l := utf8.RuneCountInString(idea)
		lengths = append(lengths, float64(l))
		if i == 0 || l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}
	report.IdeaQuality = IdeaQuality{
		TotalGenerated:  n,
		UniqueIdeas:     len(seen),
		UniquenessRatio: float64(len(seen)) / float64(n),
		AvgLengthChars:  mean(lengths),
		MinLengthChars:  minLen,
		MaxLengthChars:  maxLen,
	}

	scores := make([]float64, 0, n)
	minScore, maxScore := 0, 0
	for i := 0; i < n; i++ {
		s := r.scorer.Calculate(consistencyInput).Score
		scores = append(scores, float64(s))
		if i == 0 || s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}
	sd := stdDev(scores)
	consistency := "GOOD"
	if sd == 0 {
		consistency = "EXCELLENT"
	}
	report.Scoring = ScoreQuality{
		MeanScore:   mean(scores),
		StdDevScore: sd,
		MinScore:    minScore,
		MaxScore:    maxScore,
		Consistency: consistency,
	}
	return nil
}

func (r *Runner) benchmarkScalability(ctx context.Context, report *Report) error {
	for _, size := range r.config.BatchSizes {
		start := time.Now()
		for i := 0; i < size; i++ {
			r.generator.Generate(r.config.Category, nil)
		}
		report.Scalability = append(report.Scalability, newScalabilityRun(size, ModeSequential, 1, time.Since(start)))

		elapsed, err := r.runConcurrentBatch(ctx, size)
		if err != nil {
			return err
		}
		report.Scalability = append(report.Scalability, newScalabilityRun(size, ModeConcurrent, r.config.Workers, elapsed))
	}
	return nil
}

// runConcurrentBatch spreads size generations over the configured worker count.
func (r *Runner) runConcurrentBatch(ctx context.Context, size int) (time.Duration, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	start := time.Now()
	for i := 0; i < size; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.generator.Generate(r.config.Category, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

func (r *Runner) benchmarkMemory(_ context.Context, report *Report) error {
	complete := ValidationDataSets()[3].Input
	report.Memory = []AllocationResult{
		measureAllocs("Idea Generation", r.config.Iterations, func() { r.generator.Generate(r.config.Category, nil) }),
		measureAllocs("Validation - Complete Data", r.config.Iterations, func() { r.scorer.Calculate(complete) }),
	}
	return nil
}

func (r *Runner) timeFunc(fn func()) TimingStats {
	samples := make([]float64, r.config.Iterations)
	for i := range samples {
		start := time.Now()
		fn()
		samples[i] = durationMS(time.Since(start))
	}
	return summarize(samples)
}

func newScalabilityRun(size int, mode string, workers int, elapsed time.Duration) ScalabilityRun {
	totalMS := durationMS(elapsed)
	run := ScalabilityRun{
		BatchSize:    size,
		Mode:         mode,
		Workers:      workers,
		TotalTimeMS:  totalMS,
		AvgPerItemMS: totalMS / float64(size),
	}
	if elapsed > 0 {
		run.ThroughputPerSec = float64(size) / elapsed.Seconds()
	}
	return run
}

// measureAllocs reports average heap bytes and allocations per call of fn.
func measureAllocs(name string, runs int, fn func()) AllocationResult {
	// warm up lazily initialized state
	fn()

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	for i := 0; i < runs; i++ {
		fn()
	}
	runtime.ReadMemStats(&after)

	return AllocationResult{
		Name:        name,
		BytesPerOp:  float64(after.TotalAlloc-before.TotalAlloc) / float64(runs),
		AllocsPerOp: float64(after.Mallocs-before.Mallocs) / float64(runs),
	}
}
