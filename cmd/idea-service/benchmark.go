// cmd/idea-service/benchmark.go
package main

import (
	"fmt"

	"idea-service/internal/benchmark"
	"idea-service/internal/common/logger"
	feasibilityscorer "idea-service/internal/services/feasibility-scorer"
	ideagenerator "idea-service/internal/services/idea-generator"

	"github.com/spf13/cobra"
)

var benchOpts = struct {
	iterations int
	samples    int
	workers    int
	batches    []int
	output     string
	format     string
	seed       uint64
}{}

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Benchmark idea generation and feasibility scoring in-process",
	Long: `Times the generator for every category and the scorer for empty through
complete inputs, checks content quality, runs sequential and concurrent batches,
and writes a JSON or YAML report.`,
	RunE: runBenchmark,
}

func init() {
	defaults := benchmark.DefaultConfig()
	f := benchmarkCmd.Flags()
	f.IntVar(&benchOpts.iterations, "iterations", defaults.Iterations, "Timed calls per measurement")
	f.IntVar(&benchOpts.samples, "samples", defaults.QualitySamples, "Samples for content quality checks")
	f.IntVar(&benchOpts.workers, "workers", defaults.Workers, "Workers for concurrent batches")
	f.IntSliceVar(&benchOpts.batches, "batches", defaults.BatchSizes, "Scalability batch sizes")
	f.StringVarP(&benchOpts.output, "output", "o", benchmark.DefaultReportPath, "Report file; empty to skip")
	f.StringVar(&benchOpts.format, "format", "", "Report format: json or yaml (default: from file extension)")
	f.Uint64Var(&benchOpts.seed, "seed", 0, "Generator seed; 0 for unseeded")
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	log := logger.NewStructured("warn", "console", "stderr")
	defer log.Sync()

	generator, err := ideagenerator.NewGenerator(ideagenerator.DefaultConfig(), ideagenerator.NewSource(benchOpts.seed))
	if err != nil {
		return err
	}

	runner, err := benchmark.NewRunner(generator, feasibilityscorer.NewScorer(nil), &benchmark.Config{
		Iterations:     benchOpts.iterations,
		QualitySamples: benchOpts.samples,
		BatchSizes:     benchOpts.batches,
		Workers:        benchOpts.workers,
		Category:       ideagenerator.CategoryBusinesses,
	}, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Running benchmark suite...")

	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	report.Print(out)

	if benchOpts.output == "" {
		return nil
	}
	if err := report.Save(benchOpts.output, benchOpts.format); err != nil {
		return err
	}
	fmt.Fprintf(out, "Results saved to %s\n", benchOpts.output)
	return nil
}
