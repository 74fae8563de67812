// Package harness benchmarks the four hull algorithms across input
// sizes and distributions. Every algorithm in a trial sees the exact
// same generated point set, so elapsed times are directly comparable.
package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/hullbench/hullbench/internal/generator"
	"github.com/hullbench/hullbench/internal/geometry"
	"github.com/hullbench/hullbench/internal/hull"
)

// ErrTrialTimeout marks a trial that exceeded the configured wall budget.
var ErrTrialTimeout = errors.New("trial exceeded wall-clock budget")

// seedMix spaces per-trial seeds so neighbouring trials do not share
// generator state.
const seedMix = 0x9E3779B97F4A7C15

// Config declares a benchmark run. Validate must pass before any
// generation or timing happens.
type Config struct {
	Sizes         []int
	Distributions []generator.Distribution
	Algorithms    []hull.Algorithm
	Trials        int
	Seed          uint64
	Workers       int           // 0 = runtime.NumCPU(), 1 = sequential
	Timeout       time.Duration // per-algorithm wall budget, 0 = none
}

// DefaultConfig mirrors the size sweep used for runtime analysis.
func DefaultConfig() Config {
	return Config{
		Sizes:         []int{10, 50, 100, 200, 400, 800, 1000},
		Distributions: []generator.Distribution{generator.Uniform, generator.Gaussian},
		Algorithms:    hull.Algorithms(),
		Trials:        5,
		Seed:          42,
		Workers:       0,
		Timeout:       30 * time.Second,
	}
}

// Validate checks the configuration and fails fast with a descriptive
// error before any computation begins.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("at least one input size is required")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("invalid input size: %d (must be positive)", n)
		}
	}
	if len(c.Distributions) == 0 {
		return errors.New("at least one distribution is required")
	}
	for _, d := range c.Distributions {
		if _, err := generator.ParseDistribution(string(d)); err != nil {
			return err
		}
	}
	if len(c.Algorithms) == 0 {
		return errors.New("at least one algorithm is required")
	}
	for _, a := range c.Algorithms {
		if _, err := hull.ParseAlgorithm(string(a)); err != nil {
			return err
		}
	}
	if c.Trials <= 0 {
		return fmt.Errorf("invalid trial count: %d (must be positive)", c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d (must be non-negative)", c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %v (must be non-negative)", c.Timeout)
	}
	return nil
}

// Record is the outcome of timing one algorithm on one generated
// point set. Immutable after creation; consumed by the reporting
// collaborator.
type Record struct {
	Algorithm    hull.Algorithm         `json:"algorithm" yaml:"algorithm"`
	N            int                    `json:"n" yaml:"n"`
	Distribution generator.Distribution `json:"distribution" yaml:"distribution"`
	Trial        int                    `json:"trial" yaml:"trial"`
	HullSize     int                    `json:"hull_size" yaml:"hull_size"`
	Elapsed      time.Duration          `json:"elapsed_ns" yaml:"elapsed_ns"`
	Error        string                 `json:"error,omitempty" yaml:"error,omitempty"`
}

// Seconds returns the elapsed time in floating-point seconds.
func (r Record) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Runner executes a validated benchmark configuration.
type Runner struct {
	cfg Config
}

// New validates cfg and returns a Runner for it.
func New(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("benchmark configuration invalid: %w", err)
	}
	return &Runner{cfg: cfg}, nil
}

// trialJob is one (size, distribution, trial) cell. All configured
// algorithms run against the same generated point set.
type trialJob struct {
	n     int
	dist  generator.Distribution
	trial int
	seed  uint64
}

// Run executes every configured trial and returns records in a
// deterministic order regardless of worker scheduling: sorted by
// size, distribution, algorithm and trial.
func (r *Runner) Run(ctx context.Context) ([]Record, error) {
	jobs := r.jobs()
	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	slog.Debug("starting benchmark run",
		"trials", len(jobs), "algorithms", len(r.cfg.Algorithms), "workers", workers)

	var (
		records []Record
		err     error
	)
	if workers <= 1 {
		records, err = r.runSequential(ctx, jobs)
	} else {
		records, err = r.runParallel(ctx, jobs, workers)
	}
	if err != nil {
		return nil, err
	}

	r.sortRecords(records)
	return records, nil
}

func (r *Runner) jobs() []trialJob {
	jobs := make([]trialJob, 0, len(r.cfg.Sizes)*len(r.cfg.Distributions)*r.cfg.Trials)
	for _, n := range r.cfg.Sizes {
		for _, dist := range r.cfg.Distributions {
			for trial := range r.cfg.Trials {
				jobs = append(jobs, trialJob{
					n:     n,
					dist:  dist,
					trial: trial,
					seed:  r.cfg.Seed + uint64(len(jobs))*seedMix,
				})
			}
		}
	}
	return jobs
}

func (r *Runner) runSequential(ctx context.Context, jobs []trialJob) ([]Record, error) {
	records := make([]Record, 0, len(jobs)*len(r.cfg.Algorithms))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := r.runTrial(ctx, job)
		if err != nil {
			return nil, err
		}
		records = append(records, out...)
	}
	return records, nil
}

func (r *Runner) runParallel(ctx context.Context, jobs []trialJob, workers int) ([]Record, error) {
	jobCh := make(chan trialJob, len(jobs))
	resCh := make(chan []Record, len(jobs))
	errCh := make(chan error, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				out, err := r.runTrial(ctx, job)
				if err != nil {
					errCh <- err
					return
				}
				select {
				case resCh <- out:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			select {
			case jobCh <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resCh)
		close(errCh)
	}()

	records := make([]Record, 0, len(jobs)*len(r.cfg.Algorithms))
	for out := range resCh {
		records = append(records, out...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	return records, nil
}

// runTrial generates one point set and times every configured
// algorithm against it.
func (r *Runner) runTrial(ctx context.Context, job trialJob) ([]Record, error) {
	points, err := generator.New(job.seed).Points(job.dist, job.n)
	if err != nil {
		return nil, fmt.Errorf("generating %d %s points: %w", job.n, job.dist, err)
	}

	records := make([]Record, 0, len(r.cfg.Algorithms))
	for _, alg := range r.cfg.Algorithms {
		rec := Record{
			Algorithm:    alg,
			N:            job.n,
			Distribution: job.dist,
			Trial:        job.trial,
		}

		h, elapsed, err := r.timeAlgorithm(ctx, alg, points)
		rec.Elapsed = elapsed
		switch {
		case err != nil:
			rec.Error = err.Error()
			slog.Warn("trial failed", "algorithm", alg, "n", job.n,
				"distribution", job.dist, "trial", job.trial, "error", err)
		default:
			rec.HullSize = len(h)
		}
		records = append(records, rec)
	}
	return records, nil
}

// timeAlgorithm measures a single hull computation, enforcing the
// per-trial wall budget when one is configured.
func (r *Runner) timeAlgorithm(ctx context.Context, alg hull.Algorithm, points []geometry.Point) ([]geometry.Point, time.Duration, error) {
	if r.cfg.Timeout <= 0 {
		timer := NewTimer(string(alg))
		h, err := hull.Compute(alg, points)
		return h, timer.Stop(), err
	}

	type result struct {
		hull []geometry.Point
		err  error
	}
	done := make(chan result, 1)
	timer := NewTimer(string(alg))
	go func() {
		h, err := hull.Compute(alg, points)
		done <- result{hull: h, err: err}
	}()

	select {
	case res := <-done:
		return res.hull, timer.Stop(), res.err
	case <-time.After(r.cfg.Timeout):
		return nil, timer.Stop(), fmt.Errorf("%s after %v: %w", alg, r.cfg.Timeout, ErrTrialTimeout)
	case <-ctx.Done():
		return nil, timer.Stop(), ctx.Err()
	}
}

func (r *Runner) sortRecords(records []Record) {
	algOrder := make(map[hull.Algorithm]int, len(r.cfg.Algorithms))
	for i, a := range r.cfg.Algorithms {
		algOrder[a] = i
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.N != b.N {
			return a.N < b.N
		}
		if a.Distribution != b.Distribution {
			return a.Distribution < b.Distribution
		}
		if algOrder[a.Algorithm] != algOrder[b.Algorithm] {
			return algOrder[a.Algorithm] < algOrder[b.Algorithm]
		}
		return a.Trial < b.Trial
	})
}
