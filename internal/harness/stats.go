package harness

import (
	"math"
	"sort"
	"time"

	"github.com/hullbench/hullbench/internal/generator"
	"github.com/hullbench/hullbench/internal/hull"
)

// Stats summarizes the repeated trials of one (algorithm, n,
// distribution) cell. Errored trials are excluded from the timing
// statistics and counted separately.
type Stats struct {
	Algorithm    hull.Algorithm         `json:"algorithm" yaml:"algorithm"`
	N            int                    `json:"n" yaml:"n"`
	Distribution generator.Distribution `json:"distribution" yaml:"distribution"`
	Trials       int                    `json:"trials" yaml:"trials"`
	Failed       int                    `json:"failed,omitempty" yaml:"failed,omitempty"`
	MeanHullSize float64                `json:"mean_hull_size" yaml:"mean_hull_size"`
	Mean         time.Duration          `json:"mean_ns" yaml:"mean_ns"`
	Median       time.Duration          `json:"median_ns" yaml:"median_ns"`
	Min          time.Duration          `json:"min_ns" yaml:"min_ns"`
	Max          time.Duration          `json:"max_ns" yaml:"max_ns"`
	StdDev       time.Duration          `json:"stddev_ns" yaml:"stddev_ns"`
}

// Aggregate groups records by (algorithm, n, distribution) and
// computes per-group timing statistics. Input order is preserved for
// the groups, so records sorted by Runner.Run aggregate in the same
// order they were reported.
func Aggregate(records []Record) []Stats {
	type key struct {
		alg  hull.Algorithm
		n    int
		dist generator.Distribution
	}

	order := make([]key, 0)
	groups := make(map[key][]Record)
	for _, rec := range records {
		k := key{alg: rec.Algorithm, n: rec.N, dist: rec.Distribution}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], rec)
	}

	stats := make([]Stats, 0, len(order))
	for _, k := range order {
		group := groups[k]
		s := Stats{
			Algorithm:    k.alg,
			N:            k.n,
			Distribution: k.dist,
			Trials:       len(group),
		}

		elapsed := make([]time.Duration, 0, len(group))
		var sizeSum int
		for _, rec := range group {
			if rec.Error != "" {
				s.Failed++
				continue
			}
			elapsed = append(elapsed, rec.Elapsed)
			sizeSum += rec.HullSize
		}
		if len(elapsed) > 0 {
			s.MeanHullSize = float64(sizeSum) / float64(len(elapsed))
			s.Mean = mean(elapsed)
			s.Median = median(elapsed)
			s.Min = minOf(elapsed)
			s.Max = maxOf(elapsed)
			s.StdDev = stddev(elapsed, s.Mean)
		}
		stats = append(stats, s)
	}
	return stats
}

func mean(ds []time.Duration) time.Duration {
	var sum time.Duration
	for _, d := range ds {
		sum += d
	}
	return sum / time.Duration(len(ds))
}

func median(ds []time.Duration) time.Duration {
	sorted := append([]time.Duration(nil), ds...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func minOf(ds []time.Duration) time.Duration {
	m := ds[0]
	for _, d := range ds[1:] {
		if d < m {
			m = d
		}
	}
	return m
}

func maxOf(ds []time.Duration) time.Duration {
	m := ds[0]
	for _, d := range ds[1:] {
		if d > m {
			m = d
		}
	}
	return m
}

func stddev(ds []time.Duration, mu time.Duration) time.Duration {
	if len(ds) < 2 {
		return 0
	}
	var sq float64
	for _, d := range ds {
		diff := float64(d - mu)
		sq += diff * diff
	}
	return time.Duration(math.Sqrt(sq / float64(len(ds))))
}
