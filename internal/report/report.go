// Package report renders benchmark records and statistics for the
// external reporting collaborator. Supported formats: text, json,
// csv and yaml.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hullbench/hullbench/internal/harness"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Formats returns the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatCSV, FormatYAML}
}

// FormatRecords renders per-trial records in the requested format.
func FormatRecords(records []harness.Record, format string) (string, error) {
	switch format {
	case FormatJSON:
		return recordsJSON(records)
	case FormatCSV:
		return recordsCSV(records)
	case FormatYAML:
		return recordsYAML(records)
	case FormatText, "":
		return recordsText(records), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", format)
	}
}

// FormatStats renders aggregated statistics in the requested format.
func FormatStats(stats []harness.Stats, format string) (string, error) {
	switch format {
	case FormatJSON:
		bts, err := json.MarshalIndent(stats, "", "  ")
		return string(bts), err
	case FormatCSV:
		return statsCSV(stats)
	case FormatYAML:
		bts, err := yaml.Marshal(stats)
		return string(bts), err
	case FormatText, "":
		return statsText(stats), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", format)
	}
}

func recordsJSON(records []harness.Record) (string, error) {
	out := struct {
		Records []recordRow `json:"records"`
	}{Records: rows(records)}
	bts, err := json.MarshalIndent(out, "", "  ")
	return string(bts), err
}

func recordsYAML(records []harness.Record) (string, error) {
	out := struct {
		Records []recordRow `yaml:"records"`
	}{Records: rows(records)}
	bts, err := yaml.Marshal(out)
	return string(bts), err
}

// recordRow is the stable external row shape: elapsed time is exposed
// in floating-point seconds, matching the reporting contract.
type recordRow struct {
	Algorithm    string  `json:"algorithm" yaml:"algorithm"`
	N            int     `json:"n" yaml:"n"`
	Distribution string  `json:"distribution" yaml:"distribution"`
	Trial        int     `json:"trial" yaml:"trial"`
	HullSize     int     `json:"hull_size" yaml:"hull_size"`
	ElapsedSec   float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Error        string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func rows(records []harness.Record) []recordRow {
	out := make([]recordRow, len(records))
	for i, rec := range records {
		out[i] = recordRow{
			Algorithm:    string(rec.Algorithm),
			N:            rec.N,
			Distribution: string(rec.Distribution),
			Trial:        rec.Trial,
			HullSize:     rec.HullSize,
			ElapsedSec:   rec.Seconds(),
			Error:        rec.Error,
		}
	}
	return out
}

func recordsCSV(records []harness.Record) (string, error) {
	data := [][]string{
		{"algorithm", "n", "distribution", "trial", "hull_size", "elapsed_seconds", "error"},
	}
	for _, rec := range records {
		data = append(data, []string{
			string(rec.Algorithm),
			strconv.Itoa(rec.N),
			string(rec.Distribution),
			strconv.Itoa(rec.Trial),
			strconv.Itoa(rec.HullSize),
			fmt.Sprintf("%.9f", rec.Seconds()),
			rec.Error,
		})
	}
	return writeCSV(data)
}

func statsCSV(stats []harness.Stats) (string, error) {
	data := [][]string{
		{"algorithm", "n", "distribution", "trials", "failed", "mean_hull_size",
			"mean_seconds", "median_seconds", "min_seconds", "max_seconds", "stddev_seconds"},
	}
	for _, s := range stats {
		data = append(data, []string{
			string(s.Algorithm),
			strconv.Itoa(s.N),
			string(s.Distribution),
			strconv.Itoa(s.Trials),
			strconv.Itoa(s.Failed),
			fmt.Sprintf("%.2f", s.MeanHullSize),
			fmt.Sprintf("%.9f", s.Mean.Seconds()),
			fmt.Sprintf("%.9f", s.Median.Seconds()),
			fmt.Sprintf("%.9f", s.Min.Seconds()),
			fmt.Sprintf("%.9f", s.Max.Seconds()),
			fmt.Sprintf("%.9f", s.StdDev.Seconds()),
		})
	}
	return writeCSV(data)
}

func writeCSV(data [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(data); err != nil {
		return "", fmt.Errorf("writing csv: %w", err)
	}
	w.Flush()
	return sb.String(), w.Error()
}

func recordsText(records []harness.Record) string {
	var sb strings.Builder
	sb.WriteString("Benchmark Records\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%-16s %8s %-10s %6s %10s %14s\n",
		"algorithm", "n", "dist", "trial", "hull_size", "elapsed"))
	for _, rec := range records {
		if rec.Error != "" {
			sb.WriteString(fmt.Sprintf("%-16s %8d %-10s %6d %10s %14s  ERROR: %s\n",
				rec.Algorithm, rec.N, rec.Distribution, rec.Trial, "-", rec.Elapsed, rec.Error))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-16s %8d %-10s %6d %10d %14s\n",
			rec.Algorithm, rec.N, rec.Distribution, rec.Trial, rec.HullSize, rec.Elapsed))
	}
	return sb.String()
}

func statsText(stats []harness.Stats) string {
	var sb strings.Builder
	sb.WriteString("Benchmark Summary\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	for _, s := range stats {
		sb.WriteString(fmt.Sprintf("%s (n=%d, %s): trials=%d", s.Algorithm, s.N, s.Distribution, s.Trials))
		if s.Failed > 0 {
			sb.WriteString(fmt.Sprintf(" failed=%d", s.Failed))
		}
		sb.WriteString(fmt.Sprintf("\n  hull=%.1f mean=%v median=%v min=%v max=%v stddev=%v\n",
			s.MeanHullSize, s.Mean, s.Median, s.Min, s.Max, s.StdDev))
	}
	return sb.String()
}
