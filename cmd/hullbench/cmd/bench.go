package cmd

import (
	"fmt"
	"os"

	"github.com/hullbench/hullbench/internal/harness"
	"github.com/hullbench/hullbench/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// benchCmd represents the bench command.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the four hull algorithms across sizes and distributions",
	Long: `Run every configured algorithm against identical generated point
sets, timing each computation. Trials are repeated per size to smooth
timing noise; records can be aggregated into per-cell statistics.

For a fixed seed the generated point sets, and therefore the hull
sizes, are fully reproducible.

Examples:
  hullbench bench
  hullbench bench --sizes 100,1000,10000 --trials 10
  hullbench bench --distributions circle --algorithms jarvis,graham
  hullbench bench --aggregate --format csv --output results.csv`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		benchCfg, err := cfg.ToBenchConfig()
		if err != nil {
			return err
		}

		runner, err := harness.New(benchCfg)
		if err != nil {
			return err
		}

		records, err := runner.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("benchmark run failed: %w", err)
		}

		var out string
		if cfg.Bench.Aggregate {
			out, err = report.FormatStats(harness.Aggregate(records), cfg.Output.Format)
		} else {
			out, err = report.FormatRecords(records, cfg.Output.Format)
		}
		if err != nil {
			return err
		}

		if cfg.Output.File != "" {
			if err := os.WriteFile(cfg.Output.File, []byte(out), 0o600); err != nil {
				return fmt.Errorf("writing output file: %w", err)
			}
			return nil
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntSlice("sizes", nil, "input sizes to benchmark (e.g. 100,1000,10000)")
	benchCmd.Flags().StringSlice("distributions", nil, "point distributions (uniform, gaussian, circle, cluster)")
	benchCmd.Flags().StringSlice("algorithms", nil, "algorithms to run (graham, jarvis, quickhull, monotone_chain)")
	benchCmd.Flags().Int("trials", 0, "trials per (size, distribution) cell")
	benchCmd.Flags().Uint64("seed", 0, "random seed for point generation")
	benchCmd.Flags().Int("workers", 0, "parallel trial workers (0 = all CPUs, 1 = sequential)")
	benchCmd.Flags().Int("timeout-sec", 0, "per-trial wall budget in seconds (0 = none)")
	benchCmd.Flags().Bool("aggregate", false, "report aggregated statistics instead of per-trial records")
	benchCmd.Flags().String("format", "", "output format (text, json, csv, yaml)")
	benchCmd.Flags().String("output", "", "write output to file instead of stdout")

	_ = viper.BindPFlag("bench.sizes", benchCmd.Flags().Lookup("sizes"))
	_ = viper.BindPFlag("bench.distributions", benchCmd.Flags().Lookup("distributions"))
	_ = viper.BindPFlag("bench.algorithms", benchCmd.Flags().Lookup("algorithms"))
	_ = viper.BindPFlag("bench.trials", benchCmd.Flags().Lookup("trials"))
	_ = viper.BindPFlag("bench.seed", benchCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("bench.workers", benchCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("bench.timeout_sec", benchCmd.Flags().Lookup("timeout-sec"))
	_ = viper.BindPFlag("bench.aggregate", benchCmd.Flags().Lookup("aggregate"))
	_ = viper.BindPFlag("output.format", benchCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.file", benchCmd.Flags().Lookup("output"))
}
