package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hullbench/hullbench/internal/dataset"
	"github.com/hullbench/hullbench/internal/generator"
	"github.com/hullbench/hullbench/internal/geometry"
	"github.com/hullbench/hullbench/internal/hull"
	"github.com/spf13/cobra"
)

// hullCmd represents the hull command.
var hullCmd = &cobra.Command{
	Use:   "hull [point-file]",
	Short: "Compute the convex hull of a point set",
	Long: `Compute the convex hull of a point set with one of the four
algorithms. Points come from a two-column whitespace-separated file,
or are generated when no file is given.

Examples:
  hullbench hull mesh.dat
  hullbench hull mesh.dat --algorithm quickhull --format json
  hullbench hull --n 500 --distribution circle --seed 7
  hullbench hull mesh.dat --steps --format json`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runHull,
}

func runHull(cmd *cobra.Command, args []string) error {
	algName, _ := cmd.Flags().GetString("algorithm")
	alg, err := hull.ParseAlgorithm(algName)
	if err != nil {
		return err
	}

	points, err := hullInputPoints(cmd, args)
	if err != nil {
		return err
	}

	withSteps, _ := cmd.Flags().GetBool("steps")
	var (
		h     []geometry.Point
		steps [][]geometry.Point
	)
	if withSteps {
		h, steps, err = hull.ComputeSteps(alg, points)
	} else {
		h, err = hull.Compute(alg, points)
	}
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return writeHullJSON(cmd, alg, points, h, steps)
	case "text", "":
		fmt.Fprintf(cmd.OutOrStdout(), "# %s: %d points -> %d hull vertices\n", alg, len(points), len(h))
		for _, p := range h {
			fmt.Fprintf(cmd.OutOrStdout(), "%g %g\n", p.X, p.Y)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format for hull: %q (use text or json)", format)
	}
}

func hullInputPoints(cmd *cobra.Command, args []string) ([]geometry.Point, error) {
	if len(args) == 1 {
		return dataset.Load(args[0])
	}

	n, _ := cmd.Flags().GetInt("n")
	if n <= 0 {
		return nil, errors.New("no input file given and --n is not positive")
	}
	distName, _ := cmd.Flags().GetString("distribution")
	dist, err := generator.ParseDistribution(distName)
	if err != nil {
		return nil, err
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	return generator.New(seed).Points(dist, n)
}

func writeHullJSON(cmd *cobra.Command, alg hull.Algorithm, points, h []geometry.Point, steps [][]geometry.Point) error {
	out := struct {
		Algorithm string             `json:"algorithm"`
		N         int                `json:"n"`
		HullSize  int                `json:"hull_size"`
		Hull      []geometry.Point   `json:"hull"`
		Steps     [][]geometry.Point `json:"steps,omitempty"`
	}{
		Algorithm: string(alg),
		N:         len(points),
		HullSize:  len(h),
		Hull:      h,
		Steps:     steps,
	}
	bts, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bts))
	return err
}

func init() {
	rootCmd.AddCommand(hullCmd)

	hullCmd.Flags().String("algorithm", string(hull.AlgorithmMonotoneChain),
		"hull algorithm (graham, jarvis, quickhull, monotone_chain)")
	hullCmd.Flags().Bool("steps", false, "record intermediate hull states for visualization")
	hullCmd.Flags().String("format", "", "output format (text, json)")
	hullCmd.Flags().Int("n", 100, "number of points to generate when no file is given")
	hullCmd.Flags().String("distribution", string(generator.Uniform),
		"distribution for generated points (uniform, gaussian, circle, cluster)")
	hullCmd.Flags().Uint64("seed", 42, "random seed for generated points")
}
