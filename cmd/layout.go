package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/foodverse/foodverse/internal/dataset"
	"github.com/foodverse/foodverse/internal/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the ring positions computed for a disease",
	Long: `Compute the ring layout for a disease's foods and print one line per food.

The vertical offset is random, so two runs print different Y values.`,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().String("disease", "", "Disease ID (required)")
	layoutCmd.Flags().Float64("radius", 0, "Ring radius (defaults to FOODVERSE_RING_RADIUS or 5)")
	_ = layoutCmd.MarkFlagRequired("disease")
}

func runLayout(cmd *cobra.Command, args []string) error {
	diseaseID, _ := cmd.Flags().GetString("disease")
	radius, _ := cmd.Flags().GetFloat64("radius")

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if radius <= 0 {
		radius = cfg.RingRadius
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	d, err := store.Disease(diseaseID)
	if err != nil {
		return err
	}

	printLayout(cmd.OutOrStdout(), d, layout.New(radius))
	return nil
}

func printLayout(w io.Writer, d dataset.Disease, engine *layout.Engine) {
	positions := engine.Compute(len(d.Foods))

	fmt.Fprintf(w, "%s %s · radius %.2f\n", d.Icon, d.Name, engine.Radius)
	fmt.Fprintf(w, "%-4s %-18s %8s %8s %8s %8s\n", "#", "FOOD", "X", "Y", "Z", "ANGLE")
	for i, p := range positions {
		f := d.Foods[i]
		fmt.Fprintf(w, "%-4d %-18s %8.3f %8.3f %8.3f %7.1f°\n",
			i+1, f.Name, p.X, p.Y, p.Z, p.Angle()*180/math.Pi)
	}
}
