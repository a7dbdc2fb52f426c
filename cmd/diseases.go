package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/foodverse/foodverse/internal/dataset"
)

var diseasesCmd = &cobra.Command{
	Use:   "diseases",
	Short: "List diseases with their food breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		printDiseases(cmd.OutOrStdout(), store)
		return nil
	},
}

// verdictPrinter returns the colour used for v in plain terminal output.
func verdictPrinter(v dataset.Verdict) *color.Color {
	switch v {
	case dataset.VerdictSafe:
		return color.New(color.FgGreen)
	case dataset.VerdictModerate:
		return color.New(color.FgYellow)
	case dataset.VerdictAvoid:
		return color.New(color.FgRed)
	}
	return color.New(color.Reset)
}

func printDiseases(w io.Writer, store *dataset.Store) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Fprintf(w, "Dataset %s · %d diseases\n\n", store.Version(), store.Len())
	for _, d := range store.Diseases() {
		bold.Fprintf(w, "%s  %s", d.Icon, d.Name)
		faint.Fprintf(w, " (%s)\n", d.ID)
		fmt.Fprintf(w, "   %s\n", d.Description)

		counts := d.VerdictCounts()
		fmt.Fprintf(w, "   %d foods:", len(d.Foods))
		for _, v := range dataset.AllVerdicts() {
			verdictPrinter(v).Fprintf(w, " %d %s", counts[v], v.Label())
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w)
	}
}
