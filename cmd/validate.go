package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/foodverse/foodverse/internal/dataset"
)

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Validate a dataset file (or the embedded dataset)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		store, err := dataset.Open(path)
		if err != nil {
			return err
		}

		name := path
		if name == "" {
			name = "embedded dataset"
		}
		foods := 0
		for _, d := range store.Diseases() {
			foods += len(d.Foods)
		}

		w := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprint(w, "✓ ")
		fmt.Fprintf(w, "%s is valid: version %s, %d diseases, %d foods\n",
			name, store.Version(), store.Len(), foods)
		return nil
	},
}
