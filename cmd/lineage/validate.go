package main

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the hierarchy for consistency",
	Long: `Builds the hierarchy and reports duplicate names, unknown parents and cycles.
On success it prints a summary and the hierarchy fingerprint.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			app.SystemMessage("Validation failed.")
			return err
		}

		realizations := len(h.Edges()) - h.Len()
		app.Printf("Hierarchy is valid: %d nodes, %d roots, %d leaves, %d realizations\n",
			h.Len(), len(h.Roots()), len(h.Leaves()), realizations)
		app.Printf("fingerprint: %s\n", h.Fingerprint())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
