package main

import (
	"fmt"

	"github.com/aretw0/lineage/pkg/adapters/doxygen"
	"github.com/aretw0/lineage/pkg/adapters/manifest"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert the hierarchy to another source format",
	Long: `Writes the hierarchy as a Doxygen hierarchy.js index (--to doxygen) or a YAML
manifest (--to yaml). Both outputs load back into the same hierarchy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")

		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}

		switch to {
		case "doxygen":
			return doxygen.Encode(cmd.OutOrStdout(), h)
		case "yaml":
			return manifest.Encode(cmd.OutOrStdout(), h)
		}
		return fmt.Errorf("unknown export format %q: expected doxygen or yaml", to)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("to", "yaml", "Target format: doxygen or yaml")
}
