package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/lineage"
	"github.com/aretw0/lineage/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lineage",
	Run: func(cmd *cobra.Command, args []string) {
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(cmd.OutOrStdout(), tui.ProfileFor(os.Stdout), lineage.Version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "lineage version %s\n", strings.TrimSpace(lineage.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("banner", false, "Print the banner")
}
