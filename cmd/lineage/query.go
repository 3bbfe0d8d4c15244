package main

import (
	"strings"

	"github.com/aretw0/lineage/internal/cli"
	"github.com/spf13/cobra"
)

var ancestorsCmd = &cobra.Command{
	Use:   "ancestors NAME",
	Short: "List the owning ancestors of a node, nearest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}
		names, err := h.AncestorsOf(args[0])
		app.Metrics.ObserveQuery("ancestors", err)
		if err != nil {
			return err
		}
		return printNames(cmd, names)
	},
}

var descendantsCmd = &cobra.Command{
	Use:   "descendants NAME",
	Short: "List a node and its descendants in pre-order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}
		names, err := h.Descendants(args[0])
		app.Metrics.ObserveQuery("descendants", err)
		if err != nil {
			return err
		}
		return printNames(cmd, names)
	},
}

var leavesCmd = &cobra.Command{
	Use:   "leaves",
	Short: "List the nodes without children",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}
		app.Metrics.ObserveQuery("leaves", nil)
		return printNames(cmd, h.Leaves())
	},
}

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "List the nodes without an owning parent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}
		app.Metrics.ObserveQuery("roots", nil)
		return printNames(cmd, h.Roots())
	},
}

var depthCmd = &cobra.Command{
	Use:   "depth NAME",
	Short: "Print the number of owning ancestors of a node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}
		depth, err := h.DepthOf(args[0])
		app.Metrics.ObserveQuery("depth", err)
		if err != nil {
			return err
		}
		app.Printf("%d\n", depth)
		return nil
	},
}

var realizesCmd = &cobra.Command{
	Use:   "realizes NAME",
	Short: "Show the interfaces a node realizes and the nodes realizing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}
		realizes, err := h.Realizes(args[0])
		if err == nil {
			var realizedBy []string
			realizedBy, err = h.RealizedBy(args[0])
			if err == nil {
				app.Printf("realizes: %s\n", strings.Join(realizes, ", "))
				app.Printf("realized by: %s\n", strings.Join(realizedBy, ", "))
			}
		}
		app.Metrics.ObserveQuery("realizes", err)
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{ancestorsCmd, descendantsCmd, leavesCmd, rootsCmd} {
		c.Flags().String("match", "", "Only list names matching this glob pattern")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(depthCmd)
	rootCmd.AddCommand(realizesCmd)
}

// printNames writes one name per line after applying --match.
func printNames(cmd *cobra.Command, names []string) error {
	pattern, _ := cmd.Flags().GetString("match")
	names, err := cli.FilterNames(names, pattern)
	if err != nil {
		return err
	}
	for _, name := range names {
		app.Printf("%s\n", name)
	}
	return nil
}
