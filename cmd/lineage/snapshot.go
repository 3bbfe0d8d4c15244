package main

import (
	"github.com/aretw0/lineage/pkg/render"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage hierarchy snapshots stored in Redis",
	Long: `Snapshots persist the canonical edge list of a hierarchy under a name, so it can be
rebuilt and compared later without the original source.`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Build the configured source and store it as NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}

		store, closeStore := app.SnapshotStore()
		defer closeStore()

		snap, err := app.SaveSnapshot(cmd.Context(), store, args[0], h)
		if err != nil {
			return err
		}
		app.Printf("saved %s (%d nodes, fingerprint %s)\n", snap.Name, h.Len(), snap.Fingerprint)
		return nil
	},
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load NAME",
	Short: "Rebuild snapshot NAME and render it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(app.Config.Format)
		if err != nil {
			return err
		}

		store, closeStore := app.SnapshotStore()
		defer closeStore()

		h, err := app.OpenSnapshot(cmd.Context(), store, args[0])
		if err != nil {
			return err
		}
		loaded = h
		return writeRendering(cmd, h, f)
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshot names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore := app.SnapshotStore()
		defer closeStore()

		names, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			app.Printf("%s\n", name)
		}
		return nil
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete snapshot NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore := app.SnapshotStore()
		defer closeStore()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		app.SystemMessage("Snapshot '%s' deleted.", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotLoadCmd, snapshotListCmd, snapshotDeleteCmd)

	snapshotCmd.PersistentFlags().String("redis-addr", "localhost:6379", "Redis address")
	snapshotCmd.PersistentFlags().String("redis-password", "", "Redis password")
	snapshotCmd.PersistentFlags().Int("redis-db", 0, "Redis database number")
	snapshotCmd.PersistentFlags().Duration("redis-ttl", 0, "Expire saved snapshots after this duration (0 keeps them)")

	snapshotLoadCmd.Flags().String("focus", "", "Only render the subtree under this node")
	snapshotLoadCmd.Flags().Bool("realizations", false, "Annotate realized interfaces")
}
