package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the module catalog from the registry",
	Long: `Sync fetches the full module catalog from the registry, rebuilds the
latest-version index, and writes the raw payload to the local snapshot file.

If the primary mirror cannot be reached, the backup mirror is tried once.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if err := syncCatalog(client); err != nil {
		return fmt.Errorf("syncing catalog: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Synced %d modules (snapshot: %s)\n",
		len(client.Modules()), client.SnapshotPath())
	return nil
}
