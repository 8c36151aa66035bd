package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modkeeper/modkeeper/internal/cmd/output"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <module>",
	Short: "Show a module's full release history",
	Long: `Show fetches one module's descriptor from the registry, including its
complete release history, and displays it.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	client, err := newClient()
	if err != nil {
		return err
	}

	// The per-module document only replaces an existing catalog entry, so
	// load the catalog first.
	if err := syncCatalog(client); err != nil {
		return fmt.Errorf("syncing catalog: %w", err)
	}

	waiter := newModuleWaiter(name)
	client.Subscribe(waiter)
	defer client.Unsubscribe(waiter)

	client.SyncModule(name)
	module, err := waiter.wait()
	if err != nil {
		return fmt.Errorf("fetching releases for %s: %w", name, err)
	}

	format, err := resolveFormat()
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format)

	if format != output.FormatTable {
		return formatter.Format(cmd.OutOrStdout(), module)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", module.Name)
	if module.Description != "" {
		fmt.Fprintf(out, "%s\n", module.Description)
	}
	if module.SourceURL != "" {
		fmt.Fprintf(out, "Source: %s\n", module.SourceURL)
	}
	fmt.Fprintln(out)

	if len(module.Releases) == 0 {
		fmt.Fprintln(out, "No releases published")
		return nil
	}

	rows := make([][]string, 0, len(module.Releases))
	for _, r := range module.Releases {
		rows = append(rows, []string{r.Name, r.Title, fmt.Sprintf("%d", len(r.Assets))})
	}
	return formatter.Format(out, output.Data{
		Headers: []string{"release", "title", "assets"},
		Rows:    rows,
	})
}
