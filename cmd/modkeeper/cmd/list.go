package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/modkeeper/modkeeper/internal/cmd/output"
	"github.com/modkeeper/modkeeper/pkg/registry"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modules in the registry catalog",
	Long: `List fetches the module catalog and displays every module it contains,
together with its latest release when the registry publishes one.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if err := syncCatalog(client); err != nil {
		return fmt.Errorf("syncing catalog: %w", err)
	}

	modules := client.Modules()
	if len(modules) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No modules found in the registry")
		return nil
	}

	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name < modules[j].Name
	})

	format, err := resolveFormat()
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format)

	if format != output.FormatTable {
		return formatter.Format(cmd.OutOrStdout(), modules)
	}

	rows := make([][]string, 0, len(modules))
	for _, m := range modules {
		rows = append(rows, []string{m.Name, latestColumn(m), m.Description})
	}
	return formatter.Format(cmd.OutOrStdout(), output.Data{
		Headers: []string{"name", "latest", "description"},
		Rows:    rows,
	})
}

// latestColumn renders a module's latest release for table output.
func latestColumn(m *registry.Module) string {
	if v, ok := m.LatestVersion(); ok {
		return v.String()
	}
	return "-"
}
