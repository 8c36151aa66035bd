package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/modkeeper/modkeeper/internal/cmd/output"
	"github.com/modkeeper/modkeeper/pkg/errors"
)

// installedModule is one entry of the installed-module list given to check.
type installedModule struct {
	Name        string `json:"name"`
	VersionCode int64  `json:"versionCode"`
	VersionName string `json:"versionName"`
}

// upgrade describes one pending upgrade found by check.
type upgrade struct {
	Name      string `json:"name"`
	Installed string `json:"installed"`
	Latest    string `json:"latest"`
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <installed.json>",
	Short: "Check installed modules for available upgrades",
	Long: `Check reads a JSON list of installed modules, each with its name,
versionCode and versionName, syncs the registry catalog, and reports the
modules with a newer release available.

A release is an upgrade when its code is strictly higher than the installed
one, or equal with a different version name (a re-tagged build).`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.WrapIO("read", args[0], err)
	}

	var installed []installedModule
	if err := json.Unmarshal(data, &installed); err != nil {
		return errors.WrapParse("json", args[0], err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	if err := syncCatalog(client); err != nil {
		return fmt.Errorf("syncing catalog: %w", err)
	}

	var upgrades []upgrade
	for _, mod := range installed {
		v, ok := client.LatestVersion(mod.Name)
		if !ok || !v.Upgradable(mod.VersionCode, mod.VersionName) {
			continue
		}
		upgrades = append(upgrades, upgrade{
			Name:      mod.Name,
			Installed: fmt.Sprintf("%s (%d)", mod.VersionName, mod.VersionCode),
			Latest:    v.String(),
		})
	}

	if len(upgrades) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All installed modules are up to date")
		return nil
	}

	sort.Slice(upgrades, func(i, j int) bool { return upgrades[i].Name < upgrades[j].Name })

	format, err := resolveFormat()
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format)

	if format != output.FormatTable {
		return formatter.Format(cmd.OutOrStdout(), upgrades)
	}

	rows := make([][]string, 0, len(upgrades))
	for _, u := range upgrades {
		rows = append(rows, []string{u.Name, u.Installed, u.Latest})
	}
	return formatter.Format(cmd.OutOrStdout(), output.Data{
		Headers: []string{"name", "installed", "latest"},
		Rows:    rows,
	})
}
