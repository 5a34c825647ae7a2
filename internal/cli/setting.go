package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/config"
	"github.com/manifold-tools/manifold/internal/manifest"
)

var (
	settingTarget        string
	settingConfiguration string
)

func init() {
	for _, c := range []*cobra.Command{settingSetCmd, settingUnsetCmd} {
		c.Flags().StringVar(&settingTarget, "target", "", "Apply to this target's scope instead of the project scope")
		c.Flags().StringVar(&settingConfiguration, "configuration", "", "Configuration name (default from config, normally \"Debug\")")
	}
	settingCmd.AddCommand(settingSetCmd)
	settingCmd.AddCommand(settingUnsetCmd)
	rootCmd.AddCommand(settingCmd)
}

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Manage build-configuration settings",
	Long: `Manage key/value settings in build-configuration scopes. Without --target
the project scope is used; with it, the named target's scope. Keys and values
are opaque strings; target-scope values shadow project-scope values when a
build system later merges them.`,
}

var settingSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Long: `Set key = value in the selected scope, last write wins. Re-applying the
same value is a no-op.

Example:
  manifold setting set OPT_LEVEL "2" --target App --configuration Release`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		return withStore(func(s *manifest.Store) error {
			scope, err := settingScope(s)
			if err != nil {
				return err
			}
			scope.Apply(key, value)
			fmt.Printf("Set %s = %s (%s).\n", key, value, scopeLabel())
			return nil
		})
	},
}

var settingUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Delete a configuration key",
	Long:  `Delete key from the selected scope. Unsetting an absent key is a no-op.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		return withStore(func(s *manifest.Store) error {
			scope, err := settingScope(s)
			if err != nil {
				return err
			}
			scope.Remove(key)
			fmt.Printf("Unset %s (%s).\n", key, scopeLabel())
			return nil
		})
	},
}

// settingScope selects the configuration scope the flags address, creating
// it lazily.
func settingScope(s *manifest.Store) (*manifest.BuildConfiguration, error) {
	name := settingConfiguration
	if name == "" {
		name = config.Get(config.KeyDefaultConfiguration)
	}

	if settingTarget == "" {
		return s.ProjectConfigurations().Config(name), nil
	}
	t, err := s.Target(settingTarget)
	if err != nil {
		return nil, err
	}
	return t.Configurations().Config(name), nil
}

func scopeLabel() string {
	name := settingConfiguration
	if name == "" {
		name = config.Get(config.KeyDefaultConfiguration)
	}
	if settingTarget == "" {
		return "project/" + name
	}
	return settingTarget + "/" + name
}
