package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/config"
	"github.com/manifold-tools/manifold/internal/manifest"
	"github.com/manifold-tools/manifold/internal/schemes"
)

var (
	schemeShared  bool
	schemePrivate bool
)

func init() {
	schemeGenerateCmd.Flags().BoolVar(&schemeShared, "shared", false, "Write the scheme to the shared, version-controlled location")
	schemeGenerateCmd.Flags().BoolVar(&schemePrivate, "private", false, "Write the scheme to the private, per-checkout location")
	schemeCmd.AddCommand(schemeGenerateCmd)
	schemeCmd.AddCommand(schemeRemoveCmd)
	schemeCmd.AddCommand(schemeListCmd)
	rootCmd.AddCommand(schemeCmd)
}

var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Generate and inspect build/launch schemes",
}

var schemeGenerateCmd = &cobra.Command{
	Use:   "generate <name> <target>",
	Short: "Generate a scheme binding a target to build and launch",
	Long: `Generate a scheme that binds the target as both the build and the launch
participant. Regenerating an existing scheme name overwrites it. The
visibility decides where the artifact lands: shared schemes under
schemes/shared/, private ones under schemes/local/.

Example:
  manifold scheme generate Release App --shared`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, target := args[0], args[1]
		if schemeShared && schemePrivate {
			return fmt.Errorf("--shared and --private are mutually exclusive")
		}
		shared := config.GetBool(config.KeyDefaultShared)
		if schemeShared {
			shared = true
		}
		if schemePrivate {
			shared = false
		}

		// The artifact is written only after the manifest is persisted,
		// so a failed save leaves no stray external effects.
		var sc *manifest.Scheme
		err := withStore(func(s *manifest.Store) error {
			var err error
			sc, err = s.GenerateScheme(name, target, shared)
			return err
		})
		if err != nil {
			return err
		}
		if err := schemes.Write(projectDir, sc); err != nil {
			return err
		}
		visibility := "private"
		if sc.Shared {
			visibility = "shared"
		}
		fmt.Printf("Generated %s scheme %s for target %s.\n", visibility, name, target)
		return nil
	},
}

var schemeRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a scheme and its artifact",
	Long: `Remove the scheme from the manifest and delete its artifact from both
visibility directories. Works on artifact-only leftovers too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		err := withStore(func(s *manifest.Store) error {
			if err := s.RemoveScheme(name); err != nil && !errors.Is(err, manifest.ErrNotFound) {
				return err
			}
			return nil
		})
		if err != nil {
			return err
		}
		if err := schemes.Remove(projectDir, name); err != nil {
			return err
		}
		fmt.Printf("Removed scheme %s.\n", name)
		return nil
	},
}

var schemeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schemes in the manifest",
	Long: `List the schemes recorded in the manifest, and flag any artifact files
under schemes/ that no longer correspond to a manifest scheme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore()
		if err != nil {
			return err
		}
		if len(s.Schemes()) == 0 {
			fmt.Println("No schemes.")
		}
		for _, sc := range s.Schemes() {
			visibility := "private"
			if sc.Shared {
				visibility = "shared"
			}
			fmt.Printf("%s -> %s (%s)\n", sc.Name, sc.Target, visibility)
		}

		// Reconcile on-disk artifacts against the manifest.
		onDisk, err := schemes.List(projectDir)
		if err != nil {
			return err
		}
		for _, name := range onDisk {
			if s.Scheme(name) == nil {
				fmt.Printf("%s: artifact on disk but not in the manifest, remove with 'manifold scheme remove %s'\n", name, name)
			}
		}
		return nil
	},
}
