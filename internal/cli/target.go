package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/config"
	"github.com/manifold-tools/manifold/internal/manifest"
)

// productGroup is where on-demand product references are created when
// set-product is given a bare name instead of a path.
const productGroup = "Products"

var attachPhase string

func init() {
	targetAttachCmd.Flags().StringVar(&attachPhase, "phase", "", "Build phase kind (default from config, normally \"sources\")")
	targetCmd.AddCommand(targetAddCmd)
	targetCmd.AddCommand(targetAttachCmd)
	targetCmd.AddCommand(targetDetachCmd)
	targetCmd.AddCommand(targetSetProductCmd)
	rootCmd.AddCommand(targetCmd)
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manage build targets and their phase memberships",
}

var targetAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a build target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		return withStore(func(s *manifest.Store) error {
			if _, err := s.AddTarget(name); err != nil {
				return err
			}
			fmt.Printf("Added target %s.\n", name)
			return nil
		})
	},
}

var targetAttachCmd = &cobra.Command{
	Use:   "attach <target> <file-path>",
	Short: "Add a file to a target's build phase",
	Long: `Add the file reference to the named build phase of the target. Attaching
an already-attached file is a no-op, so re-running the same command converges.

Example:
  manifold target attach App App/Main.src --phase sources`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetName, path := args[0], args[1]
		phase := attachPhase
		if phase == "" {
			phase = config.Get(config.KeyDefaultPhase)
		}
		return withStore(func(s *manifest.Store) error {
			t, err := s.Target(targetName)
			if err != nil {
				return err
			}
			ref, err := s.Resolve(path)
			if err != nil {
				return err
			}
			if err := t.Attach(ref, phase); err != nil {
				return err
			}
			fmt.Printf("Attached %s to %s (%s).\n", path, targetName, phase)
			return nil
		})
	},
}

var targetDetachCmd = &cobra.Command{
	Use:   "detach <target> <file-path>",
	Short: "Remove a file from every build phase of a target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetName, path := args[0], args[1]
		return withStore(func(s *manifest.Store) error {
			t, err := s.Target(targetName)
			if err != nil {
				return err
			}
			ref, err := s.Resolve(path)
			if err != nil {
				return err
			}
			t.Detach(ref)
			fmt.Printf("Detached %s from %s.\n", path, targetName)
			return nil
		})
	},
}

var targetSetProductCmd = &cobra.Command{
	Use:   "set-product <target> <file-path>",
	Short: "Set a target's generated product reference",
	Long: `Make the file reference the target's product, replacing any previous one.
If the reference does not exist yet it is created on demand: a full path is
created in place, a bare name goes under the Products group.

Example:
  manifold target set-product App Products/App.out`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetName, path := args[0], args[1]
		return withStore(func(s *manifest.Store) error {
			t, err := s.Target(targetName)
			if err != nil {
				return err
			}
			ref, err := resolveOrCreateProduct(s, path)
			if err != nil {
				return err
			}
			if err := t.SetProduct(ref); err != nil {
				return err
			}
			fmt.Printf("Set product of %s to %s.\n", targetName, ref.Path())
			return nil
		})
	},
}

// resolveOrCreateProduct resolves path, creating the reference with the
// product kind if it does not exist.
func resolveOrCreateProduct(s *manifest.Store, path string) (*manifest.FileReference, error) {
	ref, err := s.Resolve(path)
	if err == nil {
		return ref, nil
	}
	if !errors.Is(err, manifest.ErrNotFound) {
		return nil, err
	}

	groupPath := productGroup
	leaf := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		groupPath, leaf = path[:i], path[i+1:]
	}
	g, err := s.FindOrCreateGroup(groupPath)
	if err != nil {
		return nil, err
	}
	return s.AddFile(g, leaf, manifest.KindProduct)
}
