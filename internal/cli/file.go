package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/manifest"
)

var fileKind string

func init() {
	fileAddCmd.Flags().StringVar(&fileKind, "kind", "", "Declared kind: source, resource, framework, or product")
	fileCmd.AddCommand(fileAddCmd)
	fileCmd.AddCommand(fileRemoveCmd)
	fileCmd.AddCommand(fileMoveCmd)
	rootCmd.AddCommand(fileCmd)
}

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage file references in the manifest tree",
}

var fileAddCmd = &cobra.Command{
	Use:   "add <group-path> <name>",
	Short: "Add a file reference to a group",
	Long: `Add a file reference with the given leaf name directly under the group,
creating the group if needed. Fails if the group already holds a file with
that name.

Example:
  manifold file add App/Views List.src --kind source`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupPath, name := args[0], args[1]
		return withStore(func(s *manifest.Store) error {
			g, err := s.FindOrCreateGroup(groupPath)
			if err != nil {
				return err
			}
			ref, err := s.AddFile(g, name, manifest.Kind(fileKind))
			if err != nil {
				return err
			}
			fmt.Printf("Added %s.\n", ref.Path())
			return nil
		})
	},
}

var fileRemoveCmd = &cobra.Command{
	Use:   "remove <file-path>",
	Short: "Remove a file reference everywhere",
	Long: `Remove the file reference at the given path. The removal cascades: every
target drops the reference from its build phases, and a target whose product
it was loses its product.

Example:
  manifold file remove App/Views/List.src`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		return withStore(func(s *manifest.Store) error {
			ref, err := s.Resolve(path)
			if err != nil {
				return err
			}
			if err := s.RemoveFile(ref); err != nil {
				return err
			}
			fmt.Printf("Removed %s.\n", path)
			return nil
		})
	},
}

var fileMoveCmd = &cobra.Command{
	Use:   "move <file-path> <dest-group-path>",
	Short: "Move a file reference into another group",
	Long: `Move the file reference at the given path into the destination group.
Build-phase memberships survive the move: a target that built the file before
still builds it afterwards. The destination group must already exist.

Example:
  manifold file move App/Main.src Shared`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, dest := args[0], args[1]
		return withStore(func(s *manifest.Store) error {
			ref, err := s.Resolve(path)
			if err != nil {
				return err
			}
			g, err := s.ResolveGroup(dest)
			if err != nil {
				return err
			}
			if err := s.MoveFile(ref, g); err != nil {
				return err
			}
			fmt.Printf("Moved %s to %s.\n", path, ref.Path())
			return nil
		})
	},
}
