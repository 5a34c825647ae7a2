package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/manifest"
)

func init() {
	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupRemoveCmd)
	rootCmd.AddCommand(groupCmd)
}

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage groups in the manifest tree",
}

var groupAddCmd = &cobra.Command{
	Use:   "add <group-path>",
	Short: "Create a group, including missing parents",
	Long: `Create the group at the given slash-separated path. Parent groups that
do not exist yet are created along the way. Adding an existing group is a no-op.

Example:
  manifold group add App/Views`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		return withStore(func(s *manifest.Store) error {
			if _, err := s.FindOrCreateGroup(path); err != nil {
				return err
			}
			fmt.Printf("Group %s ready.\n", path)
			return nil
		})
	},
}

var groupRemoveCmd = &cobra.Command{
	Use:   "remove <group-path>",
	Short: "Remove a group and everything under it",
	Long: `Remove the group at the given path. File references under it are removed
from every target's build phases as well, so no dangling entries remain.

Example:
  manifold group remove App/Legacy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		return withStore(func(s *manifest.Store) error {
			g, err := s.ResolveGroup(path)
			if err != nil {
				return err
			}
			if err := s.RemoveGroup(g); err != nil {
				return err
			}
			fmt.Printf("Removed group %s.\n", path)
			return nil
		})
	},
}
