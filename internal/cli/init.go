package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/project"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty manifest in the project directory",
	Long: `Create manifold.yaml in the project directory. Fails if a manifest
already exists there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := project.Init(projectDir); err != nil {
			return err
		}
		fmt.Printf("Initialized empty manifest at %s.\n", project.ManifestPath(projectDir))
		return nil
	},
}
