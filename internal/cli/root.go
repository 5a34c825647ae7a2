package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/config"
	"github.com/manifold-tools/manifold/internal/manifest"
	"github.com/manifold-tools/manifold/internal/project"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var projectDir string

var rootCmd = &cobra.Command{
	Use:   "manifold",
	Short: "Consistency-preserving project manifest editor",
	Long: `Manifold edits a structured project manifest: groups of file references,
build targets with ordered build phases, build-configuration settings, and
named build/launch schemes. Every edit keeps the manifest consistent — moves
carry build-phase memberships along, removals cascade, and re-running the
same edit converges instead of accumulating duplicates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", ".", "Project directory containing manifold.yaml")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadStore reads the project manifest for read-only commands.
func loadStore() (*manifest.Store, error) {
	return project.Load(projectDir)
}

// withStore runs one mutation batch: load the manifest, apply fn, and save
// the result. If fn fails nothing is persisted, so a failed precondition
// leaves the on-disk manifest exactly as it was.
func withStore(fn func(*manifest.Store) error) error {
	store, err := project.Load(projectDir)
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	return project.Save(projectDir, store)
}
