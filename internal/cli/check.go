package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify manifest consistency",
	Long: `Load the manifest and verify its cross-cutting invariants: build phases
only reference files in the tree, products carry the product kind, and
schemes are bound to existing targets. Exits non-zero if any violation is
found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore()
		if err != nil {
			return err
		}

		issues := s.Check()
		if len(issues) == 0 {
			fmt.Println("Manifest is consistent.")
			return nil
		}
		for _, issue := range issues {
			fmt.Printf("  %s\n", issue)
		}
		return fmt.Errorf("%d consistency issue(s) found", len(issues))
	},
}
