package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/manifest"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the manifest: tree, targets, and schemes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore()
		if err != nil {
			return err
		}

		fmt.Println("Groups:")
		if len(s.Root().Groups()) == 0 && len(s.Root().Files()) == 0 {
			fmt.Println("  (empty)")
		}
		printGroup(s.Root(), 1)

		fmt.Println("Targets:")
		if len(s.Targets()) == 0 {
			fmt.Println("  (none)")
		}
		for _, t := range s.Targets() {
			fmt.Printf("  %s\n", t.Name())
			if t.Product() != nil {
				fmt.Printf("    product: %s\n", t.Product().Path())
			}
			for _, p := range t.Phases() {
				fmt.Printf("    %s (%d files)\n", p.Kind(), len(p.Files()))
				for _, ref := range p.Files() {
					fmt.Printf("      %s\n", ref.Path())
				}
			}
			for _, cfg := range t.Configurations().All() {
				printConfig(cfg, "    ")
			}
		}

		if configs := s.ProjectConfigurations().All(); len(configs) > 0 {
			fmt.Println("Project configurations:")
			for _, cfg := range configs {
				printConfig(cfg, "  ")
			}
		}

		fmt.Println("Schemes:")
		if len(s.Schemes()) == 0 {
			fmt.Println("  (none)")
		}
		for _, sc := range s.Schemes() {
			visibility := "private"
			if sc.Shared {
				visibility = "shared"
			}
			fmt.Printf("  %s -> %s (%s)\n", sc.Name, sc.Target, visibility)
		}
		return nil
	},
}

func printGroup(g *manifest.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, child := range g.Groups() {
		fmt.Printf("%s%s/\n", indent, child.Name())
		printGroup(child, depth+1)
	}
	for _, ref := range g.Files() {
		if ref.Kind() != manifest.KindNone {
			fmt.Printf("%s%s (%s)\n", indent, ref.Name(), ref.Kind())
		} else {
			fmt.Printf("%s%s\n", indent, ref.Name())
		}
	}
}

func printConfig(cfg *manifest.BuildConfiguration, indent string) {
	fmt.Printf("%s%s:\n", indent, cfg.Name())
	for _, k := range cfg.Keys() {
		v, _ := cfg.Get(k)
		fmt.Printf("%s  %s = %s\n", indent, k, v)
	}
}
