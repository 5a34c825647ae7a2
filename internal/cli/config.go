package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manifold-tools/manifold/internal/config"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage manifold CLI settings",
	Long: `Read and write settings in ` + "`~/.manifold/config.yaml`" + `.

Known keys:
  defaults.phase          build phase used by attach without --phase
  defaults.configuration  configuration scope used without --configuration
  defaults.shared         whether generated schemes are shared by default`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.Get(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s.\n", args[0], args[1])
		return nil
	},
}
