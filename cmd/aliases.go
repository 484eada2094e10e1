package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ripit/ripit-cli/internal/config"
	"github.com/ripit/ripit-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Show the active alias table and escape set",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := config.Get().Table()
			if err != nil {
				return err
			}
			fmt.Print(console.RenderAliases(table))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
