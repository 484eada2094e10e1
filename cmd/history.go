package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ripit/ripit-cli/internal/state"
	"github.com/ripit/ripit-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := state.NewHistory(configDir)
			if err != nil {
				return err
			}
			fmt.Print(console.RenderHistory(h.Entries()))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
