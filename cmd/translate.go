package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "translate <pattern>",
		Short: "Print the translated regex without searching",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(newSearcher().Translate(args[0]))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
