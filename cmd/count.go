package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "count <pattern> [backend flags...]",
		Short: "Print the total number of matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSearcher()
			n, err := s.Count(args[0], args[1:]...)
			if err != nil {
				return err
			}
			recordHistory(s, args[0], args[1:])
			fmt.Println(n)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(cmd)
}
