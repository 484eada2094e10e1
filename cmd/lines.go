package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lines <pattern> [backend flags...]",
		Short: "Print matching lines, blanks filtered out",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSearcher()
			lines, err := s.Lines(args[0], args[1:]...)
			if err != nil {
				return err
			}
			recordHistory(s, args[0], args[1:])
			for _, l := range lines {
				fmt.Println(l)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(cmd)
}
