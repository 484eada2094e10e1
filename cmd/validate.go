package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the merged configuration against the JSON Schema",
	Run: func(cmd *cobra.Command, args []string) {
		// loading and schema validation already ran in initConfig;
		// reaching this point means both passed
		fmt.Println("Configuration is valid")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
