package cmd

import (
	"os"
	"path/filepath"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/ripit/ripit-cli/internal/assets"
	"github.com/ripit/ripit-cli/internal/logging"
)

func init() {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := filepath.Join(configDir, assets.ConfigFileName)
			if _, err := os.Stat(p); err == nil && !force {
				ok := false
				if err := survey.AskOne(&survey.Confirm{Message: p + " exists, overwrite?", Default: false}, &ok); err != nil {
					return err
				}
				if !ok {
					logging.Info("kept existing config")
					return nil
				}
			}
			if err := assets.WriteDefaultConfig(configDir); err != nil {
				return err
			}
			logging.Success("wrote " + p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite without asking")
	rootCmd.AddCommand(cmd)
}
