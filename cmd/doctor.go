package cmd

import (
	"fmt"
	"os/exec"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/ripit/ripit-cli/internal/config"
	"github.com/ripit/ripit-cli/internal/executil"
	"github.com/ripit/ripit-cli/internal/github"
	"github.com/ripit/ripit-cli/internal/logging"
	"github.com/ripit/ripit-cli/internal/ui/console"
)

const ripgrepRepo = "BurntSushi/ripgrep"

const installHint = `Install ripgrep first:
  macOS:         brew install ripgrep
  Ubuntu/Debian: apt install ripgrep
  Fedora:        dnf install ripgrep
  Windows:       choco install ripgrep
  Or visit: https://github.com/BurntSushi/ripgrep#installation
`

func init() {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the search backend installation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			st := console.BackendStatus{Binary: cfg.Backend.Binary}
			if path, err := exec.LookPath(cfg.Backend.Binary); err == nil {
				st.Path = path
				if res, err := executil.Run(cfg.Backend.Binary, []string{"--version"}); err == nil && res.Code == 0 {
					st.Version = github.NormalizeVersion(firstLine(res.Stdout))
				}
			}
			if rel, err := github.NewClient().GetLatestRelease(ripgrepRepo); err == nil {
				st.Latest = github.NormalizeVersion(rel.TagName)
			} else {
				logging.Debug("release lookup failed: " + err.Error())
			}
			fmt.Print(console.RenderBackendStatus(st))
			if st.Path == "" {
				show := true
				if err := survey.AskOne(&survey.Confirm{Message: "Show install instructions?", Default: true}, &show); err == nil && show {
					fmt.Print(installHint)
				}
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
