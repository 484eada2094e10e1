package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ripit/ripit-cli/internal/assets"
	"github.com/ripit/ripit-cli/internal/config"
	"github.com/ripit/ripit-cli/internal/logging"
	"github.com/ripit/ripit-cli/internal/state"
	"github.com/ripit/ripit-cli/pkg/ripit"
)

var cfgFile string
var configDir string
var verbose bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "ripit <pattern> [backend flags...]",
	Short: "Friendly-pattern code search over ripgrep",
	Long: `ripit rewrites a friendly pattern into a regular expression and runs it
through ripgrep. Alias tokens stand in for common regex fragments:

  <>          .*                 anything
  <name>      \w+                identifiers
  <word>      [a-zA-Z]+          words
  <number>    \d+                digits
  <filename>  [a-zA-Z0-9_-]+     file names

Everything after the pattern is passed to the backend untouched:

  ripit 'def <name>(<>):' --type py -n`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSearcher()
		logging.Debug("regex: " + s.Translate(args[0]))
		out, err := s.Search(args[0], args[1:]...)
		if err != nil {
			return err
		}
		recordHistory(s, args[0], args[1:])
		fmt.Print(out)
		return nil
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the config file (default: ~/.config/ripit/ripit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show the translated regex and debug output")
	// everything after the pattern belongs to the backend
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	userSpecified := cfgFile != ""
	if userSpecified {
		configDir = filepath.Dir(cfgFile)
	} else {
		dir, _ := os.UserConfigDir()
		configDir = filepath.Join(dir, "ripit")
		cfgFile = filepath.Join(configDir, assets.ConfigFileName)
	}
	var files []string
	if _, err := os.Stat(cfgFile); err == nil {
		files = append(files, cfgFile)
	} else if userSpecified {
		logging.Error("config not found: " + cfgFile)
		os.Exit(1)
	}
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultConfig(), files)
	if err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		logging.Error("schema error: " + err.Error())
		os.Exit(1)
	}
	logging.Init(configDir)
	logging.SetVerbose(verbose)
}

func newSearcher() *ripit.Searcher {
	cfg := config.Get()
	// the table was validated at load time
	table, _ := cfg.Table()
	return ripit.New(cfg.Backend.DefaultArgs,
		ripit.WithBinary(cfg.Backend.Binary),
		ripit.WithTable(table))
}

// recordHistory journals what was searched, never what was found. Failures
// here must not break the search itself.
func recordHistory(s *ripit.Searcher, pattern string, args []string) {
	h, err := state.NewHistory(configDir)
	if err != nil {
		logging.Debug("history unavailable: " + err.Error())
		return
	}
	e := state.Entry{
		Pattern: pattern,
		Regex:   s.Translate(pattern),
		Args:    args,
		When:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Append(e); err != nil {
		logging.Debug("history write failed: " + err.Error())
	}
}
