package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

//go:embed default-aliases.yaml
var defaultConfig []byte

// ConfigFileName is the user config file looked up inside the config dir.
const ConfigFileName = "ripit.yaml"

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() []byte { return defaultConfig }

// WriteDefaultConfig writes the embedded defaults to targetDir, overwriting
// any existing file.
func WriteDefaultConfig(targetDir string) error {
	if targetDir == "" {
		return errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(targetDir, ConfigFileName), defaultConfig, 0o644)
}

// WriteDefaultConfigIfMissing writes the defaults only when no config file
// exists yet.
func WriteDefaultConfigIfMissing(targetDir string) error {
	if targetDir == "" {
		return errors.New("empty targetDir")
	}
	p := filepath.Join(targetDir, ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return WriteDefaultConfig(targetDir)
}
