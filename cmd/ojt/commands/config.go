package commands

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"online-judge-toolchain/internal/components/telemetry"
	"online-judge-toolchain/internal/session"
	"online-judge-toolchain/lib/configutil"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

type AtCoderConfig struct {
	BaseUrl string `json:"base_url"`
}

type ServicesConfig struct {
	AtCoder AtCoderConfig `json:"atcoder"`
}

type Config struct {
	// SessionFile defaults to <data home>/online-judge-toolchain/session.json
	SessionFile string `json:"session_file"`
	// OutputDir is used by download when --output-dir is not given.
	OutputDir      string           `json:"output_dir"`
	UserAgent      string           `json:"user_agent"`
	TimeoutSeconds int              `json:"timeout_seconds"`
	MergeSessions  bool             `json:"merge_sessions"`
	Services       ServicesConfig   `json:"services"`
	Telemetry      telemetry.Config `json:"telemetry"`
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultConfigPath is <config home>/online-judge-toolchain/config.json5
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, session.AppDirName, "config.json5")
}

func defaultConfig() Config {
	return Config{
		OutputDir:      ".",
		TimeoutSeconds: 30,
	}
}

// loadConfig reads the config file at `path` (and its .local override), a
// missing config file is not an error.
func loadConfig(fs afero.Fs, path string) (Config, error) {
	cfg, err := configutil.ReadConfig(fs, path, defaultConfig())
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file, using defaults", "path", path)
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
