package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/spf13/afero"
	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// LocalPath returns the path of the override file for `name`,
// config.json5 -> config.local.json5
func LocalPath(name string) string {
	prefixname, ext := splitExt(filepath.Base(name))
	if ext == "" {
		return filepath.Join(filepath.Dir(name), prefixname+".local")
	}
	return filepath.Join(
		filepath.Dir(name),
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)
}

// reads a configuration file, `name` should come with a file extension.
// this function will merge the following files on top of `defaults`, where
// higher number is more prioritized.
// 1. <name>.<ext>
// 2. <name>.local.<ext>
// if neither file exists, `defaults` is returned along with os.ErrNotExist.
func ReadConfig[T any](fs afero.Fs, name string, defaults T) (T, error) {
	out := defaults
	allNotFound := true

	for _, path := range []string{name, LocalPath(name)} {
		contents, err := afero.ReadFile(fs, path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return defaults, err
		}
		allNotFound = false
		if len(contents) == 0 {
			continue
		}

		var override T
		err = json5.Unmarshal(contents, &override)
		if err != nil {
			return defaults, fmt.Errorf("parse %s: %w", path, err)
		}
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return defaults, err
		}
		slog.Debug("merged config file", "path", path)
	}

	if allNotFound {
		return defaults, os.ErrNotExist
	}

	return out, nil
}
