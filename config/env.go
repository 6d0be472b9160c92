package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables read by ApplyEnv
const (
	// EnvLevel overrides the level of every logger
	EnvLevel = "TLOG_LEVEL"
	// EnvDir is prepended to relative file target paths
	EnvDir = "TLOG_DIR"
)

// ApplyEnv applies TLOG_LEVEL and TLOG_DIR to cfg. A non-empty value in
// the process environment wins over the given .env files, which are read
// in order. Missing files are an error.
func ApplyEnv(cfg *Config, files ...string) error {
	fileEnv := map[string]string{}
	if len(files) > 0 {
		var err error
		if fileEnv, err = godotenv.Read(files...); err != nil {
			return errors.Wrap(err, "read env files")
		}
	}
	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	if v, ok := lookup(EnvLevel); ok && v != "" {
		if _, err := levelOrDefault(v, 0); err != nil {
			return errors.Wrap(err, EnvLevel)
		}
		for i := range cfg.Loggers {
			cfg.Loggers[i].Level = v
		}
	}

	if dir, ok := lookup(EnvDir); ok && dir != "" {
		for i, t := range cfg.Targets {
			if t.Type == TypeFile && t.Path != "" && !filepath.IsAbs(t.Path) {
				cfg.Targets[i].Path = filepath.Join(dir, t.Path)
			}
		}
	}
	return nil
}
