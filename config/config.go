package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/philipp01105/tlog/core"
	"github.com/philipp01105/tlog/decorator"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Target types
const (
	TypeStdout = "stdout"
	TypeStderr = "stderr"
	TypeFile   = "file"
	TypeNATS   = "nats"
	TypeZap    = "zap"
)

// ErrInvalid marks every validation failure
var ErrInvalid = errors.New("invalid logging config")

// Config describes a set of named targets and the loggers using them
type Config struct {
	Targets []TargetConfig `yaml:"targets"`
	Loggers []LoggerConfig `yaml:"loggers"`
}

// TargetConfig describes one output target
type TargetConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Level is the most verbose level accepted (default: trace)
	Level string `yaml:"level"`

	// file
	Path        string `yaml:"path"`
	ProcessLock bool   `yaml:"process_lock"`

	// nats
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`

	// zap: "production" (default) or "development"
	Preset string `yaml:"preset"`
}

// LoggerConfig describes one named logger
type LoggerConfig struct {
	Name string `yaml:"name"`
	// Level is the logger gate (default: info)
	Level   string   `yaml:"level"`
	Targets []string `yaml:"targets"`
	// Decorators names the record prefix pipeline, in order. Empty
	// means timestamp, pid, level.
	Decorators []string `yaml:"decorators"`
}

// Parse decodes and validates a YAML document. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode logging config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read logging config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Validate checks names, references and per-type settings. All
// problems are reported together.
func (c *Config) Validate() error {
	var err error
	invalid := func(format string, args ...interface{}) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalid, format, args...))
	}

	targets := make(map[string]bool, len(c.Targets))
	for i, t := range c.Targets {
		switch {
		case t.Name == "":
			invalid("target #%d has no name", i+1)
		case targets[t.Name]:
			invalid("duplicate target %q", t.Name)
		}
		targets[t.Name] = true

		if _, lerr := levelOrDefault(t.Level, core.TraceLevel); lerr != nil {
			invalid("target %q: %v", t.Name, lerr)
		}
		switch t.Type {
		case TypeStdout, TypeStderr:
		case TypeFile:
			if t.Path == "" {
				invalid("file target %q has no path", t.Name)
			}
		case TypeNATS:
			if t.Subject == "" {
				invalid("nats target %q has no subject", t.Name)
			}
		case TypeZap:
			if t.Preset != "" && t.Preset != "production" && t.Preset != "development" {
				invalid("zap target %q: unknown preset %q", t.Name, t.Preset)
			}
		default:
			invalid("target %q: unknown type %q", t.Name, t.Type)
		}
	}

	loggers := make(map[string]bool, len(c.Loggers))
	for i, l := range c.Loggers {
		switch {
		case l.Name == "":
			invalid("logger #%d has no name", i+1)
		case loggers[l.Name]:
			invalid("duplicate logger %q", l.Name)
		}
		loggers[l.Name] = true

		if _, lerr := levelOrDefault(l.Level, core.InfoLevel); lerr != nil {
			invalid("logger %q: %v", l.Name, lerr)
		}
		for _, ref := range l.Targets {
			if !targets[ref] {
				invalid("logger %q: unknown target %q", l.Name, ref)
			}
		}
		if _, derr := decorator.Parse(l.Decorators); derr != nil {
			invalid("logger %q: %v", l.Name, derr)
		}
	}
	return err
}

// levelOrDefault parses a level name. An empty name yields def; "none"
// is accepted, any other unknown name is an error.
func levelOrDefault(name string, def core.Level) (core.Level, error) {
	if name == "" {
		return def, nil
	}
	level := core.ParseLevel(name)
	if level == core.NoneLevel && !strings.EqualFold(strings.TrimSpace(name), "none") {
		return def, errors.Errorf("unknown level %q", name)
	}
	return level, nil
}
