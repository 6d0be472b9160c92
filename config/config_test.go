package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipp01105/tlog/core"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const sample = `
targets:
  - name: out
    type: stdout
    level: error
  - name: app
    type: file
    path: logs/app.log
    process_lock: true
  - name: bus
    type: nats
    url: nats://127.0.0.1:4222
    subject: logs.app
    level: warning
loggers:
  - name: api
    level: debug
    targets: [out, app]
    decorators: [timestamp, pid, level]
  - name: db
    targets: [app]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Targets) != 3 || len(cfg.Loggers) != 2 {
		t.Fatalf("got %d targets, %d loggers", len(cfg.Targets), len(cfg.Loggers))
	}

	app := cfg.Targets[1]
	if app.Type != TypeFile || app.Path != "logs/app.log" || !app.ProcessLock {
		t.Errorf("file target = %+v", app)
	}
	bus := cfg.Targets[2]
	if bus.URL != "nats://127.0.0.1:4222" || bus.Subject != "logs.app" || bus.Level != "warning" {
		t.Errorf("nats target = %+v", bus)
	}
	api := cfg.Loggers[0]
	if strings.Join(api.Targets, ",") != "out,app" || len(api.Decorators) != 3 {
		t.Errorf("logger = %+v", api)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if len(cfg.Targets) != 0 || len(cfg.Loggers) != 0 {
		t.Errorf("Parse(nil) = %+v", cfg)
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("targets:\n  - name: out\n    type: stdout\n    colour: red\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "unnamed target",
			cfg:  Config{Targets: []TargetConfig{{Type: TypeStdout}}},
			want: "target #1 has no name",
		},
		{
			name: "duplicate target",
			cfg:  Config{Targets: []TargetConfig{{Name: "a", Type: TypeStdout}, {Name: "a", Type: TypeStderr}}},
			want: `duplicate target "a"`,
		},
		{
			name: "unknown type",
			cfg:  Config{Targets: []TargetConfig{{Name: "a", Type: "syslog"}}},
			want: `unknown type "syslog"`,
		},
		{
			name: "file without path",
			cfg:  Config{Targets: []TargetConfig{{Name: "a", Type: TypeFile}}},
			want: `file target "a" has no path`,
		},
		{
			name: "nats without subject",
			cfg:  Config{Targets: []TargetConfig{{Name: "a", Type: TypeNATS}}},
			want: `nats target "a" has no subject`,
		},
		{
			name: "bad zap preset",
			cfg:  Config{Targets: []TargetConfig{{Name: "a", Type: TypeZap, Preset: "fast"}}},
			want: `unknown preset "fast"`,
		},
		{
			name: "bad target level",
			cfg:  Config{Targets: []TargetConfig{{Name: "a", Type: TypeStdout, Level: "verbose"}}},
			want: `unknown level "verbose"`,
		},
		{
			name: "unnamed logger",
			cfg:  Config{Loggers: []LoggerConfig{{}}},
			want: "logger #1 has no name",
		},
		{
			name: "duplicate logger",
			cfg:  Config{Loggers: []LoggerConfig{{Name: "l"}, {Name: "l"}}},
			want: `duplicate logger "l"`,
		},
		{
			name: "unknown target reference",
			cfg:  Config{Loggers: []LoggerConfig{{Name: "l", Targets: []string{"missing"}}}},
			want: `unknown target "missing"`,
		},
		{
			name: "unknown decorator",
			cfg:  Config{Loggers: []LoggerConfig{{Name: "l", Decorators: []string{"hostname"}}}},
			want: "hostname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := Config{
		Targets: []TargetConfig{{Name: "a", Type: TypeFile}, {Name: "b", Type: "tcp"}},
		Loggers: []LoggerConfig{{Name: "l", Targets: []string{"c"}}},
	}
	if n := len(multierr.Errors(cfg.Validate())); n != 3 {
		t.Errorf("got %d errors, want 3", n)
	}
}

func TestValidate_NoneLevel(t *testing.T) {
	cfg := Config{Loggers: []LoggerConfig{{Name: "muted", Level: "NONE"}}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if level, _ := levelOrDefault("NONE", core.InfoLevel); level != core.NoneLevel {
		t.Errorf("levelOrDefault(NONE) = %v", level)
	}
	if level, _ := levelOrDefault("", core.InfoLevel); level != core.InfoLevel {
		t.Errorf("levelOrDefault(\"\") = %v", level)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Loggers) != 2 {
		t.Errorf("got %d loggers", len(cfg.Loggers))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("loggers:\n  - name: l\n    targets: [nope]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), bad) {
		t.Errorf("Load(bad) error = %v", err)
	}
}
