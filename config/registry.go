package config

import (
	"github.com/philipp01105/tlog/decorator"
	"github.com/philipp01105/tlog/logger"
	"github.com/philipp01105/tlog/metrics"
	"github.com/philipp01105/tlog/target"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Registry owns the targets and loggers built from a Config. Targets
// named by several loggers are shared, not duplicated.
type Registry struct {
	targets     map[string]target.Target
	targetOrder []string
	loggers     map[string]*logger.Logger
	loggerOrder []string
	collector   *metrics.Collector
}

// Build validates cfg and creates its targets, then its loggers. On
// failure everything created so far is released.
func Build(cfg *Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		targets:   make(map[string]target.Target, len(cfg.Targets)),
		loggers:   make(map[string]*logger.Logger, len(cfg.Loggers)),
		collector: metrics.NewCollector(""),
	}

	for _, tc := range cfg.Targets {
		t, err := newTarget(tc)
		if err != nil {
			return nil, multierr.Append(errors.Wrapf(err, "target %q", tc.Name), r.Close())
		}
		r.targets[tc.Name] = t
		r.targetOrder = append(r.targetOrder, tc.Name)
		if err := r.collector.Register(tc.Name, t); err != nil {
			return nil, multierr.Append(err, r.Close())
		}
	}

	for _, lc := range cfg.Loggers {
		level, _ := levelOrDefault(lc.Level, logger.DefaultLevel)
		b := logger.NewBuilder(lc.Name).WithLevel(level)
		for _, ref := range lc.Targets {
			b = b.WithTargets(r.targets[ref])
		}
		if len(lc.Decorators) > 0 {
			p, _ := decorator.Parse(lc.Decorators)
			b = b.WithDecorators(p...)
		}
		r.loggers[lc.Name] = b.Build()
		r.loggerOrder = append(r.loggerOrder, lc.Name)
	}
	return r, nil
}

func newTarget(tc TargetConfig) (target.Target, error) {
	level, _ := levelOrDefault(tc.Level, logger.TraceLevel)

	switch tc.Type {
	case TypeStdout:
		return target.NewStdout(level), nil
	case TypeStderr:
		return target.NewStderr(level), nil
	case TypeFile:
		return target.NewFileTarget(target.FileConfig{
			Path:        tc.Path,
			Level:       level,
			ProcessLock: tc.ProcessLock,
		})
	case TypeNATS:
		url := tc.URL
		if url == "" {
			url = target.DefaultNATSURL
		}
		return target.DialNATS(url, tc.Subject, level)
	case TypeZap:
		zc := zap.NewProductionConfig()
		if tc.Preset == "development" {
			zc = zap.NewDevelopmentConfig()
		}
		// The target level is the only gate
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		zc.Sampling = nil
		z, err := zc.Build()
		if err != nil {
			return nil, errors.Wrap(err, "build zap logger")
		}
		return target.NewZapTarget(z.Named(tc.Name), level), nil
	}
	return nil, errors.Wrapf(ErrInvalid, "unknown type %q", tc.Type)
}

// Logger returns the named logger, or nil
func (r *Registry) Logger(name string) *logger.Logger {
	return r.loggers[name]
}

// Target returns the named target, or nil
func (r *Registry) Target(name string) target.Target {
	return r.targets[name]
}

// Loggers returns the logger names in configuration order
func (r *Registry) Loggers() []string {
	return append([]string(nil), r.loggerOrder...)
}

// Collector returns the Prometheus collector covering every target
func (r *Registry) Collector() *metrics.Collector {
	return r.collector
}

// Close closes every logger, then drops the registry's own reference to
// each target. A target still held by a logger built elsewhere stays
// open.
func (r *Registry) Close() error {
	var err error
	for _, name := range r.loggerOrder {
		err = multierr.Append(err, r.loggers[name].Close())
	}
	for _, name := range r.targetOrder {
		err = multierr.Append(err, r.targets[name].Release())
		r.collector.Unregister(name)
	}
	r.loggers = map[string]*logger.Logger{}
	r.targets = map[string]target.Target{}
	r.loggerOrder, r.targetOrder = nil, nil
	return err
}
