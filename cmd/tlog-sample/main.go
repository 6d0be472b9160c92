// Command tlog-sample shows the tlog API: several targets behind one
// logger, per-target level filtering and a file shared by two loggers.
//
// With -config the loggers come from a YAML file instead, optionally
// adjusted by .env files given with -env.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/philipp01105/tlog/config"
	"github.com/philipp01105/tlog/logger"
	"github.com/philipp01105/tlog/metrics"
	"github.com/philipp01105/tlog/target"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML logging configuration")
		envFiles    = flag.String("env", "", "comma separated .env files applied to -config")
		metricsAddr = flag.String("metrics", "", "serve target metrics on this address until interrupted")
		logDir      = flag.String("dir", "logs", "directory of the sample log file")
	)
	flag.Parse()

	// Setup failures are reported through tlog itself
	stderr := target.NewStderr(logger.ErrorLevel)
	setup := logger.New("setup", stderr)
	_ = stderr.Release()

	var (
		collector *metrics.Collector
		closeFn   func() error
		err       error
	)
	if *configPath != "" {
		collector, closeFn, err = runConfigured(*configPath, *envFiles)
	} else {
		collector, closeFn, err = runSample(*logDir)
	}
	if err == nil && *metricsAddr != "" {
		err = serveMetrics(*metricsAddr, collector)
	}
	if closeFn != nil {
		err = multierr.Append(err, closeFn())
	}
	if err != nil {
		setup.Critical(err.Error())
	}
	// Nowhere left to report a failure of the reporting logger
	_ = setup.Close()
	if err != nil {
		os.Exit(1)
	}
}

// runSample logs through hand-built targets
func runSample(dir string) (*metrics.Collector, func() error, error) {
	// Logger with the default stdout target
	dlog := logger.New("default")
	dlog.Info("log message should be visible on stdout!")
	if err := dlog.Close(); err != nil {
		return nil, nil, err
	}

	stdout := target.NewStdout(logger.TraceLevel)
	stderr := target.NewStderr(logger.ErrorLevel)
	defer stdout.Release()
	defer stderr.Release()

	file, err := target.NewFile(filepath.Join(dir, "sample-app.log"), logger.TraceLevel)
	if err != nil {
		var fe *target.FileError
		if errors.As(err, &fe) && fe.IsSymlink() {
			return nil, nil, errors.Wrap(err, "refusing to log through a symlink")
		}
		return nil, nil, err
	}
	defer file.Release()

	log := logger.NewBuilder("custom").
		WithLevel(logger.TraceLevel).
		WithTargets(stdout, stderr, file).
		Build()

	log.Error("Unknown error occurred!!! Should be visible on stderr")
	log.Info("some info message to file")
	log.Debugf("Sample debug message from %s", log.Name())

	// Two loggers sharing the same file target
	log2 := logger.NewBuilder("new_logger").
		WithLevel(logger.DebugLevel).
		WithTargets(file).
		Build()
	log2.Debug("This message is from logger2")

	collector := metrics.NewCollector("")
	for name, t := range map[string]target.Target{"stdout": stdout, "stderr": stderr, "file": file} {
		if err := collector.Register(name, t); err != nil {
			return nil, nil, multierr.Combine(err, log.Close(), log2.Close())
		}
	}

	closeFn := func() error {
		return multierr.Combine(log.Close(), log2.Close())
	}
	return collector, closeFn, multierr.Combine(log.Flush(), log2.Flush())
}

// runConfigured logs one message through every configured logger
func runConfigured(path, envFiles string) (*metrics.Collector, func() error, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	var files []string
	for _, f := range strings.Split(envFiles, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	if err := config.ApplyEnv(cfg, files...); err != nil {
		return nil, nil, err
	}

	reg, err := config.Build(cfg)
	if err != nil {
		return nil, nil, err
	}

	for _, name := range reg.Loggers() {
		l := reg.Logger(name)
		l.Infof("logger %s ready at level %s", name, l.Level())
		if err := l.Flush(); err != nil {
			return nil, reg.Close, err
		}
	}
	return reg.Collector(), reg.Close, nil
}

func serveMetrics(addr string, c prometheus.Collector) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(c)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return errors.Wrap(err, "serve metrics")
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdown)
}
