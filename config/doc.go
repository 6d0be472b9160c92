// Package config builds loggers and targets from a YAML description.
//
//	targets:
//	  - name: out
//	    type: stdout
//	  - name: app
//	    type: file
//	    path: logs/app.log
//	loggers:
//	  - name: api
//	    level: info
//	    targets: [out, app]
//
// Target types are stdout, stderr, file, nats and zap. A target named by
// several loggers is created once and shared. ApplyEnv lets TLOG_LEVEL
// and TLOG_DIR, from the environment or .env files, override the file.
package config
