// Package logger is the public API of tlog.
//
// A Logger has a name, a level and an ordered list of targets. Every log
// call passes two gates: the logger level first, then the level of each
// target. A message that fails the logger gate costs one comparison and
// is never decorated. A message that passes is decorated once and the
// same record is offered to every target:
//
//	file, err := target.NewFile("logs/app.log", logger.TraceLevel)
//	if err != nil {
//	    return err
//	}
//	defer file.Release()
//
//	log := logger.NewBuilder("api").
//	    WithLevel(logger.InfoLevel).
//	    WithTargets(target.NewStderr(logger.ErrorLevel), file).
//	    Build()
//	defer log.Close()
//
//	log.Info("listening")        // file only
//	log.Errorf("bind: %v", err)  // stderr and file
//
// Targets may be shared between loggers. A logger retains every target
// it holds and releases them in Close; the file above closes once both
// its creator and the logger have released it.
//
// Adding and removing targets is safe while other goroutines log. There
// is no package-level default logger; DefaultLevel is the only shared
// default.
package logger
