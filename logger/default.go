package logger

import (
	"github.com/philipp01105/tlog/core"
)

// DefaultLevel is the level of loggers built without WithLevel
const DefaultLevel = core.InfoLevel
