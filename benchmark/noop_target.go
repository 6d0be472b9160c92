package benchmark

import (
	"github.com/philipp01105/tlog/core"
	"github.com/philipp01105/tlog/target"
)

// noopTarget accepts every record and drops it, isolating logger cost
type noopTarget struct {
	*target.Base
}

func newNoopTarget() *noopTarget {
	return &noopTarget{Base: target.NewBase(core.TraceLevel, nil)}
}

func (t *noopTarget) Log(level core.Level, msg string) bool {
	return t.LogWith(level, msg, t.Write)
}

func (t *noopTarget) Write(msg string) error {
	_ = len(msg)
	return nil
}

func (t *noopTarget) Flush() error {
	return nil
}
