package decorator

import (
	"bytes"
	"sync"

	"github.com/philipp01105/tlog/core"
	"github.com/pkg/errors"
)

// Pipeline is an ordered list of decorators. Rendering joins every field
// and the raw message with single spaces.
type Pipeline []Decorator

// Default returns the standard pipeline: timestamp, process id, level.
func Default() Pipeline {
	return Pipeline{Timestamp{}, PID(), LevelChar()}
}

// Render decorates e and returns the full record text
func (p Pipeline) Render(e *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)

	for _, d := range p {
		buf.WriteString(d.Decorate(e))
		buf.WriteByte(' ')
	}
	buf.WriteString(e.Message)
	return buf.String()
}

// ErrUnknownDecorator is returned by Parse for an unrecognized name
var ErrUnknownDecorator = errors.New("unknown decorator")

// Parse builds a pipeline from decorator names: "timestamp", "pid",
// "thread" and "level".
func Parse(names []string) (Pipeline, error) {
	p := make(Pipeline, 0, len(names))
	for _, name := range names {
		switch name {
		case "timestamp", "time":
			p = append(p, Timestamp{})
		case "pid":
			p = append(p, PID())
		case "thread", "tid":
			p = append(p, ThreadID())
		case "level":
			p = append(p, LevelChar())
		default:
			return nil, errors.Wrap(ErrUnknownDecorator, name)
		}
	}
	return p, nil
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
