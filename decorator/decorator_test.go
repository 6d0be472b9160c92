package decorator

import (
	"os"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/philipp01105/tlog/core"
	"github.com/pkg/errors"
)

func testEntry(level core.Level, msg string) *core.Entry {
	e := core.NewEntry(time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC), level, msg)
	return &e
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name string
		d    Timestamp
		want string
	}{
		{"ansic", Timestamp{Location: time.UTC}, "[Wed Feb 18 13:00:00 2026]"},
		{"rfc3339", Timestamp{Layout: time.RFC3339, Location: time.UTC}, "[2026-02-18T13:00:00Z]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Decorate(testEntry(core.InfoLevel, "x")); got != tt.want {
				t.Errorf("Decorate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPID(t *testing.T) {
	want := "[" + strconv.Itoa(os.Getpid()) + "]"
	if got := PID().Decorate(testEntry(core.InfoLevel, "x")); got != want {
		t.Errorf("PID() = %q, want %q", got, want)
	}
}

func TestThreadID(t *testing.T) {
	got := ThreadID().Decorate(testEntry(core.InfoLevel, "x"))
	if !regexp.MustCompile(`^\[\d+\]$`).MatchString(got) {
		t.Errorf("ThreadID() = %q, want a bracketed number", got)
	}
}

func TestLevelChar(t *testing.T) {
	tests := []struct {
		level core.Level
		want  string
	}{
		{core.CriticalLevel, "[C]"},
		{core.ErrorLevel, "[E]"},
		{core.WarningLevel, "[W]"},
		{core.InfoLevel, "[I]"},
		{core.DebugLevel, "[D]"},
		{core.TraceLevel, "[T]"},
		{core.NoneLevel, "[_]"},
	}

	for _, tt := range tests {
		if got := LevelChar().Decorate(testEntry(tt.level, "x")); got != tt.want {
			t.Errorf("LevelChar(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestPipeline_DefaultOrder(t *testing.T) {
	e := testEntry(core.WarningLevel, "disk almost full")
	got := Default().Render(e)

	want := Timestamp{}.Decorate(e) + " [" + strconv.Itoa(os.Getpid()) + "] [W] disk almost full"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPipeline_Custom(t *testing.T) {
	p := Pipeline{
		LevelChar(),
		Func(func(*core.Entry) string { return "[api]" }),
	}
	if got := p.Render(testEntry(core.ErrorLevel, "boom")); got != "[E] [api] boom" {
		t.Errorf("Render() = %q", got)
	}

	var empty Pipeline
	if got := empty.Render(testEntry(core.ErrorLevel, "bare")); got != "bare" {
		t.Errorf("empty Render() = %q, want bare", got)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse([]string{"level", "pid"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "[I] [" + strconv.Itoa(os.Getpid()) + "] hi"
	if got := p.Render(testEntry(core.InfoLevel, "hi")); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if _, err := Parse([]string{"level", "hostname"}); !errors.Is(err, ErrUnknownDecorator) {
		t.Errorf("Parse(hostname) error = %v, want ErrUnknownDecorator", err)
	}
}

func BenchmarkPipeline_Render(b *testing.B) {
	p := Default()
	e := testEntry(core.InfoLevel, "benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Render(e)
	}
}
