package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{in: "debug", want: LevelDebug},
		{in: "  WARN ", want: LevelWarn},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "info", want: LevelInfo},
		{in: "garbage", want: LevelInfo},
		{in: "", want: LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLevelStringRoundTrips(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if got := ParseLevel(level.String()); got != level {
			t.Fatalf("ParseLevel(%q) = %v, want %v", level.String(), got, level)
		}
	}
}

func TestWriterForwardsEachLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelInfo)

	w := NewWriter(logger)
	n, err := w.Write([]byte("first line\nsecond line\n"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != len("first line\nsecond line\n") {
		t.Fatalf("short write: %d", n)
	}

	out := buf.String()
	if !strings.Contains(out, "first line") || !strings.Contains(out, "second line") {
		t.Fatalf("expected both lines in log output, got %q", out)
	}
}

func TestWriterWithoutLogger(t *testing.T) {
	var w Writer
	n, err := w.Write([]byte("dropped\n"))
	if err != nil || n != len("dropped\n") {
		t.Fatalf("expected silent accept, got n=%d err=%v", n, err)
	}
}
