package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("warned")
	l.Errorf("failed %s", "twice")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Log("line below warn written:", out)
		t.Fail()
	}
	for _, want := range []string{"WARN warned", "ERROR failed twice"} {
		if !strings.Contains(out, want) {
			t.Log("missing", want, "in", out)
			t.Fail()
		}
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)
	l.With("input").With("evdev").Debugf("opened %s", "/dev/input/event3")
	l.Infof("plain")

	out := buf.String()
	if !strings.Contains(out, "DEBUG input: evdev: opened /dev/input/event3") {
		t.Log("component prefix missing in", out)
		t.Fail()
	}
	if !strings.Contains(out, "INFO plain") {
		t.Log("parent logger picked up a prefix:", out)
		t.Fail()
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic, nothing to observe
	Discard().With("x").Errorf("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		"Warn":  LevelWarn,
		"error": LevelError,
		"none":  LevelNone,
	}
	for in, expected := range tests {
		got, err := ParseLevel(in)
		if nil != err || got != expected {
			t.Log(in, "parsed as", got, err, "expected", expected)
			t.Fail()
		}
	}
	if _, err := ParseLevel("loud"); nil == err {
		t.Log("unknown level accepted")
		t.Fail()
	}
	if len(LevelNames()) != int(LevelNone)+1 {
		t.Fail()
	}
}
