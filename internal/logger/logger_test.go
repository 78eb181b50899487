package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsRouteToWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters(&out, &errOut, false)

	l.Info("hello %d", 1)
	l.Warn("careful")
	l.Error("broken: %s", "speaker")
	l.Debug("hidden")
	l.Event("tap", "pinkBear", "energy=1")

	if !strings.Contains(out.String(), "[ZOO-INFO] ") || !strings.Contains(out.String(), "hello 1") {
		t.Errorf("Expected info line, got %q", out.String())
	}
	if !strings.Contains(out.String(), "[ZOO-WARN] ") {
		t.Errorf("Expected warn line, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "broken: speaker") {
		t.Errorf("Expected error on error writer, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "hidden") || strings.Contains(out.String(), "EVENT") {
		t.Errorf("Expected debug output suppressed, got %q", out.String())
	}
}

func TestDebugEnabled(t *testing.T) {
	var out bytes.Buffer
	l := NewWithWriters(&out, &out, true)
	l.Event("reset", "blueCat", "idle")
	if !strings.Contains(out.String(), "[EVENT:reset] Actor:blueCat | idle") {
		t.Errorf("Expected event line, got %q", out.String())
	}
}
