package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_Levels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		log, err := New(lvl, lvl == "debug")
		if err != nil {
			t.Fatalf("New(%q): %v", lvl, err)
		}
		if log == nil {
			t.Fatalf("New(%q) returned nil", lvl)
		}
	}
}

func TestNewWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWriter(&buf, "warn")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	log.Infof("hidden %d", 1)
	log.Warnf("shown %d", 2)
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestNewFile_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")

	log, closer, err := NewFile(path, "info")
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	log.Infow("lookup finished", "video_id", "abc")
	_ = log.Sync()
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"video_id":"abc"`) {
		t.Errorf("log file missing field: %s", data)
	}
}

func TestNewFile_InvalidLevel(t *testing.T) {
	if _, _, err := NewFile(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
