package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logrus.Level
		wantErr bool
	}{
		{"", logrus.InfoLevel, false},
		{"debug", logrus.DebugLevel, false},
		{"Warn", logrus.WarnLevel, false},
		{"ERROR", logrus.ErrorLevel, false},
		{"chatty", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q): unexpected error state: %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetup_WritesJSONWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remotepong.log")
	entry, closer, err := Setup(Options{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logrus.SetOutput(os.Stderr)

	entry.WithField("mode", "test").Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var line map[string]interface{}
	if err := json.Unmarshal(data, &line); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", data, err)
	}
	if line["msg"] != "hello" {
		t.Errorf("expected msg 'hello', got %v", line["msg"])
	}
	if s, _ := line["session"].(string); len(s) != 36 {
		t.Errorf("expected a uuid session field, got %v", line["session"])
	}
	if line["mode"] != "test" {
		t.Errorf("expected mode field, got %v", line["mode"])
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	if _, _, err := Setup(Options{Level: "loud"}); err == nil {
		t.Error("expected error for an invalid level")
	}
}

func TestSetup_NoFile(t *testing.T) {
	entry, closer, err := Setup(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logrus.SetOutput(os.Stderr)

	entry.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
