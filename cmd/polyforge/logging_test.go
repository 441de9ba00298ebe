package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	logger, f := setupLogging(false, "")
	if f != nil {
		t.Error("expected no log file when debug is off")
		f.Close()
	}
	// The disabled logger must swallow writes without error.
	logger.Info().Msg("dropped")
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, f := setupLogging(true, path)
	if f == nil {
		t.Fatal("expected a log file when debug is on")
	}
	defer f.Close()

	logger.Info().Str("k", "v").Msg("hello")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty after a write")
	}
}

func TestMeshGlyph(t *testing.T) {
	cases := []struct {
		path string
		want rune
	}{
		{"assets/sphere.obj", 'o'},
		{"assets/ball_red.obj", 'o'},
		{"plane.obj", '.'},
		{"crate01.obj", '#'},
		{"teapot.obj", '@'},
	}
	for _, tc := range cases {
		if got := meshGlyph(tc.path); got != tc.want {
			t.Errorf("meshGlyph(%q) = %c, want %c", tc.path, got, tc.want)
		}
	}
}
