package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingOutput(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		wantLog bool
	}{
		{"discarded without debug", false, false},
		{"file with debug", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			defer log.SetOutput(io.Discard)

			f := setupLogging(tt.debug)
			if f != nil {
				defer f.Close()
			}
			if (f != nil) != tt.wantLog {
				t.Fatalf("log file = %v, want file: %v", f, tt.wantLog)
			}

			out := log.Writer()
			if out == os.Stdout || out == os.Stderr {
				t.Fatal("log output reaches the terminal")
			}
			if !tt.wantLog {
				if out != io.Discard {
					t.Fatalf("log output = %v, want io.Discard", out)
				}
				if _, err := os.Stat(logDir); !os.IsNotExist(err) {
					t.Fatal("log directory created without debug")
				}
				return
			}

			log.Printf("frame 12: target-hit entity=4")
			data, err := os.ReadFile(filepath.Join(logDir, logFileName))
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			if !strings.Contains(string(data), "target-hit entity=4") {
				t.Fatalf("log content = %q", data)
			}
		})
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(io.Discard)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write oversized log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("read log dir: %v", err)
	}
	var rotated string
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "ballista-") {
			rotated = e.Name()
		}
	}
	if rotated == "" {
		t.Fatalf("no rotated file among %v", entries)
	}
	if info, err := os.Stat(filepath.Join(logDir, rotated)); err != nil || info.Size() != maxLogSize+1 {
		t.Fatalf("rotated file %s: %v, %v", rotated, info, err)
	}
	if info, err := os.Stat(logPath); err != nil || info.Size() != 0 {
		t.Fatalf("fresh log file: %v, %v", info, err)
	}
}
