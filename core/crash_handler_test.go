package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeScreen struct {
	mu    sync.Mutex
	finis int
}

func (f *fakeScreen) Fini() {
	f.mu.Lock()
	f.finis++
	f.mu.Unlock()
}

func (f *fakeScreen) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finis
}

// captureCrash swaps the exit and output hooks; codes receives every exit code
func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var out bytes.Buffer
	codes := make(chan int, 4)

	prevOut, prevExit := crashOutput, exitFunc
	crashOutput = &out
	exitFunc = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOutput, exitFunc = prevOut, prevExit
		RegisterScreen(nil)
	})
	return &out, codes
}

func TestHandleCrashNil(t *testing.T) {
	out, codes := captureCrash(t)
	HandleCrash(nil)
	if out.Len() != 0 || len(codes) != 0 {
		t.Fatal("nil recover value treated as a crash")
	}
}

func TestHandleCrashRestoresScreen(t *testing.T) {
	out, codes := captureCrash(t)
	screen := &fakeScreen{}
	RegisterScreen(screen)

	HandleCrash("boom")

	if screen.count() != 1 {
		t.Fatalf("Fini called %d times, want 1", screen.count())
	}
	if code := <-codes; code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Fatalf("output = %q", out.String())
	}

	// The screen is finalized once even if a second goroutine crashes
	HandleCrash("again")
	<-codes
	if screen.count() != 1 {
		t.Fatalf("Fini called %d times after second crash", screen.count())
	}
}

func TestGoRecovers(t *testing.T) {
	out, codes := captureCrash(t)

	Go(func() { panic("worker failed") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Fatalf("exit code = %d", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("panic in Go was not handled")
	}
	if !strings.Contains(out.String(), "worker failed") {
		t.Fatalf("output = %q", out.String())
	}
}
