package engine

import (
	"sync"
	"testing"
	"time"
)

func TestTimeProviderAdvances(t *testing.T) {
	var src TimeSource = NewTimeProvider()

	t1 := src.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := src.Now()

	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("expected at least 5ms between readings, got %v", d)
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Fatalf("initial time = %v, want %v", mock.Now(), start)
	}

	mock.Advance(1500 * time.Millisecond)
	mock.Advance(500 * time.Millisecond)
	if got := mock.Now().Sub(start); got != 2*time.Second {
		t.Errorf("elapsed = %v, want 2s", got)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := mock.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("elapsed = %v, want 250ms", got)
	}
}

func TestTimeSourceImplementations(t *testing.T) {
	var _ TimeSource = &TimeProvider{}
	var _ TimeSource = &MockTimeProvider{}
}
