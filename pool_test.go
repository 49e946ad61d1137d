package invoicepdf

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func TestPoolAcquireCreatesLazily(t *testing.T) {
	pool := NewGeneratorPool(2)
	defer pool.Close()

	gen1, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if gen1 == nil {
		t.Fatal("Acquire() returned nil generator")
	}

	gen2, err := pool.Acquire()
	if err != nil {
		t.Fatalf("second Acquire() error = %v", err)
	}
	if gen1 == gen2 {
		t.Error("pool handed out the same generator twice without a release")
	}
}

func TestPoolReleaseAndReacquire(t *testing.T) {
	pool := NewGeneratorPool(1)
	defer pool.Close()

	gen, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	pool.Release(gen)

	again, err := pool.Acquire()
	if err != nil {
		t.Fatalf("reacquire error = %v", err)
	}
	if again != gen {
		t.Error("released generator was not reused")
	}
}

func TestPoolAcquireAfterClose(t *testing.T) {
	pool := NewGeneratorPool(1)
	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := pool.Acquire(); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() after Close error = %v, want ErrPoolClosed", err)
	}

	// Closing twice is a no-op.
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

// Returning a generator while the pool shuts down must never panic on the
// closed channel; late releases are simply dropped.
func TestPoolReleaseDuringClose(t *testing.T) {
	pool := NewGeneratorPool(2)

	gen, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pool.Release(gen)
	}()
	go func() {
		defer wg.Done()
		_ = pool.Close()
	}()
	wg.Wait()

	// And a release strictly after close is a no-op too.
	pool.Release(gen)
}

func TestPoolSizeClamping(t *testing.T) {
	if got := NewGeneratorPool(0).Size(); got != 1 {
		t.Errorf("NewGeneratorPool(0).Size() = %d, want 1", got)
	}
	if got := NewGeneratorPool(-3).Size(); got != 1 {
		t.Errorf("NewGeneratorPool(-3).Size() = %d, want 1", got)
	}
	if got := NewGeneratorPool(4).Size(); got != 4 {
		t.Errorf("NewGeneratorPool(4).Size() = %d, want 4", got)
	}
}

func TestResolvePoolSize(t *testing.T) {
	if got := ResolvePoolSize(3); got != 3 {
		t.Errorf("ResolvePoolSize(3) = %d, want 3", got)
	}

	got := ResolvePoolSize(0)
	if got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("ResolvePoolSize(0) = %d, outside [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}

	want := runtime.GOMAXPROCS(0) / cpuDivisor
	if want < MinPoolSize {
		want = MinPoolSize
	}
	if want > MaxPoolSize {
		want = MaxPoolSize
	}
	if got != want {
		t.Errorf("ResolvePoolSize(0) = %d, want %d", got, want)
	}
}
