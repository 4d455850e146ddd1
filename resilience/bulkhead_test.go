package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestBulkheadLimitsConcurrency(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 2})
	ctx := context.Background()

	var active, maxSeen int64
	var wg sync.WaitGroup
	var rejected int64

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := b.Execute(ctx, func(ctx context.Context) error {
				cur := atomic.AddInt64(&active, 1)
				for {
					max := atomic.LoadInt64(&maxSeen)
					if cur <= max || atomic.CompareAndSwapInt64(&maxSeen, max, cur) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				atomic.AddInt64(&active, -1)
				return nil
			})
			if errors.Is(err, ErrBulkheadFull) {
				atomic.AddInt64(&rejected, 1)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&maxSeen); got > 2 {
		t.Errorf("max concurrent = %d, want <= 2", got)
	}
	if atomic.LoadInt64(&rejected) == 0 {
		t.Error("expected some calls rejected with ErrBulkheadFull")
	}
}

func TestBulkheadFailsFastWhenFull(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 1})
	ctx := context.Background()

	if err := b.Acquire(ctx); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer b.Release()

	if err := b.Acquire(ctx); !errors.Is(err, ErrBulkheadFull) {
		t.Errorf("Acquire() error = %v, want ErrBulkheadFull", err)
	}
}

func TestBulkheadWaitsForSlot(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 1, MaxWait: time.Second})
	ctx := context.Background()

	if err := b.Acquire(ctx); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		b.Release()
	}()

	if err := b.Acquire(ctx); err != nil {
		t.Errorf("waiting Acquire() error = %v", err)
	}
	b.Release()
}

func TestBulkheadContextCanceledWhileWaiting(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 1, MaxWait: time.Minute})
	ctx := context.Background()

	if err := b.Acquire(ctx); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer b.Release()

	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()

	if err := b.Acquire(waitCtx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Acquire() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestBulkheadMetrics(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 2})
	ctx := context.Background()

	_ = b.Acquire(ctx)
	_ = b.Acquire(ctx)
	_ = b.Acquire(ctx) // rejected

	m := b.Metrics()
	if m.Active != 2 {
		t.Errorf("Active = %d, want 2", m.Active)
	}
	if m.Available != 0 {
		t.Errorf("Available = %d, want 0", m.Available)
	}
	if m.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", m.Rejected)
	}

	b.Release()
	b.Release()

	m = b.Metrics()
	if m.Active != 0 {
		t.Errorf("Active after release = %d, want 0", m.Active)
	}
	if m.MaxActive != 2 {
		t.Errorf("MaxActive = %d, want 2", m.MaxActive)
	}
}

func TestBulkheadReleaseWithoutAcquire(t *testing.T) {
	b := NewBulkhead(BulkheadConfig{MaxConcurrent: 1})
	b.Release() // must not panic or corrupt state

	if err := b.Acquire(context.Background()); err != nil {
		t.Errorf("Acquire() after spurious Release error = %v", err)
	}
}
