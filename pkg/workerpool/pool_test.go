package workerpool_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bedjos/storefront/pkg/workerpool"
)

// submitEventually retries Submit until a worker or queue slot takes task.
func submitEventually(t *testing.T, pool *workerpool.Pool, task func()) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		err := pool.Submit(task)
		if err == nil {
			return
		}
		if !errors.Is(err, workerpool.ErrPoolFull) || time.Now().After(deadline) {
			t.Fatalf("Submit: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPool_RunsEveryTask(t *testing.T) {
	const n = 100
	pool := workerpool.New("notify", 4, workerpool.WithQueue(n))
	defer pool.Shutdown()

	var sent atomic.Int64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		if err := pool.Submit(func() {
			defer wg.Done()
			sent.Add(1)
		}); err != nil {
			t.Fatalf("Submit returned unexpected error: %v", err)
		}
	}
	wg.Wait()

	if got := sent.Load(); got != n {
		t.Errorf("expected %d tasks to run, got %d", n, got)
	}
}

func TestPool_FullQueueRejects(t *testing.T) {
	pool := workerpool.New("notify", 1)
	defer pool.Shutdown()

	release := make(chan struct{})
	busy := make(chan struct{})
	if err := pool.Submit(func() {
		close(busy)
		<-release
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	<-busy

	// default queue is twice the worker count
	for i := 0; i < 2; i++ {
		if err := pool.Submit(func() {}); err != nil {
			t.Fatalf("queue slot %d: %v", i, err)
		}
	}

	if err := pool.Submit(func() {}); !errors.Is(err, workerpool.ErrPoolFull) {
		t.Errorf("expected ErrPoolFull, got %v", err)
	}
	close(release)
}

func TestPool_ClosedRejects(t *testing.T) {
	pool := workerpool.New("notify", 2)
	pool.Shutdown()
	pool.Shutdown()

	if err := pool.Submit(func() {}); !errors.Is(err, workerpool.ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed after Shutdown, got %v", err)
	}
}

func TestPool_SurvivesPanic(t *testing.T) {
	pool := workerpool.New("notify", 1)
	defer pool.Shutdown()

	if err := pool.Submit(func() { panic("smtp exploded") }); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	done := make(chan struct{})
	submitEventually(t, pool, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive the panicking task")
	}
}

func TestPool_WithQueueZero(t *testing.T) {
	pool := workerpool.New("notify", 1, workerpool.WithQueue(0))
	defer pool.Shutdown()

	release := make(chan struct{})
	busy := make(chan struct{})
	submitEventually(t, pool, func() {
		close(busy)
		<-release
	})
	<-busy

	if err := pool.Submit(func() {}); !errors.Is(err, workerpool.ErrPoolFull) {
		t.Errorf("expected ErrPoolFull with no queue, got %v", err)
	}
	close(release)
}

func TestPool_ShutdownDrainsQueue(t *testing.T) {
	pool := workerpool.New("notify", 1)

	var sent atomic.Int64
	for i := 0; i < 2; i++ {
		if err := pool.Submit(func() {
			time.Sleep(time.Millisecond)
			sent.Add(1)
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	pool.Shutdown()

	if got := sent.Load(); got != 2 {
		t.Errorf("expected queued tasks to finish before Shutdown returns, got %d", got)
	}
}
