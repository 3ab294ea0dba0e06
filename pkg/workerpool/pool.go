// Package workerpool provides a bounded goroutine pool with backpressure.
//
// When all workers are busy and the queue is full, Submit returns
// ErrPoolFull immediately so a request handler is never held up by
// background work:
//
//	pool := workerpool.New("notify", 2)
//	defer pool.Shutdown()
//
//	if err := pool.Submit(func() { sendMail() }); err != nil {
//	    log.Warn("notification dropped", "error", err)
//	}
package workerpool

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/bedjos/storefront/pkg/logger"
)

// ErrPoolFull is returned by Submit when the task queue is at capacity.
var ErrPoolFull = errors.New("workerpool: pool is full")

// ErrPoolClosed is returned by Submit after Shutdown has been called.
var ErrPoolClosed = errors.New("workerpool: pool is closed")

// Option customises a Pool.
type Option func(*Pool)

// WithQueue sets the number of tasks that may wait for a free worker.
// The default is twice the worker count.
func WithQueue(n int) Option {
	return func(p *Pool) {
		if n >= 0 {
			p.queue = n
		}
	}
}

// Pool is a bounded goroutine pool.
type Pool struct {
	name    string
	queue   int
	tasks   chan func()
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	closeMu sync.Once
}

// New starts a Pool named name with size workers (minimum 1).
func New(name string, size int, opts ...Option) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{name: name, queue: size * 2}
	for _, opt := range opts {
		opt(p)
	}
	p.tasks = make(chan func(), p.queue)

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// Submit enqueues task without blocking.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// Shutdown stops accepting tasks and waits for queued and in-flight ones to
// finish. It is safe to call multiple times.
func (p *Pool) Shutdown() {
	p.closeMu.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.tasks)
		p.mu.Unlock()

		p.wg.Wait()
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.safeRun(task)
	}
}

// safeRun executes task, recovering from panics so a bad task doesn't kill
// the worker goroutine.
func (p *Pool) safeRun(task func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("workerpool: task panicked",
				"pool", p.name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	task()
}
