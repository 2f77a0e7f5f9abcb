package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrPoolClosed indicates the pool has been shut down
	ErrPoolClosed = errors.New("worker pool closed")

	// ErrJobTimeout indicates a job timed out in queue
	ErrJobTimeout = errors.New("job timed out waiting in queue")

	// ErrQueueFull indicates the job queue is full
	ErrQueueFull = errors.New("job queue is full")
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) error
}

// JobFunc is a function that implements Job interface
type JobFunc func(ctx context.Context) error

func (f JobFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// Config holds worker pool configuration
type Config struct {
	// Number of workers (default: runtime.NumCPU() * 4)
	Workers int

	// Job queue size (default: workers * 100)
	QueueSize int

	// Maximum time a job can wait in queue before rejection
	// 0 = no timeout (default)
	QueueTimeout time.Duration

	// Panic handler (called when worker panics)
	PanicHandler func(interface{})
}

// Pool is a bounded worker pool that prevents goroutine exhaustion
type Pool struct {
	workers      int
	queue        chan *jobWrapper
	wg           sync.WaitGroup
	ctx          context.Context
	cancel       context.CancelFunc
	closed       atomic.Bool
	queueSize    int
	queueTimeout time.Duration
	panicHandler func(interface{})
}

// jobWrapper wraps a job with the context it was submitted under
type jobWrapper struct {
	job Job
	ctx context.Context
}

// NewPool creates a new worker pool
func NewPool(cfg Config) *Pool {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU() * 4
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = cfg.Workers * 100
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:      cfg.Workers,
		queue:        make(chan *jobWrapper, cfg.QueueSize),
		ctx:          ctx,
		cancel:       cancel,
		queueSize:    cfg.QueueSize,
		queueTimeout: cfg.QueueTimeout,
		panicHandler: cfg.PanicHandler,
	}

	// Start workers
	p.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main worker goroutine
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return

		case wrapper, ok := <-p.queue:
			if !ok {
				return
			}

			p.executeJob(wrapper)
		}
	}
}

// executeJob executes a job with panic recovery
func (p *Pool) executeJob(wrapper *jobWrapper) {
	defer func() {
		if r := recover(); r != nil {
			if p.panicHandler != nil {
				p.panicHandler(r)
			}
		}
	}()

	wrapper.job.Execute(wrapper.ctx)
}

// SubmitAsync submits a job asynchronously
// Does not wait for job completion
func (p *Pool) SubmitAsync(ctx context.Context, job Job) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}

	wrapper := &jobWrapper{job: job, ctx: ctx}

	// Try to queue (with timeout if configured)
	if p.queueTimeout > 0 {
		timeoutCtx, cancel := context.WithTimeout(ctx, p.queueTimeout)
		defer cancel()

		select {
		case p.queue <- wrapper:
			return nil
		case <-timeoutCtx.Done():
			return ErrJobTimeout
		case <-p.ctx.Done():
			return ErrPoolClosed
		}
	}

	// No timeout - try non-blocking
	select {
	case p.queue <- wrapper:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close gracefully shuts down the pool
// Waits for all in-flight jobs to complete
func (p *Pool) Close() error {
	if p.closed.Swap(true) {
		return ErrPoolClosed
	}

	// Stop accepting new jobs
	close(p.queue)

	// Wait for workers to finish
	p.wg.Wait()

	// Cancel context
	p.cancel()

	return nil
}
