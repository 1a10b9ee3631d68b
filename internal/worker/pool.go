// Package worker provides a generic worker pool for parallel search jobs.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem is one job submitted to a pool.
type WorkItem[T any] struct {
	Payload T
	Index   int // Original index for tracking
}

// ProcessResult is the outcome of one job.
type ProcessResult[R any] struct {
	Value R
	Index int
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[T, R any] func(item WorkItem[T]) ProcessResult[R]

// settings holds the tunables shared by every pool instantiation.
type settings struct {
	numWorkers int
	bufferSize int
}

// Pool manages a pool of workers processing items of type T into results
// of type R.
type Pool[T, R any] struct {
	settings
	workChan    chan WorkItem[T]
	resultChan  chan ProcessResult[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*settings)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *settings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *settings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool[T, R any](numWorkers, bufferSize int, processFunc ProcessFunc[T, R]) *Pool[T, R] {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	p := &Pool[T, R]{
		settings:    settings{numWorkers: 1, bufferSize: 10},
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(&p.settings)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem[T], p.bufferSize)
	p.resultChan = make(chan ProcessResult[R], p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(item WorkItem[T]) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool[T, R]) TrySubmit(item WorkItem[T]) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	p.stopFlag.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return p.stopFlag.Load()
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan ProcessResult[R] {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[T, R]) NumWorkers() int {
	return p.numWorkers
}

// Map runs fn over items on a pool of numWorkers and returns the results in
// input order. The first error is returned after all items finish.
func Map[T, R any](items []T, numWorkers int, fn func(T) (R, error)) ([]R, error) {
	pool := NewPool(numWorkers, max(len(items), 1), func(item WorkItem[T]) ProcessResult[R] {
		v, err := fn(item.Payload)
		return ProcessResult[R]{Value: v, Index: item.Index, Error: err}
	})
	pool.Start()
	for i, it := range items {
		pool.Submit(WorkItem[T]{Payload: it, Index: i})
	}
	go pool.Close()

	out := make([]R, len(items))
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil && firstErr == nil {
			firstErr = res.Error
		}
		out[res.Index] = res.Value
	}
	return out, firstErr
}
