// ABOUTME: Bounded worker pool for blocking embedder and store calls
// ABOUTME: Keeps request intake off the inference and I/O paths
package pool

import "sync"

// Pool runs submitted work on a fixed number of workers. Embedding
// inference and store I/O go through here so that concurrent request
// handling never executes them inline; the caller blocks only on its
// own task's completion. Completion order across tasks is not FIFO.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
}

// New creates a pool with the given number of workers. Worker counts
// below 1 are treated as 1.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{tasks: make(chan func())}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Close stops accepting work and waits for in-flight tasks to finish.
// Submitting after Close panics.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}

// Run runs fn on the pool and blocks until it completes.
func Run(p *Pool, fn func() error) error {
	_, err := Do(p, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// Do runs fn on the pool and blocks until it completes, returning its
// result. Queueing blocks while every worker is busy.
func Do[T any](p *Pool, fn func() (T, error)) (T, error) {
	done := make(chan struct{})
	var (
		result T
		err    error
	)
	p.tasks <- func() {
		defer close(done)
		result, err = fn()
	}
	<-done
	return result, err
}
