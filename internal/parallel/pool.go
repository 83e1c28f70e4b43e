package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines for scatter/gather over index
// ranges.
//
// Each worker owns a queue and steals from the others when its own queue is
// empty, which evens out bands whose cost differs.
//
// Thread safety: WorkerPool is safe for concurrent use, but ExecuteAll and
// ExecuteRange must not be called from inside a pool task.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker task queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case task := <-own:
			run(task)
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case task := <-own:
				run(task)
			}
		}
	}
}

func run(task func()) {
	if task != nil {
		task()
	}
}

// drain executes whatever is left in a queue during shutdown.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			run(task)
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks round-robin and blocks until every task has
// returned. Tasks submitted while the pool is closing run on the caller.
// Returns false without running anything if the pool is closed.
func (p *WorkerPool) ExecuteAll(tasks []func()) bool {
	if !p.running.Load() {
		return false
	}
	if len(tasks) == 0 {
		return true
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for i, task := range tasks {
		wrapped := func() {
			defer wg.Done()
			task()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	wg.Wait()
	return true
}

// ExecuteRange splits [0, n) into one contiguous chunk per worker, runs fn
// on each chunk and returns once all chunks have completed. A closed pool
// falls back to running fn over the whole range on the caller.
func (p *WorkerPool) ExecuteRange(n int, fn func(start, stop int)) {
	chunks := Chunks(n, p.workers)
	if len(chunks) <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}

	tasks := make([]func(), len(chunks))
	for i, c := range chunks {
		tasks[i] = func() { fn(c[0], c[1]) }
	}
	if !p.ExecuteAll(tasks) {
		fn(0, n)
	}
}

// Close stops the pool after queued tasks have run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
