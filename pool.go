package aesctr

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// Pool is a fixed-size worker pool with no work stealing: a mutex-guarded
// FIFO queue and two condition variables, one for "there's work" and one
// for "a scope has drained." Grounded on SnellerInc-sneller's
// sorting/thread_pool.go, which uses the same mutex+cond+slice shape
// instead of a channel so the queue and the outstanding-task count stay
// ordinary, inspectable state (W1-W3).
type Pool struct {
	mu          sync.Mutex
	workCond    *sync.Cond
	drainCond   *sync.Cond
	queue       []func()
	closed      bool
	outstanding int
	panicked    any

	scopeMu sync.Mutex // held for the duration of one Scoped call (S1)

	workers []worker
	wg      sync.WaitGroup
}

type worker struct {
	id uuid.UUID
}

// NewPool starts a pool sized to runtime.NumCPU(), falling back to 4 on a
// system that can't report it.
func NewPool() *Pool {
	n := runtime.NumCPU()
	if n < 1 {
		n = 4
	}
	return NewPoolSize(n)
}

// NewPoolSize starts a pool with an explicit worker count.
func NewPoolSize(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{}
	p.workCond = sync.NewCond(&p.mu)
	p.drainCond = sync.NewCond(&p.mu)
	p.workers = make([]worker, n)
	p.wg.Add(n)
	for i := range p.workers {
		p.workers[i] = worker{id: uuid.New()}
		go p.run(p.workers[i])
	}
	return p
}

func (p *Pool) run(w worker) {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.workCond.Wait()
		}
		if len(p.queue) == 0 && p.closed {
			p.mu.Unlock()
			return
		}
		fn := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.runTask(fn)
	}
}

// runTask executes one task with panic safety: whether fn returns normally
// or panics, the outstanding count is decremented, and the drain condition
// is signaled afterward once the count reaches zero (the ordering spec's design notes call out as
// correct: decrement after execution, never before). A panic is captured
// rather than left to crash the worker goroutine, grounded on
// absfs-encryptfs/parallel.go's recover-and-report pattern; the first
// captured panic re-surfaces from the owning Scope's AwaitAll.
func (p *Pool) runTask(fn func()) {
	defer func() {
		r := recover()
		p.mu.Lock()
		p.outstanding--
		if r != nil && p.panicked == nil {
			p.panicked = r
		}
		if p.outstanding == 0 {
			p.drainCond.Broadcast()
		}
		p.mu.Unlock()
	}()
	fn()
}

// Close stops every worker and blocks until they've all exited. Tasks
// still queued when Close is called are run before the workers exit.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.workCond.Broadcast()
	p.wg.Wait()
}

// Scope is the handle a task-assigning closure receives from Pool.Scoped.
// It borrows the pool for the scope's duration; nothing about a Scope
// outlives the Scoped call it came from.
type Scope struct {
	pool *Pool
}

// Scoped runs body with a Scope tied to p, then blocks until every task
// assigned through that scope has finished (S1) — even if body panics
// (S2), because AwaitAll is deferred before body runs. Only one Scoped call
// runs against a given Pool at a time (spec §4.3's ordering guarantee:
// tasks from one scope all complete before any task from the next scope
// starts), enforced here with scopeMu since Go has no borrow checker to
// enforce it statically the way the pool's Rust original does.
func (p *Pool) Scoped(body func(*Scope)) {
	p.scopeMu.Lock()
	defer p.scopeMu.Unlock()

	s := &Scope{pool: p}
	defer s.AwaitAll()
	body(s)
}

// AssignTask queues fn to run on some worker. The outstanding count is
// incremented before fn is queued (W1), so a concurrent AwaitAll can never
// observe a false "drained" state between the increment and the enqueue.
func (s *Scope) AssignTask(fn func()) {
	if fn == nil {
		panic(NewPoolError("assign", "task function is nil", ErrNilTask))
	}
	p := s.pool
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic(NewPoolError("assign", "pool is closed", ErrPoolClosed))
	}
	p.outstanding++
	p.queue = append(p.queue, fn)
	p.mu.Unlock()
	p.workCond.Signal()
}

// AwaitAll blocks until every task assigned through this scope (and any
// sibling scope sharing the pool concurrently, though Scoped serializes
// that) has completed. If any task panicked, the first captured panic
// value is re-raised here rather than swallowed, once the scope has fully
// drained.
func (s *Scope) AwaitAll() {
	p := s.pool
	p.mu.Lock()
	for p.outstanding > 0 {
		p.drainCond.Wait()
	}
	panicVal := p.panicked
	p.panicked = nil
	p.mu.Unlock()
	if panicVal != nil {
		panic(panicVal)
	}
}
