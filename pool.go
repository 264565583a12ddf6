package parmat

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	lg "github.com/Andrej220/go-utils/zlog"
)

// computeFunc produces the value of one output cell.
type computeFunc[T Number] func(row, col Vector[T]) (T, error)

// pool is a fixed set of workers, each draining its own task queue.
//
// Tasks are routed by output-cell index, not by arrival order, so the
// assignment of cells to workers is the same on every run.
type pool[T Number] struct {
	ctx     context.Context
	opts    Options
	compute computeFunc[T]
	queues  []chan task[T]
	wg      sync.WaitGroup

	// mu guards closed and the queues against closing while a send is in
	// flight. Senders hold the read lock.
	mu       sync.RWMutex
	closed   bool
	stopOnce sync.Once
}

// newPool spawns opts.Workers workers. opts must already be filled.
func newPool[T Number](ctx context.Context, opts Options, compute computeFunc[T]) *pool[T] {
	p := &pool[T]{
		ctx:     ctx,
		opts:    opts,
		compute: compute,
		queues:  make([]chan task[T], opts.Workers),
	}
	for i := range opts.Workers {
		q := make(chan task[T], opts.QueueSize)
		p.queues[i] = q
		p.wg.Add(1)
		p.opts.Metrics.IncSpawned()
		go p.worker(i, q)
	}
	return p
}

// route maps a cell index to a worker queue.
func (p *pool[T]) route(idx int) chan<- task[T] {
	n := len(p.queues)
	return p.queues[((idx%n)+n)%n]
}

// submit queues in for its worker and returns the receiving end of the
// task's reply channel.
//
// A task that cannot be queued is logged and reported, its reply channel is
// closed without a value, and the returned Pending is marked dropped. The
// error is returned for callers that want to act on it.
func (p *pool[T]) submit(ctx context.Context, in TaskInput[T]) (*Pending[T], error) {
	reply := newOneshot[TaskOutput[T]]()
	pend := &Pending[T]{idx: in.Idx, reply: reply}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		pend.dropped = true
		reply.closeSend()
		p.opts.Metrics.IncDropped()
		err := fmt.Errorf("%w: cell %d: %w", ErrDeliveryFailure, in.Idx, ErrPoolClosed)
		lg.FromContext(ctx).Error("task dropped", lg.Int("idx", in.Idx), lg.Any("error", err))
		p.reportDeliveryFailure(err)
		return pend, err
	}
	p.route(in.Idx) <- task[T]{ctx: ctx, input: in, reply: reply}
	p.mu.RUnlock()

	p.opts.Metrics.IncDispatched()
	return pend, nil
}

// close closes every task queue. Workers finish what is queued and exit.
func (p *pool[T]) close() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		for _, q := range p.queues {
			close(q)
		}
		p.mu.Unlock()
	})
}

func (p *pool[T]) isClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// shutdown closes the queues and waits for the workers, or for ctx.
func (p *pool[T]) shutdown(ctx context.Context) error {
	p.close()
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pool[T]) worker(id int, queue <-chan task[T]) {
	defer p.wg.Done()
	if p.opts.PinWorkers {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := PinToCPU(id % runtime.NumCPU()); err != nil {
			lg.FromContext(p.ctx).Warn("worker pinning failed", lg.Int("worker", id), lg.Any("error", err))
		}
	}
	for t := range queue {
		p.process(id, t)
	}
}

func (p *pool[T]) process(id int, t task[T]) {
	logger := lg.FromContext(t.ctx).With(lg.Int("idx", t.input.Idx))
	defer func() {
		if r := recover(); r != nil {
			// The reply channel is left untouched: the waiter is never answered.
			logger.Error("task panicked", lg.Int("worker", id), lg.Any("panic", r))
			p.reportTaskError(fmt.Errorf("%w: cell %d: %v", ErrTaskPanicked, t.input.Idx, r))
		}
	}()

	value, err := p.compute(t.input.Row, t.input.Col)
	p.opts.Metrics.IncExecuted()
	if err != nil {
		logger.Error("task failed", lg.Int("worker", id), lg.Any("error", err))
		p.reportTaskError(fmt.Errorf("cell %d: %w", t.input.Idx, err))
		t.reply.closeSend()
		return
	}

	if err := t.reply.send(TaskOutput[T]{Idx: t.input.Idx, Value: value}); err != nil {
		p.opts.Metrics.IncUndelivered()
		logger.Warn("reply not delivered", lg.Int("worker", id), lg.Any("error", err))
		p.reportDeliveryFailure(fmt.Errorf("cell %d: %w", t.input.Idx, err))
	}
}
