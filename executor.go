package parmat

import (
	"context"

	lg "github.com/Andrej220/go-utils/zlog"
)

// Executor is a long-lived worker pool shared by many multiplications.
//
// Unlike Multiply, which spawns and tears down a pool per call, an Executor
// spawns its workers once in NewExecutor and keeps them until Shutdown.
// It is safe for concurrent use.
//
//	ex := parmat.NewExecutor[float64](ctx, parmat.Options{Workers: 8})
//	defer ex.Stop()
//
//	for _, w := range layers {
//	    x, err = ex.Multiply(ctx, x, w)
//	    ...
//	}
type Executor[T Number] struct {
	p *pool[T]
}

// NewExecutor starts an Executor. ctx carries the logger used for pool
// lifecycle messages.
func NewExecutor[T Number](ctx context.Context, opts Options) *Executor[T] {
	opts.FillDefaults()
	lg.FromContext(ctx).Info("executor started",
		lg.Int("workers", opts.Workers),
		lg.Int("queue_size", opts.QueueSize),
	)
	return &Executor[T]{p: newPool[T](ctx, opts, DotProduct[T])}
}

// Workers returns the number of workers.
func (e *Executor[T]) Workers() int { return len(e.p.queues) }

// Submit queues one task, routed to worker in.Idx % Workers(), and returns
// the receiving end of its reply channel.
func (e *Executor[T]) Submit(ctx context.Context, in TaskInput[T]) (*Pending[T], error) {
	pend, err := e.p.submit(ctx, in)
	if err != nil {
		return nil, parmatErrorf("Submit", err)
	}
	return pend, nil
}

// Multiply computes a×b on the executor's workers.
//
// It follows the same map and reduce phases as MultiplyContext and shares
// its limitation: the wait for each reply has no deadline.
func (e *Executor[T]) Multiply(ctx context.Context, a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkCompatible(a, b); err != nil {
		return nil, parmatErrorf("Executor.Multiply", err)
	}
	if e.p.isClosed() {
		return nil, parmatErrorf("Executor.Multiply", ErrPoolClosed)
	}
	pending := dispatchCells(ctx, e.p, a, b)
	out, err := collectCells(ctx, e.p.opts, a.rows, b.cols, pending)
	if err != nil {
		return nil, parmatErrorf("Executor.Multiply", err)
	}
	return out, nil
}

// Shutdown rejects new tasks, lets workers drain their queues and waits for
// them to exit or for ctx to be done. It is safe to call more than once.
func (e *Executor[T]) Shutdown(ctx context.Context) error {
	err := e.p.shutdown(ctx)
	if err == nil {
		lg.FromContext(e.p.ctx).Info("executor stopped")
	}
	return err
}

// Stop is a blocking Shutdown.
func (e *Executor[T]) Stop() { _ = e.Shutdown(context.Background()) }
