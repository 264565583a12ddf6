package parmat

import (
	"context"
	"fmt"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// Multiply returns a×b computed by a pool of DefaultWorkers workers.
//
// The pool lives for this call only. a.Cols() must equal b.Rows(); otherwise
// ErrIncompatibleDimensions is returned and no worker is started.
func Multiply[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return MultiplyContext(context.Background(), a, b, Options{})
}

// MultiplyContext is Multiply with a context and pool options.
//
// ctx carries the logger; it does not bound the call. A task whose worker
// panics is never answered, and MultiplyContext then blocks forever,
// logging a stall warning per opts.Wait.
func MultiplyContext[T Number](ctx context.Context, a, b *Matrix[T], opts Options) (*Matrix[T], error) {
	return multiply(ctx, a, b, opts, DotProduct[T])
}

// MustMultiply is like Multiply but panics on error.
func MustMultiply[T Number](a, b *Matrix[T]) *Matrix[T] {
	m, err := Multiply(a, b)
	if err != nil {
		panic(parmatErrorf("MustMultiply", err))
	}
	return m
}

func multiply[T Number](ctx context.Context, a, b *Matrix[T], opts Options, compute computeFunc[T]) (*Matrix[T], error) {
	if err := checkCompatible(a, b); err != nil {
		return nil, parmatErrorf("Multiply", err)
	}
	opts.FillDefaults()

	logger := lg.FromContext(ctx)
	logger.Info("multiply started",
		lg.String("shape", fmt.Sprintf("%dx%d * %dx%d", a.rows, a.cols, b.rows, b.cols)),
		lg.Int("workers", opts.Workers),
	)

	p := newPool[T](ctx, opts, compute)
	pending := dispatchCells(ctx, p, a, b)
	// Dropping the send ends lets every worker exit once its queue drains.
	p.close()

	out, err := collectCells(ctx, opts, a.rows, b.cols, pending)
	if err != nil {
		return nil, parmatErrorf("Multiply", err)
	}
	logger.Info("multiply finished", lg.Int("cells", len(pending)))
	return out, nil
}

func checkCompatible[T Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.cols != b.rows {
		return fmt.Errorf("%w: %dx%d * %dx%d", ErrIncompatibleDimensions, a.rows, a.cols, b.rows, b.cols)
	}
	return nil
}

// dispatchCells is the map phase: one task per output cell, in row-major
// order, routed to worker idx % Workers.
func dispatchCells[T Number](ctx context.Context, p *pool[T], a, b *Matrix[T]) []*Pending[T] {
	pending := make([]*Pending[T], 0, a.rows*b.cols)
	for i := range a.rows {
		for j := range b.cols {
			// A failed submit is already logged and the Pending marked dropped.
			pend, _ := p.submit(ctx, TaskInput[T]{
				Idx: i*b.cols + j,
				Row: a.Row(i),
				Col: b.Col(j),
			})
			pending = append(pending, pend)
		}
	}
	return pending
}

// collectCells is the reduce phase. Replies are awaited in dispatch order
// and placed by the index they carry, so completion order never matters.
func collectCells[T Number](ctx context.Context, opts Options, rows, cols int, pending []*Pending[T]) (*Matrix[T], error) {
	data := make([]T, rows*cols)
	for n, pend := range pending {
		out, err := waitReply(ctx, opts, pend)
		if err != nil {
			for _, rest := range pending[n+1:] {
				rest.Abandon()
			}
			lg.FromContext(ctx).Error("multiply aborted",
				lg.Int("expected", len(pending)),
				lg.Int("received", n),
				lg.Int("dropped", countDropped(pending)),
				lg.Any("error", err),
			)
			return nil, err
		}
		data[out.Idx] = out.Value
	}
	return New(rows, cols, data), nil
}

// waitReply blocks until pend is answered, logging a stall warning at
// backoff intervals while it is not.
func waitReply[T Number](ctx context.Context, opts Options, pend *Pending[T]) (TaskOutput[T], error) {
	select {
	case out, ok := <-pend.reply.ch:
		return pend.result(out, ok)
	default:
	}

	start := time.Now()
	bo := boff.New(opts.Wait.Initial, opts.Wait.Max, start.UnixNano())
	for {
		timer := time.NewTimer(bo.Next())
		select {
		case out, ok := <-pend.reply.ch:
			timer.Stop()
			return pend.result(out, ok)
		case <-timer.C:
			opts.Metrics.IncStalled()
			lg.FromContext(ctx).Warn("still waiting for reply",
				lg.Int("idx", pend.idx),
				lg.String("waited", time.Since(start).String()),
			)
		}
	}
}

func countDropped[T Number](pending []*Pending[T]) int {
	n := 0
	for _, p := range pending {
		if p.dropped {
			n++
		}
	}
	return n
}
