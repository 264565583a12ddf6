package parmat

import (
	"context"
	"fmt"
	"sync"
)

// TaskInput is one output cell's work: the dot product of Row and Col is
// written to position Idx of the result's backing sequence.
type TaskInput[T Number] struct {
	Idx int
	Row Vector[T]
	Col Vector[T]
}

// TaskOutput is a worker's reply for the task with the same Idx.
type TaskOutput[T Number] struct {
	Idx   int
	Value T
}

// task is what travels through a worker queue. It is owned by exactly one
// worker once queued.
type task[T Number] struct {
	ctx   context.Context
	input TaskInput[T]
	reply *oneshot[TaskOutput[T]]
}

// oneshot is a single-use conduit between one sender and one receiver.
// At most one value ever flows through it.
type oneshot[V any] struct {
	ch   chan V        // capacity 1
	gone chan struct{} // closed once the receiver stops listening

	closeOnce sync.Once
	goneOnce  sync.Once
}

func newOneshot[V any]() *oneshot[V] {
	return &oneshot[V]{
		ch:   make(chan V, 1),
		gone: make(chan struct{}),
	}
}

// send hands v to the receiver. It fails with ErrDeliveryFailure when the
// receiver has already gone.
func (o *oneshot[V]) send(v V) error {
	select {
	case <-o.gone:
		return ErrDeliveryFailure
	default:
	}
	o.ch <- v
	return nil
}

// closeSend drops the sending side without a value. The receiver then
// observes a disconnect.
func (o *oneshot[V]) closeSend() {
	o.closeOnce.Do(func() { close(o.ch) })
}

// drop drops the receiving side.
func (o *oneshot[V]) drop() {
	o.goneOnce.Do(func() { close(o.gone) })
}

// Pending is the receiving end of one task's reply channel.
type Pending[T Number] struct {
	idx   int
	reply *oneshot[TaskOutput[T]]

	// dropped is set when the task never reached a worker queue.
	dropped bool
}

// Idx returns the index of the output cell the task computes.
func (p *Pending[T]) Idx() int { return p.idx }

// Dropped reports whether the task was dropped before reaching a worker.
func (p *Pending[T]) Dropped() bool { return p.dropped }

// Wait blocks until the reply arrives. There is no deadline: a task whose
// worker panicked is never answered and Wait never returns.
func (p *Pending[T]) Wait() (TaskOutput[T], error) {
	out, ok := <-p.reply.ch
	return p.result(out, ok)
}

// Await is Wait bounded by ctx. On cancellation the reply channel is
// abandoned and a late reply is reported as a delivery failure.
func (p *Pending[T]) Await(ctx context.Context) (TaskOutput[T], error) {
	select {
	case out, ok := <-p.reply.ch:
		return p.result(out, ok)
	case <-ctx.Done():
		p.Abandon()
		return TaskOutput[T]{}, ctx.Err()
	}
}

// Abandon tells the worker nobody is listening for this reply anymore.
func (p *Pending[T]) Abandon() { p.reply.drop() }

func (p *Pending[T]) result(out TaskOutput[T], ok bool) (TaskOutput[T], error) {
	if ok {
		return out, nil
	}
	if p.dropped {
		return out, fmt.Errorf("%w: cell %d: %w", ErrChannelDisconnected, p.idx, ErrDeliveryFailure)
	}
	return out, fmt.Errorf("%w: cell %d", ErrChannelDisconnected, p.idx)
}
