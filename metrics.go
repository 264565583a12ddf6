package parmat

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// cachePad is used to prevent false sharing between hot fields.
type cachePad = cpu.CacheLinePad

// MetricsPolicy defines hooks used by the pool and the dispatcher to report
// activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {
	// IncSpawned counts a started worker goroutine.
	IncSpawned()

	// IncDispatched counts a task handed to a worker queue.
	IncDispatched()

	// IncDropped counts a task that could not be queued.
	IncDropped()

	// IncExecuted counts a task a worker finished computing.
	IncExecuted()

	// IncUndelivered counts a reply the worker could not hand back.
	IncUndelivered()

	// IncStalled counts a stall warning raised while waiting for a reply.
	IncStalled()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// dispatched is written by the dispatcher goroutine.
	dispatched atomic.Uint64
	_          cachePad

	// executed is written by every worker.
	executed atomic.Uint64
	_        cachePad

	spawned     atomic.Uint64
	dropped     atomic.Uint64
	undelivered atomic.Uint64
	stalled     atomic.Uint64
}

// Spawned returns the number of worker goroutines started.
func (m *AtomicMetrics) Spawned() uint64 { return m.spawned.Load() }

// Dispatched returns the number of tasks queued to workers.
func (m *AtomicMetrics) Dispatched() uint64 { return m.dispatched.Load() }

// Dropped returns the number of tasks that never reached a worker.
func (m *AtomicMetrics) Dropped() uint64 { return m.dropped.Load() }

// Executed returns the number of tasks computed by workers.
func (m *AtomicMetrics) Executed() uint64 { return m.executed.Load() }

// Undelivered returns the number of replies that could not be handed back.
func (m *AtomicMetrics) Undelivered() uint64 { return m.undelivered.Load() }

// Stalled returns the number of stall warnings raised.
func (m *AtomicMetrics) Stalled() uint64 { return m.stalled.Load() }

func (m *AtomicMetrics) IncSpawned()     { m.spawned.Add(1) }
func (m *AtomicMetrics) IncDispatched()  { m.dispatched.Add(1) }
func (m *AtomicMetrics) IncDropped()     { m.dropped.Add(1) }
func (m *AtomicMetrics) IncExecuted()    { m.executed.Add(1) }
func (m *AtomicMetrics) IncUndelivered() { m.undelivered.Add(1) }
func (m *AtomicMetrics) IncStalled()     { m.stalled.Add(1) }

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
type NoopMetrics struct{}

func (m *NoopMetrics) IncSpawned()     {}
func (m *NoopMetrics) IncDispatched()  {}
func (m *NoopMetrics) IncDropped()     {}
func (m *NoopMetrics) IncExecuted()    {}
func (m *NoopMetrics) IncUndelivered() {}
func (m *NoopMetrics) IncStalled()     {}
