package parmat

import (
	"runtime"
	"time"
)

const (
	// DefaultWorkers is the pool size used when Options.Workers is zero.
	DefaultWorkers = 4

	defaultQueueRatio  = 2
	defaultWaitInitial = time.Second
	defaultWaitMax     = 30 * time.Second
)

// Options configure a worker pool, and with it Multiply and Executor.
//
// All zero values are replaced with defaults in FillDefaults.
type Options struct {
	// Workers is the number of worker goroutines, each with its own task queue.
	Workers int

	// QueueSize is the buffer of every per-worker task channel.
	QueueSize int

	// PinWorkers locks each worker to an OS thread bound to a single CPU.
	// Only honored on Linux.
	PinWorkers bool

	// Wait controls how often a stall warning is logged while the
	// dispatcher waits for an outstanding reply.
	Wait WaitPolicy

	// Metrics receives pool and dispatcher counters.
	Metrics MetricsPolicy

	// OnDeliveryFailure is called when a task cannot be queued or a reply
	// cannot be handed back. The operation carries on.
	OnDeliveryFailure func(error)

	// OnTaskError is called when computing a task fails or panics.
	OnTaskError func(error)
}

// FillDefaults replaces zero values with defaults.
func (o *Options) FillDefaults() {
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.QueueSize <= 0 {
		o.QueueSize = o.Workers * defaultQueueRatio
	}
	if o.Wait.Initial <= 0 {
		o.Wait.Initial = defaultWaitInitial
	}
	if o.Wait.Max <= 0 {
		o.Wait.Max = defaultWaitMax
	}
	if o.Wait.Max < o.Wait.Initial {
		o.Wait.Max = o.Wait.Initial
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}

// GOMAXPROCSOptions returns defaults with one worker per GOMAXPROCS.
func GOMAXPROCSOptions() Options {
	o := Options{Workers: runtime.GOMAXPROCS(0)}
	o.FillDefaults()
	return o
}
