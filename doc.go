// Package parmat multiplies dense matrices on a fixed pool of worker
// goroutines.
//
// Design goals
//
//   - Every output cell is an independent task
//   - Cells are placed by explicit index, never by completion order
//   - Workers own private queues; the result buffer is owned by one goroutine
//   - Failures on one task never stop a worker
//
// Architecture overview
//
// A multiplication runs in two phases around a worker pool:
//
//  1. Map (dispatch)
//     For every output position (i, j) in row-major order, row i of a and
//     column j of b are copied into owned Vectors and sent as a task with
//     index idx = i*b.Cols()+j to worker idx % Workers. Routing by cell index
//     makes the assignment of cells to workers independent of timing.
//
//  2. Execution (pool / workers)
//     Each worker drains its own channel, computes the dot product and
//     answers on the task's private, single-use reply channel.
//
//  3. Reduce (collect)
//     After all tasks are queued, the dispatcher waits on the reply channels
//     in the order it created them and writes each value at the index the
//     reply carries. Concurrency changes completion order, never placement.
//
// Pool lifecycle
//
// Multiply and MultiplyContext create a pool per call and close its queues
// as soon as the map phase is over; workers exit when their queue drains.
// Executor keeps one pool alive across many calls and exposes the same
// machinery as Submit / Pending.Wait.
//
// Error handling
//
// Errors fall into three groups:
//
//   - Dimension errors (ErrIncompatibleDimensions, ErrDimensionMismatch)
//     are returned immediately; Multiply starts no worker.
//   - A reply channel closed without a value (ErrChannelDisconnected) aborts
//     the call without a partial matrix. For a task dropped during dispatch
//     the error also matches ErrDeliveryFailure.
//   - Delivery failures (a task that cannot be queued, a reply nobody waits
//     for) are logged, counted and passed to Options.OnDeliveryFailure, but
//     never stop the operation.
//
// Panics inside a task are recovered so the worker keeps serving, but the
// task's reply channel is never signaled and the dispatcher waits for it
// forever. This is a known limitation: the wait has no deadline, and the
// only symptom is a stall warning logged per Options.Wait.
//
// Logging
//
// All logging goes through the zap-backed logger carried by the context
// passed to MultiplyContext, Executor methods and NewExecutor.
//
// CPU pinning
//
// On Linux, workers may optionally be pinned to specific CPUs
// (Options.PinWorkers). Workers are then locked to OS threads and restricted
// to run on a single core.
package parmat
