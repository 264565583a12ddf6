package parmat

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "parmat:" so failures are easy to grep.
// Callers match with errors.Is; context is added with %w at the call site.
var (
	// ErrIncompatibleDimensions is returned by Multiply when a.Cols() != b.Rows().
	// It is detected before any worker is spawned.
	ErrIncompatibleDimensions = errors.New("parmat: incompatible matrix dimensions for multiplication")

	// ErrDimensionMismatch is returned by DotProduct for vectors of unequal length.
	ErrDimensionMismatch = errors.New("parmat: vectors must have the same length for dot product")

	// ErrChannelDisconnected means a reply channel was closed before any value
	// was sent on it. Multiply aborts and returns no matrix.
	ErrChannelDisconnected = errors.New("parmat: reply channel closed without a value")

	// ErrDeliveryFailure marks a task or reply that could not be handed over.
	// Producers log it and carry on; it only reaches Multiply's caller joined
	// with ErrChannelDisconnected for a task that was dropped during dispatch.
	ErrDeliveryFailure = errors.New("parmat: task or reply could not be delivered")

	// ErrTaskPanicked wraps a value recovered from a panicking task.
	ErrTaskPanicked = errors.New("parmat: task panicked")

	// ErrBadShape is returned by NewChecked for negative dimensions or a
	// backing slice whose length differs from rows*cols.
	ErrBadShape = errors.New("parmat: invalid matrix shape")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("parmat: nil matrix")

	// ErrPoolClosed is returned when submitting to a pool that was shut down.
	ErrPoolClosed = errors.New("parmat: pool closed")
)

// parmatErrorf tags err with the operation that produced it.
func parmatErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
