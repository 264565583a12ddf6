package parmat

import (
	"time"
)

// WaitPolicy describes how often the dispatcher reports a reply that is
// still outstanding. It never bounds the wait itself.
// Zero values are treated as "use pool defaults".
type WaitPolicy struct {
	// Initial is the delay before the first stall warning.
	Initial time.Duration

	// Max is the cap for the delay between warnings.
	Max time.Duration
}

// GetDefaultWP returns a pointer to the default wait policy.
// Useful in tests or when building Options with the same defaults.
func GetDefaultWP() *WaitPolicy {
	wp := WaitPolicy{
		Initial: defaultWaitInitial,
		Max:     defaultWaitMax,
	}
	return &wp
}
