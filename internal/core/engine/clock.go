package engine

import "time"

// Clock supplies the current time to the animation and sequence state
// machines. Injecting it keeps every timed transition deterministic under
// test; production code uses SystemClock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
