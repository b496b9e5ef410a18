package bitmap

import "sync/atomic"

var workers atomic.Int32

// SetWorkers sets how many goroutines ScaledByDimension, ScaledBy and
// RotatedByAngle may use for large results. The default of 1 keeps every
// operation on the calling goroutine; n < 1 is treated as 1. The output
// does not depend on n.
func SetWorkers(n int) {
	workers.Store(int32(max(1, n)))
}

// Workers returns the value installed by SetWorkers.
func Workers() int {
	return max(1, int(workers.Load()))
}
