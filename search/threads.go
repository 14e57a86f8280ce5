package search

import (
	"runtime"

	"github.com/pbnjay/memory"
)

// memoryPerThread is a conservative estimate of how much heap a single
// search worker's board clones and node trees need at once.
const memoryPerThread = 256 * 1024 * 1024

// DefaultThreads picks a worker count for a Driver that was never given
// an explicit SetThreadCount call: all logical CPUs, capped by total
// system memory at memoryPerThread per worker so a constrained box
// doesn't thrash. This feeds only the
// default; it never overrides an explicit SetThreadCount.
func DefaultThreads() int {
	n := runtime.NumCPU()
	if total := memory.TotalMemory(); total > 0 {
		capByMem := int(total / memoryPerThread)
		if capByMem < n && capByMem > 0 {
			n = capByMem
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}
