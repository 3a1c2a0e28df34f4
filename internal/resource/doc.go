// Package resource implements the Controller for process-wide limits.
//
// The Controller manages two resource types shared by every Engine that is
// handed the same instance:
//
//   - Workers: bound the number of goroutines that data-parallel reductions
//     may fan out to at the same time (non-blocking, degrade to sequential)
//   - Memory: track and limit the bytes held by sieve lookup tables
//     (non-blocking, fail-fast)
//
// # Architecture
//
//	┌───────────────────────────────────────────┐
//	│                Controller                 │
//	├─────────────────────┬─────────────────────┤
//	│  Worker slots (sem) │  Memory limit       │
//	│  TryAcquireWorkers  │  AcquireMemory      │
//	│  ReleaseWorkers     │  ReleaseMemory      │
//	│                     │  MemoryUsage        │
//	└─────────────────────┴─────────────────────┘
//
// # Worker Slots
//
// A reduction asks for as many slots as it would like to fan out to and gets
// however many are free right now:
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 8})
//
//	n := rc.TryAcquireWorkers(8)
//	defer rc.ReleaseWorkers(n)
//	// n == 0: run on the calling goroutine
//
// # Memory Management
//
// AcquireMemory is non-blocking and returns ErrMemoryLimitExceeded if the
// limit would be exceeded. Callers decide how to degrade:
//
//	if err := rc.AcquireMemory(tableBytes); err != nil {
//	    // keep the old table, answer from direct computation
//	}
//	defer rc.ReleaseMemory(tableBytes)
//
// # Nil Safety
//
// All methods handle nil Controller gracefully. A nil Controller grants every
// worker request and tracks no memory.
package resource
