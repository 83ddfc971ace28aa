package ktest

import (
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// workerCounter pads a plain uint64 out to a cache line so concurrent
// RendezvousWorkload goroutines never false-share their completion
// counters (mirrors the corpus's concurrency benchmarks, which pad
// per-goroutine state for the same reason).
type workerCounter struct {
	n   uint64
	_   cpu.CacheLinePad
}

// RendezvousWorkload runs one goroutine per GOMAXPROCS slot, each calling
// step steps times with its worker index and its own rand.Rand seeded from
// seed plus that index, and returns the total number of steps executed
// across all workers. It exists for benchmarks
// that want realistic concurrent pressure on a shared Endpoint/Notification
// without pulling in a full scheduler.
func RendezvousWorkload(seed int64, steps int, step func(rng *rand.Rand, worker int)) int {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	counters := make([]workerCounter, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		rng := rand.New(rand.NewSource(seed + int64(w)))
		go func() {
			defer wg.Done()
			for i := 0; i < steps; i++ {
				step(rng, w)
				counters[w].n++
			}
		}()
	}
	wg.Wait()

	var total uint64
	for i := range counters {
		total += counters[i].n
	}
	return int(total)
}
