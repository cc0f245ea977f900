package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, items) into contiguous chunks, one per worker, and
// executes fn(start, end) on each chunk concurrently. It blocks until every
// chunk has finished. Chunk sizes differ by at most one.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > items {
		workers = items // No need for more workers than items
	}

	// Distribute the remainder so the first (items % workers) chunks get one extra item
	base := items / workers
	extra := items % workers

	var wg sync.WaitGroup

	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		end := start + size

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)

		start = end
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over the whole range when
// items does not exceed threshold, and in parallel otherwise.
// Small inputs are not worth the goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
