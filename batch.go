package strata

import "sync"

const defaultWorkers = 1

// task fans fn out over data in contiguous chunks across workersCount
// goroutines and waits for completion.
func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}

// AboveHullBatch evaluates AboveHull for every query point across a bounded
// worker pool and returns the distances aligned by index, NaN marking
// out-of-domain queries. Queries only read immutable hull state, so no
// synchronization beyond the pool itself is needed.
func (h *Hull) AboveHullBatch(points [][]float64, workers int) []float64 {
	workers = max(defaultWorkers, workers)

	out := make([]float64, len(points))
	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = i
	}

	task(workers, indices, func(i int) {
		out[i] = h.AboveHull(points[i])
	})
	return out
}
