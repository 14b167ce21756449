package coinmarketcap

import (
	"context"

	"github.com/alitto/pond/v2"
)

// chunkIDs splits ids into slices of at most size elements, preserving order
func chunkIDs(ids []int64, size int) [][]int64 {
	if size <= 0 {
		size = MaxIDsPerRequest
	}
	chunks := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// fetchBatched splits ids into batches and runs fetch for each on a bounded
// worker pool. The first batch failure fails the whole call; partial results
// are discarded so a sync pass is all or nothing.
func fetchBatched[T any](ctx context.Context, ids []int64, batchSize, maxConcurrency int, fetch func(ctx context.Context, batch []int64) (T, error)) ([]T, error) {
	chunks := chunkIDs(ids, batchSize)

	pool := pond.NewResultPool[T](maxConcurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, chunk := range chunks {
		group.SubmitErr(func() (T, error) {
			return fetch(ctx, chunk)
		})
	}

	return group.Wait()
}
