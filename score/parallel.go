package score

import "golang.org/x/sync/errgroup"

// ScoreAll scores every id with scoreFn, optionally fanning the work
// out across workers goroutines. Per spec §5: candidates are
// partitioned disjointly (no cross-worker contention on scoreFn's
// inputs), and results are merged back serially keyed by row-id, so
// the caller sees no ordering dependency on worker scheduling -- only
// the (score, row-id) pairs it gets back.
func ScoreAll(ids []int, workers int, scoreFn func(id int) float64) map[int]float64 {
	merged := make(map[int]float64, len(ids))

	if workers <= 1 || len(ids) <= 1 {
		for _, id := range ids {
			merged[id] = scoreFn(id)
		}
		return merged
	}
	if workers > len(ids) {
		workers = len(ids)
	}

	partitions := partition(ids, workers)
	partial := make([]map[int]float64, len(partitions))

	var g errgroup.Group
	for i, part := range partitions {
		i, part := i, part
		g.Go(func() error {
			local := make(map[int]float64, len(part))
			for _, id := range part {
				local[id] = scoreFn(id)
			}
			partial[i] = local
			return nil
		})
	}
	_ = g.Wait() // scoreFn never returns an error; nothing to propagate

	for _, local := range partial {
		for id, s := range local {
			merged[id] = s
		}
	}
	return merged
}

// partition splits ids into n disjoint, contiguous, near-equal-sized
// slices, preserving order within each.
func partition(ids []int, n int) [][]int {
	out := make([][]int, 0, n)
	size := (len(ids) + n - 1) / n
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}
