package parallel

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelize_CoversEveryIndexOnce(t *testing.T) {
	for _, items := range []int{0, 1, 7, 1000, 4099} {
		t.Run(fmt.Sprintf("items=%d", items), func(t *testing.T) {
			counts := make([]int32, items)
			Parallelize(items, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&counts[i], 1)
				}
			})
			for i, c := range counts {
				assert.Equal(t, int32(1), c, "index %d", i)
			}
		})
	}
}

func TestParallelizeWithThreshold_Sequential(t *testing.T) {
	var calls int
	var gotStart, gotEnd int
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		gotStart, gotEnd = start, end
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, gotStart)
	assert.Equal(t, 10, gotEnd)

	calls = 0
	ParallelizeWithThreshold(0, 100, func(start, end int) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestForEachChunk(t *testing.T) {
	var total int64
	err := ForEachChunk(context.Background(), 5000, 10, func(_ context.Context, start, end int) error {
		atomic.AddInt64(&total, int64(end-start))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), total)
}

func TestForEachChunk_ReturnsError(t *testing.T) {
	boom := fmt.Errorf("boom")
	err := ForEachChunk(context.Background(), 5000, 10, func(_ context.Context, start, end int) error {
		if start == 0 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)

	err = ForEachChunk(context.Background(), 3, 10, func(context.Context, int, int) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestForEachChunk_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachChunk(ctx, 5000, 10, func(ctx context.Context, start, end int) error {
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}
