package streams

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedQueue_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	idx := partitionIndex("report-123", defaultNumPartitions)
	for i := 0; i < 100; i++ {
		assert.Equal(t, idx, partitionIndex("report-123", defaultNumPartitions))
	}
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, defaultNumPartitions)
}

func TestPartitionedQueue_KeysSpreadAcrossPartitions(t *testing.T) {
	t.Parallel()

	hit := make(map[int]bool)
	for i := 0; i < 200; i++ {
		hit[partitionIndex(fmt.Sprintf("report-%d", i), defaultNumPartitions)] = true
	}
	// FNV over 200 distinct keys should touch every one of the 8 partitions.
	assert.Len(t, hit, defaultNumPartitions)
}

func TestPartitionedQueue_PublishRoutesByKey(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[string](4, 8)
	queue.Publish("key-a", "first")
	queue.Publish("key-a", "second")

	idx := partitionIndex("key-a", 4)
	require.Len(t, queue.partitions[idx], 2)
	assert.Equal(t, "first", <-queue.partitions[idx])
	assert.Equal(t, "second", <-queue.partitions[idx])
}

func TestPartitionedQueue_Close(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[int](2, 1)
	queue.Close()

	for _, ch := range queue.partitions {
		_, open := <-ch
		assert.False(t, open)
	}
}
