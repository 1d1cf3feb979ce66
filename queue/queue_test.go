package queue_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pipelined/lineproc/queue"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	testInvalid := func(capacity int) func(*testing.T) {
		return func(t *testing.T) {
			q, err := queue.New[int](capacity)
			assert.Nil(t, q)
			assert.True(t, errors.Is(err, queue.ErrInvalidCapacity))
		}
	}
	t.Run("zero", testInvalid(0))
	t.Run("negative", testInvalid(-1))
	t.Run("ok", func(t *testing.T) {
		q, err := queue.New[int](3)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Cap())
		assert.Equal(t, 0, q.Len())
	})
}

func TestFIFO(t *testing.T) {
	const n = 50
	q, err := queue.New[string](n)
	require.NoError(t, err)
	puts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := string(rune('a' + i%26))
		puts = append(puts, v)
		q.Put(v)
	}
	assert.Equal(t, n, q.Len())

	gets := make([]string, 0, n)
	for i := 0; i < n; i++ {
		gets = append(gets, q.Get())
	}
	assert.Equal(t, puts, gets)
	assert.Equal(t, 0, q.Len())
}

func TestPutBlocksWhenFull(t *testing.T) {
	q, err := queue.New[int](2)
	require.NoError(t, err)
	q.Put(1)
	q.Put(2)

	done := make(chan struct{})
	go func() {
		q.Put(3)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("put returned on full queue")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 2, q.Len())

	assert.Equal(t, 1, q.Get())
	<-done
	assert.Equal(t, 2, q.Get())
	assert.Equal(t, 3, q.Get())
}

func TestGetBlocksWhenEmpty(t *testing.T) {
	q, err := queue.New[int](1)
	require.NoError(t, err)

	result := make(chan int)
	go func() {
		result <- q.Get()
	}()

	select {
	case <-result:
		t.Fatal("get returned on empty queue")
	case <-time.After(50 * time.Millisecond):
	}
	q.Put(42)
	assert.Equal(t, 42, <-result)
}

func TestConcurrentOrderAndCapacity(t *testing.T) {
	const (
		capacity = 4
		items    = 10000
	)
	q, err := queue.New[int](capacity)
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		overflow bool
		received = make([]int, 0, items)
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < items; i++ {
			q.Put(i)
			if l := q.Len(); l > capacity || l < 0 {
				overflow = true
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < items; i++ {
			received = append(received, q.Get())
		}
	}()
	wg.Wait()

	assert.False(t, overflow, "occupancy out of bounds")
	require.Len(t, received, items)
	for i := range received {
		if received[i] != i {
			t.Fatalf("item %d: got %d", i, received[i])
		}
	}
}
