// Package queue provides fixed-capacity blocking FIFO queue that connects
// two pipeline stages.
package queue

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned if queue is created with capacity less
// than one.
var ErrInvalidCapacity = errors.New("invalid queue capacity")

// Bounded is a blocking FIFO queue with fixed capacity. It's designed to
// be shared by exactly one producer and one consumer.
type Bounded[T any] struct {
	items chan T
}

// New returns a queue with provided capacity.
func New[T any](capacity int) (*Bounded[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Bounded[T]{
		items: make(chan T, capacity),
	}, nil
}

// Put inserts the item at the tail. It blocks while the queue is full.
func (q *Bounded[T]) Put(item T) {
	q.items <- item
}

// Get removes the item from the head. It blocks while the queue is empty.
func (q *Bounded[T]) Get() T {
	return <-q.items
}

// Len returns the number of queued items.
func (q *Bounded[T]) Len() int {
	return len(q.items)
}

// Cap returns the capacity of the queue.
func (q *Bounded[T]) Cap() int {
	return cap(q.items)
}
