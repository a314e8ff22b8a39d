package queue

import (
	"iter"

	"github.com/huynhanx03/go-queue/pkg/datastructs/deque"
)

var _ Queue[int] = (*BoundedQueue[int])(nil)

// BoundedQueue is a FIFO queue over a growable ring with an optional capacity limit.
// The zero value is an empty unbounded queue. It is NOT thread-safe.
type BoundedQueue[T any] struct {
	items    deque.Ring[T] // front of the queue is the front of the ring
	capacity int           // enforced only when bounded
	bounded  bool
}

// New creates an empty queue that never becomes full.
func New[T any]() *BoundedQueue[T] {
	return &BoundedQueue[T]{}
}

// NewBounded creates an empty queue holding at most capacity items.
// Returns an error matching ErrInvalidCapacity if capacity <= 0.
func NewBounded[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity <= 0 {
		return nil, newError(KindInvalidCapacity, OpNew, capacity)
	}

	q := &BoundedQueue[T]{
		capacity: capacity,
		bounded:  true,
	}
	q.items.Grow(min(capacity, deque.MaxPrealloc))
	return q, nil
}

// Enqueue appends item at the rear of the queue.
func (q *BoundedQueue[T]) Enqueue(item T) error {
	if q.IsFull() {
		return newError(KindQueueFull, OpEnqueue, q.capacity)
	}
	q.items.PushBack(item)
	return nil
}

// Dequeue removes and returns the item at the front of the queue.
func (q *BoundedQueue[T]) Dequeue() (T, error) {
	item, ok := q.items.PopFront()
	if !ok {
		return item, newError(KindQueueEmpty, OpDequeue, 0)
	}
	return item, nil
}

// Peek returns the item at the front of the queue without removing it.
func (q *BoundedQueue[T]) Peek() (T, error) {
	item, ok := q.items.Front()
	if !ok {
		return item, newError(KindQueueEmpty, OpPeek, 0)
	}
	return item, nil
}

// Size returns the number of items in the queue.
func (q *BoundedQueue[T]) Size() int {
	return q.items.Len()
}

// IsEmpty reports whether the queue holds no items.
func (q *BoundedQueue[T]) IsEmpty() bool {
	return q.items.IsEmpty()
}

// IsFull reports whether the queue is bounded and at capacity.
// An unbounded queue is never full.
func (q *BoundedQueue[T]) IsFull() bool {
	return q.bounded && q.items.Len() >= q.capacity
}

// Capacity returns the declared capacity and whether the queue is bounded.
// Unbounded queues report (0, false).
func (q *BoundedQueue[T]) Capacity() (int, bool) {
	return q.capacity, q.bounded
}

// Remaining returns how many more items a bounded queue accepts, or -1 if unbounded.
func (q *BoundedQueue[T]) Remaining() int {
	if !q.bounded {
		return -1
	}
	return q.capacity - q.items.Len()
}

// Clear removes all items. A bounded queue keeps its capacity.
func (q *BoundedQueue[T]) Clear() {
	q.items.Reset()
}

// All returns an iterator over the items from front to rear without removing them.
func (q *BoundedQueue[T]) All() iter.Seq[T] {
	return q.items.All()
}

// Drain returns an iterator that dequeues items from the front until the queue
// is empty or the consumer stops. Items not yet yielded stay in the queue.
func (q *BoundedQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := q.items.PopFront()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Slice returns a copy of the items, front first.
func (q *BoundedQueue[T]) Slice() []T {
	return q.items.AppendTo(make([]T, 0, q.items.Len()))
}

// String renders the queue rear first, see Format.
func (q *BoundedQueue[T]) String() string {
	return Format(q.Slice())
}
