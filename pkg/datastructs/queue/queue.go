package queue

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item at the rear of the queue.
	// Returns an error matching ErrQueueFull if the queue is bounded and full.
	Enqueue(item T) error

	// Dequeue removes and returns the item at the front of the queue.
	// Returns an error matching ErrQueueEmpty if the queue is empty.
	Dequeue() (T, error)

	// Peek returns the item at the front of the queue without removing it.
	// Returns an error matching ErrQueueEmpty if the queue is empty.
	Peek() (T, error)

	// Size returns the number of items in the queue.
	Size() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// IsFull reports whether the queue is bounded and at capacity.
	IsFull() bool

	// Capacity returns the declared capacity and whether the queue is bounded.
	Capacity() (int, bool)
}
