package queue

import "github.com/huynhanx03/go-queue/pkg/settings"

// FromConfig creates an unbounded queue when cfg declares no capacity,
// and a bounded one otherwise. A negative capacity fails with ErrInvalidCapacity.
func FromConfig[T any](cfg settings.Queue) (*BoundedQueue[T], error) {
	if !cfg.Bounded() {
		return New[T](), nil
	}
	return NewBounded[T](cfg.Capacity)
}
