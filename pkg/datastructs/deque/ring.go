package deque

import (
	"fmt"
	"iter"

	"github.com/huynhanx03/go-queue/pkg/utils"
)

const (
	// defaultRingCap is the capacity of the first allocation of a lazily created Ring.
	defaultRingCap = 8

	// MaxPrealloc caps how many slots NewRing allocates up front.
	// Larger rings still grow on demand.
	MaxPrealloc = 1 << 16
)

// Ring is a growable circular buffer of T with O(1) amortized push at the back
// and pop at the front. Capacity is always zero or a power of two.
// The zero value is an empty ring ready to use. It is NOT thread-safe.
type Ring[T any] struct {
	buf  []T
	head int // index of the front item
	size int // number of buffered items
}

// NewRing creates a Ring able to hold capacity items before growing.
// The capacity is rounded up to the nearest power of two and clamped to MaxPrealloc.
// A capacity <= 0 defers allocation to the first push.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		return &Ring[T]{}
	}
	capacity = min(capacity, MaxPrealloc)
	return &Ring[T]{buf: make([]T, utils.CeilToPowerOfTwo(capacity))}
}

// Len returns the number of buffered items.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the number of slots currently allocated.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty reports whether the ring holds no items.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

// PushBack appends v after the last item, growing if needed.
func (r *Ring[T]) PushBack(v T) {
	if r.size == len(r.buf) {
		r.grow(r.size + 1)
	}
	r.buf[r.wrapIndex(r.head+r.size)] = v
	r.size++
}

// PopFront removes and returns the first item.
// Returns (zero, false) if the ring is empty.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	v := r.buf[r.head]
	r.buf[r.head] = zero // drop the reference
	r.head = r.wrapIndex(r.head + 1)
	r.size--
	if r.size == 0 {
		r.head = 0
	}
	return v, true
}

// Front returns the first item without removing it.
func (r *Ring[T]) Front() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.head], true
}

// Back returns the last item without removing it.
func (r *Ring[T]) Back() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.wrapIndex(r.head+r.size-1)], true
}

// At returns the i-th item counted from the front. It panics if i is out of range.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.size {
		panic(fmt.Sprintf("deque: index %d out of range [0, %d)", i, r.size))
	}
	return r.buf[r.wrapIndex(r.head+i)]
}

// Grow ensures there is room for another n items without reallocating.
func (r *Ring[T]) Grow(n int) {
	if n < 0 {
		panic("deque: negative grow count")
	}
	if r.size+n > len(r.buf) {
		r.grow(r.size + n)
	}
}

// Reset removes all items. Allocated slots are kept and zeroed.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}

// All returns an iterator over the items from front to back.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.buf[r.wrapIndex(r.head+i)]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the items from back to front.
func (r *Ring[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := r.size - 1; i >= 0; i-- {
			if !yield(r.buf[r.wrapIndex(r.head+i)]) {
				return
			}
		}
	}
}

// AppendTo appends the items front to back to dst and returns the extended slice.
func (r *Ring[T]) AppendTo(dst []T) []T {
	if r.size == 0 {
		return dst
	}

	// Simple case: no wrap-around
	end := r.head + r.size
	if end <= len(r.buf) {
		return append(dst, r.buf[r.head:end]...)
	}

	// Wrap-around case
	dst = append(dst, r.buf[r.head:]...)
	return append(dst, r.buf[:end-len(r.buf)]...)
}

// wrapIndex returns the index wrapped within the allocated slots.
func (r *Ring[T]) wrapIndex(idx int) int {
	return utils.WrapIndex(idx, len(r.buf))
}

// grow moves the items into a fresh allocation able to hold at least minCap items.
// Items are realigned so the front sits at index 0.
func (r *Ring[T]) grow(minCap int) {
	newCap := utils.GrowCapacity(len(r.buf), minCap, defaultRingCap)
	newBuf := r.AppendTo(make([]T, 0, newCap))
	r.buf = newBuf[:newCap]
	r.head = 0
}
