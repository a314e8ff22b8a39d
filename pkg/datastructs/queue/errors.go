package queue

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a queue failure.
type Kind uint8

const (
	// KindInvalidCapacity: a bounded queue was declared with a capacity <= 0.
	KindInvalidCapacity Kind = iota + 1
	// KindQueueFull: enqueue on a bounded queue that is at capacity.
	KindQueueFull
	// KindQueueEmpty: dequeue or peek on an empty queue.
	KindQueueEmpty
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCapacity:
		return "InvalidCapacity"
	case KindQueueFull:
		return "QueueFull"
	case KindQueueEmpty:
		return "QueueEmpty"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Operation names recorded in Error.Op.
const (
	OpNew     = "new"
	OpEnqueue = "enqueue"
	OpDequeue = "dequeue"
	OpPeek    = "peek"
)

// Error is the error returned by every failing queue operation.
// The queue is left unchanged whenever an Error is returned.
type Error struct {
	Kind     Kind
	Op       string
	Capacity int // requested or enforced capacity, for KindInvalidCapacity and KindQueueFull
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidCapacity:
		return fmt.Sprintf("queue: can't declare queue size of %d", e.Capacity)
	case KindQueueFull:
		return "queue: can't insert an item into a full queue"
	case KindQueueEmpty:
		if e.Op == OpPeek {
			return "queue: can't read the front item from an empty queue"
		}
		return "queue: can't delete the front item from an empty queue"
	default:
		return fmt.Sprintf("queue: %s failed (%s)", e.Op, e.Kind)
	}
}

// Is reports whether target is an *Error of the same Kind.
// A target with a non-empty Op must also match the operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidCapacity = &Error{Kind: KindInvalidCapacity}
	ErrQueueFull       = &Error{Kind: KindQueueFull}
	ErrQueueEmpty      = &Error{Kind: KindQueueEmpty}
)

// KindOf returns the Kind carried by err, or 0 if err is not a queue error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// newError builds an *Error annotated with the caller's stack trace.
func newError(kind Kind, op string, capacity int) error {
	return errors.WithStack(&Error{Kind: kind, Op: op, Capacity: capacity})
}
