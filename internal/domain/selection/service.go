package selection

import "github.com/phrazzld/triage-api/internal/domain"

// Selector defines the interface the triage service uses to choose
// replacement tasks.
type Selector interface {
	// Pick chooses a replacement for ref from pool under mode. It returns the
	// chosen task, its index in pool, and false when the pool is empty.
	// The pool is not modified; removing the task is the caller's job.
	Pick(
		pool []domain.Task,
		ref domain.Task,
		mode domain.SelectionMode,
	) (domain.Task, int, bool)
}

// defaultSelector is the standard implementation of the Selector interface
type defaultSelector struct {
	src RandomSource
}

// NewDefaultSelector creates a Selector whose Chaos mode draws from an
// unseeded random source.
func NewDefaultSelector() Selector {
	return &defaultSelector{src: NewRandomSource(0)}
}

// NewSelectorWithSource creates a Selector backed by the given source.
// A nil source falls back to an unseeded one.
func NewSelectorWithSource(src RandomSource) Selector {
	if src == nil {
		src = NewRandomSource(0)
	}
	return &defaultSelector{src: src}
}

// Pick implements the Selector interface
func (s *defaultSelector) Pick(
	pool []domain.Task,
	ref domain.Task,
	mode domain.SelectionMode,
) (domain.Task, int, bool) {
	i, ok := Select(pool, ref, mode, s.src)
	if !ok {
		return domain.Task{}, -1, false
	}
	return pool[i], i, true
}
