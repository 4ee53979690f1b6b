package filter

import (
	"sync/atomic"
)

// Ref is a swappable reference to the active filter: readers are lock
// free, a rebuilt filter replaces the old one atomically.
type Ref struct {
	ptr atomic.Pointer[Filter]
}

func NewRef(f *Filter) *Ref {
	var r Ref
	r.ptr.Store(f)

	return &r
}

func (r *Ref) Load() *Filter {
	return r.ptr.Load()
}

func (r *Ref) Store(f *Filter) {
	r.ptr.Store(f)
}
