package types

import (
	"sync"
)

// RangeSet holds non-single address ranges. Safe for concurrent use.
type RangeSet struct {
	mu     sync.RWMutex
	ranges map[AddrRange]struct{}
}

func NewRangeSet() *RangeSet {
	return &RangeSet{
		ranges: make(map[AddrRange]struct{}),
	}
}

func (s *RangeSet) Add(r AddrRange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ranges[r] = struct{}{}
}

func (s *RangeSet) Contains(r AddrRange) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.ranges[r]
	return found
}

// ContainsRange reports whether any member fully contains the given range.
func (s *RangeSet) ContainsRange(r AddrRange) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for member := range s.ranges {
		if member.ContainsRange(r) {
			return true
		}
	}

	return false
}

func (s *RangeSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ranges)
}

func (s *RangeSet) All() []AddrRange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranges := make([]AddrRange, 0, len(s.ranges))
	for r := range s.ranges {
		ranges = append(ranges, r)
	}

	return ranges
}

func (s *RangeSet) Equal(other *RangeSet) bool {
	if s.Len() != other.Len() {
		return false
	}

	for _, r := range s.All() {
		if !other.Contains(r) {
			return false
		}
	}

	return true
}
