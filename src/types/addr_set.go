package types

import (
	"net/netip"
	"sync"
)

// AddrSet holds exact addresses. Safe for concurrent use.
type AddrSet struct {
	mu    sync.RWMutex
	addrs map[netip.Addr]struct{}
}

func NewAddrSet() *AddrSet {
	return &AddrSet{
		addrs: make(map[netip.Addr]struct{}),
	}
}

func (s *AddrSet) Add(addr netip.Addr) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addrs[addr] = struct{}{}
}

func (s *AddrSet) Contains(addr netip.Addr) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.addrs[addr]
	return found
}

// AnyInRange reports whether any member falls within the given range.
func (s *AddrSet) AnyInRange(r AddrRange) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for addr := range s.addrs {
		if r.Contains(addr) {
			return true
		}
	}

	return false
}

func (s *AddrSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.addrs)
}

func (s *AddrSet) All() []netip.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addrs := make([]netip.Addr, 0, len(s.addrs))
	for addr := range s.addrs {
		addrs = append(addrs, addr)
	}

	return addrs
}

func (s *AddrSet) Equal(other *AddrSet) bool {
	if s.Len() != other.Len() {
		return false
	}

	for _, addr := range s.All() {
		if !other.Contains(addr) {
			return false
		}
	}

	return true
}
