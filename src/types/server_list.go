package types

import (
	"net/netip"

	"github.com/gaissmai/bart"
)

// ServerList is a set of address pools that must never be filtered.
// Immutable after construction.
type ServerList struct {
	list *bart.Lite
}

func NewServerList(prefixes []netip.Prefix) *ServerList {
	list := new(bart.Lite)
	for _, prefix := range prefixes {
		list.Insert(prefix)
	}

	return &ServerList{list: list}
}

func (l *ServerList) ContainsRange(r AddrRange) bool {
	if l == nil {
		return false
	}

	if prefix, ok := r.Prefix(); ok {
		return l.list.OverlapsPrefix(prefix)
	}

	return l.list.Contains(r.Begin) || l.list.Contains(r.End)
}

func (l *ServerList) Len() int {
	if l == nil {
		return 0
	}

	return l.list.Size()
}
