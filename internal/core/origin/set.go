package origin

import (
	"maps"
	"slices"
)

type stringSet map[string]struct{}

func newStringSet(vals ...string) stringSet {
	s := make(stringSet, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// add reports whether v was not already present.
func (s stringSet) add(v string) bool {
	if s.has(v) {
		return false
	}
	s[v] = struct{}{}
	return true
}

// remove reports whether v was present.
func (s stringSet) remove(v string) bool {
	if !s.has(v) {
		return false
	}
	delete(s, v)
	return true
}

func (s stringSet) sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
