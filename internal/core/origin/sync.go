package origin

import (
	"maps"
	"slices"

	"go.trai.ch/origin/internal/core/domain"
)

// writeSet rewrites section/key from s, deleting the key when s is empty.
func (o *Origin) writeSet(section, key string, s stringSet) {
	if len(s) == 0 {
		o.kf.RemoveKey(section, key)
	} else {
		o.kf.SetStrings(section, key, s.sorted())
	}
	o.syncBaseRefspec()
}

// writeLocal rewrites section/key from a NEVRA to sha256 map as
// "sha256:nevra" entries ordered by NEVRA, deleting the key when m is empty.
func (o *Origin) writeLocal(section, key string, m map[string]string) {
	if len(m) == 0 {
		o.kf.RemoveKey(section, key)
		o.syncBaseRefspec()
		return
	}

	entries := make([]string, 0, len(m))
	for _, nevra := range slices.Sorted(maps.Keys(m)) {
		entries = append(entries, domain.ComposeSHA256NEVRA(nevra, m[nevra]))
	}
	o.kf.SetStrings(section, key, entries)
	o.syncBaseRefspec()
}
