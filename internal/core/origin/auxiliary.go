package origin

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// SetRegenerateInitramfs turns client-side initramfs regeneration on or off.
// Arguments are only kept while regeneration is enabled.
func (o *Origin) SetRegenerateInitramfs(enable bool, args []string) {
	if !enable {
		o.kf.RemoveKey(SectionRpmOstree, KeyRegenerateInitramfs)
		o.kf.RemoveKey(SectionRpmOstree, KeyInitramfsArgs)
		o.initramfsArgs = nil
		o.syncBaseRefspec()
		return
	}

	o.kf.SetBool(SectionRpmOstree, KeyRegenerateInitramfs, true)
	if len(args) > 0 {
		o.kf.SetStrings(SectionRpmOstree, KeyInitramfsArgs, args)
	} else {
		o.kf.RemoveKey(SectionRpmOstree, KeyInitramfsArgs)
	}
	o.initramfsArgs, _ = o.kf.Strings(SectionRpmOstree, KeyInitramfsArgs)
	o.syncBaseRefspec()
}

// TrackInitramfsEtc adds /etc paths to include in the initramfs.
func (o *Origin) TrackInitramfsEtc(paths []string) bool {
	changed := false
	for _, p := range paths {
		if o.initramfsEtc.add(p) {
			changed = true
		}
	}
	if changed {
		o.writeSet(SectionRpmOstree, KeyInitramfsEtc, o.initramfsEtc)
	}
	return changed
}

// UntrackInitramfsEtc stops tracking paths. Paths that are not tracked are
// ignored.
func (o *Origin) UntrackInitramfsEtc(paths []string) bool {
	changed := false
	for _, p := range paths {
		if o.initramfsEtc.remove(p) {
			changed = true
		}
	}
	if changed {
		o.writeSet(SectionRpmOstree, KeyInitramfsEtc, o.initramfsEtc)
	}
	return changed
}

// UntrackAllInitramfsEtc stops tracking every path.
func (o *Origin) UntrackAllInitramfsEtc() bool {
	if len(o.initramfsEtc) == 0 {
		return false
	}
	o.initramfsEtc = newStringSet()
	o.writeSet(SectionRpmOstree, KeyInitramfsEtc, o.initramfsEtc)
	return true
}

// SetOverrideCommit pins the deployment to checksum, or unpins it when
// checksum is "". A non-empty version is recorded as a comment on the key.
func (o *Origin) SetOverrideCommit(checksum, version string) {
	if checksum == "" {
		o.kf.RemoveKey(SectionOrigin, KeyOverrideCommit)
		o.overrideCommit = ""
		return
	}

	o.kf.SetString(SectionOrigin, KeyOverrideCommit, checksum)
	if version != "" {
		o.kf.SetComment(SectionOrigin, KeyOverrideCommit, fmt.Sprintf("Version %s [%.10s]", version, checksum))
	} else {
		o.kf.SetComment(SectionOrigin, KeyOverrideCommit, "")
	}
	o.overrideCommit = checksum
}

// SetCliwrap turns CLI wrapping on or off.
func (o *Origin) SetCliwrap(enable bool) {
	if enable {
		o.kf.SetBool(SectionRpmOstree, KeyCliwrap, true)
	} else {
		o.kf.RemoveKey(SectionRpmOstree, KeyCliwrap)
	}
	o.syncBaseRefspec()
}

// SetUnconfiguredState records why the deployment is unconfigured, or clears
// it when state is "".
func (o *Origin) SetUnconfiguredState(state string) {
	if state == "" {
		o.kf.RemoveKey(SectionOrigin, KeyUnconfiguredState)
	} else {
		o.kf.SetString(SectionOrigin, KeyUnconfiguredState, state)
	}
	o.unconfiguredState = state
}

// Fingerprint hashes the serialized document. Two origins with the same
// fingerprint serialize identically.
func (o *Origin) Fingerprint() (uint64, error) {
	data, err := o.kf.Bytes()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

// Equal reports whether o and other describe the same customizations and
// reference, ignoring comments and key order.
func (o *Origin) Equal(other *Origin) bool {
	return o.refspecKind == other.refspecKind &&
		o.refspec == other.refspec &&
		o.overrideCommit == other.overrideCommit &&
		maps.Equal(o.packages, other.packages) &&
		maps.Equal(o.localPackages, other.localPackages) &&
		maps.Equal(o.overridesRemove, other.overridesRemove) &&
		maps.Equal(o.overridesLocalReplace, other.overridesLocalReplace) &&
		maps.Equal(o.initramfsEtc, other.initramfsEtc) &&
		o.RegenerateInitramfs() == other.RegenerateInitramfs() &&
		slices.Equal(o.initramfsArgs, other.initramfsArgs) &&
		o.Cliwrap() == other.Cliwrap()
}
