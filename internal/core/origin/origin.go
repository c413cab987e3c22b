// Package origin implements the in-memory model of a deployment origin.
//
// The keyfile document is the single source of truth. Parse derives the
// in-memory indexes (package sets, local package maps, tracked paths) from it,
// and every mutator updates both the indexes and the document before
// returning, re-deciding whether the reference is written as "refspec" or
// "baserefspec".
//
// An Origin is not safe for concurrent mutation. Use Dup to obtain an
// independent copy.
package origin

import (
	"maps"
	"slices"

	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/keyfile"
	"go.trai.ch/zerr"
)

// Keyfile sections and keys.
const (
	SectionOrigin    = "origin"
	SectionPackages  = "packages"
	SectionOverrides = "overrides"
	SectionRpmOstree = "rpmostree"

	// SectionTransient holds state that must not carry over to a new deployment.
	SectionTransient = "libostree-transient"

	KeyRefspec           = "refspec"
	KeyBaseRefspec       = "baserefspec"
	KeyOverrideCommit    = "override-commit"
	KeyCustomURL         = "custom-url"
	KeyCustomDescription = "custom-description"
	KeyUnconfiguredState = "unconfigured-state"

	KeyRequested      = "requested"
	KeyRequestedLocal = "requested-local"

	KeyRemove       = "remove"
	KeyReplaceLocal = "replace-local"

	KeyRegenerateInitramfs = "regenerate-initramfs"
	KeyInitramfsArgs       = "initramfs-args"
	KeyInitramfsEtc        = "initramfs-etc"
	KeyCliwrap             = "ex-cliwrap"
)

// Origin is the declarative description of a deployment.
type Origin struct {
	kf *keyfile.Document

	refspecKind domain.RefspecKind
	refspec     string

	overrideCommit    string
	unconfiguredState string

	initramfsArgs []string
	initramfsEtc  stringSet

	packages      stringSet
	localPackages map[string]string // NEVRA -> sha256

	overridesRemove       stringSet
	overridesLocalReplace map[string]string // NEVRA -> sha256
}

// Parse builds an Origin from doc. The document is copied; later changes to
// doc do not affect the Origin.
func Parse(doc *keyfile.Document) (*Origin, error) {
	o := &Origin{kf: doc.Dup()}

	ref, ok := o.kf.String(SectionOrigin, KeyRefspec)
	if !ok {
		ref, ok = o.kf.String(SectionOrigin, KeyBaseRefspec)
		if !ok {
			return nil, domain.ErrNoRefspec
		}
	}

	classified, err := domain.ClassifyRefspec(ref)
	if err != nil {
		return nil, err
	}
	o.refspecKind = classified.Kind
	o.refspec = classified.Value

	o.overrideCommit, _ = o.kf.String(SectionOrigin, KeyOverrideCommit)
	o.unconfiguredState, _ = o.kf.String(SectionOrigin, KeyUnconfiguredState)

	o.packages = o.parseSet(SectionPackages, KeyRequested)
	o.overridesRemove = o.parseSet(SectionOverrides, KeyRemove)
	o.initramfsEtc = o.parseSet(SectionRpmOstree, KeyInitramfsEtc)
	o.initramfsArgs, _ = o.kf.Strings(SectionRpmOstree, KeyInitramfsArgs)

	if o.localPackages, err = o.parseLocal(SectionPackages, KeyRequestedLocal); err != nil {
		return nil, err
	}
	if o.overridesLocalReplace, err = o.parseLocal(SectionOverrides, KeyReplaceLocal); err != nil {
		return nil, err
	}

	return o, nil
}

// ParseBytes parses the text form of an origin document.
func ParseBytes(data []byte) (*Origin, error) {
	doc, err := keyfile.Parse(data)
	if err != nil {
		return nil, err
	}
	return Parse(doc)
}

func (o *Origin) parseSet(section, key string) stringSet {
	vals, _ := o.kf.Strings(section, key)
	return newStringSet(vals...)
}

func (o *Origin) parseLocal(section, key string) (map[string]string, error) {
	vals, _ := o.kf.Strings(section, key)
	m := make(map[string]string, len(vals))
	for _, v := range vals {
		nevra, sha256, err := domain.DecomposeSHA256NEVRA(v)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "section", section), "key", key)
		}
		m[nevra] = sha256
	}
	return m, nil
}

// Dup returns a deep copy, re-deriving every index from a copy of the document.
func (o *Origin) Dup() *Origin {
	dup, err := Parse(o.kf)
	if err != nil {
		// The document was valid when o was built and every mutator keeps it so.
		panic(err)
	}
	return dup
}

// Document returns a copy of the backing keyfile.
func (o *Origin) Document() *keyfile.Document {
	return o.kf.Dup()
}

// Bytes serializes the backing keyfile.
func (o *Origin) Bytes() ([]byte, error) {
	return o.kf.Bytes()
}

// GetString looks up a raw value that has no typed accessor.
func (o *Origin) GetString(section, key string) (string, bool) {
	return o.kf.String(section, key)
}

// RefspecKind returns the classification of the tracked reference.
func (o *Origin) RefspecKind() domain.RefspecKind {
	return o.refspecKind
}

// Refspec returns the tracked reference without any kind prefix.
func (o *Origin) Refspec() string {
	return o.refspec
}

// FullRefspec returns the tracked reference together with its kind.
func (o *Origin) FullRefspec() domain.Refspec {
	return domain.Refspec{Kind: o.refspecKind, Value: o.refspec}
}

// OverrideCommit returns the pinned commit that takes precedence over the
// refspec, or "" when there is none.
func (o *Origin) OverrideCommit() string {
	return o.overrideCommit
}

// UnconfiguredState returns the message explaining why the deployment is not
// configured, or "".
func (o *Origin) UnconfiguredState() string {
	return o.unconfiguredState
}

// CustomOrigin returns the custom origin URL and description. Empty values
// read as absent, and the description is only reported alongside a URL.
func (o *Origin) CustomOrigin() (url, description string) {
	url, _ = o.kf.String(SectionOrigin, KeyCustomURL)
	if url == "" {
		return "", ""
	}
	description, _ = o.kf.String(SectionOrigin, KeyCustomDescription)
	return url, description
}

// Packages returns the requested packages, sorted.
func (o *Origin) Packages() []string {
	return o.packages.sorted()
}

// LocalPackages returns a copy of the requested local packages (NEVRA to sha256).
func (o *Origin) LocalPackages() map[string]string {
	return maps.Clone(o.localPackages)
}

// OverridesRemove returns the names of removed base packages, sorted.
func (o *Origin) OverridesRemove() []string {
	return o.overridesRemove.sorted()
}

// OverridesLocalReplace returns a copy of the local replacements (NEVRA to sha256).
func (o *Origin) OverridesLocalReplace() map[string]string {
	return maps.Clone(o.overridesLocalReplace)
}

// InitramfsEtcFiles returns the tracked /etc paths, sorted.
func (o *Origin) InitramfsEtcFiles() []string {
	return o.initramfsEtc.sorted()
}

// RegenerateInitramfs reports whether the initramfs is regenerated client side.
func (o *Origin) RegenerateInitramfs() bool {
	return o.kf.Bool(SectionRpmOstree, KeyRegenerateInitramfs)
}

// InitramfsArgs returns the extra arguments for initramfs regeneration.
func (o *Origin) InitramfsArgs() []string {
	return slices.Clone(o.initramfsArgs)
}

// Cliwrap reports whether CLI wrapping is enabled.
func (o *Origin) Cliwrap() bool {
	return o.kf.Bool(SectionRpmOstree, KeyCliwrap)
}

// MayRequireLocalAssembly reports whether the origin carries any client-side
// customization. False means no local assembly is needed; true means it may be,
// for example requested packages could already be in the base.
func (o *Origin) MayRequireLocalAssembly() bool {
	return o.Cliwrap() ||
		o.RegenerateInitramfs() ||
		len(o.initramfsEtc) > 0 ||
		len(o.packages) > 0 ||
		len(o.localPackages) > 0 ||
		len(o.overridesLocalReplace) > 0 ||
		len(o.overridesRemove) > 0
}

// RemoveTransientState strips state that must not carry over when this origin
// seeds a new deployment: the transient section and the override commit.
func (o *Origin) RemoveTransientState() {
	o.kf.RemoveSection(SectionTransient)
	o.SetOverrideCommit("", "")
}

// syncBaseRefspec writes the refspec under "baserefspec" when the origin may
// need local assembly and under "refspec" otherwise, removing the other key.
// Plain ostree tooling only understands "refspec".
func (o *Origin) syncBaseRefspec() {
	if o.MayRequireLocalAssembly() {
		o.kf.SetString(SectionOrigin, KeyBaseRefspec, o.refspec)
		o.kf.RemoveKey(SectionOrigin, KeyRefspec)
		return
	}
	o.kf.SetString(SectionOrigin, KeyRefspec, o.refspec)
	o.kf.RemoveKey(SectionOrigin, KeyBaseRefspec)
}
