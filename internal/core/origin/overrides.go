package origin

import (
	"fmt"
	"maps"

	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/zerr"
)

// AddOverrides adds base package overrides of the given kind. For
// OverrideRemove entries are package names; for OverrideReplaceLocal they are
// "sha256:nevra" strings.
//
// A package may carry only one override, whatever its kind; a second one is
// an error. On error nothing is changed.
func (o *Origin) AddOverrides(pkgs []string, kind domain.OverrideKind) (bool, error) {
	mustKnowKind(kind)

	overridden, err := o.overriddenPackages()
	if err != nil {
		return false, err
	}

	pending := make(map[string]string, len(pkgs))
	for _, spec := range pkgs {
		pkg, sha256, name := spec, "", spec
		if kind == domain.OverrideReplaceLocal {
			if pkg, sha256, err = domain.DecomposeSHA256NEVRA(spec); err != nil {
				return false, err
			}
			if name, err = domain.PackageName(pkg); err != nil {
				return false, err
			}
		}

		if overridden.has(pkg) || overridden.has(name) {
			return false, zerr.With(zerr.With(zerr.Wrap(domain.ErrOverrideExists,
				fmt.Sprintf("override already exists for package '%s'", pkg)), "package", pkg), "kind", kind.String())
		}
		overridden.add(pkg)
		overridden.add(name)
		pending[pkg] = sha256
	}

	if len(pending) == 0 {
		return false, nil
	}

	switch kind {
	case domain.OverrideRemove:
		for pkg := range pending {
			o.overridesRemove.add(pkg)
		}
		o.writeSet(SectionOverrides, KeyRemove, o.overridesRemove)
	case domain.OverrideReplaceLocal:
		maps.Copy(o.overridesLocalReplace, pending)
		o.writeLocal(SectionOverrides, KeyReplaceLocal, o.overridesLocalReplace)
	}
	return true, nil
}

// overriddenPackages collects every name and NEVRA that already has an override.
func (o *Origin) overriddenPackages() (stringSet, error) {
	s := maps.Clone(o.overridesRemove)
	for nevra := range o.overridesLocalReplace {
		name, err := domain.PackageName(nevra)
		if err != nil {
			return nil, err
		}
		s.add(nevra)
		s.add(name)
	}
	return s, nil
}

// RemoveOverrides drops overrides of the given kind. Entries must match
// exactly: a name for OverrideRemove, a NEVRA for OverrideReplaceLocal.
//
// An entry without an override is an error unless allowAbsent is set. On
// error nothing is changed.
func (o *Origin) RemoveOverrides(pkgs []string, kind domain.OverrideKind, allowAbsent bool) (bool, error) {
	mustKnowKind(kind)

	remove := maps.Clone(o.overridesRemove)
	replace := maps.Clone(o.overridesLocalReplace)
	changed := false

	for _, pkg := range pkgs {
		var found bool
		switch kind {
		case domain.OverrideRemove:
			found = remove.remove(pkg)
		case domain.OverrideReplaceLocal:
			_, found = replace[pkg]
			delete(replace, pkg)
		}
		if found {
			changed = true
			continue
		}
		if !allowAbsent {
			return false, zerr.With(zerr.With(zerr.Wrap(domain.ErrOverrideNotFound,
				fmt.Sprintf("no %s override for package '%s'", kind, pkg)), "package", pkg), "kind", kind.String())
		}
	}

	if !changed {
		return false, nil
	}

	switch kind {
	case domain.OverrideRemove:
		o.overridesRemove = remove
		o.writeSet(SectionOverrides, KeyRemove, o.overridesRemove)
	case domain.OverrideReplaceLocal:
		o.overridesLocalReplace = replace
		o.writeLocal(SectionOverrides, KeyReplaceLocal, o.overridesLocalReplace)
	}
	return true, nil
}

// RemoveOverride drops a single override and reports whether it existed.
func (o *Origin) RemoveOverride(pkg string, kind domain.OverrideKind) bool {
	changed, _ := o.RemoveOverrides([]string{pkg}, kind, true)
	return changed
}

// RemoveAllOverrides drops every override of both kinds.
func (o *Origin) RemoveAllOverrides() bool {
	removeChanged := len(o.overridesRemove) > 0
	replaceChanged := len(o.overridesLocalReplace) > 0

	if removeChanged {
		o.overridesRemove = newStringSet()
		o.writeSet(SectionOverrides, KeyRemove, o.overridesRemove)
	}
	if replaceChanged {
		o.overridesLocalReplace = make(map[string]string)
		o.writeLocal(SectionOverrides, KeyReplaceLocal, o.overridesLocalReplace)
	}
	return removeChanged || replaceChanged
}

func mustKnowKind(kind domain.OverrideKind) {
	if kind != domain.OverrideRemove && kind != domain.OverrideReplaceLocal {
		panic(fmt.Sprintf("origin: unknown override kind %d", kind))
	}
}
