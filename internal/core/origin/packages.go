package origin

import (
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/zerr"
)

// AddPackages requests pkgs. With local set, each entry must be a
// "sha256:nevra" string and is added to the local packages; otherwise entries
// are free-form capabilities.
//
// A package already requested in either form is an error unless
// allowExisting is set, in which case it is skipped. The batch is validated as
// a whole: on error nothing is changed.
func (o *Origin) AddPackages(pkgs []string, local, allowExisting bool) (bool, error) {
	pending := make(map[string]string, len(pkgs))
	for _, spec := range pkgs {
		pkg, sha256 := spec, ""
		if local {
			var err error
			if pkg, sha256, err = domain.DecomposeSHA256NEVRA(spec); err != nil {
				return false, err
			}
		}

		// Requested-local packages are treated like requested ones, and keeping
		// the strings unique lets removal know exactly what is meant.
		requested := o.packages.has(pkg)
		_, requestedLocal := o.localPackages[pkg]
		if _, queued := pending[pkg]; queued {
			if local {
				requestedLocal = true
			} else {
				requested = true
			}
		}

		if requested || requestedLocal {
			if allowExisting {
				continue
			}
			if requested {
				return false, zerr.With(zerr.Wrap(domain.ErrPackageAlreadyRequested,
					fmt.Sprintf("package/capability '%s' is already requested", pkg)), "package", pkg)
			}
			return false, zerr.With(zerr.Wrap(domain.ErrPackageAlreadyRequested,
				fmt.Sprintf("package '%s' is already layered", pkg)), "package", pkg)
		}

		pending[pkg] = sha256
	}

	if len(pending) == 0 {
		return false, nil
	}

	if local {
		maps.Copy(o.localPackages, pending)
		o.writeLocal(SectionPackages, KeyRequestedLocal, o.localPackages)
	} else {
		for pkg := range pending {
			o.packages.add(pkg)
		}
		o.writeSet(SectionPackages, KeyRequested, o.packages)
	}
	return true, nil
}

// RemovePackages drops pkgs from the requested packages. Each entry may be a
// capability, a local package NEVRA, or the bare name of a local package.
// A bare name removes one local package of that name per occurrence, lowest
// NEVRA first.
//
// A package that is not requested is an error unless allowAbsent is set. On
// error nothing is changed.
func (o *Origin) RemovePackages(pkgs []string, allowAbsent bool) (bool, error) {
	packages := maps.Clone(o.packages)
	local := maps.Clone(o.localPackages)
	changed, localChanged := false, false

	// Built at most once per call, and only if a bare name needs resolving.
	var byName nameIndex

	for _, pkg := range pkgs {
		if _, ok := local[pkg]; ok {
			delete(local, pkg)
			localChanged = true
			continue
		}
		if packages.remove(pkg) {
			changed = true
			continue
		}

		if byName == nil {
			var err error
			if byName, err = newNameIndex(local); err != nil {
				return false, err
			}
		}
		if nevra, ok := byName.take(pkg, local); ok {
			delete(local, nevra)
			localChanged = true
			continue
		}

		if !allowAbsent {
			return false, zerr.With(zerr.Wrap(domain.ErrPackageNotRequested,
				fmt.Sprintf("package/capability '%s' is not currently requested", pkg)), "package", pkg)
		}
	}

	if changed {
		o.packages = packages
		o.writeSet(SectionPackages, KeyRequested, o.packages)
	}
	if localChanged {
		o.localPackages = local
		o.writeLocal(SectionPackages, KeyRequestedLocal, o.localPackages)
	}
	return changed || localChanged, nil
}

// RemoveAllPackages drops every requested and local package.
func (o *Origin) RemoveAllPackages() bool {
	changed := len(o.packages) > 0
	localChanged := len(o.localPackages) > 0

	if changed {
		o.packages = newStringSet()
		o.writeSet(SectionPackages, KeyRequested, o.packages)
	}
	if localChanged {
		o.localPackages = make(map[string]string)
		o.writeLocal(SectionPackages, KeyRequestedLocal, o.localPackages)
	}
	return changed || localChanged
}

// nameIndex maps a package name to every local NEVRA of that name, sorted.
type nameIndex map[string][]string

func newNameIndex(nevras map[string]string) (nameIndex, error) {
	idx := make(nameIndex, len(nevras))
	for nevra := range nevras {
		name, err := domain.PackageName(nevra)
		if err != nil {
			return nil, err
		}
		idx[name] = append(idx[name], nevra)
	}
	for _, list := range idx {
		slices.Sort(list)
	}
	return idx, nil
}

// take returns the first NEVRA for name that is still in local and drops it
// from the index, so each occurrence of a bare name removes one package.
// Entries already removed by NEVRA earlier in the call are skipped.
func (idx nameIndex) take(name string, local map[string]string) (string, bool) {
	list := idx[name]
	for i, nevra := range list {
		if _, ok := local[nevra]; ok {
			idx[name] = slices.Delete(list, i, i+1)
			return nevra, true
		}
	}
	return "", false
}
