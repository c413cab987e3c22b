package app

import (
	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/core/origin"
)

// OverrideRemove removes base packages by name.
func (a *App) OverrideRemove(path string, pkgs []string) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		return o.AddOverrides(pkgs, domain.OverrideRemove)
	})
}

// OverrideReplace replaces base packages with local "sha256:nevra" packages.
func (a *App) OverrideReplace(path string, pkgs []string) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		return o.AddOverrides(pkgs, domain.OverrideReplaceLocal)
	})
}

// OverrideReset drops overrides. Each entry is looked up among the removals
// first and then among the local replacements, where a bare package name
// stands for the replacement of that package. An entry with no override is an
// error.
func (a *App) OverrideReset(path string, pkgs []string) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		removed := make(map[string]bool)
		for _, name := range o.OverridesRemove() {
			removed[name] = true
		}

		replaced := make(map[string]string)
		for nevra := range o.OverridesLocalReplace() {
			if name, err := domain.PackageName(nevra); err == nil {
				replaced[name] = nevra
			}
		}

		var names, nevras []string
		for _, pkg := range pkgs {
			switch {
			case removed[pkg]:
				names = append(names, pkg)
			case replaced[pkg] != "":
				nevras = append(nevras, replaced[pkg])
			default:
				nevras = append(nevras, pkg)
			}
		}

		// A failure in the second batch discards the loaded origin unsaved.
		changedRemove, err := o.RemoveOverrides(names, domain.OverrideRemove, false)
		if err != nil {
			return false, err
		}
		changedReplace, err := o.RemoveOverrides(nevras, domain.OverrideReplaceLocal, false)
		if err != nil {
			return false, err
		}
		return changedRemove || changedReplace, nil
	})
}

// OverrideResetAll drops every override.
func (a *App) OverrideResetAll(path string) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		return o.RemoveAllOverrides(), nil
	})
}
