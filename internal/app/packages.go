package app

import "go.trai.ch/origin/internal/core/origin"

// InstallOptions configures Install.
type InstallOptions struct {
	// Local treats every package as a "sha256:nevra" local package.
	Local bool
	// AllowExisting skips packages that are already requested.
	AllowExisting bool
}

// Install requests packages in the origin at path.
func (a *App) Install(path string, pkgs []string, opts InstallOptions) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		return o.AddPackages(pkgs, opts.Local, opts.AllowExisting)
	})
}

// Uninstall drops requested packages from the origin at path.
func (a *App) Uninstall(path string, pkgs []string, allowAbsent bool) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		return o.RemovePackages(pkgs, allowAbsent)
	})
}

// UninstallAll drops every requested package.
func (a *App) UninstallAll(path string) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		return o.RemoveAllPackages(), nil
	})
}
