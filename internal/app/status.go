package app

import (
	"context"
	"maps"
	"runtime"
	"slices"

	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/core/origin"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Status is a read-only summary of one origin file.
type Status struct {
	Path                    string   `yaml:"path"`
	Refspec                 string   `yaml:"refspec"`
	Kind                    string   `yaml:"kind"`
	OverrideCommit          string   `yaml:"override_commit,omitempty"`
	CustomURL               string   `yaml:"custom_url,omitempty"`
	CustomDescription       string   `yaml:"custom_description,omitempty"`
	UnconfiguredState       string   `yaml:"unconfigured_state,omitempty"`
	Packages                []string `yaml:"packages,omitempty"`
	LocalPackages           []string `yaml:"local_packages,omitempty"`
	RemovedPackages         []string `yaml:"removed_packages,omitempty"`
	ReplacedPackages        []string `yaml:"replaced_packages,omitempty"`
	InitramfsEtc            []string `yaml:"initramfs_etc,omitempty"`
	RegenerateInitramfs     bool     `yaml:"regenerate_initramfs,omitempty"`
	InitramfsArgs           []string `yaml:"initramfs_args,omitempty"`
	Cliwrap                 bool     `yaml:"cliwrap,omitempty"`
	MayRequireLocalAssembly bool     `yaml:"may_require_local_assembly"`
}

// NewStatus summarizes o, read from path.
func NewStatus(path string, o *origin.Origin) Status {
	url, description := o.CustomOrigin()
	return Status{
		Path:                    path,
		Refspec:                 o.Refspec(),
		Kind:                    o.RefspecKind().String(),
		OverrideCommit:          o.OverrideCommit(),
		CustomURL:               url,
		CustomDescription:       description,
		UnconfiguredState:       o.UnconfiguredState(),
		Packages:                o.Packages(),
		LocalPackages:           composeLocal(o.LocalPackages()),
		RemovedPackages:         o.OverridesRemove(),
		ReplacedPackages:        composeLocal(o.OverridesLocalReplace()),
		InitramfsEtc:            o.InitramfsEtcFiles(),
		RegenerateInitramfs:     o.RegenerateInitramfs(),
		InitramfsArgs:           o.InitramfsArgs(),
		Cliwrap:                 o.Cliwrap(),
		MayRequireLocalAssembly: o.MayRequireLocalAssembly(),
	}
}

func composeLocal(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for _, nevra := range slices.Sorted(maps.Keys(m)) {
		out = append(out, domain.ComposeSHA256NEVRA(nevra, m[nevra]))
	}
	return out
}

// Show summarizes the origin at path.
func (a *App) Show(path string) (*Status, error) {
	o, err := a.store.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load origin")
	}
	status := NewStatus(path, o)
	return &status, nil
}

// Status summarizes every origin file below dir matching pattern, in path
// order. Files are loaded concurrently; the first failure cancels the rest.
func (a *App) Status(ctx context.Context, dir, pattern string) ([]Status, error) {
	paths, err := a.store.List(dir, pattern)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list origins")
	}

	statuses := make([]Status, len(paths))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			o, err := a.store.Load(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to load origin"), "path", path)
			}
			statuses[i] = NewStatus(path, o)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(statuses) == 0 {
		a.logger.Warn("no origin files found", "dir", dir, "pattern", pattern)
	}
	return statuses, nil
}
