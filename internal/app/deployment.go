package app

import (
	"strings"

	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/core/origin"
	"go.trai.ch/zerr"
)

// RebaseOptions configures Rebase.
type RebaseOptions struct {
	// CustomURL records where a pinned commit came from.
	CustomURL string
	// CustomDescription is a human readable name for CustomURL.
	CustomDescription string
}

// Rebase switches the origin at path to track ref.
func (a *App) Rebase(path, ref string, opts RebaseOptions) (bool, error) {
	if (opts.CustomURL == "") != (opts.CustomDescription == "") {
		return false, zerr.New("a custom origin needs both a URL and a description")
	}

	return a.edit(path, func(o *origin.Origin) (bool, error) {
		if opts.CustomURL != "" {
			// Check before RebaseCustom, which treats a branch here as a bug.
			classified, err := domain.ClassifyRefspec(ref)
			if err != nil {
				return false, err
			}
			if classified.Kind != domain.RefspecPinned {
				return false, zerr.With(zerr.Wrap(domain.ErrInvalidRefspec,
					"a custom origin requires a pinned checksum"), "refspec", ref)
			}
		}

		if err := o.RebaseCustom(ref, opts.CustomURL, opts.CustomDescription); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Pin overrides the tracked reference with checksum. version, when not empty,
// is recorded next to it for display.
func (a *App) Pin(path, checksum, version string) (bool, error) {
	if !domain.IsChecksum(checksum) {
		return false, zerr.With(zerr.Wrap(domain.ErrInvalidRefspec,
			"override commit must be a SHA-256 checksum"), "checksum", checksum)
	}

	return a.edit(path, func(o *origin.Origin) (bool, error) {
		if o.OverrideCommit() == checksum && version == "" {
			return false, nil
		}
		o.SetOverrideCommit(checksum, version)
		return true, nil
	})
}

// Unpin drops the override commit.
func (a *App) Unpin(path string) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		if o.OverrideCommit() == "" {
			return false, nil
		}
		o.SetOverrideCommit("", "")
		return true, nil
	})
}

// Initramfs turns client-side initramfs regeneration on or off.
func (a *App) Initramfs(path string, enable bool, args []string) (bool, error) {
	return a.edit(path, always(func(o *origin.Origin) {
		o.SetRegenerateInitramfs(enable, args)
	}))
}

// InitramfsEtcOptions configures InitramfsEtc.
type InitramfsEtcOptions struct {
	Track      []string
	Untrack    []string
	UntrackAll bool
}

// InitramfsEtc changes the set of /etc files included in the initramfs.
// Untracking is applied before tracking.
func (a *App) InitramfsEtc(path string, opts InitramfsEtcOptions) (bool, error) {
	for _, p := range opts.Track {
		if !isEtcPath(p) {
			return false, zerr.With(zerr.New("only files in /etc can be tracked"), "path", p)
		}
	}

	return a.edit(path, func(o *origin.Origin) (bool, error) {
		changed := false
		if opts.UntrackAll {
			changed = o.UntrackAllInitramfsEtc()
		}
		if o.UntrackInitramfsEtc(opts.Untrack) {
			changed = true
		}
		if o.TrackInitramfsEtc(opts.Track) {
			changed = true
		}
		return changed, nil
	})
}

func isEtcPath(p string) bool {
	return strings.HasPrefix(p, "/etc/") && len(p) > len("/etc/")
}

// Cliwrap turns CLI wrapping on or off.
func (a *App) Cliwrap(path string, enable bool) (bool, error) {
	return a.edit(path, func(o *origin.Origin) (bool, error) {
		if o.Cliwrap() == enable {
			return false, nil
		}
		o.SetCliwrap(enable)
		return true, nil
	})
}

// Seed writes the origin at src, minus its transient state, to dst as the
// origin of a new deployment.
func (a *App) Seed(src, dst string) error {
	o, err := a.store.Load(src)
	if err != nil {
		return zerr.Wrap(err, "failed to load origin")
	}

	seeded := o.Dup()
	seeded.RemoveTransientState()

	written, err := a.store.Save(dst, seeded)
	if err != nil {
		return zerr.Wrap(err, "failed to save origin")
	}
	a.logger.Info("origin seeded", "from", src, "to", dst, "written", written)
	return nil
}
