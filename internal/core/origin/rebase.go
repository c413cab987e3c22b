package origin

import (
	"go.trai.ch/origin/internal/core/domain"
)

// Rebase switches the origin to track ref. Any override commit and custom
// origin are dropped. If ref cannot be classified the origin is left
// unchanged.
func (o *Origin) Rebase(ref string) error {
	return o.RebaseCustom(ref, "", "")
}

// RebaseCustom switches the origin to ref, recording a custom origin when url
// is non-empty. url and description are set together or not at all, and a
// custom origin is only valid for a pinned ref. Violations panic.
func (o *Origin) RebaseCustom(ref, url, description string) error {
	if (url == "") != (description == "") {
		panic("origin: custom URL and description must be set together")
	}

	classified, err := domain.ClassifyRefspec(ref)
	if err != nil {
		return err
	}
	if url != "" && classified.Kind != domain.RefspecPinned {
		panic("origin: custom origin requires a pinned refspec")
	}

	// A pin taken against the old reference must not follow us to the new one.
	o.SetOverrideCommit("", "")

	o.refspecKind = classified.Kind
	o.refspec = classified.Value

	if url == "" {
		o.kf.RemoveKey(SectionOrigin, KeyCustomURL)
		o.kf.RemoveKey(SectionOrigin, KeyCustomDescription)
	} else {
		o.kf.SetString(SectionOrigin, KeyCustomURL, url)
		o.kf.SetString(SectionOrigin, KeyCustomDescription, description)
	}

	o.syncBaseRefspec()
	return nil
}
