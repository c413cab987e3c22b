package origin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/core/origin"
)

func TestRebase(t *testing.T) {
	o := mustParse(t, plain)
	o.SetOverrideCommit(pin, "40.1")

	require.NoError(t, o.Rebase("ostree://fedora:fedora/41/x86_64/silverblue"))

	assert.Equal(t, domain.RefspecBranch, o.RefspecKind())
	assert.Equal(t, "fedora:fedora/41/x86_64/silverblue", o.Refspec())
	assert.Empty(t, o.OverrideCommit())
	assert.False(t, hasKey(o, origin.SectionOrigin, origin.KeyOverrideCommit))

	ref, ok := o.GetString(origin.SectionOrigin, origin.KeyRefspec)
	require.True(t, ok)
	assert.Equal(t, "fedora:fedora/41/x86_64/silverblue", ref)
}

func TestRebase_KeepsBaseRefspecKey(t *testing.T) {
	o := mustParse(t, customized)

	require.NoError(t, o.Rebase("fedora:fedora/41/x86_64/silverblue"))

	ref, ok := o.GetString(origin.SectionOrigin, origin.KeyBaseRefspec)
	require.True(t, ok)
	assert.Equal(t, "fedora:fedora/41/x86_64/silverblue", ref)
	assert.False(t, hasKey(o, origin.SectionOrigin, origin.KeyRefspec))
	assert.Equal(t, []string{"htop", "vim"}, o.Packages())
}

func TestRebase_InvalidLeavesOriginUnchanged(t *testing.T) {
	o := mustParse(t, customized)
	before, err := o.Bytes()
	require.NoError(t, err)

	err = o.Rebase("not a ref")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRefspec)

	after, err := o.Bytes()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Equal(t, pin, o.OverrideCommit())
}

func TestRebaseCustom(t *testing.T) {
	o := mustParse(t, plain)
	o.SetOverrideCommit(pin, "40.1")
	target := "fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210"

	require.NoError(t, o.RebaseCustom(target, "https://example.com/builds/42", "Build 42"))

	assert.Equal(t, domain.RefspecPinned, o.RefspecKind())
	assert.Equal(t, target, o.Refspec())
	assert.Empty(t, o.OverrideCommit())
	url, desc := o.CustomOrigin()
	assert.Equal(t, "https://example.com/builds/42", url)
	assert.Equal(t, "Build 42", desc)

	require.NoError(t, o.RebaseCustom(target, "https://example.com/builds/43", "Build 43"))
	url, desc = o.CustomOrigin()
	assert.Equal(t, "https://example.com/builds/43", url)
	assert.Equal(t, "Build 43", desc)

	// A plain rebase clears the custom origin.
	require.NoError(t, o.Rebase("myremote:mybranch"))
	url, desc = o.CustomOrigin()
	assert.Empty(t, url)
	assert.Empty(t, desc)
	assert.False(t, hasKey(o, origin.SectionOrigin, origin.KeyCustomURL))
	assert.False(t, hasKey(o, origin.SectionOrigin, origin.KeyCustomDescription))
}

func TestRebaseCustom_ContractViolationsPanic(t *testing.T) {
	o := mustParse(t, plain)

	assert.Panics(t, func() {
		_ = o.RebaseCustom("myremote:mybranch", "https://example.com", "branch")
	})
	assert.Panics(t, func() {
		_ = o.RebaseCustom(pin, "", "description only")
	})
	assert.Panics(t, func() {
		_ = o.RebaseCustom(pin, "https://example.com", "")
	})
	assert.Equal(t, "myremote:mybranch", o.Refspec())
}

func TestCustomOrigin_EmptyValuesReadAsAbsent(t *testing.T) {
	o := mustParse(t, "[origin]\nrefspec="+pin+"\ncustom-url=\ncustom-description=orphan\n")

	url, desc := o.CustomOrigin()
	assert.Empty(t, url)
	assert.Empty(t, desc)
}
