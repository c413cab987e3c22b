package origin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/core/origin"
	"go.trai.ch/zerr"
)

func TestAddPackages_MovesRefspecAndBack(t *testing.T) {
	o := mustParse(t, plain)

	changed, err := o.AddPackages([]string{"vim"}, false, false)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, []string{"vim"}, o.Packages())
	assert.True(t, o.MayRequireLocalAssembly())
	ref, ok := o.GetString(origin.SectionOrigin, origin.KeyBaseRefspec)
	require.True(t, ok)
	assert.Equal(t, "myremote:mybranch", ref)
	assert.False(t, hasKey(o, origin.SectionOrigin, origin.KeyRefspec))
	raw, _ := o.GetString(origin.SectionPackages, origin.KeyRequested)
	assert.Equal(t, "vim;", raw)

	changed, err = o.RemovePackages([]string{"vim"}, false)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Empty(t, o.Packages())
	assert.False(t, o.MayRequireLocalAssembly())
	assert.True(t, hasKey(o, origin.SectionOrigin, origin.KeyRefspec))
	assert.False(t, hasKey(o, origin.SectionOrigin, origin.KeyBaseRefspec))
	assert.False(t, hasKey(o, origin.SectionPackages, origin.KeyRequested))
}

func TestAddPackages_Duplicates(t *testing.T) {
	localFoo := sha1 + ":foo-1.0-1.x86_64"

	tests := []struct {
		name    string
		pkgs    []string
		local   bool
		message string
	}{
		{name: "already requested", pkgs: []string{"vim"}, message: "package/capability 'vim' is already requested"},
		{name: "requested in same batch", pkgs: []string{"emacs", "emacs"}, message: "package/capability 'emacs' is already requested"},
		{name: "already layered", pkgs: []string{sha2 + ":foo-1.0-1.x86_64"}, local: true, message: "package 'foo-1.0-1.x86_64' is already layered"},
		{name: "local NEVRA requested as capability", pkgs: []string{"foo-1.0-1.x86_64"}, message: "package 'foo-1.0-1.x86_64' is already layered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := mustParse(t, plain)
			_, err := o.AddPackages([]string{"vim"}, false, false)
			require.NoError(t, err)
			_, err = o.AddPackages([]string{localFoo}, true, false)
			require.NoError(t, err)
			before := snap(o)

			changed, err := o.AddPackages(tt.pkgs, tt.local, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrPackageAlreadyRequested)
			assert.Contains(t, err.Error(), tt.message)
			assert.False(t, changed)
			assert.Equal(t, before, snap(o))
		})
	}
}

func TestAddPackages_AllowExisting(t *testing.T) {
	o := mustParse(t, plain)
	_, err := o.AddPackages([]string{"vim"}, false, false)
	require.NoError(t, err)

	changed, err := o.AddPackages([]string{"vim"}, false, true)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = o.AddPackages([]string{"vim", "htop"}, false, true)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"htop", "vim"}, o.Packages())
}

func TestAddPackages_FailFast(t *testing.T) {
	o := mustParse(t, plain)
	before, err := o.Bytes()
	require.NoError(t, err)

	changed, err := o.AddPackages([]string{sha1 + ":foo-1.0-1.x86_64", "not-a-spec"}, true, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedPackageSpec)
	assert.False(t, changed)

	after, err := o.Bytes()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Empty(t, o.LocalPackages())
}

func TestAddPackages_MalformedMetadata(t *testing.T) {
	o := mustParse(t, plain)

	_, err := o.AddPackages([]string{"deadbeef:foo-1.0-1.x86_64"}, true, false)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error")
	assert.Equal(t, "deadbeef:foo-1.0-1.x86_64", zErr.Metadata()["spec"])
}

func TestRemovePackages(t *testing.T) {
	setup := func(t *testing.T) *origin.Origin {
		t.Helper()
		o := mustParse(t, plain)
		_, err := o.AddPackages([]string{"vim", "htop"}, false, false)
		require.NoError(t, err)
		_, err = o.AddPackages([]string{sha1 + ":foo-1.0-1.x86_64", sha2 + ":bar-2:3.1-4.noarch"}, true, false)
		require.NoError(t, err)
		return o
	}

	tests := []struct {
		name      string
		remove    []string
		packages  []string
		localLeft []string
	}{
		{name: "capability", remove: []string{"vim"}, packages: []string{"htop"}, localLeft: []string{"bar-2:3.1-4.noarch", "foo-1.0-1.x86_64"}},
		{name: "local by NEVRA", remove: []string{"foo-1.0-1.x86_64"}, packages: []string{"htop", "vim"}, localLeft: []string{"bar-2:3.1-4.noarch"}},
		{name: "local by name", remove: []string{"bar"}, packages: []string{"htop", "vim"}, localLeft: []string{"foo-1.0-1.x86_64"}},
		{name: "mixed", remove: []string{"htop", "foo", "bar-2:3.1-4.noarch"}, packages: []string{"vim"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := setup(t)

			changed, err := o.RemovePackages(tt.remove, false)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, tt.packages, o.Packages())

			var left []string
			for nevra := range o.LocalPackages() {
				left = append(left, nevra)
			}
			assert.ElementsMatch(t, tt.localLeft, left)
		})
	}
}

func TestRemovePackages_NameResolvedOnce(t *testing.T) {
	o := mustParse(t, plain)
	_, err := o.AddPackages([]string{sha1 + ":foo-1.0-1.x86_64"}, true, false)
	require.NoError(t, err)

	// The NEVRA removal empties what the name would resolve to.
	_, err = o.RemovePackages([]string{"foo-1.0-1.x86_64", "foo"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPackageNotRequested)
	assert.Len(t, o.LocalPackages(), 1)
}

func TestRemovePackages_RepeatedNameRemovesEachVersion(t *testing.T) {
	o := mustParse(t, plain)
	_, err := o.AddPackages([]string{"vim"}, false, false)
	require.NoError(t, err)
	_, err = o.AddPackages([]string{sha1 + ":foo-1.0-1.x86_64", sha2 + ":foo-2.0-1.x86_64"}, true, false)
	require.NoError(t, err)

	changed, err := o.RemovePackages([]string{"foo"}, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, map[string]string{"foo-2.0-1.x86_64": sha2}, o.LocalPackages())

	o = mustParse(t, plain)
	_, err = o.AddPackages([]string{sha1 + ":foo-1.0-1.x86_64", sha2 + ":foo-2.0-1.x86_64"}, true, false)
	require.NoError(t, err)

	changed, err = o.RemovePackages([]string{"foo", "foo"}, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, o.LocalPackages())
	assert.False(t, hasKey(o, origin.SectionPackages, origin.KeyRequestedLocal))

	// A third occurrence has nothing left to resolve to.
	o = mustParse(t, plain)
	_, err = o.AddPackages([]string{sha1 + ":foo-1.0-1.x86_64", sha2 + ":foo-2.0-1.x86_64"}, true, false)
	require.NoError(t, err)
	_, err = o.RemovePackages([]string{"foo", "foo", "foo"}, false)
	assert.ErrorIs(t, err, domain.ErrPackageNotRequested)
	assert.Len(t, o.LocalPackages(), 2)
}

func TestRemovePackages_Absent(t *testing.T) {
	o := mustParse(t, plain)
	_, err := o.AddPackages([]string{"vim"}, false, false)
	require.NoError(t, err)
	before := snap(o)

	changed, err := o.RemovePackages([]string{"vim", "emacs"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPackageNotRequested)
	assert.Contains(t, err.Error(), "package/capability 'emacs' is not currently requested")
	assert.False(t, changed)
	assert.Equal(t, before, snap(o))

	changed, err = o.RemovePackages([]string{"emacs"}, true)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, snap(o))
}

func TestRemovePackages_EmptiedKeysAreDeleted(t *testing.T) {
	o := mustParse(t, customized)

	_, err := o.RemovePackages([]string{"vim", "htop", "foo"}, false)
	require.NoError(t, err)

	assert.False(t, hasKey(o, origin.SectionPackages, origin.KeyRequested))
	assert.False(t, hasKey(o, origin.SectionPackages, origin.KeyRequestedLocal))
}

func TestRemoveAllPackages(t *testing.T) {
	o := mustParse(t, customized)

	assert.True(t, o.RemoveAllPackages())
	assert.Empty(t, o.Packages())
	assert.Empty(t, o.LocalPackages())
	assert.False(t, hasKey(o, origin.SectionPackages, origin.KeyRequested))
	assert.False(t, hasKey(o, origin.SectionPackages, origin.KeyRequestedLocal))
	// Other customizations keep the base refspec key.
	assert.True(t, hasKey(o, origin.SectionOrigin, origin.KeyBaseRefspec))

	assert.False(t, o.RemoveAllPackages())
}
