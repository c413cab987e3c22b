package domain

import "go.trai.ch/zerr"

var (
	// ErrNoRefspec is returned when an origin document has neither origin/refspec
	// nor origin/baserefspec.
	ErrNoRefspec = zerr.New("no origin/refspec or origin/baserefspec in deployment origin")

	// ErrInvalidRefspec is returned when a reference matches neither the branch nor
	// the pinned checksum grammar.
	ErrInvalidRefspec = zerr.New("invalid refspec")

	// ErrInvalidNEVRA is returned when a package identifier cannot be split into
	// name, epoch, version, release and architecture.
	ErrInvalidNEVRA = zerr.New("invalid NEVRA")

	// ErrMalformedPackageSpec is returned when a "sha256:nevra" entry does not decompose.
	ErrMalformedPackageSpec = zerr.New("invalid SHA-256 NEVRA string")

	// ErrPackageAlreadyRequested is returned when adding a package that is already
	// requested, either as a capability or as a local package.
	ErrPackageAlreadyRequested = zerr.New("package already requested")

	// ErrPackageNotRequested is returned when removing a package that is not requested.
	ErrPackageNotRequested = zerr.New("package not requested")

	// ErrOverrideExists is returned when adding an override for a package that
	// already has one of either kind.
	ErrOverrideExists = zerr.New("override already exists")

	// ErrOverrideNotFound is returned when removing an override that does not exist.
	ErrOverrideNotFound = zerr.New("override not found")

	// ErrInvalidSettings is returned when the settings file cannot be used.
	ErrInvalidSettings = zerr.New("invalid settings")
)
