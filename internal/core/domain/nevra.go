package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// NEVRA is a fully qualified package identifier:
// name-[epoch:]version-release.arch.
type NEVRA struct {
	Name    string
	Epoch   uint64
	Version string
	Release string
	Arch    string
}

// String formats the identifier, omitting a zero epoch.
func (n NEVRA) String() string {
	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteByte('-')
	if n.Epoch != 0 {
		b.WriteString(strconv.FormatUint(n.Epoch, 10))
		b.WriteByte(':')
	}
	b.WriteString(n.Version)
	b.WriteByte('-')
	b.WriteString(n.Release)
	b.WriteByte('.')
	b.WriteString(n.Arch)
	return b.String()
}

// ParseNEVRA splits s from the right: arch after the last '.', release after
// the last '-', version (with optional "epoch:") after the next '-', and the
// remainder is the name.
func ParseNEVRA(s string) (NEVRA, error) {
	invalid := func(reason string) (NEVRA, error) {
		return NEVRA{}, zerr.With(zerr.Wrap(ErrInvalidNEVRA, reason), "nevra", s)
	}

	dot := strings.LastIndexByte(s, '.')
	if dot < 0 || dot == len(s)-1 {
		return invalid("missing architecture")
	}
	arch := s[dot+1:]
	rest := s[:dot]

	dash := strings.LastIndexByte(rest, '-')
	if dash < 0 || dash == len(rest)-1 {
		return invalid("missing release")
	}
	release := rest[dash+1:]
	rest = rest[:dash]

	dash = strings.LastIndexByte(rest, '-')
	if dash <= 0 || dash == len(rest)-1 {
		return invalid("missing name or version")
	}
	name := rest[:dash]
	evr := rest[dash+1:]

	var epoch uint64
	version := evr
	if e, v, ok := strings.Cut(evr, ":"); ok {
		n, err := strconv.ParseUint(e, 10, 64)
		if err != nil || v == "" {
			return invalid("malformed epoch")
		}
		epoch = n
		version = v
	}
	if strings.ContainsAny(version, ":") {
		return invalid("malformed version")
	}

	return NEVRA{
		Name:    name,
		Epoch:   epoch,
		Version: version,
		Release: release,
		Arch:    arch,
	}, nil
}

// DecomposeSHA256NEVRA splits a "<sha256>:<nevra>" entry into its NEVRA and
// digest. The NEVRA must itself parse.
func DecomposeSHA256NEVRA(spec string) (nevra, sha256 string, err error) {
	digest, rest, ok := strings.Cut(spec, ":")
	if !ok || !IsChecksum(digest) {
		return "", "", zerr.With(zerr.Wrap(ErrMalformedPackageSpec, "expected <sha256>:<nevra>"), "spec", spec)
	}
	if _, err := ParseNEVRA(rest); err != nil {
		return "", "", zerr.With(zerr.Wrap(ErrMalformedPackageSpec, err.Error()), "spec", spec)
	}
	return rest, digest, nil
}

// ComposeSHA256NEVRA is the inverse of DecomposeSHA256NEVRA.
func ComposeSHA256NEVRA(nevra, sha256 string) string {
	return sha256 + ":" + nevra
}

// PackageName returns the name part of a NEVRA string.
func PackageName(nevra string) (string, error) {
	n, err := ParseNEVRA(nevra)
	if err != nil {
		return "", err
	}
	return n.Name, nil
}
