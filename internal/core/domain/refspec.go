// Package domain contains the value types and rules shared by the origin model:
// refspec classification, package identifiers and override kinds.
package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// RefspecKind classifies the upstream reference an origin tracks.
type RefspecKind int

const (
	// RefspecBranch is a branch-like reference ("remote:ref" or "ref") that moves
	// as the remote publishes new commits.
	RefspecBranch RefspecKind = iota
	// RefspecPinned is a bare commit checksum.
	RefspecPinned
)

// String returns the lower-case name of the kind.
func (k RefspecKind) String() string {
	switch k {
	case RefspecBranch:
		return "branch"
	case RefspecPinned:
		return "pinned"
	default:
		return "unknown"
	}
}

// BranchPrefix is the optional scheme accepted in front of a branch reference.
// It is never stored.
const BranchPrefix = "ostree://"

// ChecksumLength is the length of a hex SHA-256 digest.
const ChecksumLength = 64

var refspecPattern = regexp.MustCompile(
	`^(?:[\w][-._\w]*:)?[\w][-._\w]*(?:/[\w][-._\w]*)*$`,
)

// Refspec is a classified reference with any kind prefix removed.
type Refspec struct {
	Kind  RefspecKind
	Value string
}

// String returns the canonical form, which is just the value.
func (r Refspec) String() string {
	return r.Value
}

// ClassifyRefspec decides whether ref is a pinned checksum or a branch and
// returns it without prefix.
func ClassifyRefspec(ref string) (Refspec, error) {
	if rest, ok := strings.CutPrefix(ref, BranchPrefix); ok {
		if !refspecPattern.MatchString(rest) {
			return Refspec{}, zerr.With(zerr.Wrap(ErrInvalidRefspec, "malformed branch reference"), "refspec", ref)
		}
		return Refspec{Kind: RefspecBranch, Value: rest}, nil
	}

	if IsChecksum(ref) {
		return Refspec{Kind: RefspecPinned, Value: ref}, nil
	}

	if !refspecPattern.MatchString(ref) {
		return Refspec{}, zerr.With(zerr.Wrap(ErrInvalidRefspec, "reference is neither a branch nor a checksum"), "refspec", ref)
	}
	return Refspec{Kind: RefspecBranch, Value: ref}, nil
}

// IsChecksum reports whether s is a lower-case hex SHA-256 digest.
func IsChecksum(s string) bool {
	if len(s) != ChecksumLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
