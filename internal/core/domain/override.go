package domain

// OverrideKind selects which override collection an operation applies to.
type OverrideKind int

const (
	// OverrideRemove drops a package, by name, from the base content.
	OverrideRemove OverrideKind = iota
	// OverrideReplaceLocal replaces a base package with a local one, by NEVRA.
	OverrideReplaceLocal
)

// String returns the keyfile name of the override collection.
func (k OverrideKind) String() string {
	switch k {
	case OverrideRemove:
		return "remove"
	case OverrideReplaceLocal:
		return "replace-local"
	default:
		return "unknown"
	}
}
