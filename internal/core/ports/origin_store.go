package ports

import "go.trai.ch/origin/internal/core/origin"

// OriginStore reads and writes origin documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=origin_store.go -destination=mocks/mock_origin_store.go -package=mocks
type OriginStore interface {
	// Load parses the origin file at path.
	Load(path string) (*origin.Origin, error)

	// Save writes o to path. It reports false when the file already held
	// exactly this content and was left untouched.
	Save(path string, o *origin.Origin) (bool, error)

	// List returns the files under dir whose base name matches pattern, sorted.
	List(dir, pattern string) ([]string, error)
}
