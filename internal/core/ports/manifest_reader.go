package ports

import "go.trai.ch/cratepath/internal/core/domain"

// ManifestReader reads package information from a manifest file on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path.
	Read(path string) (*domain.ManifestInfo, error)
}
