// Package manifest reads Cargo.toml files.
package manifest

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/cratepath/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reader implements ports.ManifestReader for Cargo.toml.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

type cargoFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"`
		Edition any    `toml:"edition"`
	} `toml:"package"`
}

// Read parses the [package] section of the Cargo.toml at path.
// Fields inherited from a workspace (`version.workspace = true`) are reported as "workspace".
func (r *Reader) Read(path string) (*domain.ManifestInfo, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from cargo metadata
	if err != nil {
		return nil, errors.Join(domain.ErrManifestRead,
			zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path))
	}

	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, errors.Join(domain.ErrManifestRead,
			zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path))
	}

	return &domain.ManifestInfo{
		Name:    cargo.Package.Name,
		Version: fieldString(cargo.Package.Version),
		Edition: fieldString(cargo.Package.Edition),
	}, nil
}

func fieldString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if inherited, ok := val["workspace"].(bool); ok && inherited {
			return "workspace"
		}
	}
	return ""
}

var _ ports.ManifestReader = (*Reader)(nil)
