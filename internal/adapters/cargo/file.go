package cargo

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/cratepath/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileSource implements ports.MetadataSource by reading previously captured
// `cargo metadata` output from disk.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource reading the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

// Fetch returns the file contents.
func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	//nolint:gosec // path is provided by the user
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read metadata file"), "path", s.path)
	}
	return data, nil
}

var _ ports.MetadataSource = (*FileSource)(nil)
