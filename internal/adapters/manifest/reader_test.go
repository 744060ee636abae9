package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cratepath/internal/adapters/manifest"
	"go.trai.ch/cratepath/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.ManifestInfo
	}{
		{
			name: "plain package",
			content: `[package]
name = "serde"
version = "1.0.210"
edition = "2018"

[dependencies]
serde_derive = { version = "=1.0.210", optional = true }
`,
			want: domain.ManifestInfo{Name: "serde", Version: "1.0.210", Edition: "2018"},
		},
		{
			name: "workspace inherited fields",
			content: `[package]
name = "member"
version.workspace = true
edition.workspace = true
`,
			want: domain.ManifestInfo{Name: "member", Version: "workspace", Edition: "workspace"},
		},
		{
			name: "virtual manifest",
			content: `[workspace]
members = ["a", "b"]
`,
			want: domain.ManifestInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := manifest.NewReader().Read(writeManifest(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, &tt.want, info)
		})
	}
}

func TestReader_Read_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := manifest.NewReader().Read(filepath.Join(t.TempDir(), "Cargo.toml"))
		require.ErrorIs(t, err, domain.ErrManifestRead)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := manifest.NewReader().Read(writeManifest(t, "[package\nname = "))
		require.ErrorIs(t, err, domain.ErrManifestRead)
		assert.Contains(t, err.Error(), "failed to parse manifest")
	})
}
