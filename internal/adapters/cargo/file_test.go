package cargo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cratepath/internal/adapters/cargo"
	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/cratepath/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(metadataJSON), 0o600))

	out, err := cargo.NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, metadataJSON, string(out))
}

func TestFileSource_Fetch_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := cargo.NewFileSource(path).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read metadata file")
}

func TestFactory_New(t *testing.T) {
	factory := cargo.NewFactory(newLogger(t))

	t.Run("command source by default", func(t *testing.T) {
		src := factory.New(domain.DefaultConfig())
		assert.IsType(t, &cargo.CommandSource{}, src)
	})

	t.Run("file source when metadata file set", func(t *testing.T) {
		src := factory.New(&domain.Config{MetadataFile: "/tmp/metadata.json"})
		assert.IsType(t, &cargo.FileSource{}, src)
	})

	t.Run("relative metadata file resolved against working dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "metadata.json"), []byte(metadataJSON), 0o600))

		src := factory.New(&domain.Config{MetadataFile: "metadata.json", WorkingDir: dir})
		out, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, metadataJSON, string(out))
	})
}

func TestFactory_New_WarnsAboutIgnoredOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	lg := mocks.NewMockLogger(ctrl)
	lg.EXPECT().Warn("reading /tmp/metadata.json, ignoring manifest-path, offline").Times(1)

	src := cargo.NewFactory(lg).New(&domain.Config{
		Cargo:        domain.DefaultCargo,
		ManifestPath: "/work/Cargo.toml",
		MetadataFile: "/tmp/metadata.json",
		Offline:      true,
	})
	assert.IsType(t, &cargo.FileSource{}, src)
}

func TestFactory_New_NoWarningForCommandSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	lg := mocks.NewMockLogger(ctrl)

	// No Warn expectation: cargo options apply to the command source.
	src := cargo.NewFactory(lg).New(&domain.Config{
		Cargo:   "/opt/cargo",
		NoDeps:  true,
		Offline: true,
	})
	assert.IsType(t, &cargo.CommandSource{}, src)
}
