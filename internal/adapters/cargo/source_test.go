package cargo_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cratepath/internal/adapters/cargo"
	"go.trai.ch/cratepath/internal/adapters/logger"
	"go.trai.ch/cratepath/internal/adapters/telemetry/progrock"
	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/cratepath/internal/core/ports"
	"go.trai.ch/cratepath/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const metadataJSON = `{"packages":[{"name":"serde","version":"1.0.210","id":"serde 1.0.210","manifest_path":"/a/Cargo.toml"}]}`

// writeFakeCargo writes an executable shell script standing in for cargo.
func writeFakeCargo(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "cargo")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o700)) //nolint:gosec // test script must be executable
	return path
}

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	lg := mocks.NewMockLogger(ctrl)
	lg.EXPECT().Debug(gomock.Any()).AnyTimes()
	return lg
}

func TestCommandSource_Fetch_Success(t *testing.T) {
	tmpDir := t.TempDir()
	bin := writeFakeCargo(t, tmpDir, "printf '%s' '"+metadataJSON+"'")

	src := cargo.NewCommandSource(&domain.Config{Cargo: bin}, newLogger(t))

	out, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, metadataJSON, string(out))
}

func TestCommandSource_Fetch_Arguments(t *testing.T) {
	tmpDir := t.TempDir()
	workDir := t.TempDir()
	bin := writeFakeCargo(t, tmpDir, `echo "$@" > args.txt; pwd > pwd.txt; echo '{"packages":[]}'`)

	tests := []struct {
		name     string
		cfg      domain.Config
		wantArgs string
	}{
		{
			name:     "default arguments",
			cfg:      domain.Config{Cargo: bin, WorkingDir: workDir},
			wantArgs: "metadata --format-version=1",
		},
		{
			name: "optional flags",
			cfg: domain.Config{
				Cargo:        bin,
				WorkingDir:   workDir,
				ManifestPath: "/ws/Cargo.toml",
				NoDeps:       true,
				Offline:      true,
			},
			wantArgs: "metadata --format-version=1 --manifest-path /ws/Cargo.toml --no-deps --offline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := cargo.NewCommandSource(&tt.cfg, newLogger(t))

			_, err := src.Fetch(context.Background())
			require.NoError(t, err)

			args, err := os.ReadFile(filepath.Join(workDir, "args.txt"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, strings.TrimSpace(string(args)))

			pwd, err := os.ReadFile(filepath.Join(workDir, "pwd.txt"))
			require.NoError(t, err)
			wantDir, err := filepath.EvalSymlinks(workDir)
			require.NoError(t, err)
			gotDir, err := filepath.EvalSymlinks(strings.TrimSpace(string(pwd)))
			require.NoError(t, err)
			assert.Equal(t, wantDir, gotDir)
		})
	}
}

func TestCommandSource_Fetch_NonZeroExit(t *testing.T) {
	tmpDir := t.TempDir()
	bin := writeFakeCargo(t, tmpDir,
		"echo 'error: could not find `Cargo.toml` in `/tmp` or any parent directory' >&2; exit 101")

	src := cargo.NewCommandSource(&domain.Config{Cargo: bin}, newLogger(t))

	out, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "cargo metadata failed")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, 101, zErr.Metadata()["exit_code"])
}

func TestCommandSource_Fetch_MissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-cargo")

	src := cargo.NewCommandSource(&domain.Config{Cargo: missing}, newLogger(t))

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cargo metadata failed")
}

func TestCommandSource_Fetch_NotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cargo")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho {}\n"), 0o600))

	src := cargo.NewCommandSource(&domain.Config{Cargo: path}, newLogger(t))

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}

func TestCommandSource_Fetch_StderrToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	vertex := mocks.NewMockVertex(ctrl)

	var stderrBuf bytes.Buffer
	vertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	tmpDir := t.TempDir()
	bin := writeFakeCargo(t, tmpDir, "echo '    Updating crates.io index' >&2; echo '{\"packages\":[]}'")

	src := cargo.NewCommandSource(&domain.Config{Cargo: bin}, newLogger(t))

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	out, err := src.Fetch(ctx)
	require.NoError(t, err)

	assert.Contains(t, stderrBuf.String(), "Updating crates.io index")
	assert.NotContains(t, string(out), "Updating")
}

func TestCommandSource_Fetch_StderrLoggedWhenVerbose(t *testing.T) {
	var logBuf bytes.Buffer
	lg := logger.NewWithWriter(&logBuf)
	lg.SetVerbose(true)
	recorder := progrock.New(lg)

	tmpDir := t.TempDir()
	bin := writeFakeCargo(t, tmpDir, "echo '    Blocking waiting for file lock on package cache' >&2; echo '{\"packages\":[]}'")

	src := cargo.NewCommandSource(&domain.Config{Cargo: bin}, lg)

	ctx, vertex := recorder.Record(context.Background(), "resolve serde")
	_, err := src.Fetch(ctx)
	vertex.Complete(err)
	require.NoError(t, err)
	require.NoError(t, recorder.Close())

	assert.Contains(t, logBuf.String(), "resolve serde:     Blocking waiting for file lock on package cache")
	assert.Contains(t, logBuf.String(), "resolve serde: done")
}

func TestCommandSource_Fetch_Canceled(t *testing.T) {
	tmpDir := t.TempDir()
	bin := writeFakeCargo(t, tmpDir, "sleep 5")

	src := cargo.NewCommandSource(&domain.Config{Cargo: bin}, newLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Fetch(ctx)
	require.Error(t, err)
}
