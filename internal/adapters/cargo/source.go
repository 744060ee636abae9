// Package cargo implements metadata sources backed by the cargo CLI.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/cratepath/internal/core/ports"
	"go.trai.ch/zerr"
)

// CommandSource implements ports.MetadataSource by running `cargo metadata`.
type CommandSource struct {
	cargo  string
	args   []string
	dir    string
	logger ports.Logger
}

// NewCommandSource creates a CommandSource for the given configuration.
func NewCommandSource(cfg *domain.Config, logger ports.Logger) *CommandSource {
	cargo := cfg.Cargo
	if cargo == "" {
		cargo = domain.DefaultCargo
	}
	return &CommandSource{
		cargo:  cargo,
		args:   cfg.MetadataArgs(),
		dir:    cfg.WorkingDir,
		logger: logger,
	}
}

// Fetch runs cargo and returns its standard output.
// The call blocks until cargo exits. Standard error is captured for diagnostics
// and mirrored to the vertex carried by ctx, if any.
func (s *CommandSource) Fetch(ctx context.Context) ([]byte, error) {
	//nolint:gosec // cargo binary and arguments come from trusted configuration
	cmd := exec.CommandContext(ctx, s.cargo, s.args...)
	if s.dir != "" {
		cmd.Dir = s.dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stderr = io.MultiWriter(&stderr, vertex.Stderr())
	}

	s.logger.Debug("running " + s.commandLine())

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "cargo metadata failed"), "command", s.commandLine())
		err = zerr.With(err, "stderr", strings.TrimSpace(stderr.String()))
		return nil, zerr.With(err, "exit_code", exitCode)
	}

	return stdout.Bytes(), nil
}

func (s *CommandSource) commandLine() string {
	return strings.Join(append([]string{s.cargo}, s.args...), " ")
}

var _ ports.MetadataSource = (*CommandSource)(nil)
