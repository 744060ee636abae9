// Package config provides the configuration loader for cratepath.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/cratepath/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the name of the configuration file looked up in the working directory.
const Filename = "cratepath.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a new Loader looking for Filename.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Filename: Filename,
		logger:   logger,
	}
}

// Load reads the configuration from the given working directory.
// When no configuration file exists the default configuration is returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no " + l.Filename + " found in " + cwd + ", using defaults")
		cfg = domain.DefaultConfig()
		err = nil
	}
	if err != nil {
		return nil, err
	}

	cfg.WorkingDir = cwd
	return cfg, nil
}

// Load reads a configuration file from the given path and returns a domain.Config.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrConfigInvalid,
			zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path))
	}

	var file Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfigInvalid,
			zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path))
	}

	cfg := domain.DefaultConfig()
	if file.Cargo != "" {
		cfg.Cargo = file.Cargo
	}
	cfg.ManifestPath = file.ManifestPath
	cfg.MetadataFile = file.MetadataFile
	cfg.NoDeps = file.NoDeps
	cfg.Offline = file.Offline

	return cfg, nil
}

var _ ports.ConfigLoader = (*Loader)(nil)
