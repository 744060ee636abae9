package cargo

import (
	"path/filepath"
	"strings"

	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/cratepath/internal/core/ports"
)

// Factory implements ports.SourceFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New returns a FileSource when cfg names a metadata file and a CommandSource otherwise.
// A relative metadata file is resolved against cfg.WorkingDir. Cargo options
// have no effect on a metadata file and are reported with a warning.
func (f *Factory) New(cfg *domain.Config) ports.MetadataSource {
	if cfg.MetadataFile != "" {
		path := cfg.MetadataFile
		if !filepath.IsAbs(path) && cfg.WorkingDir != "" {
			path = filepath.Join(cfg.WorkingDir, path)
		}
		if ignored := ignoredOptions(cfg); len(ignored) > 0 {
			f.logger.Warn("reading " + path + ", ignoring " + strings.Join(ignored, ", "))
		}
		return NewFileSource(path)
	}
	return NewCommandSource(cfg, f.logger)
}

func ignoredOptions(cfg *domain.Config) []string {
	var ignored []string
	if cfg.Cargo != "" && cfg.Cargo != domain.DefaultCargo {
		ignored = append(ignored, "cargo")
	}
	if cfg.ManifestPath != "" {
		ignored = append(ignored, "manifest-path")
	}
	if cfg.NoDeps {
		ignored = append(ignored, "no-deps")
	}
	if cfg.Offline {
		ignored = append(ignored, "offline")
	}
	return ignored
}

var _ ports.SourceFactory = (*Factory)(nil)
