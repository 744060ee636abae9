// Package app implements the application layer for cratepath.
package app

import (
	"context"
	"runtime"

	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/cratepath/internal/core/ports"
	"go.trai.ch/cratepath/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sources      ports.SourceFactory
	manifests    ports.ManifestReader
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sources ports.SourceFactory,
	manifests ports.ManifestReader,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		sources:      sources,
		manifests:    manifests,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Options holds command line overrides for the loaded configuration.
// Zero values leave the configuration untouched.
type Options struct {
	Dir          string
	Cargo        string
	ManifestPath string
	MetadataFile string
	NoDeps       bool
	Offline      bool
}

// Description is the result of App.Describe.
type Description struct {
	domain.Resolution
	Manifest *domain.ManifestInfo
}

// Resolve returns the manifest path of every named package, in the order given.
//
// Each name is an independent resolution that runs cargo on its own. The first
// failure cancels the remaining resolutions and is returned. Cargo processes
// in one workspace wait on cargo's package cache lock, so in practice the
// resolutions mostly run one after another.
func (a *App) Resolve(ctx context.Context, names []string, opts Options) ([]domain.Resolution, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	r, err := a.newResolver(opts)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Resolution, len(names))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, name := range names {
		g.Go(func() error {
			path, err := r.Resolve(groupCtx, name)
			if err != nil {
				return err
			}
			results[i] = domain.Resolution{Name: name, ManifestPath: path}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// List returns every package reported by cargo metadata in emission order.
func (a *App) List(ctx context.Context, opts Options) ([]domain.Package, error) {
	r, err := a.newResolver(opts)
	if err != nil {
		return nil, err
	}

	md, err := r.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	return md.Packages, nil
}

// Describe resolves name and reads the package section of its manifest.
func (a *App) Describe(ctx context.Context, name string, opts Options) (*Description, error) {
	r, err := a.newResolver(opts)
	if err != nil {
		return nil, err
	}

	path, err := r.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	info, err := a.manifests.Read(path)
	if err != nil {
		return nil, err
	}

	return &Description{
		Resolution: domain.Resolution{Name: name, ManifestPath: path},
		Manifest:   info,
	}, nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) newResolver(opts Options) (*resolver.Resolver, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return resolver.New(a.sources.New(cfg), a.telemetry, a.logger), nil
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	applyOptions(cfg, opts)
	return cfg, nil
}

func applyOptions(cfg *domain.Config, opts Options) {
	if opts.Cargo != "" {
		cfg.Cargo = opts.Cargo
	}
	if opts.ManifestPath != "" {
		cfg.ManifestPath = opts.ManifestPath
	}
	if opts.MetadataFile != "" {
		cfg.MetadataFile = opts.MetadataFile
	}
	if opts.NoDeps {
		cfg.NoDeps = true
	}
	if opts.Offline {
		cfg.Offline = true
	}
}
