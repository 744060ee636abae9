// Package resolver finds the manifest path of a package in cargo metadata.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/cratepath/internal/core/domain"
	"go.trai.ch/cratepath/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver runs a metadata source and searches its output.
// A Resolver holds no per-call state and is safe for concurrent use.
type Resolver struct {
	source    ports.MetadataSource
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a Resolver reading metadata from source.
func New(source ports.MetadataSource, telemetry ports.Telemetry, logger ports.Logger) *Resolver {
	return &Resolver{
		source:    source,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Resolve returns the manifest path of the first package named name.
//
// Every call fetches fresh metadata. Failures are *domain.ResolveError values
// whose Kind identifies the stage that failed; a missing package is reported
// as domain.ErrPackageNotFound, never as an empty path.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	ctx, vertex := r.telemetry.Record(ctx, "resolve "+name)

	path, err := r.resolve(ctx, name)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}
	return path, nil
}

func (r *Resolver) resolve(ctx context.Context, name string) (string, error) {
	md, err := r.fetch(ctx, name)
	if err != nil {
		return "", err
	}

	pkg, ok := md.Find(name)
	if !ok {
		return "", domain.NewResolveError(domain.ErrPackageNotFound, name,
			zerr.With(zerr.New("no package with this name in metadata"), "packages", len(md.Packages)))
	}

	r.logger.Debug(fmt.Sprintf("resolved %s %s to %s", pkg.Name, pkg.Version, pkg.ManifestPath))
	return pkg.ManifestPath, nil
}

// Metadata fetches and decodes the full metadata document.
func (r *Resolver) Metadata(ctx context.Context) (*domain.Metadata, error) {
	ctx, vertex := r.telemetry.Record(ctx, "metadata")

	md, err := r.fetch(ctx, "")
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	return md, nil
}

func (r *Resolver) fetch(ctx context.Context, name string) (*domain.Metadata, error) {
	raw, err := r.source.Fetch(ctx)
	if err != nil {
		return nil, domain.NewResolveError(domain.ErrProcessLaunch, name, err)
	}

	md, err := Decode(raw)
	if err != nil {
		var resolveErr *domain.ResolveError
		if errors.As(err, &resolveErr) {
			resolveErr.Package = name
		}
		return nil, err
	}

	r.logger.Debug(fmt.Sprintf("decoded %d packages (digest %016x)", len(md.Packages), md.Digest))
	return md, nil
}
