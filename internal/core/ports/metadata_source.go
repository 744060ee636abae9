// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cratepath/internal/core/domain"
)

// MetadataSource produces raw cargo metadata output.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata_source.go -destination=mocks/mock_metadata_source.go -package=mocks
type MetadataSource interface {
	// Fetch returns the raw bytes of a `cargo metadata --format-version=1` document.
	// It blocks until the underlying producer has finished.
	Fetch(ctx context.Context) ([]byte, error)
}

// SourceFactory builds a MetadataSource for a configuration.
type SourceFactory interface {
	// New returns the source described by cfg.
	New(cfg *domain.Config) MetadataSource
}
