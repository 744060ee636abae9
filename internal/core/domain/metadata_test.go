package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cratepath/internal/core/domain"
)

func TestMetadata_Find(t *testing.T) {
	md := &domain.Metadata{Packages: []domain.Package{
		{Name: "serde_json", ManifestPath: "/b/Cargo.toml"},
		{Name: "serde", ManifestPath: "/a/Cargo.toml"},
		{Name: "serde", ManifestPath: "/c/Cargo.toml"},
	}}

	tests := []struct {
		name     string
		target   string
		wantPath string
		wantOK   bool
	}{
		{name: "exact match ignores prefix siblings", target: "serde", wantPath: "/a/Cargo.toml", wantOK: true},
		{name: "longer name", target: "serde_json", wantPath: "/b/Cargo.toml", wantOK: true},
		{name: "case sensitive", target: "Serde", wantOK: false},
		{name: "prefix is not a match", target: "serd", wantOK: false},
		{name: "empty name", target: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, ok := md.Find(tt.target)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, pkg.ManifestPath)
		})
	}
}

func TestMetadata_Find_Empty(t *testing.T) {
	md := &domain.Metadata{}

	_, ok := md.Find("serde")
	assert.False(t, ok)
}
