// Package domain contains the core types of cratepath.
package domain

// Package is one node of the dependency graph reported by cargo metadata.
type Package struct {
	// Name is the package name (e.g., "serde").
	Name string

	// Version is the semver version string. Not used for lookup.
	Version string

	// ID is the opaque package identifier assigned by cargo. Not used for lookup.
	ID string

	// ManifestPath is the absolute path to the package's Cargo.toml.
	ManifestPath string
}

// Metadata is the decoded cargo metadata document.
// It is built per invocation and must not be modified after decoding.
type Metadata struct {
	// Packages holds the package records in the order cargo emitted them.
	Packages []Package

	// Digest is the xxhash of the raw metadata output.
	Digest uint64
}

// Find returns the first package whose name equals name exactly.
//
// Cargo may report several packages with the same name (for example two
// versions of one crate); only the first in emission order is returned.
func (m *Metadata) Find(name string) (Package, bool) {
	for _, pkg := range m.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return Package{}, false
}

// Resolution pairs a requested package name with its resolved manifest path.
type Resolution struct {
	Name         string
	ManifestPath string
}

// ManifestInfo holds the [package] fields read from a Cargo.toml.
type ManifestInfo struct {
	Name    string
	Version string
	Edition string
}
