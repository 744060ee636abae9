package domain

// DefaultCargo is the metadata command used when none is configured.
const DefaultCargo = "cargo"

// Config controls how cargo metadata is obtained.
type Config struct {
	// Cargo is the cargo executable name or path.
	Cargo string

	// ManifestPath is passed as --manifest-path when set.
	ManifestPath string

	// MetadataFile, when set, is read instead of running cargo.
	MetadataFile string

	// NoDeps adds --no-deps.
	NoDeps bool

	// Offline adds --offline.
	Offline bool

	// WorkingDir is the directory cargo runs in. Empty means inherited.
	WorkingDir string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{Cargo: DefaultCargo}
}

// MetadataArgs returns the arguments passed to the cargo executable.
func (c *Config) MetadataArgs() []string {
	args := []string{"metadata", "--format-version=1"}
	if c.ManifestPath != "" {
		args = append(args, "--manifest-path", c.ManifestPath)
	}
	if c.NoDeps {
		args = append(args, "--no-deps")
	}
	if c.Offline {
		args = append(args, "--offline")
	}
	return args
}
