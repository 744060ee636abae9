package config

// Configfile represents the structure of the cratepath.yaml configuration file.
type Configfile struct {
	Cargo        string `yaml:"cargo"`
	ManifestPath string `yaml:"manifestPath"`
	MetadataFile string `yaml:"metadataFile"`
	NoDeps       bool   `yaml:"noDeps"`
	Offline      bool   `yaml:"offline"`
}
