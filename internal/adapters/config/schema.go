package config

// FileName is the name of the configuration file looked up from the working directory upwards.
const FileName = "deco.yaml"

// Decofile represents the structure of the deco.yaml configuration file.
type Decofile struct {
	Version     string    `yaml:"version"`
	Cache       CacheDTO  `yaml:"cache"`
	Force       *bool     `yaml:"force"`
	Extensions  string    `yaml:"extensions"`
	Tsconfig    string    `yaml:"tsconfig"`
	Engine      EngineDTO `yaml:"engine"`
	Parallelism int       `yaml:"parallelism"`
}

// CacheDTO represents the result cache section.
type CacheDTO struct {
	Enabled *bool `yaml:"enabled"`
	// Size is either a number of megabytes or a byte size such as "64MB" or "512KiB".
	Size string `yaml:"size"`
}

// EngineDTO represents the transformation engine section.
type EngineDTO struct {
	Kind    string   `yaml:"kind"`
	Command []string `yaml:"command"`
}
