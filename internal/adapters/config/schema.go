package config

// File is the structure of requiregen.yaml.
type File struct {
	Version   string   `yaml:"version"`
	Binary    string   `yaml:"binary"`
	Shell     string   `yaml:"shell"`
	Policy    string   `yaml:"policy"`
	ExtraArgs []string `yaml:"extraArgs"`
	Output    string   `yaml:"output"`
}

// SupportedVersion is the only configuration version understood by the loader.
const SupportedVersion = "1"
