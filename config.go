package oneaway

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the file-configurable knobs of the generator and report
type Config struct {
	// Preset names an operator preset (common, mix)
	Preset string `yaml:"preset"`
	// Operators is an explicit operator list, overrides Preset when set
	Operators []string `yaml:"operators"`
	// Dictionary is the word list used for clash detection
	Dictionary string `yaml:"dictionary"`
	// Format is the per-variant report line template
	Format string `yaml:"format"`
}

// DefaultConfig is used when no permutation config file is given
var DefaultConfig = Config{
	Preset:     "common",
	Dictionary: DefaultDictionaryPath,
	Format:     DefaultLineFormat,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
