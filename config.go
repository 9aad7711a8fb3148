package artex

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds tunable settings loadable from a YAML file.
// Omitted fields keep their defaults, so a config file only needs to name
// the weights it overrides.
type Config struct {
	Scoring ScoringWeights `yaml:"scoring"`
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Scoring: DefaultWeights()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, Errorf(ENOTFOUND, "config file %q not found", path)
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, Errorf(EINVALID, "invalid config file %q: %v", path, err)
	}

	return cfg, nil
}
