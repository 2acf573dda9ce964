package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by the CLI before the pipeline sees the configuration.
const (
	DefaultMaxWords = 100
	DefaultLanguage = "en"
	DefaultMinWord  = 3
)

// Stoplist represents the stopword list configuration. The pipeline treats
// stopwords as an injected set; nothing is embedded in the binary.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
