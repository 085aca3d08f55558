package filter

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the file form of a Definition:
//
//	fields: [name, age]
//	casts:
//	  age: integer
//	exclude: [page]
//	with_deletions: false
type Config struct {
	Fields        []string          `yaml:"fields"`
	Casts         map[string]string `yaml:"casts"`
	Exclude       []string          `yaml:"exclude"`
	WithDeletions bool              `yaml:"with_deletions"`
}

// LoadConfig rejects unknown keys. An empty document is an empty Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("filter: load config: %w", err)
	}
	return cfg, nil
}
