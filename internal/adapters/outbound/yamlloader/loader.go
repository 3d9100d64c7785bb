package yamlloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/groundtrack/runcheck/internal/domain"
)

// Loader implements domain.DocumentLoader by reading a YAML file into a
// generic document tree (map[string]any / []any / scalars).
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads and parses the run-configuration file at path. A file that
// cannot be parsed as YAML at all yields a *domain.ParseError; an
// unreadable file is an ordinary error.
func (l *Loader) Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ParseError{File: path, Err: err}
	}
	return doc, nil
}
