package menufile

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Loader reads and parses a menu file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given path.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the menu file.
func (l *Loader) Load() (Config, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read menu file: %w", err)
	}
	return Parse(data)
}

// Parse decodes menu YAML after expanding ${VAR} placeholders.
// Unknown keys are rejected so that typos don't silently drop links.
func Parse(data []byte) (Config, error) {
	data = expandPlaceholders(data)

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse menu yaml: %w", err)
	}

	return cfg, nil
}

var placeholderRe = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// expandPlaceholders replaces ${VAR} with the environment value.
// Unset variables expand to an empty string.
func expandPlaceholders(data []byte) []byte {
	return placeholderRe.ReplaceAllFunc(data, func(m []byte) []byte {
		name := placeholderRe.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}
