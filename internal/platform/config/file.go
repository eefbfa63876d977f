// internal/platform/config/file.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"netsweep/internal/core/domain"
)

// loadFile aplica un archivo YAML sobre cfg. Claves desconocidas son error.
// Un archivo vacío deja cfg intacta.
func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigLoadFailed, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", domain.ErrConfigLoadFailed, path, err)
	}
	return nil
}
