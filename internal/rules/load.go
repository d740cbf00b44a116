package rules

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/venore/training-api/internal/errors"
)

// Load reads a table file, decodes it over the built-in defaults, and runs
// the validator pass. An operator file only needs the sections it overrides;
// untouched sections keep their default values.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, errors.Wrapf(err, "reading table file %s", path)
	}

	tables := DefaultTables()
	if err := yaml.Unmarshal(data, tables); err != nil {
		return nil, errors.Wrapf(err, "parsing table file %s", path)
	}

	if err := tables.Validate(); err != nil {
		return nil, errors.Wrapf(err, "table file %s failed validation", path)
	}

	return tables, nil
}
