package profiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"huntcast/internal/types"
)

// Override is an operator-supplied extension of the builtin tables, loaded
// from a YAML file at startup. Records with an ID matching a builtin replace
// it; new IDs are added. Overrides go through the same validation as the
// builtins, so a bad file aborts startup instead of skewing scores.
type Override struct {
	Species   []types.SpeciesProfile  `yaml:"species"`
	Locations []types.LocationHabitat `yaml:"locations"`
}

// LoadOverride reads and parses the override file at path. A missing file is
// not an error (the builtins stand alone); an unreadable or malformed file is
// a fatal config_ error.
func LoadOverride(path string) (*Override, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, types.NewAppError(
			types.ErrCodeConfigInvalidOverride,
			fmt.Sprintf("reading profile override file %s", path),
			err,
		)
	}

	var o Override
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, types.NewAppError(
			types.ErrCodeConfigInvalidOverride,
			fmt.Sprintf("parsing profile override file %s", path),
			err,
		)
	}
	return &o, nil
}
