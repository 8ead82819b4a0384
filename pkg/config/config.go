// Package config loads the optional .dtab.toml configuration used by the
// dtab check tool. The library itself is configuration-free; this only
// tells the CLI which files to check and how strict to be.
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/routelab/dtab/pkg/errors"
	"github.com/routelab/dtab/pkg/logging"
)

var log = logging.GetLogger("config")

// DefaultFileName is the config file looked up in the working directory
// when dtab check is run without arguments.
const DefaultFileName = ".dtab.toml"

// CheckConfig holds check-tool settings from .dtab.toml.
type CheckConfig struct {
	// Files lists glob patterns of dtab files to check.
	Files []string `toml:"files"`

	// Strict treats check warnings, such as an empty dtab file, as errors.
	Strict bool `toml:"strict"`

	// AllowEmpty suppresses the empty-dtab warning, even under Strict.
	AllowEmpty bool `toml:"allow_empty"`
}

// Load reads and parses a check config from the given path.
func Load(path string) (*CheckConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound,
				"config file %s not found", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"reading config file %s", path)
	}

	var cfg CheckConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"parsing config file %s", path)
	}

	log.Debug().Str("path", path).Int("patterns", len(cfg.Files)).Msg("loaded check config")
	return &cfg, nil
}
