package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/internal/logger"
)

// EnvPrefix prefixes every environment variable read by LoadLogConfig.
const EnvPrefix = "MULE"

// LoadLogConfig reads the logging settings from MULE_LOG_* variables.
// When envFile is non-empty it is loaded first; a missing file is not an
// error and variables already set in the environment win.
func LoadLogConfig(envFile string) (logger.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return logger.Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	var lc logger.Config
	if err := envconfig.Process(EnvPrefix, &lc); err != nil {
		return logger.Config{}, fmt.Errorf("config: environment: %w", err)
	}

	return lc, nil
}
