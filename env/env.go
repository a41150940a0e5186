package env

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const DefaultEnvFile = ".env"

// InitConfig fills config from the environment. Variables from an optional
// .env file in the working directory are loaded first; variables already
// set in the environment win.
func InitConfig(config any) error {
	// nolint:errcheck // .env file is optional, failure is acceptable
	_ = godotenv.Load(DefaultEnvFile)

	return process(config)
}

// InitConfigFrom is InitConfig with an explicit env file, which must exist.
func InitConfigFrom(path string, config any) error {
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to load env file %s", path)
	}

	return process(config)
}

func process(config any) error {
	if err := envconfig.Process("", config); err != nil {
		return errors.Wrap(err, "failed to envconfig.Process")
	}

	return nil
}
