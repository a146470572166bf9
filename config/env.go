package config

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

const envPrefix = "VKSTATE_"

// LoadEnvFile applies the VKSTATE_* variables of a dotenv file to c.
func (c *Config) LoadEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return errors.Wrapf(err, "could not read env file %s", path)
	}
	return c.ApplyEnv(env)
}

// ApplyEnv overrides fields of c from VKSTATE_* entries of env. Other
// entries are ignored.
func (c *Config) ApplyEnv(env map[string]string) error {
	stringFields := map[string]*string{
		"APPLICATION_NAME": &c.ApplicationName,
		"WINDOW_SYSTEM":    &c.WindowSystem,
		"LOG_LEVEL":        &c.LogLevel,
	}
	intFields := map[string]*int{
		"WIDTH":        &c.Width,
		"HEIGHT":       &c.Height,
		"DEVICE_INDEX": &c.DeviceIndex,
	}
	boolFields := map[string]*bool{
		"DEBUG":        &c.Debug,
		"PORTABILITY":  &c.Portability,
		"LIST_DEVICES": &c.ListDevices,
	}

	for key, field := range stringFields {
		if value, ok := env[envPrefix+key]; ok {
			*field = value
		}
	}

	for key, field := range intFields {
		value, ok := env[envPrefix+key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "%s%s", envPrefix, key)
		}
		*field = parsed
	}

	for key, field := range boolFields {
		value, ok := env[envPrefix+key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "%s%s", envPrefix, key)
		}
		*field = parsed
	}

	return nil
}
