// Package config holds the settings of the vkinfo command.
package config

import (
	"bytes"
	"flag"
	"io"
	"os"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	WindowSystemSDL2     = "sdl2"
	WindowSystemHeadless = "headless"
)

var windowSystems = []string{WindowSystemSDL2, WindowSystemHeadless}

type Config struct {
	ApplicationName string `yaml:"application_name"`
	WindowSystem    string `yaml:"window_system"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	Debug           bool   `yaml:"debug"`
	Portability     bool   `yaml:"portability"`
	// DeviceIndex pins selection to one enumerated device. -1 picks the
	// first suitable device.
	DeviceIndex int    `yaml:"device_index"`
	ListDevices bool   `yaml:"list_devices"`
	LogLevel    string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		ApplicationName: "vkinfo",
		WindowSystem:    WindowSystemSDL2,
		Width:           800,
		Height:          600,
		DeviceIndex:     -1,
		LogLevel:        logrus.InfoLevel.String(),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value and unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not read config %s", path)
	}

	err = cfg.decode(data)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not parse config %s", path)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(c)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// RegisterFlags binds the fields of c to fs. Values already in c become the
// flag defaults, so flags override whatever was loaded before parsing.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ApplicationName, "app-name", c.ApplicationName, "application name reported to the driver")
	fs.StringVar(&c.WindowSystem, "wsi", c.WindowSystem, "window system to present through: sdl2 or headless")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable the validation layer and log its messages")
	fs.BoolVar(&c.Portability, "portability", c.Portability, "also enumerate portability drivers")
	fs.IntVar(&c.DeviceIndex, "device", c.DeviceIndex, "index of the physical device to use, -1 for the first suitable one")
	fs.BoolVar(&c.ListDevices, "list", c.ListDevices, "list physical devices and exit")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
}

func (c Config) Validate() error {
	if c.ApplicationName == "" {
		return errors.New("application name must not be empty")
	}
	if !slices.Contains(windowSystems, c.WindowSystem) {
		return errors.Newf("unknown window system %q, expected one of %v", c.WindowSystem, windowSystems)
	}
	if c.WindowSystem == WindowSystemSDL2 && (c.Width <= 0 || c.Height <= 0) {
		return errors.Newf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.DeviceIndex < -1 {
		return errors.Newf("invalid device index %d", c.DeviceIndex)
	}

	_, err := c.Level()
	return err
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return level, errors.Wrap(err, "invalid log level")
	}
	return level, nil
}
