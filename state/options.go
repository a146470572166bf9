package state

import (
	"github.com/sirupsen/logrus"
)

const defaultApplicationName = "vkstate"

type options struct {
	applicationName string
	logger          logrus.FieldLogger
	deviceIndex     int
}

func defaultOptions() options {
	return options{
		applicationName: defaultApplicationName,
		logger:          logrus.StandardLogger(),
		deviceIndex:     -1,
	}
}

// Option configures a State.
type Option func(*options)

// WithApplicationName sets the application and engine name reported to the
// driver.
func WithApplicationName(name string) Option {
	return func(o *options) {
		o.applicationName = name
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDeviceIndex restricts device selection to the physical device at the
// given enumeration index. A negative index selects the first suitable device.
func WithDeviceIndex(index int) Option {
	return func(o *options) {
		o.deviceIndex = index
	}
}
