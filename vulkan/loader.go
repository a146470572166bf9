// Package vulkan connects the state package to a real Vulkan driver through
// vkngwrapper.
package vulkan

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/core/v3/loader"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/vkstate/state"
)

const validationLayer = "VK_LAYER_KHRONOS_validation"

// Loader creates instances from a vkngwrapper global driver.
type Loader struct {
	driver      core1_0.GlobalDriver
	log         logrus.FieldLogger
	debug       bool
	portability bool

	newDebugDriver func(core1_0.CoreInstanceDriver) ext_debug_utils.ExtensionDriver
}

var _ state.Loader = (*Loader)(nil)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDebugMessenger enables the Khronos validation layer and forwards its
// warnings and errors to logger.
func WithDebugMessenger(logger logrus.FieldLogger) LoaderOption {
	return func(l *Loader) {
		l.debug = true
		l.log = logger
	}
}

// WithPortabilityEnumeration asks the loader to also enumerate portability
// drivers such as MoltenVK, when the loader offers them.
func WithPortabilityEnumeration() LoaderOption {
	return func(l *Loader) {
		l.portability = true
	}
}

// NewLoader wraps an existing global driver.
func NewLoader(driver core1_0.GlobalDriver, opts ...LoaderOption) *Loader {
	l := &Loader{
		driver:         driver,
		log:            logrus.StandardLogger(),
		newDebugDriver: ext_debug_utils.CreateExtensionDriverFromCoreDriver,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLoaderFromProcAddr builds a Loader from a vkGetInstanceProcAddr pointer,
// such as the one returned by sdl.VulkanGetVkGetInstanceProcAddr.
func NewLoaderFromProcAddr(procAddr unsafe.Pointer, opts ...LoaderOption) (*Loader, error) {
	driver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "could not load vulkan driver")
	}
	return NewLoader(driver, opts...), nil
}

func (l *Loader) CreateInstance(o core1_0.InstanceCreateInfo) (state.Instance, common.VkResult, error) {
	if l.portability {
		result, err := l.addPortabilityEnumeration(&o)
		if err != nil {
			return nil, result, err
		}
	}

	if l.debug {
		result, err := l.addValidation(&o)
		if err != nil {
			return nil, result, err
		}
	}

	handle, result, err := l.driver.CreateInstance(nil, o)
	if err != nil {
		return nil, result, err
	}

	instanceDriver, err := l.driver.BuildInstanceDriver(handle)
	if err != nil {
		destroyInstanceHandle(l.driver.Loader(), handle)
		return nil, core1_0.VKErrorInitializationFailed, errors.Wrap(err, "could not build instance driver")
	}

	instance := &Instance{driver: instanceDriver}
	if l.debug {
		debugDriver := l.newDebugDriver(instanceDriver)
		if debugDriver == nil {
			instanceDriver.DestroyInstance(nil)
			return nil, core1_0.VKErrorExtensionNotPresent, errors.Newf("extension %s is not active", ext_debug_utils.ExtensionName)
		}

		instance.messenger, result, err = debugDriver.CreateDebugUtilsMessenger(nil, debugMessengerOptions(l.log))
		if err != nil {
			instanceDriver.DestroyInstance(nil)
			return nil, result, errors.Wrap(err, "could not create debug messenger")
		}
		instance.debugDriver = debugDriver
	}

	return instance, result, nil
}

// destroyInstanceHandle releases an instance that never got a driver. The
// global loader cannot destroy instances, so a loader scoped to handle is
// built first.
func destroyInstanceHandle(global loader.Loader, handle core1_0.Instance) {
	instanceLoader, err := global.CreateInstanceLoader(handle.Handle())
	if err != nil {
		return
	}
	instanceLoader.VkDestroyInstance(handle.Handle(), nil)
}

func (l *Loader) addPortabilityEnumeration(o *core1_0.InstanceCreateInfo) (common.VkResult, error) {
	extensions, result, err := l.driver.AvailableExtensions()
	if err != nil {
		return result, errors.Wrap(err, "could not list instance extensions")
	}

	if _, supported := extensions[khr_portability_enumeration.ExtensionName]; supported {
		o.EnabledExtensionNames = append(o.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		o.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}
	return result, nil
}

func (l *Loader) addValidation(o *core1_0.InstanceCreateInfo) (common.VkResult, error) {
	layers, result, err := l.driver.AvailableLayers()
	if err != nil {
		return result, errors.Wrap(err, "could not list instance layers")
	}

	if _, ok := layers[validationLayer]; !ok {
		return core1_0.VKErrorLayerNotPresent, errors.Newf("layer %s not available, install the LunarG Vulkan SDK", validationLayer)
	}

	o.EnabledLayerNames = append(o.EnabledLayerNames, validationLayer)
	o.EnabledExtensionNames = append(o.EnabledExtensionNames, ext_debug_utils.ExtensionName)
	// Also covers messages emitted while the instance itself is created.
	o.Next = debugMessengerOptions(l.log)
	return result, nil
}
