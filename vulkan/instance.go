package vulkan

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/loader"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/vkstate/state"
)

// Instance is a state.Instance backed by a vkngwrapper instance driver.
type Instance struct {
	driver core1_0.CoreInstanceDriver

	debugDriver ext_debug_utils.ExtensionDriver
	messenger   ext_debug_utils.DebugUtilsMessenger
}

var _ state.Instance = (*Instance)(nil)

// Driver exposes the underlying instance driver, e.g. for extension drivers.
func (i *Instance) Driver() core1_0.CoreInstanceDriver {
	return i.driver
}

func (i *Instance) EnumeratePhysicalDevices() ([]state.PhysicalDevice, common.VkResult, error) {
	handles, result, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, result, err
	}

	physicalDevices := make([]state.PhysicalDevice, 0, len(handles))
	for _, handle := range handles {
		physicalDevices = append(physicalDevices, &PhysicalDevice{instance: i.driver, handle: handle})
	}
	return physicalDevices, result, nil
}

func (i *Instance) CreateDevice(physicalDevice state.PhysicalDevice, o core1_0.DeviceCreateInfo) (state.Device, common.VkResult, error) {
	pd, ok := physicalDevice.(*PhysicalDevice)
	if !ok {
		return nil, core1_0.VKErrorInitializationFailed, errors.Newf("physical device %T was not enumerated by this instance", physicalDevice)
	}

	handle, result, err := i.driver.CreateDevice(pd.handle, nil, o)
	if err != nil {
		return nil, result, err
	}

	deviceDriver, err := i.driver.BuildDeviceDriver(handle)
	if err != nil {
		destroyDeviceHandle(i.driver.Loader(), handle)
		return nil, core1_0.VKErrorInitializationFailed, errors.Wrap(err, "could not build device driver")
	}
	return &Device{driver: deviceDriver}, result, nil
}

func destroyDeviceHandle(instanceLoader loader.Loader, handle core1_0.Device) {
	deviceLoader, err := instanceLoader.CreateDeviceLoader(handle.Handle())
	if err != nil {
		return
	}
	deviceLoader.VkDestroyDevice(handle.Handle(), nil)
}

func (i *Instance) DestroyInstance() {
	if i.debugDriver != nil {
		i.debugDriver.DestroyDebugUtilsMessenger(i.messenger, nil)
	}
	i.driver.DestroyInstance(nil)
}
