package vulkan

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/vkstate/state"
)

// Device is a state.Device backed by a vkngwrapper device driver.
type Device struct {
	driver core1_0.CoreDeviceDriver
}

var _ state.Device = (*Device)(nil)

// Driver exposes the underlying device driver for work beyond bootstrap,
// such as allocating command buffers from the State's pool.
func (d *Device) Driver() core1_0.CoreDeviceDriver {
	return d.driver
}

func (d *Device) GetQueue(queueFamilyIndex int, queueIndex int) core1_0.Queue {
	return d.driver.GetQueue(queueFamilyIndex, queueIndex)
}

func (d *Device) CreateCommandPool(o core1_0.CommandPoolCreateInfo) (core1_0.CommandPool, common.VkResult, error) {
	return d.driver.CreateCommandPool(nil, o)
}

func (d *Device) DestroyCommandPool(commandPool core1_0.CommandPool) {
	d.driver.DestroyCommandPool(commandPool, nil)
}

func (d *Device) DestroyDevice() {
	d.driver.DestroyDevice(nil)
}
