package vulkan

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/vkstate/state"
)

// PhysicalDevice is a state.PhysicalDevice enumerated from an Instance.
type PhysicalDevice struct {
	instance core1_0.CoreInstanceDriver
	handle   core1_0.PhysicalDevice
}

var _ state.PhysicalDevice = (*PhysicalDevice)(nil)

// Handle returns the raw physical device, e.g. for surface support queries.
func (p *PhysicalDevice) Handle() core1_0.PhysicalDevice {
	return p.handle
}

// Driver returns the instance driver the device was enumerated from.
func (p *PhysicalDevice) Driver() core1_0.CoreInstanceDriver {
	return p.instance
}

func (p *PhysicalDevice) Properties() (*state.PhysicalDeviceProperties, error) {
	properties, err := p.instance.GetPhysicalDeviceProperties(p.handle)
	if err != nil {
		return nil, err
	}

	return &state.PhysicalDeviceProperties{
		VendorID:      properties.VendorID,
		DeviceID:      properties.DeviceID,
		DeviceName:    properties.DriverName,
		DriverVersion: uint32(properties.DriverVersion),
	}, nil
}

func (p *PhysicalDevice) QueueFamilyProperties() []state.QueueFamily {
	properties := p.instance.GetPhysicalDeviceQueueFamilyProperties(p.handle)

	queueFamilies := make([]state.QueueFamily, 0, len(properties))
	for _, queueFamily := range properties {
		queueFamilies = append(queueFamilies, state.QueueFamily{
			Flags:      queueFamily.QueueFlags,
			QueueCount: queueFamily.QueueCount,
		})
	}
	return queueFamilies
}
