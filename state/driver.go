package state

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

//go:generate mockgen -destination mocks/mocks.go -package mocks github.com/vkngwrapper/vkstate/state Loader,Instance,PhysicalDevice,Device,WSI

// Loader creates instances of the accelerator API.
type Loader interface {
	CreateInstance(o core1_0.InstanceCreateInfo) (Instance, common.VkResult, error)
}

// Instance is an open instance of the accelerator API.
type Instance interface {
	EnumeratePhysicalDevices() ([]PhysicalDevice, common.VkResult, error)
	CreateDevice(physicalDevice PhysicalDevice, o core1_0.DeviceCreateInfo) (Device, common.VkResult, error)
	DestroyInstance()
}

// PhysicalDevice is a device enumerated from an Instance. It is not owned by
// anyone and stays valid for as long as the Instance is alive.
type PhysicalDevice interface {
	Properties() (*PhysicalDeviceProperties, error)
	QueueFamilyProperties() []QueueFamily
}

// Device is a logical device opened on a PhysicalDevice.
type Device interface {
	GetQueue(queueFamilyIndex int, queueIndex int) core1_0.Queue
	CreateCommandPool(o core1_0.CommandPoolCreateInfo) (core1_0.CommandPool, common.VkResult, error)
	DestroyCommandPool(commandPool core1_0.CommandPool)
	DestroyDevice()
}

// PhysicalDeviceProperties carries the identity fields of a PhysicalDevice.
type PhysicalDeviceProperties struct {
	VendorID      uint32
	DeviceID      uint32
	DeviceName    string
	DriverVersion uint32
}

// QueueFamily describes one queue family of a PhysicalDevice.
type QueueFamily struct {
	Flags      core1_0.QueueFlags
	QueueCount int
}

// SupportsGraphics reports whether the family has at least one queue
// capable of graphics operations.
func (f QueueFamily) SupportsGraphics() bool {
	return f.QueueCount > 0 && f.Flags&core1_0.QueueGraphics != 0
}
