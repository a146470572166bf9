package state

// WSI is the window system integration a State presents through.
type WSI interface {
	// VulkanExtensions returns the instance extensions the window system
	// needs enabled.
	VulkanExtensions() []string

	// IsPhysicalDeviceSupported reports whether the device can present
	// to this window system at all.
	IsPhysicalDeviceSupported(physicalDevice PhysicalDevice) bool

	// PhysicalDeviceQueueFamilyIndices returns the queue families of the
	// device that must be created for presentation. May be empty.
	PhysicalDeviceQueueFamilyIndices(physicalDevice PhysicalDevice) []int
}

// InstanceBinder is implemented by a WSI that needs the Instance before any
// device is queried, e.g. to create a window surface. The returned release
// func is run after the logical device is destroyed and before the Instance.
type InstanceBinder interface {
	BindInstance(instance Instance) (release func(), err error)
}
