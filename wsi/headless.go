// Package wsi provides the window systems a state.State can present through.
package wsi

import (
	"github.com/vkngwrapper/vkstate/state"
)

// Headless is a window system with nothing to present to. Every device is
// supported and no queue families are reserved for presentation.
type Headless struct{}

var _ state.WSI = Headless{}

func (Headless) VulkanExtensions() []string {
	return nil
}

func (Headless) IsPhysicalDeviceSupported(physicalDevice state.PhysicalDevice) bool {
	return true
}

func (Headless) PhysicalDeviceQueueFamilyIndices(physicalDevice state.PhysicalDevice) []int {
	return nil
}
