package state

import (
	"slices"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

const queuePriority = float32(1.0)

// QueueCreateInfos requests one queue from every distinct family among the
// presentation families and the graphics family. Presentation families come
// first, in the order given; the graphics family is appended only if it is
// not already among them.
func QueueCreateInfos(presentationQueueFamilies []int, graphicsQueueFamily int) []core1_0.DeviceQueueCreateInfo {
	var families []int
	for _, family := range presentationQueueFamilies {
		if !slices.Contains(families, family) {
			families = append(families, family)
		}
	}
	if !slices.Contains(families, graphicsQueueFamily) {
		families = append(families, graphicsQueueFamily)
	}

	queueCreateInfos := make([]core1_0.DeviceQueueCreateInfo, 0, len(families))
	for _, family := range families {
		queueCreateInfos = append(queueCreateInfos, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{queuePriority},
		})
	}
	return queueCreateInfos
}

func (s *State) createDevice() error {
	defer s.trace(string(StageDevice))()

	presentationQueueFamilies := s.wsi.PhysicalDeviceQueueFamilyIndices(s.physicalDevice)
	if len(presentationQueueFamilies) > 0 {
		s.log.WithField("queue_families", presentationQueueFamilies).
			Debug("Using queue families for WSI operations")
	}
	s.log.WithField("queue_family", s.graphicsQueueFamilyIndex).
		Debug("Using queue family for rendering")

	// SamplerAnisotropy and the swapchain extension are requested without
	// checking the device supports them; an unsupported device fails here.
	device, result, err := s.instance.Get().CreateDevice(s.physicalDevice, core1_0.DeviceCreateInfo{
		QueueCreateInfos: QueueCreateInfos(presentationQueueFamilies, s.graphicsQueueFamilyIndex),
		EnabledFeatures: &core1_0.PhysicalDeviceFeatures{
			SamplerAnisotropy: true,
		},
		EnabledExtensionNames: []string{khr_swapchain.ExtensionName},
	})
	if err != nil {
		return newInitializationError(StageDevice, result, err)
	}

	s.device = Manage(device, Device.DestroyDevice)
	s.resources.push(s.device)

	s.graphicsQueue = device.GetQueue(s.graphicsQueueFamilyIndex, 0)
	return nil
}
