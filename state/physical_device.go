package state

import (
	"github.com/cockroachdb/errors"
)

// ChoosePhysicalDevice returns the first device, in the order given, that the
// WSI supports and that has a queue family with at least one graphics queue,
// along with the index of the first such family. Devices the WSI rejects are
// skipped without their queue families being read.
func ChoosePhysicalDevice(physicalDevices []PhysicalDevice, wsi WSI) (PhysicalDevice, int, error) {
	for _, physicalDevice := range physicalDevices {
		if !wsi.IsPhysicalDeviceSupported(physicalDevice) {
			continue
		}

		queueFamilyIndex, found := graphicsQueueFamilyIndex(physicalDevice)
		if found {
			return physicalDevice, queueFamilyIndex, nil
		}
	}

	return nil, -1, errors.WithStack(ErrNoSuitableDevice)
}

func graphicsQueueFamilyIndex(physicalDevice PhysicalDevice) (int, bool) {
	for queueFamilyIndex, queueFamily := range physicalDevice.QueueFamilyProperties() {
		if queueFamily.SupportsGraphics() {
			return queueFamilyIndex, true
		}
	}
	return -1, false
}

func (s *State) choosePhysicalDevice() error {
	defer s.trace("choose physical device")()

	physicalDevices, result, err := s.instance.Get().EnumeratePhysicalDevices()
	if err != nil {
		return newInitializationError(StageEnumerate, result, err)
	}

	candidates := physicalDevices
	if index := s.opts.deviceIndex; index >= 0 {
		if index >= len(physicalDevices) {
			return errors.Wrapf(ErrNoSuitableDevice, "device index %d out of range, %d devices present", index, len(physicalDevices))
		}
		candidates = physicalDevices[index : index+1]
	}

	s.physicalDevice, s.graphicsQueueFamilyIndex, err = ChoosePhysicalDevice(candidates, s.wsi)
	return err
}
