package state

import (
	"github.com/vkngwrapper/core/v3/core1_0"
)

func (s *State) createCommandPool() error {
	defer s.trace(string(StageCommandPool))()

	device := s.device.Get()
	commandPool, result, err := device.CreateCommandPool(core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: s.graphicsQueueFamilyIndex,
		Flags:            core1_0.CommandPoolCreateResetBuffer,
	})
	if err != nil {
		return newInitializationError(StageCommandPool, result, err)
	}

	s.commandPool = Manage(commandPool, device.DestroyCommandPool)
	s.resources.push(s.commandPool)
	return nil
}
