// Package state bootstraps a Vulkan context: it creates the instance, picks a
// physical device that can present and render, opens a logical device with a
// graphics queue and allocates a resettable command pool.
//
// Everything a State creates is owned by it and released in reverse creation
// order by Destroy, or by New itself when a later stage fails.
package state

import (
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// State is an initialized Vulkan context. It is not safe for concurrent use.
type State struct {
	id   uuid.UUID
	log  logrus.FieldLogger
	opts options
	wsi  WSI

	instance                 *Managed[Instance]
	physicalDevice           PhysicalDevice
	graphicsQueueFamilyIndex int
	device                   *Managed[Device]
	graphicsQueue            core1_0.Queue
	commandPool              *Managed[core1_0.CommandPool]

	resources releaseStack
}

func newState(wsi WSI, opts []Option) *State {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &State{
		id:                       uuid.New(),
		opts:                     o,
		wsi:                      wsi,
		graphicsQueueFamilyIndex: -1,
	}
	s.log = o.logger.WithField("state", s.id.String())
	return s
}

// New runs every initialization stage against loader, presenting through wsi.
// On failure, whatever was already created is released before returning.
func New(loader Loader, wsi WSI, opts ...Option) (*State, error) {
	s := newState(wsi, opts)

	err := s.init(loader)
	if err != nil {
		s.Destroy()
		return nil, err
	}

	return s, nil
}

func (s *State) init(loader Loader) error {
	err := s.createInstance(loader)
	if err != nil {
		return err
	}

	err = s.bindWSI()
	if err != nil {
		return err
	}

	err = s.choosePhysicalDevice()
	if err != nil {
		return err
	}

	err = s.createDevice()
	if err != nil {
		return err
	}

	return s.createCommandPool()
}

// trace logs how long the named step took once the returned func is called.
func (s *State) trace(step string) func() {
	start := hrtime.Now()
	return func() {
		s.log.WithFields(logrus.Fields{
			"step":    step,
			"elapsed": hrtime.Since(start),
		}).Debug("Finished initialization step")
	}
}

// ID identifies this initialization run in log output.
func (s *State) ID() uuid.UUID {
	return s.id
}

func (s *State) Instance() Instance {
	return s.instance.Get()
}

func (s *State) PhysicalDevice() PhysicalDevice {
	return s.physicalDevice
}

func (s *State) GraphicsQueueFamilyIndex() int {
	return s.graphicsQueueFamilyIndex
}

func (s *State) Device() Device {
	return s.device.Get()
}

func (s *State) GraphicsQueue() core1_0.Queue {
	return s.graphicsQueue
}

func (s *State) CommandPool() core1_0.CommandPool {
	return s.commandPool.Get()
}

// Destroy releases the command pool, the logical device, any window system
// binding and the instance, in that order. Calling it again does nothing.
func (s *State) Destroy() {
	if s == nil {
		return
	}
	s.resources.releaseAll()
}
