package state

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// InstanceExtensions returns the window system extensions followed by
// VK_KHR_surface. Duplicates are kept as given.
func InstanceExtensions(wsiExtensions []string) []string {
	extensions := make([]string, 0, len(wsiExtensions)+1)
	extensions = append(extensions, wsiExtensions...)
	return append(extensions, khr_surface.ExtensionName)
}

func (s *State) createInstance(loader Loader) error {
	defer s.trace(string(StageInstance))()

	instance, result, err := loader.CreateInstance(core1_0.InstanceCreateInfo{
		ApplicationName:       s.opts.applicationName,
		ApplicationVersion:    common.CreateVersion(1, 0, 0),
		EngineName:            s.opts.applicationName,
		EngineVersion:         common.CreateVersion(1, 0, 0),
		APIVersion:            common.Vulkan1_0,
		EnabledExtensionNames: InstanceExtensions(s.wsi.VulkanExtensions()),
	})
	if err != nil {
		return newInitializationError(StageInstance, result, err)
	}

	s.instance = Manage(instance, Instance.DestroyInstance)
	s.resources.push(s.instance)
	return nil
}

// bindWSI hands the instance to a WSI that needs it, such as one that owns a
// window surface.
func (s *State) bindWSI() error {
	binder, ok := s.wsi.(InstanceBinder)
	if !ok {
		return nil
	}

	release, err := binder.BindInstance(s.instance.Get())
	if err != nil {
		return newInitializationError(StageSurface, core1_0.VKErrorInitializationFailed, err)
	}

	if release != nil {
		s.resources.push(Manage(release, func(release func()) { release() }))
	}
	return nil
}
