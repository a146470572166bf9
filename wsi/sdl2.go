package wsi

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
	"github.com/vkngwrapper/vkstate/state"
	"github.com/vkngwrapper/vkstate/vulkan"
)

// SDL2 presents to a Vulkan-capable SDL2 window. The window surface is
// created when the State binds its instance and destroyed before the
// instance is.
type SDL2 struct {
	window *sdl.Window
	log    logrus.FieldLogger

	surfaceDriver khr_surface.ExtensionDriver
	surface       khr_surface.Surface
	bound         bool
}

var (
	_ state.WSI            = (*SDL2)(nil)
	_ state.InstanceBinder = (*SDL2)(nil)
)

// NewSDL2 returns a WSI for window, which must have been created with
// sdl.WINDOW_VULKAN.
func NewSDL2(window *sdl.Window, logger logrus.FieldLogger) *SDL2 {
	return &SDL2{
		window: window,
		log:    logger,
	}
}

// Surface returns the window surface once an instance is bound.
func (w *SDL2) Surface() khr_surface.Surface {
	return w.surface
}

func (w *SDL2) VulkanExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *SDL2) BindInstance(instance state.Instance) (func(), error) {
	if w.bound {
		return nil, errors.New("window surface is already bound to an instance")
	}

	vkInstance, ok := instance.(*vulkan.Instance)
	if !ok {
		return nil, errors.Newf("cannot create a window surface for instance %T", instance)
	}

	surfaceDriver := khr_surface.CreateExtensionDriverFromCoreDriver(vkInstance.Driver())
	if surfaceDriver == nil {
		return nil, errors.Newf("extension %s is not active", khr_surface.ExtensionName)
	}

	surface, err := vkng_sdl2.CreateSurface(vkInstance.Driver().Instance(), surfaceDriver, w.window)
	if err != nil {
		return nil, errors.Wrap(err, "could not create window surface")
	}

	return w.bindSurface(surfaceDriver, surface), nil
}

// bindSurface makes surface the one used for support queries. The returned
// release destroys exactly that surface, once.
func (w *SDL2) bindSurface(surfaceDriver khr_surface.ExtensionDriver, surface khr_surface.Surface) func() {
	w.surfaceDriver = surfaceDriver
	w.surface = surface
	w.bound = true

	released := false
	return func() {
		if released {
			return
		}
		released = true

		surfaceDriver.DestroySurface(surface, nil)
		w.bound = false
		w.surfaceDriver = nil
		w.surface = khr_surface.Surface{}
	}
}

func (w *SDL2) IsPhysicalDeviceSupported(physicalDevice state.PhysicalDevice) bool {
	return len(w.presentQueueFamilies(physicalDevice)) > 0
}

// PhysicalDeviceQueueFamilyIndices returns the first queue family that can
// present to the window surface.
func (w *SDL2) PhysicalDeviceQueueFamilyIndices(physicalDevice state.PhysicalDevice) []int {
	families := w.presentQueueFamilies(physicalDevice)
	if len(families) == 0 {
		return nil
	}
	return families[:1]
}

func (w *SDL2) presentQueueFamilies(physicalDevice state.PhysicalDevice) []int {
	pd, ok := physicalDevice.(*vulkan.PhysicalDevice)
	if !ok || !w.bound {
		return nil
	}

	var families []int
	for queueFamilyIndex := range physicalDevice.QueueFamilyProperties() {
		supported, _, err := w.surfaceDriver.GetPhysicalDeviceSurfaceSupport(w.surface, pd.Handle(), queueFamilyIndex)
		if err != nil {
			w.log.WithError(err).WithField("queue_family", queueFamilyIndex).
				Warn("Could not query surface support")
			continue
		}

		if supported {
			families = append(families, queueFamilyIndex)
		}
	}
	return families
}
