package vulkan

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	mock_loader "github.com/vkngwrapper/core/v3/loader/mocks"
	coremocks "github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/core/v3/mocks/mocks1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	mock_debugutils "github.com/vkngwrapper/extensions/v3/ext_debug_utils/mocks"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"go.uber.org/mock/gomock"
)

func validationLayers() map[string]*core1_0.LayerProperties {
	return map[string]*core1_0.LayerProperties{
		validationLayer: {LayerName: validationLayer},
	}
}

func TestLoader_CreateInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mocks1_0.NewMockGlobalDriver(ctrl)
	instanceDriver := mocks1_0.NewMockCoreInstanceDriver(ctrl)
	handle := coremocks.NewDummyInstance(common.Vulkan1_0, nil)

	global.EXPECT().CreateInstance(nil, gomock.Any()).Return(handle, core1_0.VKSuccess, nil)
	global.EXPECT().BuildInstanceDriver(handle).Return(instanceDriver, nil)

	instance, result, err := NewLoader(global).CreateInstance(core1_0.InstanceCreateInfo{})
	require.NoError(t, err)
	require.Equal(t, core1_0.VKSuccess, result)
	require.Equal(t, instanceDriver, instance.(*Instance).Driver())
}

func TestLoader_CreateInstanceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mocks1_0.NewMockGlobalDriver(ctrl)

	global.EXPECT().CreateInstance(nil, gomock.Any()).
		Return(core1_0.Instance{}, core1_0.VKErrorIncompatibleDriver, errors.New("no driver"))

	instance, result, err := NewLoader(global).CreateInstance(core1_0.InstanceCreateInfo{})
	require.Nil(t, instance)
	require.Equal(t, core1_0.VKErrorIncompatibleDriver, result)
	require.ErrorContains(t, err, "no driver")
}

func TestLoader_CreateInstanceBuildFailureDestroysHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mocks1_0.NewMockGlobalDriver(ctrl)
	globalLoader := mock_loader.NewMockLoader(ctrl)
	instanceLoader := mock_loader.NewMockLoader(ctrl)
	handle := coremocks.NewDummyInstance(common.Vulkan1_0, nil)

	global.EXPECT().CreateInstance(nil, gomock.Any()).Return(handle, core1_0.VKSuccess, nil)
	global.EXPECT().BuildInstanceDriver(handle).Return(nil, errors.New("missing vkCreateDevice"))
	global.EXPECT().Loader().Return(globalLoader)
	globalLoader.EXPECT().CreateInstanceLoader(handle.Handle()).Return(instanceLoader, nil)
	instanceLoader.EXPECT().VkDestroyInstance(handle.Handle(), nil)

	instance, result, err := NewLoader(global).CreateInstance(core1_0.InstanceCreateInfo{})
	require.Nil(t, instance)
	require.Equal(t, core1_0.VKErrorInitializationFailed, result)
	require.ErrorContains(t, err, "could not build instance driver")
}

func TestLoader_PortabilityEnumeration(t *testing.T) {
	testCases := []struct {
		name       string
		extensions map[string]*core1_0.ExtensionProperties
		enabled    bool
	}{
		{
			name: "offered",
			extensions: map[string]*core1_0.ExtensionProperties{
				khr_portability_enumeration.ExtensionName: {ExtensionName: khr_portability_enumeration.ExtensionName},
			},
			enabled: true,
		},
		{
			name:       "not offered",
			extensions: map[string]*core1_0.ExtensionProperties{},
			enabled:    false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			global := mocks1_0.NewMockGlobalDriver(ctrl)
			instanceDriver := mocks1_0.NewMockCoreInstanceDriver(ctrl)
			handle := coremocks.NewDummyInstance(common.Vulkan1_0, nil)

			global.EXPECT().AvailableExtensions().Return(testCase.extensions, core1_0.VKSuccess, nil)
			global.EXPECT().CreateInstance(nil, gomock.Any()).DoAndReturn(
				func(_ any, o core1_0.InstanceCreateInfo) (core1_0.Instance, common.VkResult, error) {
					require.Equal(t, "VK_KHR_surface", o.EnabledExtensionNames[0])
					if testCase.enabled {
						require.Contains(t, o.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
						require.Equal(t, khr_portability_enumeration.InstanceCreateEnumeratePortability, o.Flags)
					} else {
						require.NotContains(t, o.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
						require.Zero(t, o.Flags)
					}
					return handle, core1_0.VKSuccess, nil
				})
			global.EXPECT().BuildInstanceDriver(handle).Return(instanceDriver, nil)

			loader := NewLoader(global, WithPortabilityEnumeration())
			_, _, err := loader.CreateInstance(core1_0.InstanceCreateInfo{
				EnabledExtensionNames: []string{"VK_KHR_surface"},
			})
			require.NoError(t, err)
		})
	}
}

func TestLoader_MissingValidationLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mocks1_0.NewMockGlobalDriver(ctrl)
	logger, _ := test.NewNullLogger()

	global.EXPECT().AvailableLayers().Return(map[string]*core1_0.LayerProperties{}, core1_0.VKSuccess, nil)

	instance, result, err := NewLoader(global, WithDebugMessenger(logger)).CreateInstance(core1_0.InstanceCreateInfo{})
	require.Nil(t, instance)
	require.Equal(t, core1_0.VKErrorLayerNotPresent, result)
	require.ErrorContains(t, err, validationLayer)
}

func TestLoader_DebugMessenger(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mocks1_0.NewMockGlobalDriver(ctrl)
	instanceDriver := mocks1_0.NewMockCoreInstanceDriver(ctrl)
	debugDriver := mock_debugutils.NewMockExtensionDriver(ctrl)
	handle := coremocks.NewDummyInstance(common.Vulkan1_0, nil)
	messenger := mock_debugutils.NewDummyMessenger(handle)
	logger, _ := test.NewNullLogger()

	global.EXPECT().AvailableLayers().Return(validationLayers(), core1_0.VKSuccess, nil)
	global.EXPECT().CreateInstance(nil, gomock.Any()).DoAndReturn(
		func(_ any, o core1_0.InstanceCreateInfo) (core1_0.Instance, common.VkResult, error) {
			require.Equal(t, []string{validationLayer}, o.EnabledLayerNames)
			require.Equal(t, []string{ext_debug_utils.ExtensionName}, o.EnabledExtensionNames)
			require.IsType(t, ext_debug_utils.DebugUtilsMessengerCreateInfo{}, o.Next)
			return handle, core1_0.VKSuccess, nil
		})
	global.EXPECT().BuildInstanceDriver(handle).Return(instanceDriver, nil)
	debugDriver.EXPECT().CreateDebugUtilsMessenger(nil, gomock.Any()).Return(messenger, core1_0.VKSuccess, nil)

	loader := NewLoader(global, WithDebugMessenger(logger))
	loader.newDebugDriver = func(driver core1_0.CoreInstanceDriver) ext_debug_utils.ExtensionDriver {
		require.Equal(t, instanceDriver, driver)
		return debugDriver
	}

	instance, _, err := loader.CreateInstance(core1_0.InstanceCreateInfo{})
	require.NoError(t, err)

	gomock.InOrder(
		debugDriver.EXPECT().DestroyDebugUtilsMessenger(messenger, nil),
		instanceDriver.EXPECT().DestroyInstance(nil),
	)
	instance.DestroyInstance()
}

func TestLoader_DebugMessengerFailureDestroysInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mocks1_0.NewMockGlobalDriver(ctrl)
	instanceDriver := mocks1_0.NewMockCoreInstanceDriver(ctrl)
	debugDriver := mock_debugutils.NewMockExtensionDriver(ctrl)
	handle := coremocks.NewDummyInstance(common.Vulkan1_0, nil)
	logger, _ := test.NewNullLogger()

	global.EXPECT().AvailableLayers().Return(validationLayers(), core1_0.VKSuccess, nil)
	global.EXPECT().CreateInstance(nil, gomock.Any()).Return(handle, core1_0.VKSuccess, nil)
	global.EXPECT().BuildInstanceDriver(handle).Return(instanceDriver, nil)
	debugDriver.EXPECT().CreateDebugUtilsMessenger(nil, gomock.Any()).
		Return(ext_debug_utils.DebugUtilsMessenger{}, core1_0.VKErrorOutOfHostMemory, errors.New("out of memory"))
	instanceDriver.EXPECT().DestroyInstance(nil)

	loader := NewLoader(global, WithDebugMessenger(logger))
	loader.newDebugDriver = func(core1_0.CoreInstanceDriver) ext_debug_utils.ExtensionDriver {
		return debugDriver
	}

	instance, result, err := loader.CreateInstance(core1_0.InstanceCreateInfo{})
	require.Nil(t, instance)
	require.Equal(t, core1_0.VKErrorOutOfHostMemory, result)
	require.ErrorContains(t, err, "could not create debug messenger")
}

func TestLoader_DebugExtensionInactiveDestroysInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	global := mocks1_0.NewMockGlobalDriver(ctrl)
	instanceDriver := mocks1_0.NewMockCoreInstanceDriver(ctrl)
	handle := coremocks.NewDummyInstance(common.Vulkan1_0, nil)
	logger, _ := test.NewNullLogger()

	global.EXPECT().AvailableLayers().Return(validationLayers(), core1_0.VKSuccess, nil)
	global.EXPECT().CreateInstance(nil, gomock.Any()).Return(handle, core1_0.VKSuccess, nil)
	global.EXPECT().BuildInstanceDriver(handle).Return(instanceDriver, nil)
	instanceDriver.EXPECT().DestroyInstance(nil)

	loader := NewLoader(global, WithDebugMessenger(logger))
	loader.newDebugDriver = func(core1_0.CoreInstanceDriver) ext_debug_utils.ExtensionDriver {
		return nil
	}

	instance, result, err := loader.CreateInstance(core1_0.InstanceCreateInfo{})
	require.Nil(t, instance)
	require.Equal(t, core1_0.VKErrorExtensionNotPresent, result)
	require.ErrorContains(t, err, ext_debug_utils.ExtensionName)
}

func TestInstance_CreateDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	instanceDriver := mocks1_0.NewMockCoreInstanceDriver(ctrl)
	deviceDriver := mocks1_0.NewMockCoreDeviceDriver(ctrl)
	instanceHandle := coremocks.NewDummyInstance(common.Vulkan1_0, nil)
	physicalDevice := coremocks.NewDummyPhysicalDevice(instanceHandle, common.Vulkan1_0)
	deviceHandle := coremocks.NewDummyDevice(common.Vulkan1_0, nil)

	instanceDriver.EXPECT().CreateDevice(physicalDevice, nil, gomock.Any()).Return(deviceHandle, core1_0.VKSuccess, nil)
	instanceDriver.EXPECT().BuildDeviceDriver(deviceHandle).Return(deviceDriver, nil)

	instance := &Instance{driver: instanceDriver}
	device, result, err := instance.CreateDevice(&PhysicalDevice{instance: instanceDriver, handle: physicalDevice}, core1_0.DeviceCreateInfo{})
	require.NoError(t, err)
	require.Equal(t, core1_0.VKSuccess, result)
	require.Equal(t, deviceDriver, device.(*Device).Driver())
}

func TestInstance_CreateDeviceBuildFailureDestroysHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	instanceDriver := mocks1_0.NewMockCoreInstanceDriver(ctrl)
	instanceLoader := mock_loader.NewMockLoader(ctrl)
	deviceLoader := mock_loader.NewMockLoader(ctrl)
	instanceHandle := coremocks.NewDummyInstance(common.Vulkan1_0, nil)
	physicalDevice := coremocks.NewDummyPhysicalDevice(instanceHandle, common.Vulkan1_0)
	deviceHandle := coremocks.NewDummyDevice(common.Vulkan1_0, nil)

	instanceDriver.EXPECT().CreateDevice(physicalDevice, nil, gomock.Any()).Return(deviceHandle, core1_0.VKSuccess, nil)
	instanceDriver.EXPECT().BuildDeviceDriver(deviceHandle).Return(nil, errors.New("missing vkGetDeviceQueue"))
	instanceDriver.EXPECT().Loader().Return(instanceLoader)
	instanceLoader.EXPECT().CreateDeviceLoader(deviceHandle.Handle()).Return(deviceLoader, nil)
	deviceLoader.EXPECT().VkDestroyDevice(deviceHandle.Handle(), nil)

	instance := &Instance{driver: instanceDriver}
	device, result, err := instance.CreateDevice(&PhysicalDevice{instance: instanceDriver, handle: physicalDevice}, core1_0.DeviceCreateInfo{})
	require.Nil(t, device)
	require.Equal(t, core1_0.VKErrorInitializationFailed, result)
	require.ErrorContains(t, err, "could not build device driver")
}
