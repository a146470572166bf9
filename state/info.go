package state

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// DeviceInfo identifies a physical device for display.
type DeviceInfo struct {
	VendorID      uint32
	DeviceID      uint32
	Name          string
	DriverVersion uint32
}

func deviceInfo(physicalDevice PhysicalDevice) (DeviceInfo, error) {
	properties, err := physicalDevice.Properties()
	if err != nil {
		return DeviceInfo{}, errors.Wrap(err, "could not get physical device properties")
	}

	return DeviceInfo{
		VendorID:      properties.VendorID,
		DeviceID:      properties.DeviceID,
		Name:          properties.DeviceName,
		DriverVersion: properties.DriverVersion,
	}, nil
}

// DeviceInfo returns the identity of the selected physical device.
func (s *State) DeviceInfo() (DeviceInfo, error) {
	if s.physicalDevice == nil {
		return DeviceInfo{}, errors.New("no physical device selected")
	}
	return deviceInfo(s.physicalDevice)
}

// LogInfo writes the identity of the selected physical device to the logger.
func (s *State) LogInfo() {
	info, err := s.DeviceInfo()
	if err != nil {
		s.log.WithError(err).Warn("Could not describe physical device")
		return
	}

	s.log.Infof("    Vendor ID:      0x%X", info.VendorID)
	s.log.Infof("    Device ID:      0x%X", info.DeviceID)
	s.log.Infof("    Device Name:    %s", info.Name)
	s.log.Infof("    Driver Version: %d", info.DriverVersion)
}

// DeviceListing describes one enumerated physical device and whether the
// selection rules would accept it.
type DeviceListing struct {
	DeviceInfo
	Index                    int
	Suitable                 bool
	GraphicsQueueFamilyIndex int
}

// ListDevices creates a short-lived instance and describes every physical
// device it enumerates. The instance and any window system binding are
// released before returning.
func ListDevices(loader Loader, wsi WSI, opts ...Option) ([]DeviceListing, error) {
	s := newState(wsi, opts)
	defer s.Destroy()

	err := s.createInstance(loader)
	if err != nil {
		return nil, err
	}

	err = s.bindWSI()
	if err != nil {
		return nil, err
	}

	physicalDevices, result, err := s.instance.Get().EnumeratePhysicalDevices()
	if err != nil {
		return nil, newInitializationError(StageEnumerate, result, err)
	}

	// Property queries on distinct physical devices need no external
	// synchronization. WSI implementations need not be safe for concurrent
	// use, so suitability is decided on this goroutine afterwards.
	infos := make([]DeviceInfo, len(physicalDevices))
	var group errgroup.Group
	for index, physicalDevice := range physicalDevices {
		group.Go(func() error {
			info, err := deviceInfo(physicalDevice)
			if err != nil {
				return errors.Wrapf(err, "physical device %d", index)
			}
			infos[index] = info
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return nil, err
	}

	listings := make([]DeviceListing, 0, len(physicalDevices))
	for index, physicalDevice := range physicalDevices {
		_, queueFamilyIndex, err := ChoosePhysicalDevice([]PhysicalDevice{physicalDevice}, s.wsi)
		listings = append(listings, DeviceListing{
			DeviceInfo:               infos[index],
			Index:                    index,
			Suitable:                 err == nil,
			GraphicsQueueFamilyIndex: queueFamilyIndex,
		})
	}
	return listings, nil
}
