package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/vkstate/config"
	"github.com/vkngwrapper/vkstate/state"
	"github.com/vkngwrapper/vkstate/vulkan"
	"github.com/vkngwrapper/vkstate/wsi"
)

func main() {
	// SDL must stay on the main thread.
	runtime.LockOSThread()

	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	log := logrus.WithField("app", cfg.ApplicationName)

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return errors.Wrap(err, "could not initialize SDL")
	}
	defer sdl.Quit()

	presenter, closeWSI, err := openWSI(cfg, log)
	if err != nil {
		return err
	}
	defer closeWSI()

	var loaderOpts []vulkan.LoaderOption
	if cfg.Debug {
		loaderOpts = append(loaderOpts, vulkan.WithDebugMessenger(log.WithField("source", "validation")))
	}
	if cfg.Portability {
		loaderOpts = append(loaderOpts, vulkan.WithPortabilityEnumeration())
	}

	loader, err := vulkan.NewLoaderFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr(), loaderOpts...)
	if err != nil {
		return err
	}

	stateOpts := []state.Option{
		state.WithApplicationName(cfg.ApplicationName),
		state.WithLogger(log),
		state.WithDeviceIndex(cfg.DeviceIndex),
	}

	if cfg.ListDevices {
		return listDevices(loader, presenter, stateOpts, log)
	}

	s, err := state.New(loader, presenter, stateOpts...)
	if err != nil {
		return err
	}
	defer s.Destroy()

	log.WithField("state", s.ID().String()).Info("Initialized Vulkan context")
	s.LogInfo()
	return nil
}

func listDevices(loader state.Loader, presenter state.WSI, opts []state.Option, log logrus.FieldLogger) error {
	listings, err := state.ListDevices(loader, presenter, opts...)
	if err != nil {
		return err
	}

	for _, listing := range listings {
		log.WithFields(logrus.Fields{
			"index":          listing.Index,
			"suitable":       listing.Suitable,
			"queue_family":   listing.GraphicsQueueFamilyIndex,
			"driver_version": listing.DriverVersion,
		}).Infof("%s (0x%X:0x%X)", listing.Name, listing.VendorID, listing.DeviceID)
	}
	return nil
}

// parseConfig layers defaults, the optional YAML file, the optional dotenv
// file and finally the command line flags.
func parseConfig(args []string) (config.Config, error) {
	var configPath, envPath string
	newFlagSet := func(cfg *config.Config) *flag.FlagSet {
		fs := flag.NewFlagSet("vkinfo", flag.ContinueOnError)
		fs.StringVar(&configPath, "config", configPath, "YAML config file")
		fs.StringVar(&envPath, "env-file", envPath, "dotenv file with VKSTATE_* settings")
		cfg.RegisterFlags(fs)
		return fs
	}

	// First pass only finds the file paths.
	cfg := config.Default()
	err := newFlagSet(&cfg).Parse(args)
	if err != nil {
		return cfg, err
	}

	cfg = config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return cfg, err
		}
	}

	if envPath != "" {
		err = cfg.LoadEnvFile(envPath)
		if err != nil {
			return cfg, err
		}
	}

	err = newFlagSet(&cfg).Parse(args)
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func openWSI(cfg config.Config, log logrus.FieldLogger) (state.WSI, func(), error) {
	switch cfg.WindowSystem {
	case config.WindowSystemHeadless:
		err := sdl.VulkanLoadLibrary("")
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not load vulkan library")
		}
		return wsi.Headless{}, sdl.VulkanUnloadLibrary, nil
	default:
		window, err := sdl.CreateWindow(cfg.ApplicationName, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_HIDDEN|sdl.WINDOW_VULKAN)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not create window")
		}
		return wsi.NewSDL2(window, log), func() { _ = window.Destroy() }, nil
	}
}
