package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	capturecycle "github.com/yeti47/cryosnap/client/capture-client/capture-cycle"
	"github.com/yeti47/cryosnap/client/capture-client/client"
	"github.com/yeti47/cryosnap/client/capture-client/common"
	"github.com/yeti47/cryosnap/client/capture-client/config"
	frameencoding "github.com/yeti47/cryosnap/client/capture-client/frame-encoding"
	"github.com/yeti47/cryosnap/client/capture-client/overlay"
	"github.com/yeti47/cryosnap/client/capture-client/schedule"
	"github.com/yeti47/cryosnap/client/capture-client/webcam"
	"gocv.io/x/gocv"
)

const (
	windowTitle    = "Capture Client"
	testUploadsDir = "test_uploads"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.json", "Path to the configuration file")
	testMode := flag.Bool("test", false, "Run in test mode with mock server client")

	// Config override flags
	serverURL := flag.String("server-url", "", "Upload URL (overrides config)")
	cameraDevice := flag.String("camera-device", "", "Camera device index (overrides config)")
	sendInterval := flag.Int("send-interval", 0, "Send interval in seconds (overrides config)")
	extension := flag.String("extension", "", "Upload image format, e.g. '.jpg', '.png' (overrides config)")
	noPreview := flag.Bool("no-preview", false, "Disable the preview window")

	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Apply CLI overrides if provided
	cfg.Override(config.ConfigOverrides{
		ServerURL:           serverURL,
		CameraDevice:        cameraDevice,
		SendIntervalSeconds: sendInterval,
		Extension:           extension,
		NoPreview:           noPreview,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logCloser := common.SetupLogging(cfg.LogDir, "capture-client")
	defer logCloser.Close()

	log.Printf("Configuration: ServerURL=%s, CameraDevice=%s, SendInterval=%v, Extension=%s, Preview=%v",
		cfg.ServerURL, cfg.CameraDevice, cfg.SendInterval(), cfg.Extension, cfg.PreviewEnabled())

	deviceID, err := resolveDevice(cfg.CameraDevice)
	if err != nil {
		log.Fatalf("Failed to determine camera device: %v", err)
	}

	source, err := webcam.NewGoCVFrameSource(deviceID)
	if err != nil {
		log.Fatalf("Failed to open camera %d: %v", deviceID, err)
	}

	// Create client service based on mode
	var clientService client.CaptureServerClient
	if *testMode {
		log.Printf("Running in TEST MODE with mock server client, uploads are written to %s", testUploadsDir)
		clientService = client.NewMockCaptureServerClient(testUploadsDir)
	} else {
		log.Println("Running in PRODUCTION MODE with real server client")
		clientService = client.NewCaptureServerClient(cfg.ServerURL, cfg.ServerTimeout())
	}

	var renderer overlay.Renderer
	if cfg.PreviewEnabled() {
		renderer = overlay.NewCountdownRenderer()
	}

	app := capturecycle.NewCaptureClient(
		source,
		schedule.NewController(cfg.SendInterval(), time.Now()),
		frameencoding.NewImageEncoder(cfg.JpegQuality),
		clientService,
		renderer,
		cfg.Extension,
	)
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Failed to release camera: %v", err)
		}
		log.Println("Capture client stopped")
	}()

	// Handle graceful shutdown
	var stopping atomic.Bool
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutdown signal received, stopping capture...")
		stopping.Store(true)
	}()

	log.Println("Starting capture client...")
	run(app, cfg.PreviewEnabled(), &stopping)
}

// run drives the capture loop until a shutdown is requested
func run(app *capturecycle.CaptureClient, preview bool, stopping *atomic.Bool) {
	var window *gocv.Window
	if preview {
		window = gocv.NewWindow(windowTitle)
		defer window.Close()
	}

	ctx := context.Background()
	for !stopping.Load() {
		result, err := app.RunCycle(ctx, time.Now())
		if err != nil {
			log.Printf("Error: %v", err)
		}

		if window == nil {
			continue
		}

		if result.Frame != nil {
			mat, err := webcam.GrayToMat(result.Frame)
			if err != nil {
				log.Printf("Failed to prepare preview: %v", err)
			} else {
				window.IMShow(mat)
				mat.Close()
			}
		}

		if key := window.WaitKey(1); key == 'q' || key == 'Q' {
			log.Println("Quit requested")
			return
		}
	}
}

// resolveDevice returns the configured device index or asks for one
func resolveDevice(device string) (int, error) {
	if device != "" {
		return config.ParseDeviceIndex(device)
	}

	id, err := config.PromptDeviceIndex(os.Stdin, os.Stdout)
	if err != nil {
		return 0, err
	}
	log.Printf("Using camera device %d", id)
	return id, nil
}
