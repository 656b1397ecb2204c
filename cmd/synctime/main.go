// SyncTime - SNTP clock synchronization with timezone support
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cyberman/SyncTime/internal/config"
	"github.com/cyberman/SyncTime/internal/logger"
	"github.com/cyberman/SyncTime/internal/syncer"
	"github.com/cyberman/SyncTime/internal/tui"
	"github.com/cyberman/SyncTime/internal/tz"
)

const (
	AppName    = "SyncTime"
	AppVersion = "1.0.0"
	AppDesc    = "SNTP clock synchronization with timezone support"
)

var (
	showVersion = flag.Bool("version", false, "Show version information")
	headless    = flag.Bool("headless", false, "Run in headless mode (no TUI)")
	configPath  = flag.String("config", "", "Path to configuration file")
	zoneFlag    = flag.String("zone", "", "Timezone identifier, overrides the configured zone")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n%s\n", AppName, AppVersion, AppDesc)
		os.Exit(0)
	}

	if _, err := config.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *zoneFlag != "" {
		cfg.SetZone(*zoneFlag)
	}

	log := logger.GetLogger()
	if err := log.Initialize(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Infof("STARTUP", "%s v%s starting on %s", AppName, AppVersion, config.GetOSInfo())

	engine := tz.NewEngine()
	if zone := cfg.GetZone(); zone != "" && engine.FindByName(zone) == nil {
		log.Warnf("STARTUP", "Unknown timezone %q, using UTC", zone)
	}

	manager := syncer.NewManager(cfg, engine, syncer.NewSystemClock())
	manager.Start()
	defer manager.Stop()

	if *headless {
		runHeadless(cfg, log)
	} else {
		runTUI(cfg, manager, engine)
	}
}

func runTUI(cfg *config.Config, manager *syncer.Manager, engine *tz.Engine) {
	app := tui.NewApp(cfg, manager, engine)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	cfg.Save()
}

func runHeadless(cfg *config.Config, log *logger.Logger) {
	fmt.Printf("%s v%s syncing with %s (Ctrl+C to stop)\n", AppName, AppVersion, cfg.ServerAddr())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("SHUTDOWN", "Interrupted, shutting down")
	cfg.Save()
}
