package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"swiper/internal/config"
	"swiper/internal/domain"
	"swiper/internal/eventbus"
	"swiper/internal/native"
	"swiper/internal/pages"
	"swiper/internal/paging"
	"swiper/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath  string
		axis        string
		backend     string
		page        int
		delimiter   string
		writeConfig bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&axis, "axis", "", "Paging axis: vertical or horizontal")
	flag.StringVar(&backend, "backend", "", "Pager backend: swipe or native")
	flag.IntVar(&page, "page", -1, "Initial page index")
	flag.StringVar(&delimiter, "delimiter", "", "Page delimiter line for single-file sources")
	flag.BoolVar(&writeConfig, "write-config", false, "Save the effective config and exit")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("swiper.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	if c, ok := bus.(eventbus.Closer); ok {
		defer c.Close()
	}

	// Load configuration: file, then environment, then flags
	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid environment override: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg, axis, backend, page, delimiter); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flag: %v\n", err)
		os.Exit(2)
	}

	if writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	// Resolve the page source
	target := "."
	if flag.NArg() > 0 {
		target = flag.Arg(0)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	provider, dir, err := openSource(bus, absTarget, cfg.Delimiter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Backend == config.BackendNative {
		if err := runNative(ctx, cfg, bus, provider, dir, absTarget); err != nil {
			log.Printf("Native pager failed: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Create UI model
	uiModel, err := ui.NewModel(bus, cfg, provider, &native.OvView{Bus: bus})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventScanStarted,
		eventbus.EventPageDiscovered,
		eventbus.EventScanCompleted,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start discovery after the UI is subscribed
	if dir != nil {
		if err := dir.StartScan(ctx, absTarget); err != nil {
			log.Printf("Error starting scan: %v", err)
		}
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited on page %d", uiModel.Controller().Index())

	// Cleanup
	if dir != nil {
		dir.StopScan()
	}
	cancel()
}

// applyFlags overlays explicitly set flags on cfg
func applyFlags(cfg *config.Config, axis, backend string, page int, delimiter string) error {
	if axis != "" {
		cfg.Axis = axis
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if page >= 0 {
		cfg.InitialPage = page
	}
	if delimiter != "" {
		cfg.Delimiter = delimiter
	}
	return cfg.Validate()
}

// openSource returns a provider for a directory or a delimited file. For a
// directory the scan is left to the caller.
func openSource(bus eventbus.EventBus, path, delimiter string) (domain.Provider, *pages.Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		deck, err := pages.ReadFile(path, delimiter)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Loaded %d pages from %s", len(deck), path)
		return deck, nil, nil
	}
	dir, err := pages.NewDirectory(bus, pages.DirectoryOptions{})
	if err != nil {
		return nil, nil, err
	}
	return dir, dir, nil
}

// runNative hands the whole page set to ov. Directory discovery finishes
// first since ov takes the pages up front.
func runNative(ctx context.Context, cfg *config.Config, bus eventbus.EventBus, provider domain.Provider, dir *pages.Directory, root string) error {
	if dir != nil {
		if err := dir.StartScan(ctx, root); err != nil {
			return err
		}
		dir.Wait()
	}

	opts := paging.OptionsFromConfig(cfg, 0)
	opts.OnPageSelected = func(e domain.PageSelectedEvent) {
		log.Printf("Page selected: %d", e.Position)
	}
	controller, err := paging.New(cfg, opts, paging.Deps{
		Provider: provider,
		View:     &native.OvView{Bus: bus},
		Bus:      bus,
	})
	if err != nil {
		return err
	}
	nc, ok := controller.(*paging.NativeController)
	if !ok {
		return fmt.Errorf("unexpected controller %T for native backend", controller)
	}
	return nc.Run()
}
