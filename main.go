package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"rowpick/internal/config"
	"rowpick/internal/datasource"
	"rowpick/internal/eventbus"
	"rowpick/internal/logic"
	"rowpick/internal/metrics"
	"rowpick/internal/ui"
)

func main() {
	var (
		configPath  string
		rows        int
		seed        int64
		metricsAddr string
		logPath     string
	)
	flag.StringVar(&configPath, "config", config.DefaultFileName, "Path to the config file")
	flag.IntVar(&rows, "rows", 0, "Number of rows to generate (overrides config)")
	flag.Int64Var(&seed, "seed", 0, "Seed for the row generator (overrides config)")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (overrides config)")
	flag.StringVar(&logPath, "log", "", "Log file (overrides config)")
	flag.Parse()

	cfg, existed, err := config.NewConfigService(configPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Data.Rows = rows
		case "seed":
			cfg.Data.Seed = seed
		case "metrics-addr":
			cfg.Metrics.Addr = metricsAddr
		case "log":
			cfg.Log.Path = logPath
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file
	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	selected, err := run(cfg, configPath, logger, existed)
	if err != nil {
		logger.Error("exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d selected\n", selected)
}

func run(cfg *config.Config, configPath string, logger *zap.Logger, hasExistingConfig bool) (int, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()

	recorder := metrics.NewRecorder()
	recorder.Attach(bus)
	defer recorder.Detach()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	rowStore := logic.NewMemoryRowStore()
	generator := datasource.NewGenerator(bus, rowStore, logger, cfg.Data.Seed, cfg.Data.BatchSize)

	g, gctx := errgroup.WithContext(ctx)

	model := ui.NewModel(cfg, rowStore, bus, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(gctx))
	model.SetProgram(p)

	// Forward data source events to the UI
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	for _, t := range []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventRowsLoadedBatch,
		eventbus.EventLoadCompleted,
		eventbus.EventError,
		eventbus.EventConfigSaved,
		eventbus.EventAppReady,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	if cfg.Metrics.Addr != "" {
		g.Go(func() error {
			return serveMetrics(gctx, recorder, cfg.Metrics.Addr, bus, logger)
		})
	}

	g.Go(func() error {
		// Quitting the UI stops everything else
		defer cancel()
		logger.Info("starting UI", zap.Int("rows", cfg.Data.Rows))
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	if !hasExistingConfig {
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			// Running without a saved config is fine
			logger.Warn("could not save default config", zap.Error(err))
			bus.Publish(eventbus.ErrorEvent{Message: "Could not save config", Err: err})
		}
	}

	bus.Publish(eventbus.AppReadyEvent{})
	if err := generator.Load(gctx, cfg.Data.Rows); err != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "Failed to load rows", Err: err})
	}

	err := g.Wait()
	generator.Wait()
	logger.Info("UI exited", zap.Int("selected", model.Selection().GetCount()))
	return model.Selection().GetCount(), err
}

// serveMetrics runs the metrics endpoint until ctx is done. A server failure
// is logged and reported on the bus; the UI and the row load keep running.
func serveMetrics(ctx context.Context, recorder *metrics.Recorder, addr string, bus eventbus.EventBus, logger *zap.Logger) error {
	if err := recorder.Serve(ctx, addr, logger); err != nil {
		logger.Error("metrics server failed", zap.String("addr", addr), zap.Error(err))
		bus.Publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Metrics unavailable on %s", addr), Err: err})
	}
	return nil
}

func newLogger(settings config.LogSettings) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
	}
	if settings.Path == "" {
		return zap.NewNop(), nil
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{settings.Path}
	zcfg.ErrorOutputPaths = []string{settings.Path}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zcfg.Build()
}
